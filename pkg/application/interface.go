package application

import (
	"context"
	"embed"
	"reflect"

	"github.com/benbjohnson/hashfs"
	"github.com/gorilla/mux"
	"github.com/iota-uz/go-i18n/v2/i18n"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"github.com/apper-apps/india-website-drive/pkg/eventbus"
	"github.com/apper-apps/india-website-drive/pkg/types"
)

type Controller interface {
	Register(r *mux.Router)
	Key() string
}

type Module interface {
	Register(app Application) error
	Name() string
}

// Runner is implemented by modules with background work tied to the server
// lifetime. Run blocks until ctx is done.
type Runner interface {
	Run(ctx context.Context)
}

type MigrationManager interface {
	RegisterSchema(migrations ...*embed.FS)
	Up(ctx context.Context) error
	Down(ctx context.Context) error
	Status(ctx context.Context) ([]MigrationStatus, error)
}

// Application is the registry modules plug their services, controllers,
// assets and locales into.
type Application interface {
	DB() *sqlx.DB
	Logger() *logrus.Logger
	EventPublisher() eventbus.EventBus
	Controllers() []Controller
	Middleware() []mux.MiddlewareFunc
	Migrations() MigrationManager
	HashFsAssets() []*hashfs.FS
	NavItems(localizer *i18n.Localizer) []types.NavigationItem
	Bundle() *i18n.Bundle
	GetSupportedLanguages() []string
	RegisterNavItems(items ...types.NavigationItem)
	RegisterControllers(controllers ...Controller)
	RegisterHashFsAssets(fs ...*hashfs.FS)
	RegisterLocaleFiles(fs ...*embed.FS)
	RegisterMiddleware(middleware ...mux.MiddlewareFunc)
	RegisterServices(services ...interface{})
	Service(service interface{}) interface{}
	Services() map[reflect.Type]interface{}
}
