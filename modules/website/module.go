package website

import (
	"embed"
	"errors"

	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/contactmessage"
	"github.com/apper-apps/india-website-drive/modules/website/domain/entities/content"
	"github.com/apper-apps/india-website-drive/modules/website/handlers"
	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence"
	"github.com/apper-apps/india-website-drive/modules/website/presentation/controllers"
	"github.com/apper-apps/india-website-drive/modules/website/services"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

//go:embed infrastructure/persistence/schema/*.sql
var MigrationFiles embed.FS

var ErrDatabaseRequired = errors.New("website: CONTACT_STORAGE=postgres requires a database connection")

type ModuleOptions struct {
	// Website and Contact default to the loaded configuration.
	Website *configuration.WebsiteOptions
	Contact *configuration.ContactOptions
	// Content overrides the embedded page content, mostly for tests.
	Content content.Repository
	// Messages overrides the contact message store chosen by Contact.Storage.
	Messages contactmessage.Repository
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) config() (configuration.WebsiteOptions, configuration.ContactOptions) {
	var (
		site    configuration.WebsiteOptions
		contact configuration.ContactOptions
	)
	if m.options.Website != nil {
		site = *m.options.Website
	} else {
		site = configuration.Use().Website
	}
	if m.options.Contact != nil {
		contact = *m.options.Contact
	} else {
		contact = configuration.Use().Contact
	}
	return site, contact
}

func messageRepository(app application.Application, opts configuration.ContactOptions) (contactmessage.Repository, error) {
	if opts.Storage != "postgres" {
		return persistence.NewInmemMessageRepository(), nil
	}
	if app.DB() == nil {
		return nil, ErrDatabaseRequired
	}
	return persistence.NewPgMessageRepository(app.DB()), nil
}

func (m *Module) Register(app application.Application) error {
	site, contact := m.config()
	if err := contact.Validate(); err != nil {
		return err
	}

	contentRepo := m.options.Content
	if contentRepo == nil {
		repo, err := persistence.NewEmbeddedContentRepository()
		if err != nil {
			return err
		}
		contentRepo = repo
	}
	messages := m.options.Messages
	if messages == nil {
		repo, err := messageRepository(app, contact)
		if err != nil {
			return err
		}
		messages = repo
	}

	app.RegisterLocaleFiles(&LocaleFiles)
	app.Migrations().RegisterSchema(&MigrationFiles)
	app.RegisterServices(
		services.NewContentService(contentRepo, site.HomePhotoLimit),
		services.NewBlogService(contentRepo, site.BlogPageSize),
		services.NewContactService(messages, app.EventPublisher()),
	)
	handlers.RegisterContactEventHandlers(app)

	app.RegisterControllers(
		controllers.NewPagesController(app, controllers.PagesControllerOptions{
			SliderInterval: site.HeroSliderInterval,
		}),
	)
	return nil
}

func (m *Module) Name() string {
	return "website"
}
