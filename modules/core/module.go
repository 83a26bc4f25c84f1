package core

import (
	"embed"

	"github.com/apper-apps/india-website-drive/internal/assets"
	"github.com/apper-apps/india-website-drive/modules/core/presentation/controllers"
	"github.com/apper-apps/india-website-drive/pkg/application"
)

//go:embed presentation/locales/*.json
var LocaleFiles embed.FS

type ModuleOptions struct {
	// Module names reported by /health.
	ModuleNames []string
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{
		options: opts,
	}
}

type Module struct {
	options *ModuleOptions
}

func (m *Module) Register(app application.Application) error {
	app.RegisterLocaleFiles(&LocaleFiles)
	app.RegisterHashFsAssets(assets.HashFS)
	app.RegisterControllers(
		controllers.NewHealthController(m.options.ModuleNames),
	)
	return nil
}

func (m *Module) Name() string {
	return "core"
}
