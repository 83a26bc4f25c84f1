package modules

import (
	"slices"

	"github.com/apper-apps/india-website-drive/modules/core"
	"github.com/apper-apps/india-website-drive/modules/org"
	"github.com/apper-apps/india-website-drive/modules/website"
	"github.com/apper-apps/india-website-drive/pkg/application"
)

var (
	BuiltInModules = []application.Module{
		core.NewModule(&core.ModuleOptions{
			ModuleNames: []string{"core", "org", "website"},
		}),
		org.NewModule(nil),
		website.NewModule(nil),
	}

	NavLinks = slices.Concat(
		core.NavItems,
		website.NavItems,
	)
)

func Load(app application.Application, externalModules ...application.Module) error {
	for _, module := range externalModules {
		if err := module.Register(app); err != nil {
			return err
		}
	}
	return nil
}
