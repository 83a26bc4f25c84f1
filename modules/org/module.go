package org

import (
	"context"
	"embed"

	"github.com/redis/go-redis/v9"

	"github.com/apper-apps/india-website-drive/modules/org/domain/hierarchy"
	"github.com/apper-apps/india-website-drive/modules/org/handlers"
	"github.com/apper-apps/india-website-drive/modules/org/infrastructure/persistence"
	"github.com/apper-apps/india-website-drive/modules/org/presentation/controllers"
	"github.com/apper-apps/india-website-drive/modules/org/services"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
)

//go:embed presentation/locales/*.json
var localeFiles embed.FS

type ModuleOptions struct {
	// Config defaults to configuration.Use().OrgChart.
	Config *configuration.OrgChartOptions
	// Redis is required when Config.ViewStorage is "redis". When nil the
	// client is built from REDIS_URL.
	Redis *redis.Client
	// Loader overrides the structure loader, mostly for tests.
	Loader hierarchy.StructureLoader
}

func NewModule(opts *ModuleOptions) application.Module {
	if opts == nil {
		opts = &ModuleOptions{}
	}
	return &Module{options: opts}
}

type Module struct {
	options *ModuleOptions
	cfg     configuration.OrgChartOptions
	inmem   *persistence.InmemViewRepository
	app     application.Application
}

func (m *Module) config() configuration.OrgChartOptions {
	if m.options.Config != nil {
		return *m.options.Config
	}
	return configuration.Use().OrgChart
}

func (m *Module) viewRepository(cfg configuration.OrgChartOptions) hierarchy.ViewRepository {
	if cfg.ViewStorage == "redis" {
		client := m.options.Redis
		if client == nil {
			client = newRedisClient(configuration.Use().RedisURL)
		}
		return persistence.NewRedisViewRepository(client, cfg.ViewTTL)
	}
	m.inmem = persistence.NewInmemViewRepository(cfg.ViewTTL)
	return m.inmem
}

func newRedisClient(redisURL string) *redis.Client {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		opts = &redis.Options{Addr: redisURL}
	}
	return redis.NewClient(opts)
}

func (m *Module) Register(app application.Application) error {
	cfg := m.config()
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	m.app = app
	app.RegisterLocaleFiles(&localeFiles)

	loader := m.options.Loader
	if loader == nil {
		loader = persistence.NewEmbeddedStructureLoader(cfg.StructurePath)
	}
	app.RegisterServices(
		services.NewHierarchyService(loader, m.viewRepository(cfg), app.EventPublisher()),
	)
	handlers.RegisterToggleEventHandlers(app)

	app.RegisterControllers(
		controllers.NewOrgChartController(app),
	)
	return nil
}

// Run sweeps expired in-memory views. Redis expires keys on its own.
func (m *Module) Run(ctx context.Context) {
	if m.inmem == nil {
		return
	}
	logger := m.app.Logger()
	m.inmem.RunJanitor(ctx, m.cfg.JanitorInterval, func(removed int) {
		logger.WithField("removed", removed).Debug("expired org chart views swept")
	})
}

func (m *Module) Name() string {
	return "org"
}
