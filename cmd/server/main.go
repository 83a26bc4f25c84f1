package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/apper-apps/india-website-drive/internal/server"
	"github.com/apper-apps/india-website-drive/modules"
	"github.com/apper-apps/india-website-drive/modules/core/presentation/controllers"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
	"github.com/apper-apps/india-website-drive/pkg/eventbus"
	"github.com/apper-apps/india-website-drive/pkg/logging"
	"github.com/apper-apps/india-website-drive/pkg/metrics"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			configuration.Use().Unload()
			log.Println(r)
			debug.PrintStack()
			os.Exit(1)
		}
	}()

	conf := configuration.Use()
	defer conf.Unload()
	logger := conf.Logger()

	if conf.OpenTelemetry.Enabled {
		tracingCleanup := logging.SetupTracing(
			context.Background(),
			conf.OpenTelemetry.ServiceName,
			conf.OpenTelemetry.TempoURL,
		)
		defer tracingCleanup()
		logger.Info("OpenTelemetry tracing enabled, exporting to Tempo at " + conf.OpenTelemetry.TempoURL)
	}

	var db *sqlx.DB
	if conf.Contact.Storage == "postgres" {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
		var err error
		db, err = sqlx.ConnectContext(ctx, "postgres", conf.Database.Opts)
		cancel()
		if err != nil {
			panic(err)
		}
		defer db.Close()
	}

	app := application.New(&application.ApplicationOptions{
		DB:                 db,
		Bundle:             application.LoadBundle(),
		EventBus:           eventbus.NewEventPublisher(logger),
		Logger:             logger,
		SupportedLanguages: conf.Languages(),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		log.Fatalf("failed to load modules: %v", err)
	}

	app.RegisterNavItems(modules.NavLinks...)
	if conf.Prometheus.Enabled {
		app.RegisterControllers(metrics.NewPrometheusController(conf.Prometheus.Path))
	}
	app.RegisterControllers(
		controllers.NewStaticFilesController(app.HashFsAssets()),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	for _, module := range modules.BuiltInModules {
		if runner, ok := module.(application.Runner); ok {
			go runner.Run(ctx)
		}
	}

	serverInstance, err := server.Default(&server.DefaultOptions{
		Logger:        logger,
		Configuration: conf,
		Application:   app,
	})
	if err != nil {
		log.Fatalf("failed to create server: %v", err)
	}
	log.Printf("Listening on: %s\n", conf.Origin)
	if err := serverInstance.Start(ctx, conf.SocketAddress); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
