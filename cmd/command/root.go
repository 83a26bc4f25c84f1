package main

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
)

const (
	exitFailure    = 1
	exitNoDatabase = 2
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "command",
		Short:         "Maintenance tools for the IGD India website",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newMigrateCmd(), newOrgChartCmd(), newContactCmd())
	return cmd
}

func exitCode(err error) int {
	if errors.Is(err, application.ErrNoDatabase) {
		return exitNoDatabase
	}
	return exitFailure
}

func connectDB(ctx context.Context, conf *configuration.Configuration) (*sqlx.DB, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return sqlx.ConnectContext(ctx, "postgres", conf.Database.Opts)
}
