package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/apper-apps/india-website-drive/modules"
	"github.com/apper-apps/india-website-drive/pkg/application"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
	"github.com/apper-apps/india-website-drive/pkg/logging"
)

// withMigrations connects to Postgres and collects every module schema.
func withMigrations(cmd *cobra.Command, fn func(m application.MigrationManager) error) error {
	conf := configuration.Use()
	defer conf.Unload()

	db, err := connectDB(cmd.Context(), conf)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	app := application.New(&application.ApplicationOptions{
		DB:     db,
		Logger: logging.ConsoleLogger(conf.LogrusLogLevel()),
	})
	if err := modules.Load(app, modules.BuiltInModules...); err != nil {
		return fmt.Errorf("load modules: %w", err)
	}
	return fn(app.Migrations())
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or inspect database migrations",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrations(cmd, func(m application.MigrationManager) error {
					if err := m.Up(cmd.Context()); err != nil {
						return err
					}
					color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "migrations applied")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrations(cmd, func(m application.MigrationManager) error {
					if err := m.Down(cmd.Context()); err != nil {
						return err
					}
					color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "rolled back one migration")
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "status",
			Short: "List migrations and whether they are applied",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrations(cmd, func(m application.MigrationManager) error {
					statuses, err := m.Status(cmd.Context())
					if err != nil {
						return err
					}
					return printMigrationStatus(statuses)
				})
			},
		},
	)
	return cmd
}

func printMigrationStatus(statuses []application.MigrationStatus) error {
	applied := color.New(color.FgGreen).SprintFunc()
	pending := color.New(color.FgYellow).SprintFunc()

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
	for _, s := range statuses {
		state, at := pending("pending"), "-"
		if s.Applied {
			state, at = applied("applied"), s.AppliedAt.Format("2006-01-02 15:04:05")
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.Version, state, at, s.Source)
	}
	return tw.Flush()
}
