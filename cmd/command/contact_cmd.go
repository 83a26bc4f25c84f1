package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/apper-apps/india-website-drive/modules/website/infrastructure/persistence"
	"github.com/apper-apps/india-website-drive/modules/website/services"
	"github.com/apper-apps/india-website-drive/pkg/configuration"
	"github.com/apper-apps/india-website-drive/pkg/eventbus"
	"github.com/apper-apps/india-website-drive/pkg/logging"
)

func newContactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Read contact messages stored in Postgres",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recent contact messages",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := configuration.Use()
			defer conf.Unload()

			db, err := connectDB(cmd.Context(), conf)
			if err != nil {
				return fmt.Errorf("connect database: %w", err)
			}
			defer db.Close()

			svc := services.NewContactService(
				persistence.NewPgMessageRepository(db),
				eventbus.NewEventPublisher(logging.ConsoleLogger(conf.LogrusLogLevel())),
			)
			total, err := svc.Count(cmd.Context())
			if err != nil {
				return err
			}
			messages, err := svc.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "RECEIVED\tNAME\tEMAIL\tSUBJECT")
			for _, m := range messages {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", m.CreatedAt().Format("2006-01-02 15:04"), m.Name(), m.Email(), m.Subject())
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nshowing %d of %d messages\n", len(messages), total)
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of messages to show")
	cmd.AddCommand(listCmd)
	return cmd
}
