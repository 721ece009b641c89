package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shohaib/portfolio-cms/internal/repository/postgres"
)

func newMigrateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long:  "Connects to DATABASE_DSN and applies every pending schema migration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config()
			if err != nil {
				return err
			}

			// NewConnection migrates before returning.
			db, err := postgres.NewConnection(cmd.Context(), cfg.Database.DSN)
			if err != nil {
				return fmt.Errorf("failed to migrate: %w", err)
			}
			defer db.Close()

			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}
