package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres"
	"github.com/heartmarshall/agencydesk-backend/internal/app"
	"github.com/heartmarshall/agencydesk-backend/internal/config"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
		return nil
	},
}
