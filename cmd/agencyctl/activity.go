package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/agencydesk-backend/internal/app"
	"github.com/heartmarshall/agencydesk-backend/internal/config"
	activitysvc "github.com/heartmarshall/agencydesk-backend/internal/service/activity"
)

var activityLimit int

var activityCmd = &cobra.Command{
	Use:   "activity",
	Short: "Show or prune the activity feed",
}

var activityListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the most recent activity",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := withTimeout(cmd)
		defer cancel()

		items, err := newClient().RecentActivity(ctx, activityLimit)
		if err != nil {
			return fmt.Errorf("activity: %w", err)
		}

		rows := make([][]string, 0, len(items))
		for _, a := range items {
			detail := ""
			if a.Detail != nil {
				detail = *a.Detail
			}
			rows = append(rows, []string{a.CreatedAt.Local().Format(time.DateTime), a.Description, detail})
		}
		fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Quando", "Atividade", "Detalhe"}, rows))
		return nil
	},
}

var activityPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Delete activity older than the retention window for all agencies",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := app.NewLogger(cfg.Log)

		ctx, cancel := withTimeout(cmd)
		defer cancel()

		pool, err := postgres.NewPool(ctx, cfg.Database)
		if err != nil {
			return fmt.Errorf("connect database: %w", err)
		}
		defer pool.Close()

		deleted, err := activitysvc.NewService(logger, activityrepo.New(pool), cfg.Directory).PruneAll(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d entries deleted\n", deleted)
		return nil
	},
}

func init() {
	activityListCmd.Flags().IntVar(&activityLimit, "limit", 0, "number of entries (server default when 0)")
	activityCmd.AddCommand(activityListCmd, activityPruneCmd)
}
