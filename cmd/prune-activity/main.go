// Command prune-activity deletes activity entries older than the configured
// retention for every agency. It is intended to be invoked by an external
// cron job; listing already prunes per agency on read.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/agencydesk-backend/internal/adapter/postgres/activity"
	"github.com/heartmarshall/agencydesk-backend/internal/app"
	"github.com/heartmarshall/agencydesk-backend/internal/config"
	activitysvc "github.com/heartmarshall/agencydesk-backend/internal/service/activity"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := activitysvc.NewService(logger, activityrepo.New(pool), cfg.Directory)

	deleted, err := svc.PruneAll(ctx)
	if err != nil {
		logger.Error("prune activity failed",
			slog.String("error", err.Error()),
			slog.Duration("retention", cfg.Directory.ActivityRetention),
		)
		os.Exit(1)
	}

	logger.Info("prune activity completed",
		slog.Int64("deleted", deleted),
		slog.Duration("retention", cfg.Directory.ActivityRetention),
	)
}
