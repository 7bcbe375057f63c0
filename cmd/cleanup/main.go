// Command cleanup permanently removes applications that have been in the
// trash longer than the retention period. It is meant to run from an
// external cron job, not as an in-process goroutine.
//
// Flags:
//
//	--retention-days  override maintenance.trash_retention_days
//	--dry-run         report how many applications would be removed
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/artcontest/internal/adapter/postgres"
	"github.com/heartmarshall/artcontest/internal/adapter/postgres/application"
	"github.com/heartmarshall/artcontest/internal/app"
	"github.com/heartmarshall/artcontest/internal/config"
)

func main() {
	retentionFlag := flag.Int("retention-days", 0, "days an application stays in the trash (default from config)")
	dryRunFlag := flag.Bool("dry-run", false, "count purgeable applications without deleting them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "cleanup")

	retention := cfg.Maintenance.TrashRetentionDays
	if *retentionFlag > 0 {
		retention = *retentionFlag
	}
	threshold := time.Now().AddDate(0, 0, -retention)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := application.New(pool)

	if *dryRunFlag {
		n, err := repo.CountTrashed(ctx, threshold)
		if err != nil {
			logger.Error("count trash failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("dry run: applications eligible for purge",
			slog.Int64("count", n),
			slog.Int("retention_days", retention),
			slog.Time("threshold", threshold),
		)
		return
	}

	deleted, err := repo.PurgeTrashed(ctx, threshold)
	if err != nil {
		logger.Error("purge trash failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("purge trash completed",
		slog.Int64("deleted", deleted),
		slog.Int("retention_days", retention),
		slog.Time("threshold", threshold),
	)
}
