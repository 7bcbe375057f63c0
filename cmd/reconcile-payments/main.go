// Command reconcile-payments re-checks pending payments against the payment
// gateway and applies the final statuses it finds. Run it from cron to catch
// webhooks the gateway stopped redelivering.
//
// Usage:
//
//	reconcile-payments [--max-age=72h]
//
// Exit codes: 0 = every payment checked, 1 = error.
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
	"github.com/heartmarshall/artcontest/internal/service/payment"
)

func main() {
	maxAge := flag.Duration("max-age", 0, "only check payments younger than this (default from config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "reconcile-payments")

	if *maxAge <= 0 {
		*maxAge = cfg.Maintenance.PendingPaymentMaxAge
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	gw, err := app.NewPaymentGateway(cfg.Payment, logger)
	if err != nil {
		logger.Error("payment gateway", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Reconcile only reads pending applications and updates their status,
	// so the submission dependencies stay unset.
	svc := payment.NewService(logger, gw, nil, application.New(pool), nil, payment.Config{
		ReturnURL: cfg.Payment.ReturnURL,
		Currency:  cfg.Payment.Currency,
	})

	report, err := svc.Reconcile(ctx, time.Now().Add(-*maxAge))
	if err != nil {
		logger.Error("reconcile payments",
			slog.String("error", err.Error()),
			slog.Int("failed", report.Failed),
		)
		os.Exit(1)
	}
}
