// Command seeder loads demo contests, reviews and results from a YAML
// fixture. Rows already present are skipped, so it is safe to rerun.
// It is intended to be run offline, not as part of the main server.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all, or SEEDER_PHASES)
//	--fixture        path to the fixture YAML file
//	--dry-run        parse the fixture without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/artcontest/internal/adapter/postgres"
	contestrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/contest"
	resultrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/result"
	reviewrepo "github.com/heartmarshall/artcontest/internal/adapter/postgres/review"
	"github.com/heartmarshall/artcontest/internal/app"
	"github.com/heartmarshall/artcontest/internal/app/seeder"
	"github.com/heartmarshall/artcontest/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.ContestStore = (*contestrepo.Repo)(nil)
	_ seeder.ReviewStore  = (*reviewrepo.Repo)(nil)
	_ seeder.ResultStore  = (*resultrepo.Repo)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	fixtureFlag := flag.String("fixture", "", "path to the fixture YAML file")
	dryRunFlag := flag.Bool("dry-run", false, "parse the fixture without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log, "seeder")

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *dryRunFlag {
		seederCfg.DryRun = true
	}
	if *fixtureFlag != "" {
		seederCfg.FixturePath = *fixtureFlag
	}

	if *phaseFlag != "" {
		seederCfg.Phases = strings.Split(*phaseFlag, ",")
		for i := range seederCfg.Phases {
			seederCfg.Phases[i] = strings.TrimSpace(seederCfg.Phases[i])
		}
	}
	if err := seederCfg.Validate(); err != nil {
		logger.Error("invalid seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fixture, err := seeder.LoadFixture(seederCfg.FixturePath)
	if err != nil {
		logger.Error("load fixture", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, seeder.Stores{
		Contests: contestrepo.New(pool),
		Reviews:  reviewrepo.New(pool),
		Results:  resultrepo.New(pool),
	}, *seederCfg)
	if err := pipeline.Run(ctx, fixture, seederCfg.Phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
