// Command cleanup prunes audit entries older than the configured retention.
// It is meant to run from an external scheduler (cron, a Kubernetes CronJob),
// not inside the API process.
//
// Usage:
//
//	cleanup [-retention-days=N] [-dry-run]
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

	"github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres/audit"
	"github.com/heartmarshall/moviemood-backend/internal/app"
	"github.com/heartmarshall/moviemood-backend/internal/config"
)

func main() {
	retention := flag.Int("retention-days", -1, "override audit.retention_days (0 keeps everything)")
	dryRun := flag.Bool("dry-run", false, "report the cutoff without deleting")
	flag.Parse()

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log).With("cmd", "cleanup")

	days := cfg.Audit.RetentionDays
	if *retention >= 0 {
		days = *retention
	}
	if days == 0 {
		logger.Info("audit retention disabled, nothing to prune")
		return
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	if *dryRun {
		logger.Info("dry run", slog.Time("cutoff", cutoff), slog.Int("retention_days", days))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := auditrepo.New(pool).DeleteOlderThan(ctx, cutoff)
	if err != nil {
		logger.Error("prune audit log",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		pool.Close()
		os.Exit(1)
	}

	logger.Info("audit log pruned",
		slog.Int64("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
