// Command migrate manages the database schema.
//
// Usage:
//
//	migrate [up|down|status]
//
// The default action is up.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moviemood-backend/internal/app"
	"github.com/heartmarshall/moviemood-backend/internal/config"
)

func main() {
	action := "up"
	if len(os.Args) > 1 {
		action = os.Args[1]
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	if err := run(action, cfg, logger); err != nil {
		logger.Error("migrate failed", slog.String("action", action), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(action string, cfg *config.ToolConfig, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	m, err := postgres.NewMigrator(pool)
	if err != nil {
		return err
	}
	defer m.Close()

	switch action {
	case "up":
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.Info("migrations applied", slog.Int("count", n))
	case "down":
		if err := m.Down(ctx); err != nil {
			return err
		}
		logger.Info("rolled back one migration")
	case "status":
		list, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range list {
			state := "pending"
			if s.Applied {
				state = "applied"
			}
			fmt.Printf("%05d  %-8s %s\n", s.Version, state, s.Path)
		}
	default:
		return fmt.Errorf("unknown action %q (want up, down or status)", action)
	}
	return nil
}
