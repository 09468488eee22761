// Command promote grants the admin role to an existing user. It is used to
// bootstrap the first admin account.
//
// Usage:
//
//	promote -email=user@example.com
//
// Database settings come from the same CONFIG_PATH / DATABASE_* sources as
// the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moviemood-backend/internal/app"
	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the user to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote -email=user@example.com")
		os.Exit(2)
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	u, err := userrepo.New(pool).PromoteByEmail(ctx, *email)
	if errors.Is(err, domain.ErrNotFound) {
		logger.Error("no user with that email", slog.String("email", *email))
		pool.Close()
		os.Exit(1)
	}
	if err != nil {
		logger.Error("promote user", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("user promoted to admin",
		slog.String("user_id", u.ID.String()),
		slog.String("email", u.Email),
	)
}
