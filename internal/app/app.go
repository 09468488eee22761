package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres/audit"
	movierepo "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres/movie"
	userrepo "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/moviemood-backend/internal/auth"
	"github.com/heartmarshall/moviemood-backend/internal/config"
	authsvc "github.com/heartmarshall/moviemood-backend/internal/service/auth"
	moviesvc "github.com/heartmarshall/moviemood-backend/internal/service/movie"
	usersvc "github.com/heartmarshall/moviemood-backend/internal/service/user"
	"github.com/heartmarshall/moviemood-backend/internal/transport/middleware"
	"github.com/heartmarshall/moviemood-backend/internal/transport/rest"
)

// App is the assembled HTTP application: repositories, services and router
// on top of a database pool owned by the caller.
type App struct {
	cfg     *config.Config
	log     *slog.Logger
	handler http.Handler
	limiter *middleware.RateLimiter
}

// New wires every component against pool.
func New(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool) *App {
	users := userrepo.New(pool)
	movies := movierepo.New(pool)
	audit := auditrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, jwtManager, cfg.Auth)
	userService := usersvc.NewService(logger, users, audit, txm, cfg.Auth)
	movieService := moviesvc.NewService(logger, movies, audit, txm, cfg.Movies)

	var metrics *middleware.Metrics
	if cfg.Server.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
		metrics = middleware.NewMetrics(reg)
	}

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := rest.NewRouter(rest.RouterDeps{
		Logger:      logger,
		Auth:        authService,
		Users:       userService,
		Movies:      movieService,
		Health:      rest.NewHealthHandler(pool, BuildVersion()),
		Tokens:      authService,
		RateLimiter: limiter,
		Metrics:     metrics,
		CORS:        cfg.CORS,
		RateLimit:   cfg.RateLimit,
		MaxBody:     cfg.Server.MaxBodyBytes,
	})

	return &App{cfg: cfg, log: logger, handler: handler, limiter: limiter}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler { return a.handler }

// Close stops background workers started by New.
func (a *App) Close() { a.limiter.Stop() }

// Serve listens on the configured address until ctx is cancelled, then
// drains in-flight requests within the shutdown timeout.
func (a *App) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         net.JoinHostPort(a.cfg.Server.Host, strconv.Itoa(a.cfg.Server.Port)),
		Handler:      a.handler,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(a.log.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		a.log.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Run is the application entry point. It blocks until ctx is cancelled or
// the server fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		applied, err := postgres.Migrate(ctx, pool)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", applied))
	}

	a := New(cfg, logger, pool)
	defer a.Close()

	if err := a.Serve(ctx); err != nil {
		logger.Error("server stopped", slog.String("error", err.Error()))
		return err
	}

	logger.Info("server stopped")
	return nil
}
