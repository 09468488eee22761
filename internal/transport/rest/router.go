package rest

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/internal/transport/middleware"
)

// RouterDeps bundles everything NewRouter wires together. Metrics and
// RateLimiter are optional.
type RouterDeps struct {
	Logger      *slog.Logger
	Auth        authService
	Users       userService
	Movies      movieService
	Health      *HealthHandler
	Tokens      middleware.TokenValidator
	RateLimiter *middleware.RateLimiter
	Metrics     *middleware.Metrics
	CORS        config.CORSConfig
	RateLimit   config.RateLimitConfig
	MaxBody     int64
}

// NewRouter builds the HTTP handler for the whole API.
func NewRouter(deps RouterDeps) http.Handler {
	authH := NewAuthHandler(deps.Auth, deps.Logger)
	userH := NewUserHandler(deps.Users, deps.Logger)
	movieH := NewMovieHandler(deps.Movies, deps.Logger)

	var metricsMW, limitMW middleware.Middleware
	if deps.Metrics != nil {
		metricsMW = deps.Metrics.Middleware
	}
	if deps.RateLimiter != nil && deps.RateLimit.AuthPerMinute > 0 {
		limitMW = deps.RateLimiter.Limit(deps.RateLimit.AuthPerMinute)
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.Chain(
		middleware.RequestID(),
		middleware.CORS(deps.CORS),
		middleware.Auth(deps.Tokens),
		middleware.Logger(deps.Logger),
		metricsMW,
		middleware.Recovery(deps.Logger),
		middleware.MaxBodySize(deps.MaxBody),
	))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/", deps.Health.Root)
	r.Get("/live", deps.Health.Live)
	r.Get("/ready", deps.Health.Ready)
	r.Get("/api/health", deps.Health.Health)
	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())
	}

	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(middleware.Chain(limitMW))
			r.Post("/register", authH.Register)
			r.Post("/login", authH.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireUser)
			r.Get("/profile", userH.Profile)
			r.Put("/profile", userH.UpdateProfile)
			r.Delete("/account", userH.DeleteAccount)
			r.Get("/activity", userH.Activity)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin)
			r.Get("/users", userH.ListUsers)
			r.Put("/users/{id}/role", userH.SetRole)
		})
	})

	r.Route("/api/movies", func(r chi.Router) {
		r.Use(middleware.RequireUser)

		r.Get("/", movieH.List)
		r.Post("/", movieH.Create)
		r.Get("/stats", movieH.Stats)
		r.Get("/years", movieH.Years)
		r.Get("/rating-ranges", movieH.RatingRanges)

		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", movieH.Get)
			r.Put("/", movieH.Update)
			r.Delete("/", movieH.Delete)
			r.Post("/favorite", movieH.ToggleFavorite)
			r.Post("/completed", movieH.ToggleCompleted)
			r.Put("/progress", movieH.UpdateProgress)
			r.Get("/history", movieH.History)
		})
	})

	return r
}
