package rest

import (
	"context"
	"net/http"
	"time"
)

// dbPinger is satisfied by *pgxpool.Pool.
type dbPinger interface {
	Ping(ctx context.Context) error
}

const pingTimeout = 3 * time.Second

// HealthHandler serves the banner and probe endpoints.
type HealthHandler struct {
	db        dbPinger
	version   string
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(db dbPinger, version string) *HealthHandler {
	return &HealthHandler{db: db, version: version, startedAt: time.Now()}
}

// HealthResponse is the body of /health, /live and /ready.
type HealthResponse struct {
	Status    string          `json:"status"`
	Version   string          `json:"version,omitempty"`
	Uptime    string          `json:"uptime,omitempty"`
	Database  *DatabaseStatus `json:"database,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// DatabaseStatus reports the result of a database ping.
type DatabaseStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

type bannerResponse struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Root handles GET /.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeDataMessage(w, http.StatusOK, "MovieMood API is running", bannerResponse{
		Name:    "moviemood",
		Version: h.version,
		Endpoints: map[string]string{
			"auth":   "/api/auth",
			"movies": "/api/movies",
			"health": "/api/health",
		},
	})
}

// Live always reports ok.
func (h *HealthHandler) Live(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: time.Now()})
}

// Ready returns 503 when the database does not answer a ping.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	db := h.ping(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}
	writeJSON(w, code, HealthResponse{Status: status, Timestamp: time.Now()})
}

// Health reports version, uptime and database latency.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	db := h.ping(r.Context())
	status, code := "ok", http.StatusOK
	if db.Status != "ok" {
		status, code = "down", http.StatusServiceUnavailable
	}

	writeJSON(w, code, HealthResponse{
		Status:    status,
		Version:   h.version,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Database:  &db,
		Timestamp: time.Now(),
	})
}

func (h *HealthHandler) ping(ctx context.Context) DatabaseStatus {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		return DatabaseStatus{Status: "down"}
	}
	return DatabaseStatus{Status: "ok", Latency: time.Since(start).String()}
}
