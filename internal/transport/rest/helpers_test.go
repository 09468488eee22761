package rest

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/internal/transport/middleware"
)

//go:generate moq -out auth_service_mock_test.go -pkg rest . authService
//go:generate moq -out user_service_mock_test.go -pkg rest . userService
//go:generate moq -out movie_service_mock_test.go -pkg rest . movieService

const (
	userToken  = "user-token"
	adminToken = "admin-token"
)

var (
	testUserID  = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	testAdminID = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	fixedTime   = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
)

// staticTokens accepts exactly two bearer tokens.
type staticTokens struct{}

func (staticTokens) ValidateToken(_ context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	switch token {
	case userToken:
		return testUserID, domain.UserRoleUser, nil
	case adminToken:
		return testAdminID, domain.UserRoleAdmin, nil
	}
	return uuid.Nil, "", domain.ErrUnauthorized
}

type testEnv struct {
	router  http.Handler
	auth    *authServiceMock
	users   *userServiceMock
	movies  *movieServiceMock
	limiter *middleware.RateLimiter
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		auth:    &authServiceMock{},
		users:   &userServiceMock{},
		movies:  &movieServiceMock{},
		limiter: middleware.NewRateLimiter(time.Minute),
	}
	t.Cleanup(env.limiter.Stop)

	env.router = NewRouter(RouterDeps{
		Logger:      testLogger(),
		Auth:        env.auth,
		Users:       env.users,
		Movies:      env.movies,
		Health:      NewHealthHandler(&dbPingerStub{}, "test"),
		Tokens:      staticTokens{},
		RateLimiter: env.limiter,
		Metrics:     middleware.NewMetrics(prometheus.NewRegistry()),
		CORS:        config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST", AllowedHeaders: "Authorization"},
		RateLimit:   config.RateLimitConfig{AuthPerMinute: 3},
		MaxBody:     1024,
	})
	return env
}

func (e *testEnv) do(method, path, token, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

type testEnvelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []fieldError    `json:"errors"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) testEnvelope {
	t.Helper()
	var env testEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &out))
	return out
}

var errBoom = errors.New("boom")

func ptr[T any](v T) *T { return &v }

func sampleMovie(owner uuid.UUID) *domain.Movie {
	return &domain.Movie{
		ID:            uuid.MustParse("33333333-3333-3333-3333-333333333333"),
		OwnerID:       owner,
		Title:         "Dune",
		Genre:         "Sci-Fi",
		Year:          2021,
		Duration:      ptr(155),
		Rating:        4.5,
		WatchProgress: 0.5,
		CreatedAt:     fixedTime,
		UpdatedAt:     fixedTime,
	}
}

func sampleUser(id uuid.UUID, role domain.UserRole) *domain.User {
	return &domain.User{
		ID:        id,
		Name:      "Ann",
		Email:     "ann@example.com",
		Role:      role,
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}
}
