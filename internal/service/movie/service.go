package movie

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// movieRepo defines the movie repository interface needed by movie service.
type movieRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, opts domain.MovieListOptions) ([]domain.Movie, error)
	Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	Update(ctx context.Context, m *domain.Movie) (*domain.Movie, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AvailableYears(ctx context.Context, ownerID uuid.UUID) ([]int, error)
}

type auditRepo interface {
	Log(ctx context.Context, rec domain.AuditRecord) error
	GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements watchlist operations for the authenticated user.
type Service struct {
	log      *slog.Logger
	movies   movieRepo
	audit    auditRepo
	tx       txManager
	cfg      config.MoviesConfig
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new movie service instance. cfg must already be
// validated so that its bucket lists are parsed.
func NewService(
	logger *slog.Logger,
	movies movieRepo,
	audit auditRepo,
	tx txManager,
	cfg config.MoviesConfig,
) *Service {
	s := &Service{
		log:    logger.With("service", "movie"),
		movies: movies,
		audit:  audit,
		tx:     tx,
		cfg:    cfg,
		now:    time.Now,
	}
	s.validate = newValidator(s)
	return s
}

// RatingRanges returns the configured filter buckets, in configured order.
func (s *Service) RatingRanges() []domain.RatingRange {
	out := make([]domain.RatingRange, len(s.cfg.RatingBuckets))
	copy(out, s.cfg.RatingBuckets)
	return out
}

// AvailableYears returns the distinct release years in the caller's list, newest first.
func (s *Service) AvailableYears(ctx context.Context) ([]int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	years, err := s.movies.AvailableYears(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("movie.AvailableYears: %w", err)
	}
	return years, nil
}

// owned loads a movie and checks that it belongs to the caller.
func (s *Service) owned(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.movies.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsOwnedBy(userID) {
		return nil, domain.ErrForbidden
	}
	return m, nil
}
