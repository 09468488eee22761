package movie

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// GetMovie returns one of the caller's movies.
func (s *Service) GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	m, err := s.owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie.GetMovie: %w", err)
	}
	return m, nil
}

// CreateMovie adds a movie to the caller's watchlist.
func (s *Service) CreateMovie(ctx context.Context, input CreateMovieInput) (*domain.Movie, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	input.normalize()
	if err := s.check(input); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	m := &domain.Movie{
		ID:         uuid.New(),
		OwnerID:    userID,
		Title:      input.Title,
		Genre:      input.Genre,
		Year:       input.Year,
		Duration:   input.Duration,
		Rating:     input.Rating,
		Comment:    emptyToNil(input.Comment),
		Poster:     emptyToNil(input.Poster),
		IsFavorite: input.IsFavorite,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	m.SetProgress(input.WatchProgress)
	if input.IsCompleted {
		m.SetCompleted(true)
	}

	var created *domain.Movie
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.movies.Create(txCtx, m)
		if err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     userID,
			EntityType: domain.EntityTypeMovie,
			EntityID:   &created.ID,
			Action:     domain.AuditActionCreate,
			Changes:    movieChanges(domain.Movie{}, *created),
		})
	})
	if err != nil {
		return nil, fmt.Errorf("movie.CreateMovie: %w", err)
	}

	s.log.InfoContext(ctx, "movie created",
		slog.String("user_id", userID.String()),
		slog.String("movie_id", created.ID.String()),
	)

	return created, nil
}

// UpdateMovie applies a partial update to one of the caller's movies.
func (s *Service) UpdateMovie(ctx context.Context, id uuid.UUID, input UpdateMovieInput) (*domain.Movie, error) {
	input.normalize()
	if err := s.check(input); err != nil {
		return nil, err
	}

	m, err := s.owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie.UpdateMovie: %w", err)
	}
	before := *m

	if input.Title != nil {
		m.Title = *input.Title
	}
	if input.Genre != nil {
		m.Genre = *input.Genre
	}
	if input.Year != nil {
		m.Year = *input.Year
	}
	if input.Duration != nil {
		m.Duration = input.Duration
	}
	if input.Rating != nil {
		m.Rating = *input.Rating
	}
	if input.Comment != nil {
		m.Comment = emptyToNil(input.Comment)
	}
	if input.Poster != nil {
		m.Poster = emptyToNil(input.Poster)
	}
	if input.IsFavorite != nil {
		m.IsFavorite = *input.IsFavorite
	}
	if input.WatchProgress != nil {
		m.SetProgress(*input.WatchProgress)
	}
	if input.IsCompleted != nil {
		m.SetCompleted(*input.IsCompleted)
	}

	return s.save(ctx, before, m, "movie.UpdateMovie")
}

// DeleteMovie removes one of the caller's movies.
func (s *Service) DeleteMovie(ctx context.Context, id uuid.UUID) error {
	m, err := s.owned(ctx, id)
	if err != nil {
		return fmt.Errorf("movie.DeleteMovie: %w", err)
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.movies.Delete(txCtx, m.ID); err != nil {
			return err
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     m.OwnerID,
			EntityType: domain.EntityTypeMovie,
			EntityID:   &m.ID,
			Action:     domain.AuditActionDelete,
			Changes: map[string]any{
				"title": map[string]any{"old": m.Title},
			},
		})
	})
	if err != nil {
		return fmt.Errorf("movie.DeleteMovie: %w", err)
	}

	s.log.InfoContext(ctx, "movie deleted",
		slog.String("user_id", m.OwnerID.String()),
		slog.String("movie_id", m.ID.String()),
	)
	return nil
}

// ToggleFavorite flips the favorite flag.
func (s *Service) ToggleFavorite(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	m, err := s.owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie.ToggleFavorite: %w", err)
	}
	before := *m
	m.IsFavorite = !m.IsFavorite
	return s.save(ctx, before, m, "movie.ToggleFavorite")
}

// ToggleCompleted flips the completed flag. Completing a movie fills its progress.
func (s *Service) ToggleCompleted(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	m, err := s.owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie.ToggleCompleted: %w", err)
	}
	before := *m
	m.SetCompleted(!m.IsCompleted)
	return s.save(ctx, before, m, "movie.ToggleCompleted")
}

// UpdateProgress records watch progress. Values outside [0, 1] are clamped.
func (s *Service) UpdateProgress(ctx context.Context, id uuid.UUID, progress float64) (*domain.Movie, error) {
	if math.IsNaN(progress) {
		return nil, domain.NewValidationError("watchProgress", "must be a number")
	}

	m, err := s.owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie.UpdateProgress: %w", err)
	}
	before := *m
	m.SetProgress(progress)
	return s.save(ctx, before, m, "movie.UpdateProgress")
}

// save persists m and records the fields that differ from before. An update
// that changes nothing is stored without an audit entry.
func (s *Service) save(ctx context.Context, before domain.Movie, m *domain.Movie, op string) (*domain.Movie, error) {
	m.UpdatedAt = s.now().UTC()
	changes := movieChanges(before, *m)

	var updated *domain.Movie
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		updated, err = s.movies.Update(txCtx, m)
		if err != nil {
			return err
		}
		if len(changes) == 0 {
			return nil
		}
		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     m.OwnerID,
			EntityType: domain.EntityTypeMovie,
			EntityID:   &m.ID,
			Action:     domain.AuditActionUpdate,
			Changes:    changes,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return updated, nil
}

func emptyToNil(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
