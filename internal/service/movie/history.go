package movie

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// HistoryLimit caps the number of audit entries History returns.
const HistoryLimit = 50

// History returns the change log of one of the caller's movies, newest first.
func (s *Service) History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error) {
	m, err := s.owned(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("movie.History: %w", err)
	}

	records, err := s.audit.GetByEntity(ctx, domain.EntityTypeMovie, m.ID, HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("movie.History: %w", err)
	}
	return records, nil
}

// movieChanges lists the user-editable fields that differ between before and
// after, keyed by their API names. Against a zero before it describes a new movie.
func movieChanges(before, after domain.Movie) map[string]any {
	changes := make(map[string]any)
	add := func(field string, from, to any, differ bool) {
		if differ {
			changes[field] = domain.FieldChange(from, to)
		}
	}

	add("title", before.Title, after.Title, before.Title != after.Title)
	add("genre", before.Genre, after.Genre, before.Genre != after.Genre)
	add("year", before.Year, after.Year, before.Year != after.Year)
	add("duration", deref(before.Duration), deref(after.Duration), !equalPtr(before.Duration, after.Duration))
	add("rating", before.Rating, after.Rating, before.Rating != after.Rating)
	add("comment", deref(before.Comment), deref(after.Comment), !equalPtr(before.Comment, after.Comment))
	add("poster", deref(before.Poster), deref(after.Poster), !equalPtr(before.Poster, after.Poster))
	add("isFavorite", before.IsFavorite, after.IsFavorite, before.IsFavorite != after.IsFavorite)
	add("isCompleted", before.IsCompleted, after.IsCompleted, before.IsCompleted != after.IsCompleted)
	add("watchProgress", before.WatchProgress, after.WatchProgress, before.WatchProgress != after.WatchProgress)

	return changes
}

func deref[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func equalPtr[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
