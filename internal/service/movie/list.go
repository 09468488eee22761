package movie

import (
	"context"
	"fmt"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/internal/service/movie/filter"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// ListInput holds the query parameters of a watchlist listing.
// RatingLabels name configured rating buckets.
type ListInput struct {
	Search       string
	Genres       []string
	Years        []string
	RatingLabels []string
	Sort         string
	IsFavorite   *bool
	IsCompleted  *bool
}

// ListMovies returns the caller's movies matching the search text and filter,
// in the requested order. Movies with equal sort keys keep the newest-first
// storage order.
func (s *Service) ListMovies(ctx context.Context, input ListInput) ([]domain.Movie, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	spec, err := s.buildFilter(input)
	if err != nil {
		return nil, err
	}

	movies, err := s.movies.ListByOwner(ctx, userID, domain.MovieListOptions{
		IsFavorite:  input.IsFavorite,
		IsCompleted: input.IsCompleted,
	})
	if err != nil {
		return nil, fmt.Errorf("movie.ListMovies: %w", err)
	}

	out, err := filter.Apply(movies, input.Search, spec)
	if err != nil {
		return nil, fmt.Errorf("movie.ListMovies: %w", err)
	}
	return out, nil
}

// buildFilter resolves rating labels against the configured buckets.
func (s *Service) buildFilter(input ListInput) (domain.MovieFilter, error) {
	spec := domain.MovieFilter{
		Genres: input.Genres,
		Years:  input.Years,
		Sort:   domain.SortKey(input.Sort),
	}

	var v domain.ValidationError
	for _, label := range input.RatingLabels {
		r, ok := domain.FindRatingRange(s.cfg.RatingBuckets, label)
		if !ok {
			v.Add("rating", fmt.Sprintf("unknown rating range %q", label))
			continue
		}
		spec.RatingRanges = append(spec.RatingRanges, r)
	}
	if err := v.Err(); err != nil {
		return domain.MovieFilter{}, err
	}
	return spec, nil
}
