package movie

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/internal/service/movie/filter"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// Stats summarises the caller's watchlist.
func (s *Service) Stats(ctx context.Context) (*domain.MovieStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	movies, err := s.movies.ListByOwner(ctx, userID, domain.MovieListOptions{})
	if err != nil {
		return nil, fmt.Errorf("movie.Stats: %w", err)
	}

	return computeStats(movies, s.cfg.StatsBuckets), nil
}

// computeStats derives counts and distributions from a full watchlist.
// The average covers rated movies only (rating > 0).
func computeStats(movies []domain.Movie, buckets []domain.RatingRange) *domain.MovieStats {
	st := &domain.MovieStats{
		TotalMovies:        len(movies),
		GenreDistribution:  []domain.GenreCount{},
		YearDistribution:   []domain.YearCount{},
		RatingDistribution: make([]domain.RatingBucketCount, 0, len(buckets)),
	}

	genres := make(map[string]int)
	years := make(map[int]int)
	var ratedSum float64
	var rated int

	for i := range movies {
		m := &movies[i]
		if m.IsCompleted {
			st.CompletedMovies++
		}
		if m.IsFavorite {
			st.FavoriteMovies++
		}
		if m.Rating > 0 {
			ratedSum += m.Rating
			rated++
		}
		genres[m.Genre]++
		years[m.Year]++
	}
	if rated > 0 {
		st.AverageRating = ratedSum / float64(rated)
	}

	for g, n := range genres {
		st.GenreDistribution = append(st.GenreDistribution, domain.GenreCount{Genre: g, Count: n})
	}
	slices.SortFunc(st.GenreDistribution, func(a, b domain.GenreCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Genre, b.Genre)
	})

	for y, n := range years {
		st.YearDistribution = append(st.YearDistribution, domain.YearCount{Year: y, Count: n})
	}
	slices.SortFunc(st.YearDistribution, func(a, b domain.YearCount) int {
		return cmp.Compare(b.Year, a.Year)
	})

	for _, b := range buckets {
		p := filter.BuildPredicate(domain.MovieFilter{RatingRanges: []domain.RatingRange{b}})
		st.RatingDistribution = append(st.RatingDistribution, domain.RatingBucketCount{
			Label: b.Label,
			Count: filter.Count(movies, p),
		})
	}

	return st
}
