// Package filter composes search, filter and sort over an in-memory watchlist.
// Everything here is pure: inputs are never mutated and every call returns a
// freshly allocated result.
package filter

import (
	"slices"
	"strconv"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// Predicate reports whether a movie passes an inclusion test.
type Predicate func(m *domain.Movie) bool

// All is the identity predicate.
func All(*domain.Movie) bool { return true }

// And returns a predicate that passes when every p passes. And() is All.
func And(ps ...Predicate) Predicate {
	switch len(ps) {
	case 0:
		return All
	case 1:
		return ps[0]
	}
	return func(m *domain.Movie) bool {
		for _, p := range ps {
			if !p(m) {
				return false
			}
		}
		return true
	}
}

// BuildPredicate translates a filter into a predicate. Dimensions are ANDed;
// values inside a dimension are ORed. An empty dimension does not constrain.
// Genre matching is exact and case-sensitive.
func BuildPredicate(spec domain.MovieFilter) Predicate {
	var ps []Predicate

	if len(spec.Genres) > 0 {
		genres := slices.Clone(spec.Genres)
		ps = append(ps, func(m *domain.Movie) bool {
			return slices.Contains(genres, m.Genre)
		})
	}

	if len(spec.Years) > 0 {
		years := slices.Clone(spec.Years)
		ps = append(ps, func(m *domain.Movie) bool {
			return slices.Contains(years, strconv.Itoa(m.Year))
		})
	}

	if len(spec.RatingRanges) > 0 {
		ranges := slices.Clone(spec.RatingRanges)
		ps = append(ps, func(m *domain.Movie) bool {
			return slices.ContainsFunc(ranges, func(r domain.RatingRange) bool {
				return r.Contains(m.Rating)
			})
		})
	}

	return And(ps...)
}

// Select returns the movies that satisfy p, in input order.
func Select(movies []domain.Movie, p Predicate) []domain.Movie {
	out := make([]domain.Movie, 0, len(movies))
	for i := range movies {
		if p(&movies[i]) {
			out = append(out, movies[i])
		}
	}
	return out
}

// Count returns how many movies satisfy p.
func Count(movies []domain.Movie, p Predicate) int {
	n := 0
	for i := range movies {
		if p(&movies[i]) {
			n++
		}
	}
	return n
}
