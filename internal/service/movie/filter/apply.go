package filter

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// Apply runs the query pipeline: search, then filter, then a stable sort by
// spec.Sort (newest when unset). A nil collection is rejected with
// domain.ErrInvalidInput; an empty one yields an empty result.
func Apply(movies []domain.Movie, search string, spec domain.MovieFilter) ([]domain.Movie, error) {
	if movies == nil {
		return nil, fmt.Errorf("filter.Apply: movies: %w", domain.ErrInvalidInput)
	}

	if strings.TrimSpace(search) == "" && spec.IsEmpty() {
		return Sort(movies, spec.SortOrDefault()), nil
	}

	matched := Select(movies, And(BuildSearch(search), BuildPredicate(spec)))
	return Sort(matched, spec.SortOrDefault()), nil
}
