package filter

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// CompareFunc orders two movies: negative when a sorts first, positive when b does.
type CompareFunc func(a, b *domain.Movie) int

// Comparator maps a sort key to an ordering. Unknown keys, including the empty
// key, yield a comparator that treats every pair as equal, so a stable sort
// leaves the input order untouched.
//
// Title comparators hold a collator and must not be shared between goroutines.
func Comparator(key domain.SortKey) CompareFunc {
	switch key {
	case domain.SortNewest:
		return func(a, b *domain.Movie) int { return cmp.Compare(b.Year, a.Year) }
	case domain.SortOldest:
		return func(a, b *domain.Movie) int { return cmp.Compare(a.Year, b.Year) }
	case domain.SortHighestRated:
		return func(a, b *domain.Movie) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortLowestRated:
		return func(a, b *domain.Movie) int { return cmp.Compare(a.Rating, b.Rating) }
	case domain.SortTitleAsc:
		c := newTitleCollator()
		return func(a, b *domain.Movie) int { return c.CompareString(a.Title, b.Title) }
	case domain.SortTitleDesc:
		c := newTitleCollator()
		return func(a, b *domain.Movie) int { return c.CompareString(b.Title, a.Title) }
	default:
		return func(_, _ *domain.Movie) int { return 0 }
	}
}

// Sort returns a stably sorted copy of movies.
func Sort(movies []domain.Movie, key domain.SortKey) []domain.Movie {
	out := slices.Clone(movies)
	if out == nil {
		out = []domain.Movie{}
	}
	compare := Comparator(key)
	slices.SortStableFunc(out, func(a, b domain.Movie) int {
		return compare(&a, &b)
	})
	return out
}

// newTitleCollator uses the root locale so accented and mixed-case titles
// interleave the way readers expect ("école" next to "Ecole", not after "Z").
func newTitleCollator() *collate.Collator {
	return collate.New(language.Und)
}
