package domain

import (
	"fmt"
)

// SortKey identifies an ordering of movies.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortOldest       SortKey = "oldest"
	SortHighestRated SortKey = "highest_rated"
	SortLowestRated  SortKey = "lowest_rated"
	SortTitleAsc     SortKey = "title_asc"
	SortTitleDesc    SortKey = "title_desc"
)

// DefaultSortKey is applied when a filter carries no sort key.
const DefaultSortKey = SortNewest

func (k SortKey) String() string { return string(k) }

func (k SortKey) IsValid() bool {
	switch k {
	case SortNewest, SortOldest, SortHighestRated, SortLowestRated, SortTitleAsc, SortTitleDesc:
		return true
	}
	return false
}

// RatingRange is a labelled half-open interval [Min, Max) over ratings.
// A range with Min > Max matches nothing.
type RatingRange struct {
	Label string
	Min   float64
	Max   float64
}

// Contains reports whether rating lies in [Min, Max).
func (r RatingRange) Contains(rating float64) bool {
	return r.Min <= rating && rating < r.Max
}

func (r RatingRange) String() string {
	return fmt.Sprintf("%s [%g, %g)", r.Label, r.Min, r.Max)
}

// MovieFilter is the set of genre/year/rating constraints plus a sort key
// supplied with a single query. Empty dimensions are unconstrained.
type MovieFilter struct {
	Genres       []string
	Years        []string
	RatingRanges []RatingRange
	Sort         SortKey
}

// IsEmpty reports whether the filter places no constraint on any dimension.
// The sort key is not a constraint.
func (f MovieFilter) IsEmpty() bool {
	return len(f.Genres) == 0 && len(f.Years) == 0 && len(f.RatingRanges) == 0
}

// SortOrDefault returns the filter's sort key, or DefaultSortKey when unset.
func (f MovieFilter) SortOrDefault() SortKey {
	if f.Sort == "" {
		return DefaultSortKey
	}
	return f.Sort
}

// FindRatingRange returns the range with the given label.
func FindRatingRange(ranges []RatingRange, label string) (RatingRange, bool) {
	for _, r := range ranges {
		if r.Label == label {
			return r, true
		}
	}
	return RatingRange{}, false
}
