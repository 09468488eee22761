package filter

import (
	"strconv"
	"strings"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// BuildSearch returns a case-insensitive substring matcher over title, genre,
// comment and year. A blank query matches everything.
func BuildSearch(query string) Predicate {
	if strings.TrimSpace(query) == "" {
		return All
	}
	// Only the emptiness check trims; "dune " does not match "Dune".
	q := strings.ToLower(query)

	return func(m *domain.Movie) bool {
		return strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Genre), q) ||
			strings.Contains(strings.ToLower(m.CommentText()), q) ||
			strings.Contains(strconv.Itoa(m.Year), q)
	}
}
