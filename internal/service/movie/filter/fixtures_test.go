package filter

import (
	"math/rand/v2"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

func ptr[T any](v T) *T { return &v }

func movie(title, genre string, year int, rating float64) domain.Movie {
	return domain.Movie{
		ID:     uuid.New(),
		Title:  title,
		Genre:  genre,
		Year:   year,
		Rating: rating,
	}
}

func titles(movies []domain.Movie) []string {
	out := make([]string, len(movies))
	for i, m := range movies {
		out[i] = m.Title
	}
	return out
}

func ids(movies []domain.Movie) []uuid.UUID {
	out := make([]uuid.UUID, len(movies))
	for i, m := range movies {
		out[i] = m.ID
	}
	return out
}

func duneAndGhosted() []domain.Movie {
	return []domain.Movie{
		movie("Dune", "Sci-Fi", 2021, 4.5),
		movie("Ghosted", "Action", 2023, 2.0),
	}
}

var (
	sampleTitles = []string{"Alien", "Heat", "Amélie", "Zodiac", "arrival", "Élite", "Up", "Her", "Oldboy"}
	sampleGenres = []string{"Drama", "Action", "Sci-Fi", "drama", "Comedy"}
)

// randomMovies builds a deterministic pseudo-random watchlist.
func randomMovies(seed uint64, n int) []domain.Movie {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]domain.Movie, n)
	for i := range out {
		m := movie(
			sampleTitles[r.IntN(len(sampleTitles))],
			sampleGenres[r.IntN(len(sampleGenres))],
			1990+r.IntN(10),
			float64(r.IntN(11))/2,
		)
		if r.IntN(3) == 0 {
			m.Comment = ptr("seen with " + sampleTitles[r.IntN(len(sampleTitles))])
		}
		out[i] = m
	}
	return out
}
