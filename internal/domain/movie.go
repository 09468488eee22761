package domain

import (
	"time"

	"github.com/google/uuid"
)

// Movie is a single watchlist record owned by a user.
type Movie struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Title         string
	Genre         string
	Year          int
	Duration      *int // minutes
	Rating        float64
	Comment       *string
	Poster        *string
	IsFavorite    bool
	IsCompleted   bool
	WatchProgress float64 // 0..1
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// CommentText returns the comment or an empty string when it is absent.
func (m *Movie) CommentText() string {
	if m.Comment == nil {
		return ""
	}
	return *m.Comment
}

// IsOwnedBy reports whether the movie belongs to the given user.
func (m *Movie) IsOwnedBy(userID uuid.UUID) bool {
	return m.OwnerID == userID
}

// CompletedProgressThreshold is the watch progress at which a movie counts as finished.
const CompletedProgressThreshold = 0.99

// SetProgress clamps p to [0, 1] and marks the movie completed once it reaches
// CompletedProgressThreshold.
func (m *Movie) SetProgress(p float64) {
	switch {
	case p < 0:
		p = 0
	case p > 1:
		p = 1
	}
	m.WatchProgress = p
	if p >= CompletedProgressThreshold {
		m.IsCompleted = true
		m.WatchProgress = 1
	}
}

// SetCompleted toggles the completed flag. Completing a movie also fills its progress.
func (m *Movie) SetCompleted(completed bool) {
	m.IsCompleted = completed
	if completed {
		m.WatchProgress = 1
	}
}

// MovieListOptions narrows the storage fetch before the in-memory query runs.
// Nil fields are unconstrained.
type MovieListOptions struct {
	IsFavorite  *bool
	IsCompleted *bool
}

// MovieStats summarises a user's watchlist.
type MovieStats struct {
	TotalMovies        int
	CompletedMovies    int
	FavoriteMovies     int
	AverageRating      float64
	GenreDistribution  []GenreCount
	YearDistribution   []YearCount
	RatingDistribution []RatingBucketCount
}

// GenreCount is the number of movies with a given genre.
type GenreCount struct {
	Genre string
	Count int
}

// YearCount is the number of movies released in a given year.
type YearCount struct {
	Year  int
	Count int
}

// RatingBucketCount is the number of movies whose rating falls in a bucket.
type RatingBucketCount struct {
	Label string
	Count int
}
