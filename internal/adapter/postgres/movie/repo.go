// Package movie implements the Movie repository using PostgreSQL.
package movie

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

const table = "movies"

var columns = []string{
	"id", "owner_id", "title", "genre", "year", "duration", "rating",
	"comment", "poster", "is_favorite", "is_completed", "watch_progress",
	"created_at", "updated_at",
}

// Repo provides movie persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new movie repository. db is usually a *pgxpool.Pool; a
// transaction stored in the context takes precedence.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type movieRow struct {
	ID            uuid.UUID `db:"id"`
	OwnerID       uuid.UUID `db:"owner_id"`
	Title         string    `db:"title"`
	Genre         string    `db:"genre"`
	Year          int       `db:"year"`
	Duration      *int      `db:"duration"`
	Rating        float64   `db:"rating"`
	Comment       *string   `db:"comment"`
	Poster        *string   `db:"poster"`
	IsFavorite    bool      `db:"is_favorite"`
	IsCompleted   bool      `db:"is_completed"`
	WatchProgress float64   `db:"watch_progress"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (r movieRow) toDomain() domain.Movie {
	return domain.Movie{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		Title:         r.Title,
		Genre:         r.Genre,
		Year:          r.Year,
		Duration:      r.Duration,
		Rating:        r.Rating,
		Comment:       r.Comment,
		Poster:        r.Poster,
		IsFavorite:    r.IsFavorite,
		IsCompleted:   r.IsCompleted,
		WatchProgress: r.WatchProgress,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

// GetByID returns a movie by primary key regardless of owner.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Movie, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get movie: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "movie", id)
	}

	m := row.toDomain()
	return &m, nil
}

// ListByOwner returns the owner's movies, newest record first. The result is
// never nil.
func (r *Repo) ListByOwner(ctx context.Context, ownerID uuid.UUID, opts domain.MovieListOptions) ([]domain.Movie, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("created_at DESC", "id")

	if opts.IsFavorite != nil {
		q = q.Where(squirrel.Eq{"is_favorite": *opts.IsFavorite})
	}
	if opts.IsCompleted != nil {
		q = q.Where(squirrel.Eq{"is_completed": *opts.IsCompleted})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list movies: %w", err)
	}

	var rows []movieRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "movies of user", ownerID)
	}

	movies := make([]domain.Movie, 0, len(rows))
	for _, row := range rows {
		movies = append(movies, row.toDomain())
	}
	return movies, nil
}

// Create inserts a new movie and returns the persisted row.
func (r *Repo) Create(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(
			m.ID, m.OwnerID, m.Title, m.Genre, m.Year, m.Duration, m.Rating,
			m.Comment, m.Poster, m.IsFavorite, m.IsCompleted, m.WatchProgress,
			m.CreatedAt, m.UpdatedAt,
		).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert movie: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "movie", m.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update overwrites the mutable fields of an owned movie.
func (r *Repo) Update(ctx context.Context, m *domain.Movie) (*domain.Movie, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		SetMap(map[string]any{
			"title":          m.Title,
			"genre":          m.Genre,
			"year":           m.Year,
			"duration":       m.Duration,
			"rating":         m.Rating,
			"comment":        m.Comment,
			"poster":         m.Poster,
			"is_favorite":    m.IsFavorite,
			"is_completed":   m.IsCompleted,
			"watch_progress": m.WatchProgress,
			"updated_at":     m.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": m.ID, "owner_id": m.OwnerID}).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update movie: %w", err)
	}

	var row movieRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "movie", m.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes a movie. Returns ErrNotFound if no row was deleted.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete movie: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "movie", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("movie %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// AvailableYears returns the distinct release years in the owner's list, newest first.
func (r *Repo) AvailableYears(ctx context.Context, ownerID uuid.UUID) ([]int, error) {
	sql, args, err := postgres.Builder.
		Select("DISTINCT year").
		From(table).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("year DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build available years: %w", err)
	}

	years := []int{}
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &years, sql, args...); err != nil {
		return nil, postgres.MapError(err, "years of user", ownerID)
	}
	if years == nil {
		years = []int{}
	}
	return years, nil
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}
