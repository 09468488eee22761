// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	postgres "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "name", "email", "password_hash", "avatar_url", "role", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Queries
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, id)
}

// GetByEmail returns a user by email address, case-insensitively.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getOne(ctx, squirrel.Expr("lower(email) = lower(?)", email), email)
}

func (r *Repo) getOne(ctx context.Context, where squirrel.Sqlizer, key any) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	u := row.toDomain()
	return &u, nil
}

// ListWithMovieCounts returns a page of users, newest first, each annotated
// with the size of their watchlist.
func (r *Repo) ListWithMovieCounts(ctx context.Context, limit, offset int) ([]domain.UserWithMovieCount, error) {
	cols := make([]string, 0, len(columns)+1)
	for _, c := range columns {
		cols = append(cols, "u."+c)
	}
	cols = append(cols, "COUNT(m.id) AS movie_count")

	sql, args, err := postgres.Builder.
		Select(cols...).
		From(table + " u").
		LeftJoin("movies m ON m.owner_id = u.id").
		GroupBy("u.id").
		OrderBy("u.created_at DESC", "u.id").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list users: %w", err)
	}

	var rows []userCountRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "users", nil)
	}

	out := make([]domain.UserWithMovieCount, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.UserWithMovieCount{
			User:       row.userRow.toDomain(),
			MovieCount: row.MovieCount,
		})
	}
	return out, nil
}

// CountUsers returns the total number of users.
func (r *Repo) CountUsers(ctx context.Context) (int, error) {
	sql, args, err := postgres.Builder.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count users: %w", err)
	}

	var n int
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &n, sql, args...); err != nil {
		return 0, postgres.MapError(err, "users", nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Commands
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(u.ID, u.Name, u.Email, u.PasswordHash, ptrStringToPgText(u.AvatarURL), u.Role.String(), u.CreatedAt, u.UpdatedAt).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	out := row.toDomain()
	return &out, nil
}

// Update applies changes to the given user and bumps updated_at.
// An empty AvatarURL clears the avatar.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, c domain.UserChanges, now time.Time) (*domain.User, error) {
	q := postgres.Builder.Update(table).Set("updated_at", now)
	if c.Name != nil {
		q = q.Set("name", *c.Name)
	}
	if c.Email != nil {
		q = q.Set("email", *c.Email)
	}
	if c.PasswordHash != nil {
		q = q.Set("password_hash", *c.PasswordHash)
	}
	if c.AvatarURL != nil {
		q = q.Set("avatar_url", emptyToNull(*c.AvatarURL))
	}

	sql, args, err := q.Where(squirrel.Eq{"id": id}).Suffix(returning()).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update user: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	out := row.toDomain()
	return &out, nil
}

// UpdateRole sets the role of the given user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	return r.setRole(ctx, squirrel.Eq{"id": id}, id, role)
}

// PromoteByEmail grants the admin role to the user with the given email.
func (r *Repo) PromoteByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.setRole(ctx, squirrel.Expr("lower(email) = lower(?)", email), email, domain.UserRoleAdmin)
}

func (r *Repo) setRole(ctx context.Context, where squirrel.Sqlizer, key any, role domain.UserRole) (*domain.User, error) {
	sql, args, err := postgres.Builder.
		Update(table).
		Set("role", role.String()).
		Set("updated_at", squirrel.Expr("now()")).
		Where(where).
		Suffix(returning()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update role: %w", err)
	}

	var row userRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return nil, postgres.MapError(err, "user", key)
	}

	out := row.toDomain()
	return &out, nil
}

// Delete removes the user. Their movies go with them (ON DELETE CASCADE).
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	sql, args, err := postgres.Builder.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete user: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

type userRow struct {
	ID           uuid.UUID   `db:"id"`
	Name         string      `db:"name"`
	Email        string      `db:"email"`
	PasswordHash string      `db:"password_hash"`
	AvatarURL    pgtype.Text `db:"avatar_url"`
	Role         string      `db:"role"`
	CreatedAt    time.Time   `db:"created_at"`
	UpdatedAt    time.Time   `db:"updated_at"`
}

type userCountRow struct {
	userRow
	MovieCount int `db:"movie_count"`
}

func (row userRow) toDomain() domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		AvatarURL:    pgTextToPtr(row.AvatarURL),
		Role:         domain.UserRole(row.Role),
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func returning() string {
	return "RETURNING " + strings.Join(columns, ", ")
}

// pgTextToPtr returns a *string (nil when NULL).
func pgTextToPtr(t pgtype.Text) *string {
	if t.Valid {
		return &t.String
	}
	return nil
}

// ptrStringToPgText converts a *string to pgtype.Text (nil → NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func emptyToNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
