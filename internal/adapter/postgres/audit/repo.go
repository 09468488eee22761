// Package audit implements the append-only audit log using PostgreSQL.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/moviemood-backend/internal/adapter/postgres"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

const table = "audit_log"

var columns = []string{"id", "user_id", "entity_type", "entity_id", "action", "changes", "created_at"}

// Repo provides audit log persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new audit repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type auditRow struct {
	ID         uuid.UUID  `db:"id"`
	UserID     uuid.UUID  `db:"user_id"`
	EntityType string     `db:"entity_type"`
	EntityID   *uuid.UUID `db:"entity_id"`
	Action     string     `db:"action"`
	Changes    []byte     `db:"changes"`
	CreatedAt  time.Time  `db:"created_at"`
}

func (r auditRow) toDomain() (domain.AuditRecord, error) {
	rec := domain.AuditRecord{
		ID:         r.ID,
		UserID:     r.UserID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		Action:     domain.AuditAction(r.Action),
		CreatedAt:  r.CreatedAt,
	}
	if len(r.Changes) > 0 {
		if err := json.Unmarshal(r.Changes, &rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record %s unmarshal changes: %w", r.ID, err)
		}
	}
	return rec, nil
}

// Create inserts a record. A zero ID or CreatedAt is filled in.
func (r *Repo) Create(ctx context.Context, rec domain.AuditRecord) (domain.AuditRecord, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	var changes []byte
	if rec.Changes != nil {
		var err error
		if changes, err = json.Marshal(rec.Changes); err != nil {
			return domain.AuditRecord{}, fmt.Errorf("audit_record marshal changes: %w", err)
		}
	}

	sql, args, err := postgres.Builder.
		Insert(table).
		Columns(columns...).
		Values(rec.ID, rec.UserID, string(rec.EntityType), rec.EntityID, string(rec.Action), changes, rec.CreatedAt).
		Suffix("RETURNING id, user_id, entity_type, entity_id, action, changes, created_at").
		ToSql()
	if err != nil {
		return domain.AuditRecord{}, fmt.Errorf("build insert audit_record: %w", err)
	}

	var row auditRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, sql, args...); err != nil {
		return domain.AuditRecord{}, postgres.MapError(err, "audit_record", rec.ID)
	}
	return row.toDomain()
}

// Log writes a record and discards the stored copy.
func (r *Repo) Log(ctx context.Context, rec domain.AuditRecord) error {
	_, err := r.Create(ctx, rec)
	return err
}

// GetByEntity returns the history of one record, newest first.
func (r *Repo) GetByEntity(ctx context.Context, entityType domain.EntityType, entityID uuid.UUID, limit int) ([]domain.AuditRecord, error) {
	return r.list(ctx, squirrel.Eq{"entity_type": string(entityType), "entity_id": entityID}, limit, 0)
}

// GetByUser returns the records a user authored, newest first.
func (r *Repo) GetByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]domain.AuditRecord, error) {
	return r.list(ctx, squirrel.Eq{"user_id": userID}, limit, offset)
}

// DeleteOlderThan removes entries created before cutoff and reports how many
// were removed.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	sql, args, err := postgres.Builder.
		Delete(table).
		Where(squirrel.Lt{"created_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build prune audit_records: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("prune audit_records: %w", err)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) list(ctx context.Context, where squirrel.Sqlizer, limit, offset int) ([]domain.AuditRecord, error) {
	q := postgres.Builder.
		Select(columns...).
		From(table).
		Where(where).
		OrderBy("created_at DESC", "id")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list audit_records: %w", err)
	}

	var rows []auditRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sql, args...); err != nil {
		return nil, fmt.Errorf("list audit_records: %w", err)
	}

	out := make([]domain.AuditRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
