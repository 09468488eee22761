package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// PostgreSQL error codes handled by MapError.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeCheckViolation       = "23514"
	codeNotNullViolation     = "23502"
	codeInvalidText          = "22P02"
	codeNumericOutOfRange    = "22003"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// apiFields renames columns whose API name differs from the column name.
var apiFields = map[string]string{
	"watch_progress": "watchProgress",
	"is_favorite":    "isFavorite",
	"is_completed":   "isCompleted",
	"avatar_url":     "avatarUrl",
	"entity_type":    "entityType",
}

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row in the message (an id, an email); it may be nil. Check and not-null
// violations become a *domain.ValidationError naming the offending field.
// Context errors pass through unmapped.
func MapError(err error, entity string, key any) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %v: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %v: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		var mapped error
		switch pgErr.Code {
		case codeUniqueViolation:
			mapped = domain.ErrAlreadyExists
		case codeForeignKeyViolation:
			mapped = domain.ErrNotFound
		case codeCheckViolation:
			mapped = domain.NewValidationError(checkField(pgErr), "out of range")
		case codeNotNullViolation:
			mapped = domain.NewValidationError(apiField(pgErr.ColumnName), "required")
		case codeInvalidText, codeNumericOutOfRange:
			mapped = domain.ErrInvalidInput
		case codeSerializationFailure, codeDeadlockDetected:
			mapped = domain.ErrConflict
		}
		if mapped != nil {
			return fmt.Errorf("%s %v: %w", entity, key, mapped)
		}
	}

	return fmt.Errorf("%s %v: %w", entity, key, err)
}

// checkField recovers the column from PostgreSQL's default check constraint
// name "<table>_<column>_check".
func checkField(pgErr *pgconn.PgError) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, "_check")
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	return apiField(name)
}

func apiField(column string) string {
	if column == "" {
		return "unknown"
	}
	if f, ok := apiFields[column]; ok {
		return f
	}
	return column
}
