package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditRecord is one entry of the append-only change log. UserID is the
// actor; EntityID is nil for actions that do not target a single record.
type AuditRecord struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	EntityType EntityType
	EntityID   *uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}

// FieldChange builds the {"old": ..., "new": ...} value used in Changes.
func FieldChange(from, to any) map[string]any {
	return map[string]any{"old": from, "new": to}
}
