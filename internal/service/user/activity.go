package user

import (
	"context"
	"fmt"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 200
)

// Activity returns the audit entries the caller authored, newest first.
// limit is clamped to [1, MaxActivityLimit] with DefaultActivityLimit for
// non-positive values.
func (s *Service) Activity(ctx context.Context, limit, offset int) ([]domain.AuditRecord, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	switch {
	case limit <= 0:
		limit = DefaultActivityLimit
	case limit > MaxActivityLimit:
		limit = MaxActivityLimit
	}
	offset = max(offset, 0)

	records, err := s.audit.GetByUser(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("user.Activity: %w", err)
	}
	return records, nil
}
