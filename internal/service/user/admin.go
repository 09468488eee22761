package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// DefaultListLimit is the page size used when ListUsers gets a non-positive limit.
const DefaultListLimit = 50

// SetUserRole changes the role of a user (admin only).
func (s *Service) SetUserRole(ctx context.Context, targetUserID uuid.UUID, role domain.UserRole) (*domain.User, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.ErrForbidden
	}

	if !role.IsValid() {
		return nil, domain.NewValidationError("role", "invalid role: must be 'user' or 'admin'")
	}

	// Prevent admin from demoting themselves.
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if callerID == targetUserID && role == domain.UserRoleUser {
		return nil, domain.NewValidationError("role", "cannot demote yourself")
	}

	var user *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, targetUserID)
		if err != nil {
			return err
		}

		user, err = s.users.UpdateRole(txCtx, targetUserID, role)
		if err != nil {
			return err
		}
		if current.Role == role {
			return nil
		}

		return s.audit.Log(txCtx, domain.AuditRecord{
			UserID:     callerID,
			EntityType: domain.EntityTypeUser,
			EntityID:   &targetUserID,
			Action:     domain.AuditActionRoleChange,
			Changes: map[string]any{
				"role": domain.FieldChange(current.Role.String(), role.String()),
			},
		})
	})
	if err != nil {
		return nil, fmt.Errorf("user.SetUserRole: %w", err)
	}

	s.log.InfoContext(ctx, "user role updated",
		slog.String("target_user_id", targetUserID.String()),
		slog.String("new_role", role.String()),
	)

	return user, nil
}

// ListUsers returns a page of users with their watchlist sizes, plus the
// total user count (admin only).
func (s *Service) ListUsers(ctx context.Context, limit, offset int) ([]domain.UserWithMovieCount, int, error) {
	if !ctxutil.IsAdminCtx(ctx) {
		return nil, 0, domain.ErrForbidden
	}

	if limit <= 0 {
		limit = DefaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	var (
		users []domain.UserWithMovieCount
		total int
	)
	// The page and the total come from the same snapshot.
	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		if users, err = s.users.ListWithMovieCounts(txCtx, limit, offset); err != nil {
			return err
		}
		total, err = s.users.CountUsers(txCtx)
		return err
	})
	if err != nil {
		return nil, 0, fmt.Errorf("user.ListUsers: %w", err)
	}
	return users, total, nil
}
