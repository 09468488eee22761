package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.User, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return user, nil
}

// UpdateProfile updates the authenticated user's profile.
// Returns ErrAlreadyExists if the new email belongs to another user.
func (s *Service) UpdateProfile(ctx context.Context, input UpdateProfileInput) (*domain.User, error) {
	// Normalize input before validation.
	if input.Name != nil {
		n := strings.TrimSpace(*input.Name)
		input.Name = &n
	}
	if input.Email != nil {
		e := strings.ToLower(strings.TrimSpace(*input.Email))
		input.Email = &e
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	changes := domain.UserChanges{
		Name:      input.Name,
		Email:     input.Email,
		AvatarURL: input.AvatarURL,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), s.cfg.BcryptCost)
		if err != nil {
			return nil, fmt.Errorf("user.UpdateProfile hash password: %w", err)
		}
		h := string(hash)
		changes.PasswordHash = &h
	}

	if changes.IsEmpty() {
		return s.GetProfile(ctx)
	}

	var updated *domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if changes.Email != nil {
			other, err := s.users.GetByEmail(txCtx, *changes.Email)
			switch {
			case err == nil && other.ID != userID:
				return domain.ErrAlreadyExists
			case err != nil && !errors.Is(err, domain.ErrNotFound):
				return fmt.Errorf("check email: %w", err)
			}
		}

		u, err := s.users.Update(txCtx, userID, changes, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		updated = u
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("user.UpdateProfile: %w", err)
	}

	s.log.InfoContext(ctx, "profile updated",
		slog.String("user_id", userID.String()))

	return updated, nil
}

// DeleteAccount removes the authenticated user together with their watchlist.
func (s *Service) DeleteAccount(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.users.Delete(ctx, userID); err != nil {
		return fmt.Errorf("user.DeleteAccount: %w", err)
	}

	s.log.InfoContext(ctx, "account deleted",
		slog.String("user_id", userID.String()))

	return nil
}
