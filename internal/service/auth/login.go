package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// decoyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var (
	decoyOnce sync.Once
	decoyHash []byte
)

func (s *Service) decoy() []byte {
	decoyOnce.Do(func() {
		decoyHash, _ = bcrypt.GenerateFromPassword([]byte("moviemood-decoy"), s.cfg.BcryptCost)
	})
	return decoyHash
}

// Login exchanges email and password for an access token. An unknown email
// and a wrong password both yield ErrUnauthorized.
func (s *Service) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		_ = bcrypt.CompareHashAndPassword(s.decoy(), []byte(input.Password))
		s.log.InfoContext(ctx, "login rejected", slog.String("reason", "unknown email"))
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	case err != nil:
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		s.log.InfoContext(ctx, "login rejected",
			slog.String("reason", "password mismatch"),
			slog.String("user_id", user.ID.String()))
		return nil, fmt.Errorf("auth.Login: %w", domain.ErrUnauthorized)
	}

	result, err := s.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("auth.Login: %w", err)
	}

	s.log.InfoContext(ctx, "user logged in", slog.String("user_id", user.ID.String()))
	return result, nil
}
