package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/config"
	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, domain.UserRole, error)
}

// Service implements auth operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	jwt   jwtManager
	cfg   config.AuthConfig
}

// NewService creates a new auth service instance.
func NewService(
	logger *slog.Logger,
	users userRepo,
	jwt jwtManager,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:   logger.With("service", "auth"),
		users: users,
		jwt:   jwt,
		cfg:   cfg,
	}
}

// ValidateToken checks an access token and returns the identity it carries.
func (s *Service) ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error) {
	userID, role, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		s.log.DebugContext(ctx, "access token rejected", slog.String("error", err.Error()))
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", domain.ErrTokenExpired)
		}
		return uuid.Nil, "", fmt.Errorf("auth.ValidateToken: %w", domain.ErrUnauthorized)
	}
	return userID, role, nil
}

// issueToken signs an access token for user. ExpiresAt is approximate; the
// token's exp claim is authoritative.
func (s *Service) issueToken(user *domain.User) (*AuthResult, error) {
	expiresAt := time.Now().Add(s.cfg.AccessTokenTTL)
	token, err := s.jwt.GenerateAccessToken(user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &AuthResult{AccessToken: token, ExpiresAt: expiresAt.UTC(), User: user}, nil
}
