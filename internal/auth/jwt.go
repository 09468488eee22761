// Package auth issues and verifies the HS256 access tokens used by the API.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// ErrInvalidToken wraps every verification failure. The underlying jwt error
// (jwt.ErrTokenExpired, jwt.ErrTokenInvalidIssuer, ...) stays in the chain.
var ErrInvalidToken = errors.New("invalid token")

// clockSkew tolerates small drift between API replicas.
const clockSkew = 30 * time.Second

// claims is the token payload: the user id as subject plus the role.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// JWTManager signs and verifies access tokens with a shared secret.
type JWTManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
	parser *jwt.Parser
}

// NewJWTManager creates a manager. The secret length is enforced by config
// validation.
func NewJWTManager(secret, issuer string, ttl time.Duration) *JWTManager {
	m := &JWTManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
	m.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(clockSkew),
		jwt.WithTimeFunc(func() time.Time { return m.now() }),
	)
	return m
}

// GenerateAccessToken signs a token for userID that expires after the
// configured TTL.
func (m *JWTManager) GenerateAccessToken(userID uuid.UUID, role domain.UserRole) (string, error) {
	now := m.now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Role: role.String(),
	}).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken verifies signature, issuer and expiry and returns the
// identity the token carries. Tokens without a role claim belong to plain
// users.
func (m *JWTManager) ValidateAccessToken(raw string) (uuid.UUID, domain.UserRole, error) {
	if raw == "" {
		return uuid.Nil, "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var c claims
	if _, err := m.parser.ParseWithClaims(raw, &c, func(*jwt.Token) (any, error) { return m.secret, nil }); err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}

	role := domain.UserRole(c.Role)
	if role == "" {
		role = domain.UserRoleUser
	}
	if !role.IsValid() {
		return uuid.Nil, "", fmt.Errorf("%w: role %q", ErrInvalidToken, c.Role)
	}
	return userID, role, nil
}
