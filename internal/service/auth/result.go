package auth

import (
	"time"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// AuthResult is what a successful Register or Login hands back to the client.
type AuthResult struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *domain.User
}
