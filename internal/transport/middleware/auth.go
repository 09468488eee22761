package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/pkg/ctxutil"
)

// TokenValidator resolves a bearer token into a user id and role.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, domain.UserRole, error)
}

// Auth attaches the caller's identity to the request context.
//
// Requests without a bearer credential continue anonymously; RequireUser
// decides whether that is acceptable for the route. A bearer credential that
// fails validation ends the request with 401 and a WWW-Authenticate
// challenge, so a stale token is never silently downgraded to anonymous.
func Auth(validator TokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			userID, role, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				rejectToken(w, err)
				return
			}

			ctx := ctxutil.WithUserID(r.Context(), userID)
			ctx = ctxutil.WithUserRole(ctx, role.String())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func rejectToken(w http.ResponseWriter, err error) {
	msg, desc := "Invalid token", "token is malformed or has a bad signature"
	if errors.Is(err, domain.ErrTokenExpired) {
		msg, desc = "Token has expired", "token has expired"
	}
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	writeError(w, http.StatusUnauthorized, msg)
}

// bearerToken extracts the credential of a "Bearer <token>" header. The
// scheme is case-insensitive; ok is false for other schemes or an empty token.
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
