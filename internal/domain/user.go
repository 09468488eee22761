package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	AvatarURL    *string
	Role         UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// UserWithMovieCount is a user row annotated with the size of their watchlist.
type UserWithMovieCount struct {
	User
	MovieCount int
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool {
	return u.Role.IsAdmin()
}

// UserChanges lists the profile fields to overwrite. Nil fields are left untouched.
type UserChanges struct {
	Name         *string
	Email        *string
	PasswordHash *string
	AvatarURL    *string
}

// IsEmpty reports whether no field is set.
func (c UserChanges) IsEmpty() bool {
	return c.Name == nil && c.Email == nil && c.PasswordHash == nil && c.AvatarURL == nil
}
