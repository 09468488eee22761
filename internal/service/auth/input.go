package auth

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 6

const (
	maxNameRunes     = 255
	maxEmailBytes    = 254
	maxPasswordBytes = 72 // bcrypt ignores the rest
	maxAvatarBytes   = 2048
)

var validate = validator.New()

// RegisterInput holds parameters for registration with email and password.
type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	AvatarURL *string
}

// Validate validates the register input.
func (i RegisterInput) Validate() error {
	var v domain.ValidationError

	switch {
	case i.Name == "":
		v.Add("name", "required")
	case utf8.RuneCountInString(i.Name) > maxNameRunes:
		v.Add("name", "too long")
	}

	checkEmail(&v, i.Email)

	switch {
	case i.Password == "":
		v.Add("password", "required")
	case utf8.RuneCountInString(i.Password) < MinPasswordLength:
		v.Add("password", "must be at least 6 characters")
	case len(i.Password) > maxPasswordBytes:
		v.Add("password", "too long")
	}

	if i.AvatarURL != nil && len(*i.AvatarURL) > maxAvatarBytes {
		v.Add("avatarUrl", "too long")
	}

	return v.Err()
}

// LoginInput holds parameters for login with email and password.
type LoginInput struct {
	Email    string
	Password string
}

// Validate only checks presence; a malformed email simply fails to log in.
func (i LoginInput) Validate() error {
	var v domain.ValidationError
	if i.Email == "" {
		v.Add("email", "required")
	}
	if i.Password == "" {
		v.Add("password", "required")
	}
	return v.Err()
}

func checkEmail(v *domain.ValidationError, email string) {
	switch {
	case email == "":
		v.Add("email", "required")
	case len(email) > maxEmailBytes:
		v.Add("email", "too long")
	case validate.Var(email, "email") != nil:
		v.Add("email", "invalid email address")
	}
}
