package user

import (
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

var validate = validator.New()

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change). An empty AvatarURL removes the avatar.
type UpdateProfileInput struct {
	Name      *string
	Email     *string
	Password  *string
	AvatarURL *string
}

// Validate validates the update profile input.
func (i UpdateProfileInput) Validate() error {
	var v domain.ValidationError

	if i.Name != nil {
		switch {
		case *i.Name == "":
			v.Add("name", "cannot be empty")
		case utf8.RuneCountInString(*i.Name) > 255:
			v.Add("name", "too long")
		}
	}

	if i.Email != nil {
		switch {
		case *i.Email == "":
			v.Add("email", "cannot be empty")
		case len(*i.Email) > 254:
			v.Add("email", "too long")
		case validate.Var(*i.Email, "email") != nil:
			v.Add("email", "invalid email address")
		}
	}

	if i.Password != nil {
		switch {
		case utf8.RuneCountInString(*i.Password) < 6:
			v.Add("password", "must be at least 6 characters")
		case len(*i.Password) > 72:
			v.Add("password", "too long")
		}
	}

	if i.AvatarURL != nil && len(*i.AvatarURL) > 2048 {
		v.Add("avatarUrl", "too long")
	}

	return v.Err()
}
