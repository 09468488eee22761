package movie

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
)

// CreateMovieInput holds parameters for adding a movie to the watchlist.
type CreateMovieInput struct {
	Title         string   `validate:"required,max=200"`
	Genre         string   `validate:"required,max=100"`
	Year          int      `validate:"gte=1888,notfuture"`
	Duration      *int     `validate:"omitnil,gte=0"`
	Rating        float64  `validate:"gte=0,maxrating"`
	Comment       *string  `validate:"omitnil,max=5000"`
	Poster        *string  `validate:"omitnil,max=2048"`
	IsFavorite    bool
	IsCompleted   bool
	WatchProgress float64 `validate:"gte=0,lte=1"`
}

func (i *CreateMovieInput) normalize() {
	i.Title = strings.TrimSpace(i.Title)
	i.Genre = strings.TrimSpace(i.Genre)
}

// UpdateMovieInput holds a partial update. Nil fields are left unchanged.
// An empty Comment or Poster clears the value.
type UpdateMovieInput struct {
	Title         *string  `validate:"omitnil,min=1,max=200"`
	Genre         *string  `validate:"omitnil,min=1,max=100"`
	Year          *int     `validate:"omitnil,gte=1888,notfuture"`
	Duration      *int     `validate:"omitnil,gte=0"`
	Rating        *float64 `validate:"omitnil,gte=0,maxrating"`
	Comment       *string  `validate:"omitnil,max=5000"`
	Poster        *string  `validate:"omitnil,max=2048"`
	IsFavorite    *bool
	IsCompleted   *bool
	WatchProgress *float64 `validate:"omitnil,gte=0,lte=1"`
}

func (i *UpdateMovieInput) normalize() {
	if i.Title != nil {
		t := strings.TrimSpace(*i.Title)
		i.Title = &t
	}
	if i.Genre != nil {
		g := strings.TrimSpace(*i.Genre)
		i.Genre = &g
	}
}

// newValidator builds the validator for movie inputs. The year and rating
// ceilings depend on the service clock and configuration.
func newValidator(s *Service) *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return lowerFirst(f.Name)
	})
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(s.now().Year()+1)
	})
	_ = v.RegisterValidation("maxrating", func(fl validator.FieldLevel) bool {
		return fl.Field().Float() <= s.cfg.MaxRating
	})
	return v
}

// check runs struct validation and converts failures into a domain.ValidationError.
func (s *Service) check(input any) error {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate input: %w", err)
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: s.message(fe)})
	}
	return domain.NewValidationErrors(fields)
}

func (s *Service) message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "min":
		return "must not be empty"
	case "max":
		return "too long"
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "notfuture":
		return fmt.Sprintf("must be at most %d", s.now().Year()+1)
	case "maxrating":
		return fmt.Sprintf("must be at most %g", s.cfg.MaxRating)
	default:
		return "invalid"
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[size:]
}
