package review

import (
	"strings"
	"unicode/utf8"

	"github.com/heartmarshall/artcontest/internal/domain"
)

const (
	MaxAuthorNameLength = 200
	MaxTextLength       = 5000
)

// SubmitInput holds a visitor's review.
type SubmitInput struct {
	AuthorName string
	AuthorRole *string
	Rating     int
	Text       string
}

// Validate validates the review input.
func (i SubmitInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.AuthorName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "required"})
	} else if utf8.RuneCountInString(name) > MaxAuthorNameLength {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "too long"})
	}
	if i.Rating < domain.MinRating || i.Rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	text := strings.TrimSpace(i.Text)
	if text == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	} else if utf8.RuneCountInString(text) > MaxTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
