package auth

import "github.com/heartmarshall/artcontest/internal/domain"

// LoginInput holds admin credentials.
type LoginInput struct {
	Login    string
	Password string
}

// Validate validates the login input.
func (i LoginInput) Validate() error {
	var errs []domain.FieldError

	if i.Login == "" {
		errs = append(errs, domain.FieldError{Field: "login", Message: "required"})
	} else if len(i.Login) > 128 {
		errs = append(errs, domain.FieldError{Field: "login", Message: "too long"})
	}

	if i.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	} else if len(i.Password) > 72 {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
