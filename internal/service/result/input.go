package result

import (
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ResultInput holds every writable field of a result.
type ResultInput struct {
	ApplicationID  *int64
	FullName       string
	Age            *int
	Teacher        *string
	Institution    *string
	WorkTitle      *string
	Email          *string
	ContestID      *int64
	ContestName    *string
	WorkFileURL    *string
	Result         *domain.Placement
	Place          *int
	Score          *float64
	DiplomaURL     *string
	Notes          *string
	GalleryConsent bool
}

// Validate validates the result input.
func (i ResultInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.FullName) == "" {
		errs = append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	}
	if i.Age != nil && (*i.Age < domain.MinParticipantAge || *i.Age > domain.MaxParticipantAge) {
		errs = append(errs, domain.FieldError{Field: "age", Message: "must be between 5 and 18"})
	}
	if i.Email != nil && strings.TrimSpace(*i.Email) != "" && !domain.IsEmail(strings.TrimSpace(*i.Email)) {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	if i.Result != nil && !i.Result.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "invalid placement"})
	}
	if i.Place != nil && *i.Place <= 0 {
		errs = append(errs, domain.FieldError{Field: "place", Message: "must be positive"})
	}
	if i.ApplicationID != nil && *i.ApplicationID <= 0 {
		errs = append(errs, domain.FieldError{Field: "application_id", Message: "invalid id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func (i ResultInput) toDomain() domain.Result {
	return domain.Result{
		ApplicationID:  i.ApplicationID,
		FullName:       strings.TrimSpace(i.FullName),
		Age:            i.Age,
		Teacher:        domain.TrimOrNil(i.Teacher),
		Institution:    domain.TrimOrNil(i.Institution),
		WorkTitle:      domain.TrimOrNil(i.WorkTitle),
		Email:          domain.TrimOrNil(i.Email),
		ContestID:      i.ContestID,
		ContestName:    domain.TrimOrNil(i.ContestName),
		WorkFileURL:    domain.NormalizeLink(i.WorkFileURL),
		Result:         i.Result,
		Place:          i.Place,
		Score:          i.Score,
		DiplomaURL:     domain.NormalizeLink(i.DiplomaURL),
		Notes:          domain.TrimOrNil(i.Notes),
		GalleryConsent: i.GalleryConsent,
	}
}
