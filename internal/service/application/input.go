package application

import (
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// File is a base64-encoded work file attached to a submission.
type File struct {
	Data     string
	FileName string
	FileType string
}

// SubmitInput holds a public application submission.
type SubmitInput struct {
	domain.ApplicationFields
	ContestID      *int64
	GalleryConsent bool
	File           File
	// AwaitPayment marks the application as pending payment.
	AwaitPayment bool
}

// Validate validates the submission.
func (i SubmitInput) Validate() error {
	errs := i.ApplicationFields.Validate()

	if strings.TrimSpace(i.File.Data) == "" {
		errs = append(errs, domain.FieldError{Field: "file", Message: "required"})
	}
	if strings.TrimSpace(i.File.FileName) == "" {
		errs = append(errs, domain.FieldError{Field: "fileName", Message: "required"})
	}
	if i.ContestID != nil && *i.ContestID <= 0 {
		errs = append(errs, domain.FieldError{Field: "contest_id", Message: "invalid id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateInput holds the admin-editable fields of an application.
type UpdateInput struct {
	ID int64
	domain.ApplicationFields
	Status domain.ApplicationStatus
	Result *domain.Placement
}

// Validate validates the update input.
func (i UpdateInput) Validate() error {
	var errs []domain.FieldError

	if i.ID <= 0 {
		errs = append(errs, domain.FieldError{Field: "id", Message: "required"})
	}
	errs = append(errs, i.ApplicationFields.Validate()...)
	if !i.Status.IsValid() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "invalid status"})
	}
	if i.Result != nil && !i.Result.IsValid() {
		errs = append(errs, domain.FieldError{Field: "result", Message: "invalid placement"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func trimFields(f domain.ApplicationFields) domain.ApplicationFields {
	return domain.ApplicationFields{
		FullName:    strings.TrimSpace(f.FullName),
		Age:         f.Age,
		Teacher:     domain.TrimOrNil(f.Teacher),
		Institution: domain.TrimOrNil(f.Institution),
		WorkTitle:   strings.TrimSpace(f.WorkTitle),
		Email:       strings.TrimSpace(f.Email),
		ContestName: strings.TrimSpace(f.ContestName),
	}
}
