package domain

import (
	"net/mail"
	"strings"
	"time"
)

const (
	MinParticipantAge = 5
	MaxParticipantAge = 18
)

// Application is a contest entry submitted by a participant.
// A non-nil DeletedAt moves it from the active list to the trash.
type Application struct {
	ID             int64             `json:"id"`
	FullName       string            `json:"full_name"`
	Age            int               `json:"age"`
	Teacher        *string           `json:"teacher"`
	Institution    *string           `json:"institution"`
	WorkTitle      string            `json:"work_title"`
	Email          string            `json:"email"`
	ContestID      *int64            `json:"contest_id"`
	ContestName    string            `json:"contest_name"`
	WorkFileURL    string            `json:"work_file_url"`
	Status         ApplicationStatus `json:"status"`
	Result         *Placement        `json:"result"`
	GalleryConsent bool              `json:"gallery_consent"`
	PaymentStatus  PaymentStatus     `json:"payment_status"`
	PaymentID      *string           `json:"payment_id,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
	DeletedAt      *time.Time        `json:"deleted_at"`
}

// IsTrashed reports whether the application was soft-deleted.
func (a Application) IsTrashed() bool {
	return a.DeletedAt != nil
}

// ApplicationFields are the participant-provided fields shared by the
// public submission form and the admin edit form.
type ApplicationFields struct {
	FullName    string
	Age         int
	Teacher     *string
	Institution *string
	WorkTitle   string
	Email       string
	ContestName string
}

// Validate checks presence, the age range and the email format.
func (f ApplicationFields) Validate() []FieldError {
	var errs []FieldError

	if strings.TrimSpace(f.FullName) == "" {
		errs = append(errs, FieldError{Field: "full_name", Message: "required"})
	}
	if f.Age < MinParticipantAge || f.Age > MaxParticipantAge {
		errs = append(errs, FieldError{Field: "age", Message: "must be between 5 and 18"})
	}
	if strings.TrimSpace(f.WorkTitle) == "" {
		errs = append(errs, FieldError{Field: "work_title", Message: "required"})
	}
	if strings.TrimSpace(f.ContestName) == "" {
		errs = append(errs, FieldError{Field: "contest_name", Message: "required"})
	}
	email := strings.TrimSpace(f.Email)
	if email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "required"})
	} else if !IsEmail(email) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid format"})
	}

	return errs
}

// IsEmail reports whether s is a bare email address.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
