package payment

import (
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/application"
)

// CreateInput holds a paid submission.
type CreateInput struct {
	Amount      int
	Description string
	ContestName string
	Email       string
	Application application.SubmitInput
}

// Validate validates the payment envelope. The embedded application is
// validated by the application service.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	if i.Amount <= 0 {
		errs = append(errs, domain.FieldError{Field: "amount", Message: "must be positive"})
	}
	if strings.TrimSpace(i.Description) == "" {
		errs = append(errs, domain.FieldError{Field: "description", Message: "required"})
	}
	if e := strings.TrimSpace(i.Email); e != "" {
		if !domain.IsEmail(e) {
			errs = append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Session is the outcome of CreatePayment: the client must navigate to
// ConfirmationURL to pay.
type Session struct {
	PaymentID       string
	ConfirmationURL string
	Status          domain.PaymentStatus
	ApplicationID   int64
}

// Webhook event names accepted by HandleWebhook.
const (
	EventSucceeded = "payment.succeeded"
	EventCanceled  = "payment.canceled"
)

// WebhookInput is the relevant part of a gateway notification.
type WebhookInput struct {
	Event     string
	PaymentID string
}
