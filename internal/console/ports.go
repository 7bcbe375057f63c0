package console

import (
	"context"
	"errors"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

var (
	// ErrNotConfirmed is returned when the operator declines a destructive action.
	ErrNotConfirmed = errors.New("action not confirmed")
	// ErrResultNotSet is returned when promoting an application without a placement.
	ErrResultNotSet = errors.New("set result first")
	// ErrDuplicateResult is returned when the application already has a result.
	ErrDuplicateResult = errors.New("duplicate, result already exists for this application")
	// ErrMissingConfirmationURL is returned when the gateway gave no redirect target.
	ErrMissingConfirmationURL = errors.New("payment confirmation url missing")
)

// Notifier shows short success and failure messages to the operator.
type Notifier interface {
	Success(msg string)
	Error(msg string)
}

// Confirmer asks the operator a yes/no question and blocks for the answer.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Redirector sends the payer to the gateway's confirmation page.
type Redirector interface {
	Redirect(ctx context.Context, url string) error
}

type applicationAPI interface {
	List(ctx context.Context, f client.ApplicationFilter) ([]domain.Application, error)
	Create(ctx context.Context, req api.ApplicationRequest) (domain.Application, error)
	Update(ctx context.Context, req api.ApplicationUpdateRequest) error
	Delete(ctx context.Context, id int64, opts client.DeleteOptions) error
}

type resultAPI interface {
	List(ctx context.Context, q client.ResultQuery) ([]domain.Result, error)
	Create(ctx context.Context, req api.ResultRequest) (domain.Result, error)
	Update(ctx context.Context, req api.ResultRequest) error
	Delete(ctx context.Context, id int64) error
}

type reviewAPI interface {
	List(ctx context.Context, f client.ReviewFilter) ([]domain.Review, error)
	Create(ctx context.Context, req api.ReviewRequest) (domain.Review, error)
	Update(ctx context.Context, id int64, status domain.ReviewStatus) error
	Delete(ctx context.Context, id int64) error
}

type paymentAPI interface {
	CreatePayment(ctx context.Context, req api.PaymentRequest) (*api.PaymentResponse, error)
}

// confirm asks prompt and maps a "no" to ErrNotConfirmed.
func confirm(ctx context.Context, c Confirmer, prompt string) error {
	ok, err := c.Confirm(ctx, prompt)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotConfirmed
	}
	return nil
}
