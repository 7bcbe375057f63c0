package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/heartmarshall/artcontest/pkg/api"
)

// PaymentOrder is what the payer is charged for.
type PaymentOrder struct {
	ContestName string
	Price       int
	Email       string
	Application api.ApplicationRequest
}

// PaymentHandoff opens a payment session and sends the payer to the
// gateway. The outcome is not verified here; the server learns it from
// the gateway webhook.
type PaymentHandoff struct {
	payments   paymentAPI
	redirector Redirector
}

// NewPaymentHandoff creates a PaymentHandoff.
func NewPaymentHandoff(payments paymentAPI, redirector Redirector) *PaymentHandoff {
	return &PaymentHandoff{payments: payments, redirector: redirector}
}

// Initiate creates the session and redirects to its confirmation URL,
// which is also returned.
func (p *PaymentHandoff) Initiate(ctx context.Context, order PaymentOrder) (string, error) {
	if order.Price <= 0 {
		return "", fmt.Errorf("payment: price must be positive, got %d", order.Price)
	}

	resp, err := p.payments.CreatePayment(ctx, api.PaymentRequest{
		Amount:          order.Price,
		Description:     fmt.Sprintf("Entry fee: %s", strings.TrimSpace(order.ContestName)),
		ContestName:     order.ContestName,
		Email:           order.Email,
		ApplicationData: order.Application,
	})
	if err != nil {
		return "", fmt.Errorf("create payment: %w", err)
	}
	if resp.ConfirmationURL == "" {
		return "", ErrMissingConfirmationURL
	}

	if err := p.redirector.Redirect(ctx, resp.ConfirmationURL); err != nil {
		return "", fmt.Errorf("redirect to payment: %w", err)
	}
	return resp.ConfirmationURL, nil
}
