// Package stub provides an in-memory payment gateway for development and tests.
package stub

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// Gateway accepts every payment immediately. The confirmation URL points
// straight at the return URL, so the redirect lands on the success page.
type Gateway struct {
	mu       sync.Mutex
	payments map[string]domain.Payment
}

// NewGateway creates an empty stub gateway.
func NewGateway() *Gateway {
	return &Gateway{payments: make(map[string]domain.Payment)}
}

// Name identifies the gateway in logs.
func (g *Gateway) Name() string { return "stub" }

// CreatePayment records a pending payment.
func (g *Gateway) CreatePayment(_ context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	id := uuid.NewString()

	confirm := req.ReturnURL
	if u, err := url.Parse(req.ReturnURL); err == nil && req.ReturnURL != "" {
		q := u.Query()
		q.Set("payment_id", id)
		u.RawQuery = q.Encode()
		confirm = u.String()
	}

	p := domain.Payment{
		ID:              id,
		Status:          domain.PaymentStatusPending,
		ConfirmationURL: confirm,
		Metadata:        req.Metadata,
	}

	g.mu.Lock()
	g.payments[id] = p
	g.mu.Unlock()

	return &p, nil
}

// GetPayment reports a known payment as succeeded.
func (g *Gateway) GetPayment(_ context.Context, id string) (*domain.Payment, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	p, ok := g.payments[id]
	if !ok {
		return nil, fmt.Errorf("stub payment %s: %w", id, domain.ErrNotFound)
	}
	p.Status = domain.PaymentStatusSucceeded
	return &p, nil
}
