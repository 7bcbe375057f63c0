package payment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// HandleWebhook applies a gateway notification. The notification body is
// untrusted: the payment is fetched back from the gateway and only its
// status there is applied. Unrelated events are ignored.
func (s *Service) HandleWebhook(ctx context.Context, input WebhookInput) error {
	if input.Event != EventSucceeded && input.Event != EventCanceled {
		s.log.DebugContext(ctx, "webhook event ignored", slog.String("event", input.Event))
		return nil
	}
	if input.PaymentID == "" {
		return domain.NewValidationError("object.id", "required")
	}

	_, err := s.sync(ctx, input.PaymentID, slog.String("event", input.Event))
	return err
}

// sync copies the gateway's final status of a payment onto its application.
// It reports whether a status was applied.
func (s *Service) sync(ctx context.Context, paymentID string, attrs ...any) (bool, error) {
	payment, err := s.gateway.GetPayment(ctx, paymentID)
	if err != nil {
		return false, domain.Unavailable("verify payment "+paymentID, err)
	}

	if !payment.Status.IsFinal() {
		s.log.WarnContext(ctx, "payment status not final at gateway",
			append([]any{
				slog.String("payment_id", payment.ID),
				slog.String("status", string(payment.Status)),
			}, attrs...)...,
		)
		return false, nil
	}

	app, err := s.applications.SetPaymentStatus(ctx, payment.ID, payment.Status)
	if err != nil {
		return false, fmt.Errorf("apply payment %s: %w", payment.ID, err)
	}

	s.log.InfoContext(ctx, "payment status applied",
		append([]any{
			slog.String("payment_id", payment.ID),
			slog.Int64("application_id", app.ID),
			slog.String("status", string(payment.Status)),
		}, attrs...)...,
	)
	return true, nil
}
