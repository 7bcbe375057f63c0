package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ReconcileReport summarizes one reconciliation pass.
type ReconcileReport struct {
	Checked int
	Applied int
	Failed  int
}

// Reconcile re-checks pending payments created after since against the
// gateway and applies every final status it finds. It covers webhooks the
// gateway gave up redelivering. A failure on one payment does not stop the
// pass; the joined errors are returned with the report.
func (s *Service) Reconcile(ctx context.Context, since time.Time) (ReconcileReport, error) {
	pending, err := s.applications.ListPendingPayments(ctx, since)
	if err != nil {
		return ReconcileReport{}, fmt.Errorf("list pending payments: %w", err)
	}

	var (
		report ReconcileReport
		errs   []error
	)
	for _, app := range pending {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if app.PaymentID == nil {
			continue
		}

		report.Checked++
		applied, err := s.sync(ctx, *app.PaymentID, slog.String("source", "reconcile"))
		if err != nil {
			report.Failed++
			errs = append(errs, err)
			continue
		}
		if applied {
			report.Applied++
		}
	}

	s.log.InfoContext(ctx, "payments reconciled",
		slog.Int("checked", report.Checked),
		slog.Int("applied", report.Applied),
		slog.Int("failed", report.Failed),
	)
	return report, errors.Join(errs...)
}
