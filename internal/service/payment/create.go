package payment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// CreatePayment records the application as awaiting payment and opens a
// gateway session for it. When the application names a contest, the amount
// must equal the contest price.
func (s *Service) CreatePayment(ctx context.Context, input CreateInput) (*Session, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	app := input.Application
	if app.ContestName == "" {
		app.ContestName = strings.TrimSpace(input.ContestName)
	}
	if app.Email == "" {
		app.Email = strings.TrimSpace(input.Email)
	}

	if app.ContestID != nil {
		contest, err := s.contests.GetByID(ctx, *app.ContestID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("get contest: %w", err)
		}
		if contest != nil && contest.Price != input.Amount {
			return nil, domain.NewValidationError("amount", "does not match contest price")
		}
	}

	app.AwaitPayment = true
	created, err := s.submitter.Submit(ctx, app)
	if err != nil {
		return nil, err
	}

	payment, err := s.gateway.CreatePayment(ctx, domain.PaymentRequest{
		Amount:      input.Amount,
		Currency:    s.cfg.Currency,
		Description: strings.TrimSpace(input.Description),
		ReturnURL:   s.cfg.ReturnURL,
		Metadata: map[string]string{
			domain.PaymentMetaApplicationID: strconv.FormatInt(created.ID, 10),
			domain.PaymentMetaContestName:   created.ContestName,
			domain.PaymentMetaEmail:         created.Email,
		},
	})
	if err != nil {
		s.discard(ctx, created.ID)
		return nil, domain.Unavailable("create payment", err)
	}
	if payment.ConfirmationURL == "" {
		s.discard(ctx, created.ID)
		return nil, domain.Unavailable("create payment "+payment.ID, errors.New("missing confirmation url"))
	}

	if err := s.applications.AttachPayment(ctx, created.ID, payment.ID); err != nil {
		return nil, fmt.Errorf("attach payment: %w", err)
	}

	s.log.InfoContext(ctx, "payment session created",
		slog.String("payment_id", payment.ID),
		slog.Int64("application_id", created.ID),
		slog.Int("amount", input.Amount),
	)

	return &Session{
		PaymentID:       payment.ID,
		ConfirmationURL: payment.ConfirmationURL,
		Status:          payment.Status,
		ApplicationID:   created.ID,
	}, nil
}

// discard trashes an application whose payment session could not be opened,
// so it never shows up as a live submission awaiting payment.
func (s *Service) discard(ctx context.Context, applicationID int64) {
	if err := s.applications.SoftDelete(ctx, applicationID); err != nil {
		s.log.WarnContext(ctx, "unpaid application left active",
			slog.Int64("application_id", applicationID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.log.WarnContext(ctx, "unpaid application trashed", slog.Int64("application_id", applicationID))
}
