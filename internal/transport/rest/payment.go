package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/payment"
	"github.com/heartmarshall/artcontest/pkg/api"
)

type paymentService interface {
	CreatePayment(ctx context.Context, input payment.CreateInput) (*payment.Session, error)
	HandleWebhook(ctx context.Context, input payment.WebhookInput) error
}

// PaymentHandler serves the payment handoff and the gateway webhook.
type PaymentHandler struct {
	svc paymentService
	log *slog.Logger
}

// NewPaymentHandler creates a PaymentHandler.
func NewPaymentHandler(svc paymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{svc: svc, log: logger.With("handler", "payment")}
}

// Create handles POST /payment and answers with the confirmation URL the
// payer must be sent to.
func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.PaymentRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}

	session, err := h.svc.CreatePayment(r.Context(), payment.CreateInput{
		Amount:      req.Amount,
		Description: req.Description,
		ContestName: req.ContestName,
		Email:       req.Email,
		Application: toSubmitInput(req.ApplicationData),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, api.PaymentResponse{
		PaymentID:       session.PaymentID,
		ConfirmationURL: session.ConfirmationURL,
		Status:          string(session.Status),
		ApplicationID:   session.ApplicationID,
	})
}

// Webhook handles POST /payment-webhook. Anything but a 200 makes the
// gateway redeliver, so payments unknown on either side are acknowledged.
func (h *PaymentHandler) Webhook(w http.ResponseWriter, r *http.Request) {
	var n api.WebhookNotification
	if err := decodeJSON(r, &n); err != nil {
		badBody(w, err)
		return
	}

	err := h.svc.HandleWebhook(r.Context(), payment.WebhookInput{
		Event:     n.Event,
		PaymentID: n.Object.ID,
	})
	if errors.Is(err, domain.ErrNotFound) {
		h.log.WarnContext(r.Context(), "webhook for unknown payment",
			slog.String("payment_id", n.Object.ID),
			slog.String("error", err.Error()),
		)
		err = nil
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
