package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/review"
	"github.com/heartmarshall/artcontest/internal/transport/middleware"
	"github.com/heartmarshall/artcontest/pkg/api"
)

type reviewService interface {
	ListReviews(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error)
	SubmitReview(ctx context.Context, input review.SubmitInput) (*domain.Review, error)
	SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error)
	DeleteReview(ctx context.Context, id int64) error
}

// ReviewHandler serves /reviews.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

// List handles GET /reviews?status=. Without a status only approved reviews
// are returned; any other status, including "all", needs an admin token.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	raw := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("status")))

	var status *domain.ReviewStatus
	switch raw {
	case "", string(domain.ReviewStatusApproved):
		approved := domain.ReviewStatusApproved
		status = &approved
	case "all":
	default:
		s := domain.ReviewStatus(raw)
		if !s.IsValid() {
			handleError(w, r, h.log, domain.NewValidationError("status", "unknown status"))
			return
		}
		status = &s
	}

	if status == nil || *status != domain.ReviewStatusApproved {
		if err := middleware.RequireAdmin(r.Context()); err != nil {
			handleError(w, r, h.log, err)
			return
		}
	}

	reviews, err := h.svc.ListReviews(r.Context(), status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

// Submit handles the public POST /reviews. New reviews await moderation.
func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req api.ReviewRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}

	rv, err := h.svc.SubmitReview(r.Context(), review.SubmitInput{
		AuthorName: req.AuthorName,
		AuthorRole: req.AuthorRole,
		Rating:     req.Rating,
		Text:       req.Text,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

// SetStatus handles PUT /reviews.
func (h *ReviewHandler) SetStatus(w http.ResponseWriter, r *http.Request) {
	var req api.ReviewStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}

	rv, err := h.svc.SetStatus(r.Context(), req.ID, domain.ReviewStatus(strings.TrimSpace(req.Status)))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

// Delete handles DELETE /reviews?id=.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteReview(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
