package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/contest"
	"github.com/heartmarshall/artcontest/pkg/api"
)

type contestService interface {
	ListContests(ctx context.Context, category *domain.Category) ([]domain.Contest, error)
	CreateContest(ctx context.Context, input contest.ContestInput) (*domain.Contest, error)
	UpdateContest(ctx context.Context, id int64, input contest.ContestInput) (*domain.Contest, error)
	DeleteContest(ctx context.Context, id int64) error
}

// ContestHandler serves /contests.
type ContestHandler struct {
	svc contestService
	log *slog.Logger
}

// NewContestHandler creates a ContestHandler.
func NewContestHandler(svc contestService, logger *slog.Logger) *ContestHandler {
	return &ContestHandler{svc: svc, log: logger.With("handler", "contest")}
}

// List handles GET /contests[?category_id=].
func (h *ContestHandler) List(w http.ResponseWriter, r *http.Request) {
	var category *domain.Category
	if raw := strings.TrimSpace(r.URL.Query().Get("category_id")); raw != "" {
		c := domain.Category(raw)
		if !c.IsValid() {
			handleError(w, r, h.log, domain.NewValidationError("category_id", "unknown category"))
			return
		}
		category = &c
	}

	contests, err := h.svc.ListContests(r.Context(), category)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, contests)
}

// Create handles POST /contests.
func (h *ContestHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.ContestRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}
	input, err := toContestInput(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.CreateContest(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, c)
}

// Update handles PUT /contests with the id in the body.
func (h *ContestHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.ContestRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}
	if req.ID <= 0 {
		handleError(w, r, h.log, domain.NewValidationError("id", "required"))
		return
	}
	input, err := toContestInput(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	c, err := h.svc.UpdateContest(r.Context(), req.ID, input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Delete handles DELETE /contests?id=.
func (h *ContestHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteContest(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toContestInput(req api.ContestRequest) (contest.ContestInput, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return contest.ContestInput{}, err
	}
	return contest.ContestInput{
		Title:        req.Title,
		Description:  req.Description,
		CategoryID:   domain.Category(strings.TrimSpace(req.CategoryID)),
		Deadline:     deadline,
		Price:        req.Price,
		Status:       domain.ContestStatus(strings.TrimSpace(req.Status)),
		RulesLink:    req.RulesLink,
		DiplomaImage: req.DiplomaImage,
		Image:        req.Image,
		IsPopular:    req.IsPopular,
	}, nil
}

// parseDeadline accepts a calendar date or a full timestamp.
// An empty value is left for the service to reject.
func parseDeadline(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, domain.NewValidationError("deadline", "expected YYYY-MM-DD")
	}
	return t, nil
}
