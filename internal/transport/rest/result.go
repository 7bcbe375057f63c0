package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/result"
	"github.com/heartmarshall/artcontest/pkg/api"
)

type resultService interface {
	ListResults(ctx context.Context, params domain.ResultListParams) ([]domain.Result, error)
	GetResult(ctx context.Context, id int64) (*domain.Result, error)
	CreateResult(ctx context.Context, input result.ResultInput) (*domain.Result, error)
	UpdateResult(ctx context.Context, id int64, input result.ResultInput) (*domain.Result, error)
	DeleteResult(ctx context.Context, id int64) error
	PublicResults(ctx context.Context) ([]domain.PublicResult, error)
	GalleryWorks(ctx context.Context) ([]domain.GalleryWork, error)
}

// ResultHandler serves /results and the public result projections.
type ResultHandler struct {
	svc resultService
	log *slog.Logger
}

// NewResultHandler creates a ResultHandler.
func NewResultHandler(svc resultService, logger *slog.Logger) *ResultHandler {
	return &ResultHandler{svc: svc, log: logger.With("handler", "result")}
}

// List handles GET /results. With ?id= it returns a single result.
func (h *ResultHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Has("id") {
		id, err := queryID(r, "id")
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		res, err := h.svc.GetResult(r.Context(), id)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		writeJSON(w, http.StatusOK, res)
		return
	}

	params, err := parseResultParams(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	results, err := h.svc.ListResults(r.Context(), params)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Create handles POST /results. A second result for the same application is a 409.
func (h *ResultHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req api.ResultRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}
	input, err := toResultInput(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.CreateResult(r.Context(), input)
	if errors.Is(err, domain.ErrAlreadyExists) {
		writeError(w, http.StatusConflict, MessageDuplicateResult)
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Update handles PUT /results with the id in the body.
func (h *ResultHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.ResultRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}
	if req.ID <= 0 {
		handleError(w, r, h.log, domain.NewValidationError("id", "required"))
		return
	}
	input, err := toResultInput(req)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	res, err := h.svc.UpdateResult(r.Context(), req.ID, input)
	if errors.Is(err, domain.ErrAlreadyExists) {
		writeError(w, http.StatusConflict, MessageDuplicateResult)
		return
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Delete handles DELETE /results?id=.
func (h *ResultHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.DeleteResult(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Public handles GET /public-results.
func (h *ResultHandler) Public(w http.ResponseWriter, r *http.Request) {
	results, err := h.svc.PublicResults(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, results)
}

// Gallery handles GET /gallery-works.
func (h *ResultHandler) Gallery(w http.ResponseWriter, r *http.Request) {
	works, err := h.svc.GalleryWorks(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, works)
}

func parseResultParams(r *http.Request) (domain.ResultListParams, error) {
	q := r.URL.Query()
	params := domain.ResultListParams{
		ContestName: strings.TrimSpace(q.Get("contest_name")),
	}

	if raw := strings.TrimSpace(q.Get("contest_id")); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			return params, domain.NewValidationError("contest_id", "invalid id")
		}
		params.ContestID = &id
	}

	placement, err := domain.ParsePlacementFilter(q.Get("result"))
	if err != nil {
		return params, err
	}
	params.Result = placement

	place, err := optionalInt(r, "place")
	if err != nil {
		return params, err
	}
	params.Place = place

	return params, nil
}

func toResultInput(req api.ResultRequest) (result.ResultInput, error) {
	var placement *domain.Placement
	if req.Result != nil {
		p, err := domain.ParsePlacement(*req.Result)
		if err != nil {
			return result.ResultInput{}, err
		}
		placement = p
	}
	return result.ResultInput{
		ApplicationID:  req.ApplicationID,
		FullName:       req.FullName,
		Age:            req.Age,
		Teacher:        req.Teacher,
		Institution:    req.Institution,
		WorkTitle:      req.WorkTitle,
		Email:          req.Email,
		ContestID:      req.ContestID,
		ContestName:    req.ContestName,
		WorkFileURL:    req.WorkFileURL,
		Result:         placement,
		Place:          req.Place,
		Score:          req.Score,
		DiplomaURL:     req.DiplomaURL,
		Notes:          req.Notes,
		GalleryConsent: req.GalleryConsent,
	}, nil
}
