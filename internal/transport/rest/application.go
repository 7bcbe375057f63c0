package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/application"
	"github.com/heartmarshall/artcontest/pkg/api"
)

type applicationService interface {
	ListApplications(ctx context.Context, trashed bool) ([]domain.Application, error)
	Submit(ctx context.Context, input application.SubmitInput) (*domain.Application, error)
	UpdateApplication(ctx context.Context, input application.UpdateInput) (*domain.Application, error)
	SoftDeleteApplication(ctx context.Context, id int64) error
	RestoreApplication(ctx context.Context, id int64) error
}

// ApplicationHandler serves /applications.
type ApplicationHandler struct {
	svc applicationService
	log *slog.Logger
}

// NewApplicationHandler creates an ApplicationHandler.
func NewApplicationHandler(svc applicationService, logger *slog.Logger) *ApplicationHandler {
	return &ApplicationHandler{svc: svc, log: logger.With("handler", "application")}
}

// List handles GET /applications; ?deleted=true lists the trash.
func (h *ApplicationHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.svc.ListApplications(r.Context(), queryBool(r, "deleted"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, apps)
}

// Submit handles the public POST /applications.
func (h *ApplicationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req api.ApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}

	app, err := h.svc.Submit(r.Context(), toSubmitInput(req))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, app)
}

// Update handles PUT /applications with the id in the body.
func (h *ApplicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req api.ApplicationUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}

	var placement *domain.Placement
	if req.Result != nil {
		p, err := domain.ParsePlacement(*req.Result)
		if err != nil {
			handleError(w, r, h.log, err)
			return
		}
		placement = p
	}

	app, err := h.svc.UpdateApplication(r.Context(), application.UpdateInput{
		ID: req.ID,
		ApplicationFields: domain.ApplicationFields{
			FullName:    req.FullName,
			Age:         req.Age,
			Teacher:     req.Teacher,
			Institution: req.Institution,
			WorkTitle:   req.WorkTitle,
			Email:       req.Email,
			ContestName: req.ContestName,
		},
		Status: domain.ApplicationStatus(strings.TrimSpace(req.Status)),
		Result: placement,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, app)
}

// Delete handles DELETE /applications?id=. With restore=true the
// application is moved back out of the trash instead.
func (h *ApplicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := queryID(r, "id")
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if queryBool(r, "restore") {
		err = h.svc.RestoreApplication(r.Context(), id)
	} else {
		err = h.svc.SoftDeleteApplication(r.Context(), id)
	}
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toSubmitInput(req api.ApplicationRequest) application.SubmitInput {
	return application.SubmitInput{
		ApplicationFields: domain.ApplicationFields{
			FullName:    req.FullName,
			Age:         req.Age,
			Teacher:     req.Teacher,
			Institution: req.Institution,
			WorkTitle:   req.WorkTitle,
			Email:       req.Email,
			ContestName: req.ContestName,
		},
		ContestID:      req.ContestID,
		GalleryConsent: req.GalleryConsent,
		File: application.File{
			Data:     req.WorkFile,
			FileName: req.FileName,
			FileType: req.FileType,
		},
	}
}
