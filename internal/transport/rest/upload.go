package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/artcontest/internal/service/upload"
	"github.com/heartmarshall/artcontest/pkg/api"
)

type uploadService interface {
	Upload(ctx context.Context, input upload.Input) (*upload.Result, error)
}

// UploadHandler serves the admin file upload endpoint.
type UploadHandler struct {
	svc uploadService
	log *slog.Logger
}

// NewUploadHandler creates an UploadHandler.
func NewUploadHandler(svc uploadService, logger *slog.Logger) *UploadHandler {
	return &UploadHandler{svc: svc, log: logger.With("handler", "upload")}
}

// Upload handles POST /upload-file.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	var req api.UploadRequest
	if err := decodeJSON(r, &req); err != nil {
		badBody(w, err)
		return
	}

	res, err := h.svc.Upload(r.Context(), upload.Input{
		File:     req.File,
		FileName: req.FileName,
		FileType: req.FileType,
		Folder:   req.Folder,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, api.UploadResponse{URL: res.URL, FileName: res.FileName})
}
