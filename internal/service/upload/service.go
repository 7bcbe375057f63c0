// Package upload stores base64-encoded files submitted through the API.
package upload

import (
	"context"
	"log/slog"
)

type fileStorage interface {
	Put(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

const (
	// MaxFileBytes caps a decoded upload.
	MaxFileBytes = 15 << 20

	DefaultFolder      = "contests"
	DefaultContentType = "application/pdf"
)

// Service provides file upload operations.
type Service struct {
	storage fileStorage
	log     *slog.Logger
}

// NewService creates a new upload service.
func NewService(log *slog.Logger, storage fileStorage) *Service {
	return &Service{
		storage: storage,
		log:     log.With("service", "upload"),
	}
}
