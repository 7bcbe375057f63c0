package upload

import (
	"context"
	"encoding/base64"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// Upload decodes the file and stores it under <folder>/<uuid><ext>.
func (s *Service) Upload(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	data, err := decode(input.File)
	if err != nil {
		return nil, domain.NewValidationError("file", "invalid base64")
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("file", "empty file")
	}
	if len(data) > MaxFileBytes {
		return nil, domain.NewValidationError("file", "file too large")
	}

	folder := strings.Trim(input.Folder, "/")
	if folder == "" {
		folder = DefaultFolder
	}
	contentType := strings.TrimSpace(input.FileType)
	if contentType == "" {
		contentType = DefaultContentType
	}

	key := folder + "/" + uuid.NewString() + strings.ToLower(path.Ext(input.FileName))

	url, err := s.storage.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, domain.Unavailable("store file", err)
	}

	s.log.InfoContext(ctx, "file uploaded",
		slog.String("key", key),
		slog.String("content_type", contentType),
		slog.Int("size", len(data)),
	)

	return &Result{URL: url, FileName: input.FileName, Key: key}, nil
}

// Remove deletes a previously uploaded object by its storage key.
func (s *Service) Remove(ctx context.Context, key string) error {
	if key == "" {
		return domain.NewValidationError("key", "required")
	}
	if err := s.storage.Delete(ctx, key); err != nil {
		return domain.Unavailable("delete file", err)
	}
	s.log.InfoContext(ctx, "file removed", slog.String("key", key))
	return nil
}

// decode accepts raw base64 or a data URL ("data:image/png;base64,....").
func decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}
	return base64.StdEncoding.DecodeString(s)
}
