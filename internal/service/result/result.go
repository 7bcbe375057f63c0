package result

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ListResults returns results matching params, newest first.
func (s *Service) ListResults(ctx context.Context, params domain.ResultListParams) ([]domain.Result, error) {
	if params.Result != nil && !params.Result.IsValid() {
		return nil, domain.NewValidationError("result", "invalid placement")
	}

	results, err := s.results.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	return results, nil
}

// GetResult returns one result.
func (s *Service) GetResult(ctx context.Context, id int64) (*domain.Result, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.results.GetByID(ctx, id)
}

// CreateResult publishes a result. An application can be promoted once:
// a second result for the same application_id fails with domain.ErrAlreadyExists.
func (s *Service) CreateResult(ctx context.Context, input ResultInput) (*domain.Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if input.ApplicationID != nil {
		exists, err := s.results.ExistsByApplicationID(ctx, *input.ApplicationID)
		if err != nil {
			return nil, fmt.Errorf("check duplicate result: %w", err)
		}
		if exists {
			return nil, fmt.Errorf("result for application %d: %w", *input.ApplicationID, domain.ErrAlreadyExists)
		}
	}

	// The unique index still guards the race between the check and the insert.
	created, err := s.results.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create result: %w", err)
	}

	attrs := []any{slog.Int64("result_id", created.ID)}
	if created.ApplicationID != nil {
		attrs = append(attrs, slog.Int64("application_id", *created.ApplicationID))
	}
	s.log.InfoContext(ctx, "result created", attrs...)
	return created, nil
}

// UpdateResult replaces every writable field of result id.
func (s *Service) UpdateResult(ctx context.Context, id int64, input ResultInput) (*domain.Result, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	r := input.toDomain()
	r.ID = id

	updated, err := s.results.Update(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("update result: %w", err)
	}

	s.log.InfoContext(ctx, "result updated", slog.Int64("result_id", id))
	return updated, nil
}

// DeleteResult removes a result permanently.
func (s *Service) DeleteResult(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}
	if err := s.results.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete result: %w", err)
	}

	s.log.InfoContext(ctx, "result deleted", slog.Int64("result_id", id))
	return nil
}
