package contest

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ListContests returns contests ordered by deadline, optionally by category.
func (s *Service) ListContests(ctx context.Context, category *domain.Category) ([]domain.Contest, error) {
	if category != nil && !category.IsValid() {
		return nil, domain.NewValidationError("category_id", "unknown category")
	}

	contests, err := s.contests.List(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}
	return contests, nil
}

// GetContest returns one contest.
func (s *Service) GetContest(ctx context.Context, id int64) (*domain.Contest, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.contests.GetByID(ctx, id)
}

// CreateContest adds a contest to the catalog. Price defaults to 200 and
// status to active; "#" and blank links are stored as null.
func (s *Service) CreateContest(ctx context.Context, input ContestInput) (*domain.Contest, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.contests.Create(ctx, input.toDomain())
	if err != nil {
		return nil, fmt.Errorf("create contest: %w", err)
	}

	s.log.InfoContext(ctx, "contest created",
		slog.Int64("contest_id", created.ID),
		slog.String("category", string(created.CategoryID)),
	)
	return created, nil
}

// UpdateContest replaces the editable fields of contest id.
func (s *Service) UpdateContest(ctx context.Context, id int64, input ContestInput) (*domain.Contest, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	c := input.toDomain()
	c.ID = id

	updated, err := s.contests.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("update contest: %w", err)
	}

	s.log.InfoContext(ctx, "contest updated", slog.Int64("contest_id", id))
	return updated, nil
}

// DeleteContest removes a contest. Applications and results keep their
// contest_name and lose the reference.
func (s *Service) DeleteContest(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}
	if err := s.contests.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contest: %w", err)
	}

	s.log.InfoContext(ctx, "contest deleted", slog.Int64("contest_id", id))
	return nil
}
