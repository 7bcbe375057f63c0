package contest

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

type contestRepo interface {
	List(ctx context.Context, category *domain.Category) ([]domain.Contest, error)
	GetByID(ctx context.Context, id int64) (*domain.Contest, error)
	Create(ctx context.Context, c domain.Contest) (*domain.Contest, error)
	Update(ctx context.Context, c domain.Contest) (*domain.Contest, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides contest catalog operations.
type Service struct {
	contests contestRepo
	log      *slog.Logger
}

// NewService creates a new contest service.
func NewService(log *slog.Logger, contests contestRepo) *Service {
	return &Service{
		contests: contests,
		log:      log.With("service", "contest"),
	}
}
