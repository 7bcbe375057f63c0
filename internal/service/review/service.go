package review

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

type reviewRepo interface {
	List(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error)
	Create(ctx context.Context, r domain.Review) (*domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error)
	Delete(ctx context.Context, id int64) error
}

// Service provides review submission and moderation.
type Service struct {
	reviews reviewRepo
	log     *slog.Logger
}

// NewService creates a new review service.
func NewService(log *slog.Logger, reviews reviewRepo) *Service {
	return &Service{
		reviews: reviews,
		log:     log.With("service", "review"),
	}
}
