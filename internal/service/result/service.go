package result

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

type resultRepo interface {
	List(ctx context.Context, params domain.ResultListParams) ([]domain.Result, error)
	GetByID(ctx context.Context, id int64) (*domain.Result, error)
	ExistsByApplicationID(ctx context.Context, applicationID int64) (bool, error)
	Create(ctx context.Context, r domain.Result) (*domain.Result, error)
	Update(ctx context.Context, r domain.Result) (*domain.Result, error)
	Delete(ctx context.Context, id int64) error
}

// DefaultPublicLimit caps the public listings.
const DefaultPublicLimit = 500

// Service provides result publication operations.
type Service struct {
	results resultRepo
	log     *slog.Logger
}

// NewService creates a new result service.
func NewService(log *slog.Logger, results resultRepo) *Service {
	return &Service{
		results: results,
		log:     log.With("service", "result"),
	}
}
