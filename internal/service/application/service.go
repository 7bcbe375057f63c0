package application

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/upload"
)

type applicationRepo interface {
	ListActive(ctx context.Context) ([]domain.Application, error)
	ListTrashed(ctx context.Context) ([]domain.Application, error)
	GetByID(ctx context.Context, id int64) (*domain.Application, error)
	Create(ctx context.Context, a domain.Application) (*domain.Application, error)
	Update(ctx context.Context, a domain.Application) (*domain.Application, error)
	SoftDelete(ctx context.Context, id int64) error
	Restore(ctx context.Context, id int64) error
}

type contestRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Contest, error)
	IncrementParticipants(ctx context.Context, id int64) error
}

type uploader interface {
	Upload(ctx context.Context, input upload.Input) (*upload.Result, error)
	Remove(ctx context.Context, key string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// WorksFolder is the storage folder for submitted works.
const WorksFolder = "works"

// Service provides application submission and moderation operations.
type Service struct {
	applications applicationRepo
	contests     contestRepo
	files        uploader
	tx           txManager
	log          *slog.Logger
	now          func() time.Time
}

// NewService creates a new application service.
func NewService(
	log *slog.Logger,
	applications applicationRepo,
	contests contestRepo,
	files uploader,
	tx txManager,
) *Service {
	return &Service{
		applications: applications,
		contests:     contests,
		files:        files,
		tx:           tx,
		log:          log.With("service", "application"),
		now:          time.Now,
	}
}
