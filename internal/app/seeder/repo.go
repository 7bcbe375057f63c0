// Package seeder loads demo contests, reviews and results into an empty
// installation.
package seeder

import (
	"context"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ContestStore is implemented by contest.Repo.
type ContestStore interface {
	List(ctx context.Context, category *domain.Category) ([]domain.Contest, error)
	Create(ctx context.Context, c domain.Contest) (*domain.Contest, error)
}

// ReviewStore is implemented by review.Repo.
type ReviewStore interface {
	List(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error)
	Create(ctx context.Context, rv domain.Review) (*domain.Review, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error)
}

// ResultStore is implemented by result.Repo.
type ResultStore interface {
	List(ctx context.Context, f domain.ResultListParams) ([]domain.Result, error)
	Create(ctx context.Context, res domain.Result) (*domain.Result, error)
}

// Stores groups the repositories the pipeline writes to.
type Stores struct {
	Contests ContestStore
	Reviews  ReviewStore
	Results  ResultStore
}
