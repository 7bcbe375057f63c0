package review

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ListReviews returns reviews with the given status; nil returns all of them.
func (s *Service) ListReviews(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error) {
	if status != nil && !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}

	reviews, err := s.reviews.List(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

// ListPublic returns approved reviews only.
func (s *Service) ListPublic(ctx context.Context) ([]domain.Review, error) {
	approved := domain.ReviewStatusApproved
	return s.ListReviews(ctx, &approved)
}

// SubmitReview stores a review awaiting moderation.
func (s *Service) SubmitReview(ctx context.Context, input SubmitInput) (*domain.Review, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.reviews.Create(ctx, domain.Review{
		AuthorName: strings.TrimSpace(input.AuthorName),
		AuthorRole: domain.TrimOrNil(input.AuthorRole),
		Rating:     input.Rating,
		Text:       strings.TrimSpace(input.Text),
		Status:     domain.ReviewStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.InfoContext(ctx, "review submitted",
		slog.Int64("review_id", created.ID),
		slog.Int("rating", created.Rating),
	)
	return created, nil
}

// SetStatus moves a review between pending, approved and rejected.
// Rejecting an approved review unpublishes it.
func (s *Service) SetStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError("status", "invalid status")
	}

	updated, err := s.reviews.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, fmt.Errorf("update review status: %w", err)
	}

	s.log.InfoContext(ctx, "review moderated",
		slog.Int64("review_id", id),
		slog.String("status", string(status)),
	)
	return updated, nil
}

// DeleteReview removes a review permanently.
func (s *Service) DeleteReview(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}
	if err := s.reviews.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.log.InfoContext(ctx, "review deleted", slog.Int64("review_id", id))
	return nil
}
