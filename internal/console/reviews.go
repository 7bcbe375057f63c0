package console

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

// ReviewManager moderates reviews.
type ReviewManager struct {
	reviews reviewAPI
	notify  Notifier
	confirm Confirmer
	log     *slog.Logger

	Public *View[domain.Review, struct{}]
	All    *View[domain.Review, struct{}]
}

// NewReviewManager creates a ReviewManager.
func NewReviewManager(log *slog.Logger, reviews reviewAPI, notify Notifier, confirmer Confirmer) *ReviewManager {
	return &ReviewManager{
		reviews: reviews,
		notify:  notify,
		confirm: confirmer,
		log:     log.With("console", "reviews"),
		Public:  &View[domain.Review, struct{}]{},
		All:     &View[domain.Review, struct{}]{},
	}
}

// Submit sends a new review. It is stored as pending until approved.
func (m *ReviewManager) Submit(ctx context.Context, author string, role *string, rating int, text string) (domain.Review, error) {
	var errs []domain.FieldError
	if strings.TrimSpace(author) == "" {
		errs = append(errs, domain.FieldError{Field: "author_name", Message: "required"})
	}
	if rating < domain.MinRating || rating > domain.MaxRating {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	if strings.TrimSpace(text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required"})
	}
	if len(errs) > 0 {
		return domain.Review{}, domain.NewValidationErrors(errs)
	}

	rv, err := m.reviews.Create(ctx, api.ReviewRequest{
		AuthorName: strings.TrimSpace(author),
		AuthorRole: role,
		Rating:     rating,
		Text:       strings.TrimSpace(text),
	})
	if err != nil {
		m.notify.Error("could not send review")
		return domain.Review{}, fmt.Errorf("submit review: %w", err)
	}
	m.notify.Success("review sent for moderation")
	return rv, nil
}

// ListPublic reloads the approved reviews. Anything else the server
// returns is dropped.
func (m *ReviewManager) ListPublic(ctx context.Context) ([]domain.Review, error) {
	return m.Public.Load(ctx, func(ctx context.Context, _ struct{}) ([]domain.Review, error) {
		reviews, err := m.reviews.List(ctx, client.ReviewFilter{})
		if err != nil {
			return nil, fmt.Errorf("list public reviews: %w", err)
		}
		out := make([]domain.Review, 0, len(reviews))
		for _, rv := range reviews {
			if rv.IsPublic() {
				out = append(out, rv)
			}
		}
		return out, nil
	})
}

// ListAll reloads reviews of every status.
func (m *ReviewManager) ListAll(ctx context.Context) ([]domain.Review, error) {
	return m.All.Load(ctx, func(ctx context.Context, _ struct{}) ([]domain.Review, error) {
		reviews, err := m.reviews.List(ctx, client.ReviewFilter{All: true})
		if err != nil {
			return nil, fmt.Errorf("list reviews: %w", err)
		}
		return reviews, nil
	})
}

// Approve publishes a review.
func (m *ReviewManager) Approve(ctx context.Context, id int64) error {
	return m.setStatus(ctx, id, domain.ReviewStatusApproved, "review published")
}

// Reject hides a review. Rejecting an approved review unpublishes it.
func (m *ReviewManager) Reject(ctx context.Context, id int64) error {
	return m.setStatus(ctx, id, domain.ReviewStatusRejected, "review rejected")
}

func (m *ReviewManager) setStatus(ctx context.Context, id int64, status domain.ReviewStatus, done string) error {
	if err := m.reviews.Update(ctx, id, status); err != nil {
		m.notify.Error("could not update review")
		return fmt.Errorf("set review %d %s: %w", id, status, err)
	}
	m.notify.Success(done)
	m.reload(ctx, "status change")
	return nil
}

// Delete removes a review after confirmation.
func (m *ReviewManager) Delete(ctx context.Context, id int64) error {
	if err := confirm(ctx, m.confirm, "Delete review?"); err != nil {
		return err
	}
	if err := m.reviews.Delete(ctx, id); err != nil {
		m.notify.Error("could not delete review")
		return fmt.Errorf("delete review %d: %w", id, err)
	}
	m.notify.Success("review deleted")
	m.reload(ctx, "delete")
	return nil
}

func (m *ReviewManager) reload(ctx context.Context, after string) {
	if _, err := m.ListAll(ctx); err != nil {
		m.log.WarnContext(ctx, "reload after "+after, slog.String("error", err.Error()))
	}
}
