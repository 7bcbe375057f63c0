// Package review implements the Review repository using PostgreSQL.
package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	"github.com/heartmarshall/artcontest/internal/adapter/postgres"
	"github.com/heartmarshall/artcontest/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new review repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "author_name", "author_role", "rating", "text", "status",
	"created_at", "updated_at", "published_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID          int64      `db:"id"`
	AuthorName  string     `db:"author_name"`
	AuthorRole  *string    `db:"author_role"`
	Rating      int        `db:"rating"`
	Text        string     `db:"text"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	PublishedAt *time.Time `db:"published_at"`
}

func (r row) toDomain() domain.Review {
	return domain.Review{
		ID:          r.ID,
		AuthorName:  r.AuthorName,
		AuthorRole:  r.AuthorRole,
		Rating:      r.Rating,
		Text:        r.Text,
		Status:      domain.ReviewStatus(r.Status),
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
		PublishedAt: r.PublishedAt,
	}
}

// List returns reviews newest first. A nil status returns every review.
func (r *Repo) List(ctx context.Context, status *domain.ReviewStatus) ([]domain.Review, error) {
	q := postgres.Builder.Select(columns...).From("reviews").OrderBy("created_at DESC", "id DESC")
	if status != nil {
		q = q.Where(sq.Eq{"status": string(*status)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list reviews: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	reviews := make([]domain.Review, len(rows))
	for i, rw := range rows {
		reviews[i] = rw.toDomain()
	}
	return reviews, nil
}

// Create inserts a pending review.
func (r *Repo) Create(ctx context.Context, rv domain.Review) (*domain.Review, error) {
	query, args, err := postgres.Builder.Insert("reviews").
		Columns("author_name", "author_role", "rating", "text", "status").
		Values(rv.AuthorName, rv.AuthorRole, rv.Rating, rv.Text, string(domain.ReviewStatusPending)).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert review: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "review", 0)
	}

	created := rw.toDomain()
	return &created, nil
}

// UpdateStatus moves a review to status. Approval stamps published_at,
// any other status clears it.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.ReviewStatus) (*domain.Review, error) {
	b := postgres.Builder.Update("reviews").
		Set("status", string(status)).
		Set("updated_at", sq.Expr("now()"))
	if status == domain.ReviewStatusApproved {
		b = b.Set("published_at", sq.Expr("COALESCE(published_at, now())"))
	} else {
		b = b.Set("published_at", nil)
	}

	query, args, err := b.Where(sq.Eq{"id": id}).Suffix(returning).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update review status: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "review", id)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a review permanently.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Delete("reviews").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete review: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "review", id)
	}
	return postgres.ExpectAffected(tag, "review", id)
}
