// Package contest implements the Contest repository using PostgreSQL.
package contest

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

// Repo provides contest persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new contest repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "title", "description", "category_id", "deadline", "price", "status",
	"rules_file_url", "diploma_sample_url", "image_url", "is_popular",
	"participants_count", "created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID                int64     `db:"id"`
	Title             string    `db:"title"`
	Description       string    `db:"description"`
	CategoryID        string    `db:"category_id"`
	Deadline          time.Time `db:"deadline"`
	Price             int       `db:"price"`
	Status            string    `db:"status"`
	RulesFileURL      *string   `db:"rules_file_url"`
	DiplomaSampleURL  *string   `db:"diploma_sample_url"`
	ImageURL          *string   `db:"image_url"`
	IsPopular         bool      `db:"is_popular"`
	ParticipantsCount int       `db:"participants_count"`
	CreatedAt         time.Time `db:"created_at"`
	UpdatedAt         time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Contest {
	return domain.Contest{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		CategoryID:   domain.Category(r.CategoryID),
		Deadline:     r.Deadline,
		Price:        r.Price,
		Status:       domain.ContestStatus(r.Status),
		RulesLink:    r.RulesFileURL,
		DiplomaImage: r.DiplomaSampleURL,
		Image:        r.ImageURL,
		IsPopular:    r.IsPopular,
		Participants: r.ParticipantsCount,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns contests ordered by deadline, optionally limited to one category.
func (r *Repo) List(ctx context.Context, category *domain.Category) ([]domain.Contest, error) {
	q := postgres.Builder.Select(columns...).From("contests").OrderBy("deadline ASC", "id ASC")
	if category != nil {
		q = q.Where(sq.Eq{"category_id": string(*category)})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list contests: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list contests: %w", err)
	}

	contests := make([]domain.Contest, len(rows))
	for i, rw := range rows {
		contests[i] = rw.toDomain()
	}
	return contests, nil
}

// GetByID returns a contest by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Contest, error) {
	query, args, err := postgres.Builder.Select(columns...).From("contests").
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get contest: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "contest", id)
	}

	c := rw.toDomain()
	return &c, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a contest and returns the stored row.
func (r *Repo) Create(ctx context.Context, c domain.Contest) (*domain.Contest, error) {
	query, args, err := postgres.Builder.Insert("contests").
		Columns("title", "description", "category_id", "deadline", "price", "status",
			"rules_file_url", "diploma_sample_url", "image_url", "is_popular").
		Values(c.Title, c.Description, string(c.CategoryID), c.Deadline, c.Price, string(c.Status),
			c.RulesLink, c.DiplomaImage, c.Image, c.IsPopular).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert contest: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "contest", 0)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update overwrites the editable fields of contest c.ID.
func (r *Repo) Update(ctx context.Context, c domain.Contest) (*domain.Contest, error) {
	query, args, err := postgres.Builder.Update("contests").
		Set("title", c.Title).
		Set("description", c.Description).
		Set("category_id", string(c.CategoryID)).
		Set("deadline", c.Deadline).
		Set("price", c.Price).
		Set("status", string(c.Status)).
		Set("rules_file_url", c.RulesLink).
		Set("diploma_sample_url", c.DiplomaImage).
		Set("image_url", c.Image).
		Set("is_popular", c.IsPopular).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": c.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update contest: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "contest", c.ID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// IncrementParticipants bumps the participant counter of a contest.
func (r *Repo) IncrementParticipants(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Update("contests").
		Set("participants_count", sq.Expr("participants_count + 1")).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build increment participants: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "contest", id)
	}
	return postgres.ExpectAffected(tag, "contest", id)
}

// Delete removes a contest permanently.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Delete("contests").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete contest: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "contest", id)
	}
	return postgres.ExpectAffected(tag, "contest", id)
}
