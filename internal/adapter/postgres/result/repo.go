// Package result implements the Result repository using PostgreSQL.
package result

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

// Repo provides result persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new result repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "application_id", "full_name", "age", "teacher", "institution",
	"work_title", "email", "contest_id", "contest_name", "work_file_url",
	"result", "place", "score", "diploma_url", "notes", "gallery_consent",
	"created_at", "updated_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID             int64     `db:"id"`
	ApplicationID  *int64    `db:"application_id"`
	FullName       string    `db:"full_name"`
	Age            *int      `db:"age"`
	Teacher        *string   `db:"teacher"`
	Institution    *string   `db:"institution"`
	WorkTitle      *string   `db:"work_title"`
	Email          *string   `db:"email"`
	ContestID      *int64    `db:"contest_id"`
	ContestName    *string   `db:"contest_name"`
	WorkFileURL    *string   `db:"work_file_url"`
	Result         *string   `db:"result"`
	Place          *int      `db:"place"`
	Score          *float64  `db:"score"`
	DiplomaURL     *string   `db:"diploma_url"`
	Notes          *string   `db:"notes"`
	GalleryConsent bool      `db:"gallery_consent"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Result {
	res := domain.Result{
		ID:             r.ID,
		ApplicationID:  r.ApplicationID,
		FullName:       r.FullName,
		Age:            r.Age,
		Teacher:        r.Teacher,
		Institution:    r.Institution,
		WorkTitle:      r.WorkTitle,
		Email:          r.Email,
		ContestID:      r.ContestID,
		ContestName:    r.ContestName,
		WorkFileURL:    r.WorkFileURL,
		Place:          r.Place,
		Score:          r.Score,
		DiplomaURL:     r.DiplomaURL,
		Notes:          r.Notes,
		GalleryConsent: r.GalleryConsent,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Result != nil {
		p := domain.Placement(*r.Result)
		res.Result = &p
	}
	return res
}

func placementArg(p *domain.Placement) *string {
	if p == nil {
		return nil
	}
	s := string(*p)
	return &s
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// List returns results matching f, newest first.
func (r *Repo) List(ctx context.Context, f domain.ResultListParams) ([]domain.Result, error) {
	q := postgres.Builder.Select(columns...).From("results").OrderBy("created_at DESC", "id DESC")

	if f.ContestID != nil {
		q = q.Where(sq.Eq{"contest_id": *f.ContestID})
	}
	if name := strings.TrimSpace(f.ContestName); name != "" {
		q = q.Where(sq.ILike{"contest_name": "%" + name + "%"})
	}
	if f.Result != nil {
		q = q.Where(sq.Eq{"result": string(*f.Result)})
	}
	if f.Place != nil {
		q = q.Where(sq.Eq{"place": *f.Place})
	}
	if f.ConsentOnly || f.GalleryOnly {
		q = q.Where(sq.Eq{"gallery_consent": true})
	}
	if f.GalleryOnly {
		q = q.Where(sq.NotEq{"work_file_url": nil}).
			Where(sq.NotEq{"work_file_url": ""})
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list results: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}

	results := make([]domain.Result, len(rows))
	for i, rw := range rows {
		results[i] = rw.toDomain()
	}
	return results, nil
}

// GetByID returns a result by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Result, error) {
	query, args, err := postgres.Builder.Select(columns...).From("results").
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get result: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "result", id)
	}

	res := rw.toDomain()
	return &res, nil
}

// ExistsByApplicationID reports whether a result was already created from the application.
func (r *Repo) ExistsByApplicationID(ctx context.Context, applicationID int64) (bool, error) {
	query, args, err := postgres.Builder.Select("1").Prefix("SELECT EXISTS (").
		From("results").
		Where(sq.Eq{"application_id": applicationID}).
		Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build result exists: %w", err)
	}

	var exists bool
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&exists); err != nil {
		return false, fmt.Errorf("result exists for application %d: %w", applicationID, err)
	}
	return exists, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a result. A second result for the same application
// violates ux_results_application_id and maps to domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, res domain.Result) (*domain.Result, error) {
	query, args, err := postgres.Builder.Insert("results").
		Columns("application_id", "full_name", "age", "teacher", "institution",
			"work_title", "email", "contest_id", "contest_name", "work_file_url",
			"result", "place", "score", "diploma_url", "notes", "gallery_consent").
		Values(res.ApplicationID, res.FullName, res.Age, res.Teacher, res.Institution,
			res.WorkTitle, res.Email, res.ContestID, res.ContestName, res.WorkFileURL,
			placementArg(res.Result), res.Place, res.Score, res.DiplomaURL, res.Notes, res.GalleryConsent).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert result: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		var appID int64
		if res.ApplicationID != nil {
			appID = *res.ApplicationID
		}
		return nil, postgres.MapError(err, "result for application", appID)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update overwrites the editable fields of result res.ID.
func (r *Repo) Update(ctx context.Context, res domain.Result) (*domain.Result, error) {
	query, args, err := postgres.Builder.Update("results").
		Set("full_name", res.FullName).
		Set("age", res.Age).
		Set("teacher", res.Teacher).
		Set("institution", res.Institution).
		Set("work_title", res.WorkTitle).
		Set("email", res.Email).
		Set("contest_name", res.ContestName).
		Set("work_file_url", res.WorkFileURL).
		Set("result", placementArg(res.Result)).
		Set("place", res.Place).
		Set("score", res.Score).
		Set("diploma_url", res.DiplomaURL).
		Set("notes", res.Notes).
		Set("gallery_consent", res.GalleryConsent).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": res.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update result: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "result", res.ID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// Delete removes a result permanently.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	query, args, err := postgres.Builder.Delete("results").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("build delete result: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "result", id)
	}
	return postgres.ExpectAffected(tag, "result", id)
}
