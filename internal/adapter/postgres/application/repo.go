// Package application implements the Application repository using PostgreSQL.
// Applications are soft-deleted: a non-null deleted_at moves a row to the trash.
package application

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

// Repo provides application persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new application repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

var columns = []string{
	"id", "full_name", "age", "teacher", "institution", "work_title", "email",
	"contest_id", "contest_name", "work_file_url", "status", "result",
	"gallery_consent", "payment_status", "payment_id",
	"created_at", "updated_at", "deleted_at",
}

var returning = "RETURNING " + strings.Join(columns, ", ")

type row struct {
	ID             int64      `db:"id"`
	FullName       string     `db:"full_name"`
	Age            int        `db:"age"`
	Teacher        *string    `db:"teacher"`
	Institution    *string    `db:"institution"`
	WorkTitle      string     `db:"work_title"`
	Email          string     `db:"email"`
	ContestID      *int64     `db:"contest_id"`
	ContestName    string     `db:"contest_name"`
	WorkFileURL    string     `db:"work_file_url"`
	Status         string     `db:"status"`
	Result         *string    `db:"result"`
	GalleryConsent bool       `db:"gallery_consent"`
	PaymentStatus  string     `db:"payment_status"`
	PaymentID      *string    `db:"payment_id"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
	DeletedAt      *time.Time `db:"deleted_at"`
}

func (r row) toDomain() domain.Application {
	a := domain.Application{
		ID:             r.ID,
		FullName:       r.FullName,
		Age:            r.Age,
		Teacher:        r.Teacher,
		Institution:    r.Institution,
		WorkTitle:      r.WorkTitle,
		Email:          r.Email,
		ContestID:      r.ContestID,
		ContestName:    r.ContestName,
		WorkFileURL:    r.WorkFileURL,
		Status:         domain.ApplicationStatus(r.Status),
		GalleryConsent: r.GalleryConsent,
		PaymentStatus:  domain.PaymentStatus(r.PaymentStatus),
		PaymentID:      r.PaymentID,
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
		DeletedAt:      r.DeletedAt,
	}
	if r.Result != nil {
		p := domain.Placement(*r.Result)
		a.Result = &p
	}
	return a
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

// ListActive returns applications that are not in the trash, newest first.
func (r *Repo) ListActive(ctx context.Context) ([]domain.Application, error) {
	return r.list(ctx, sq.Eq{"deleted_at": nil}, "created_at DESC")
}

// ListTrashed returns soft-deleted applications, most recently deleted first.
func (r *Repo) ListTrashed(ctx context.Context) ([]domain.Application, error) {
	return r.list(ctx, sq.NotEq{"deleted_at": nil}, "deleted_at DESC")
}

func (r *Repo) list(ctx context.Context, where sq.Sqlizer, order string) ([]domain.Application, error) {
	query, args, err := postgres.Builder.Select(columns...).From("applications").
		Where(where).
		OrderBy(order, "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list applications: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	apps := make([]domain.Application, len(rows))
	for i, rw := range rows {
		apps[i] = rw.toDomain()
	}
	return apps, nil
}

// ListPendingPayments returns live applications whose payment is still
// pending and that were created after since.
func (r *Repo) ListPendingPayments(ctx context.Context, since time.Time) ([]domain.Application, error) {
	return r.list(ctx, sq.And{
		sq.Eq{"payment_status": string(domain.PaymentStatusPending), "deleted_at": nil},
		sq.NotEq{"payment_id": nil},
		sq.Gt{"created_at": since},
	}, "created_at ASC")
}

// GetByID returns an application regardless of its trash state.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Application, error) {
	query, args, err := postgres.Builder.Select(columns...).From("applications").
		Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get application: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "application", id)
	}

	a := rw.toDomain()
	return &a, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new application.
func (r *Repo) Create(ctx context.Context, a domain.Application) (*domain.Application, error) {
	status := a.Status
	if status == "" {
		status = domain.ApplicationStatusNew
	}
	payment := a.PaymentStatus
	if payment == "" {
		payment = domain.PaymentStatusNone
	}

	query, args, err := postgres.Builder.Insert("applications").
		Columns("full_name", "age", "teacher", "institution", "work_title", "email",
			"contest_id", "contest_name", "work_file_url", "status", "result",
			"gallery_consent", "payment_status", "payment_id").
		Values(a.FullName, a.Age, a.Teacher, a.Institution, a.WorkTitle, a.Email,
			a.ContestID, a.ContestName, a.WorkFileURL, string(status), placementArg(a.Result),
			a.GalleryConsent, string(payment), a.PaymentID).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert application: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "application", 0)
	}

	created := rw.toDomain()
	return &created, nil
}

// Update overwrites the editable fields of a live application.
// Trashed applications are reported as not found.
func (r *Repo) Update(ctx context.Context, a domain.Application) (*domain.Application, error) {
	query, args, err := postgres.Builder.Update("applications").
		Set("full_name", a.FullName).
		Set("age", a.Age).
		Set("teacher", a.Teacher).
		Set("institution", a.Institution).
		Set("work_title", a.WorkTitle).
		Set("email", a.Email).
		Set("contest_name", a.ContestName).
		Set("status", string(a.Status)).
		Set("result", placementArg(a.Result)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": a.ID, "deleted_at": nil}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update application: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "application", a.ID)
	}

	updated := rw.toDomain()
	return &updated, nil
}

// SoftDelete moves a live application to the trash.
func (r *Repo) SoftDelete(ctx context.Context, id int64) error {
	return r.exec(ctx, id, postgres.Builder.Update("applications").
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id, "deleted_at": nil}))
}

// Restore returns a trashed application to the active list.
func (r *Repo) Restore(ctx context.Context, id int64) error {
	return r.exec(ctx, id, postgres.Builder.Update("applications").
		Set("deleted_at", nil).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.And{sq.Eq{"id": id}, sq.NotEq{"deleted_at": nil}}))
}

// AttachPayment records the gateway payment id and marks the payment pending.
func (r *Repo) AttachPayment(ctx context.Context, id int64, paymentID string) error {
	return r.exec(ctx, id, postgres.Builder.Update("applications").
		Set("payment_id", paymentID).
		Set("payment_status", string(domain.PaymentStatusPending)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}))
}

// SetPaymentStatus updates the payment status of the application that owns paymentID.
func (r *Repo) SetPaymentStatus(ctx context.Context, paymentID string, status domain.PaymentStatus) (*domain.Application, error) {
	query, args, err := postgres.Builder.Update("applications").
		Set("payment_status", string(status)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"payment_id": paymentID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build set payment status: %w", err)
	}

	var rw row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &rw, query, args...); err != nil {
		return nil, postgres.MapError(err, "application with payment "+paymentID, 0)
	}

	a := rw.toDomain()
	return &a, nil
}

// PurgeTrashed permanently removes applications trashed before the given
// time. Results promoted from them keep their copy of the data.
func (r *Repo) PurgeTrashed(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := postgres.Builder.Delete("applications").
		Where(sq.And{sq.NotEq{"deleted_at": nil}, sq.Lt{"deleted_at": before}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge applications: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("purge applications: %w", err)
	}
	return tag.RowsAffected(), nil
}

// CountTrashed reports how many applications were trashed before the given
// time, that is how many PurgeTrashed would remove.
func (r *Repo) CountTrashed(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := postgres.Builder.Select("count(*)").
		From("applications").
		Where(sq.And{sq.NotEq{"deleted_at": nil}, sq.Lt{"deleted_at": before}}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count trashed: %w", err)
	}

	var n int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count trashed applications: %w", err)
	}
	return n, nil
}

func (r *Repo) exec(ctx context.Context, id int64, b sq.UpdateBuilder) error {
	query, args, err := b.ToSql()
	if err != nil {
		return fmt.Errorf("build application update: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...)
	if err != nil {
		return postgres.MapError(err, "application", id)
	}
	return postgres.ExpectAffected(tag, "application", id)
}
