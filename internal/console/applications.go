package console

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

// SubmitMode selects how a submission reaches the server.
type SubmitMode int

const (
	// SubmitDirect posts the application as is.
	SubmitDirect SubmitMode = iota
	// SubmitPayment opens a payment session carrying the application.
	SubmitPayment
)

// SubmissionForm is what a participant fills in.
type SubmissionForm struct {
	domain.ApplicationFields
	ContestID      *int64
	GalleryConsent bool
	// Price is the contest fee, used in payment mode.
	Price int
}

// WorkFile is the raw uploaded work.
type WorkFile struct {
	Name string
	Type string
	Data []byte
}

// SubmitOutcome is the result of Submit. Exactly one field is set.
type SubmitOutcome struct {
	Application     *domain.Application
	ConfirmationURL string
}

// EditFields are the admin-editable fields of an application.
type EditFields struct {
	domain.ApplicationFields
	Status domain.ApplicationStatus
	Result *domain.Placement
}

// ApplicationManager drives the application list and trash.
type ApplicationManager struct {
	apps     applicationAPI
	results  resultAPI
	payments *PaymentHandoff
	notify   Notifier
	confirm  Confirmer
	log      *slog.Logger

	Active *View[domain.Application, struct{}]
	Trash  *View[domain.Application, struct{}]
}

// NewApplicationManager creates an ApplicationManager.
func NewApplicationManager(
	log *slog.Logger,
	apps applicationAPI,
	results resultAPI,
	payments *PaymentHandoff,
	notify Notifier,
	confirmer Confirmer,
) *ApplicationManager {
	return &ApplicationManager{
		apps:     apps,
		results:  results,
		payments: payments,
		notify:   notify,
		confirm:  confirmer,
		log:      log.With("console", "applications"),
		Active:   &View[domain.Application, struct{}]{},
		Trash:    &View[domain.Application, struct{}]{},
	}
}

// Submit validates the form locally and sends it. In payment mode the
// returned outcome carries the confirmation URL the payer was sent to.
func (m *ApplicationManager) Submit(ctx context.Context, form SubmissionForm, file WorkFile, mode SubmitMode) (SubmitOutcome, error) {
	errs := form.Validate()
	if len(file.Data) == 0 || strings.TrimSpace(file.Name) == "" {
		errs = append(errs, domain.FieldError{Field: "work_file", Message: "required"})
	}
	if len(errs) > 0 {
		return SubmitOutcome{}, &domain.ValidationError{Errors: errs}
	}

	req := api.ApplicationRequest{
		FullName:       strings.TrimSpace(form.FullName),
		Age:            form.Age,
		Teacher:        form.Teacher,
		Institution:    form.Institution,
		WorkTitle:      strings.TrimSpace(form.WorkTitle),
		Email:          strings.TrimSpace(form.Email),
		ContestID:      form.ContestID,
		ContestName:    strings.TrimSpace(form.ContestName),
		GalleryConsent: form.GalleryConsent,
		WorkFile:       base64.StdEncoding.EncodeToString(file.Data),
		FileName:       file.Name,
		FileType:       file.Type,
	}

	switch mode {
	case SubmitDirect:
		app, err := m.apps.Create(ctx, req)
		if err != nil {
			m.notify.Error("could not submit application")
			return SubmitOutcome{}, fmt.Errorf("submit application: %w", err)
		}
		m.notify.Success("application submitted")
		return SubmitOutcome{Application: &app}, nil
	case SubmitPayment:
		url, err := m.payments.Initiate(ctx, PaymentOrder{
			ContestName: req.ContestName,
			Price:       form.Price,
			Email:       req.Email,
			Application: req,
		})
		if err != nil {
			m.notify.Error("could not start payment")
			return SubmitOutcome{}, err
		}
		return SubmitOutcome{ConfirmationURL: url}, nil
	default:
		return SubmitOutcome{}, fmt.Errorf("unknown submit mode %d", mode)
	}
}

// ListActive reloads and returns the applications outside the trash.
func (m *ApplicationManager) ListActive(ctx context.Context) ([]domain.Application, error) {
	return m.Active.Load(ctx, m.fetch(false))
}

// ListTrashed reloads and returns the trashed applications.
func (m *ApplicationManager) ListTrashed(ctx context.Context) ([]domain.Application, error) {
	return m.Trash.Load(ctx, m.fetch(true))
}

// Reload refreshes the active list and the trash concurrently.
func (m *ApplicationManager) Reload(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_, err := m.ListActive(gctx)
		return err
	})
	g.Go(func() error {
		_, err := m.ListTrashed(gctx)
		return err
	})
	return g.Wait()
}

// Counts returns the sizes of the active list and the trash as last loaded.
func (m *ApplicationManager) Counts() (active, trashed int) {
	return len(m.Active.State().Items), len(m.Trash.State().Items)
}

func (m *ApplicationManager) fetch(trashed bool) func(context.Context, struct{}) ([]domain.Application, error) {
	return func(ctx context.Context, _ struct{}) ([]domain.Application, error) {
		apps, err := m.apps.List(ctx, client.ApplicationFilter{Trashed: trashed})
		if err != nil {
			return nil, fmt.Errorf("list applications (trashed=%t): %w", trashed, err)
		}
		return apps, nil
	}
}

// Edit saves the editable fields of an application and reloads the list.
func (m *ApplicationManager) Edit(ctx context.Context, id int64, f EditFields) error {
	req := api.ApplicationUpdateRequest{
		ID:          id,
		FullName:    f.FullName,
		Age:         f.Age,
		Teacher:     f.Teacher,
		Institution: f.Institution,
		WorkTitle:   f.WorkTitle,
		Email:       f.Email,
		ContestName: f.ContestName,
		Status:      string(f.Status),
	}
	if f.Result != nil {
		s := string(*f.Result)
		req.Result = &s
	}

	if err := m.apps.Update(ctx, req); err != nil {
		m.notify.Error("could not save application")
		return fmt.Errorf("update application %d: %w", id, err)
	}
	m.notify.Success("application saved")

	if _, err := m.ListActive(ctx); err != nil {
		m.log.WarnContext(ctx, "reload after edit", slog.String("error", err.Error()))
	}
	return nil
}

// SoftDelete moves an application to the trash after confirmation.
func (m *ApplicationManager) SoftDelete(ctx context.Context, id int64) error {
	return m.move(ctx, id, false)
}

// Restore takes an application out of the trash after confirmation.
func (m *ApplicationManager) Restore(ctx context.Context, id int64) error {
	return m.move(ctx, id, true)
}

func (m *ApplicationManager) move(ctx context.Context, id int64, restore bool) error {
	prompt, done, verb := "Move application to trash?", "application moved to trash", "delete"
	if restore {
		prompt, done, verb = "Restore application?", "application restored", "restore"
	}

	if err := confirm(ctx, m.confirm, prompt); err != nil {
		return err
	}

	if err := m.apps.Delete(ctx, id, client.DeleteOptions{Restore: restore}); err != nil {
		m.notify.Error("could not " + verb + " application")
		return fmt.Errorf("%s application %d: %w", verb, id, err)
	}
	m.notify.Success(done)

	if err := m.Reload(ctx); err != nil {
		m.log.WarnContext(ctx, "reload after "+verb, slog.String("error", err.Error()))
	}
	return nil
}

// PromoteToResult creates a result from a placed application. An
// application without a placement is refused before any request is sent.
func (m *ApplicationManager) PromoteToResult(ctx context.Context, app domain.Application) (domain.Result, error) {
	if app.Result == nil {
		m.notify.Error(ErrResultNotSet.Error())
		return domain.Result{}, ErrResultNotSet
	}

	res, err := m.results.Create(ctx, ResultRequest(domain.ResultFromApplication(app)))
	switch {
	case err == nil:
		m.notify.Success("result created")
		return res, nil
	case client.IsConflict(err):
		m.notify.Error(ErrDuplicateResult.Error())
		return domain.Result{}, ErrDuplicateResult
	default:
		m.notify.Error("could not create result")
		return domain.Result{}, fmt.Errorf("promote application %d: %w", app.ID, err)
	}
}

// IsValidation reports whether err carries field errors from local or
// server-side validation.
func IsValidation(err error) bool {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return true
	}
	return client.IsStatus(err, http.StatusBadRequest)
}
