package console

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

// ResultRequest converts a result into the request body used to create or
// update it.
func ResultRequest(r domain.Result) api.ResultRequest {
	req := api.ResultRequest{
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
	}
	if r.Result != nil {
		s := string(*r.Result)
		req.Result = &s
	}
	return req
}

// ResultManager drives the results view. Filtering happens in memory over
// the last loaded list.
type ResultManager struct {
	results resultAPI
	notify  Notifier
	confirm Confirmer
	log     *slog.Logger

	View *View[domain.Result, domain.ResultFilter]
}

// NewResultManager creates a ResultManager.
func NewResultManager(log *slog.Logger, results resultAPI, notify Notifier, confirmer Confirmer) *ResultManager {
	return &ResultManager{
		results: results,
		notify:  notify,
		confirm: confirmer,
		log:     log.With("console", "results"),
		View:    &View[domain.Result, domain.ResultFilter]{},
	}
}

// List reloads every result.
func (m *ResultManager) List(ctx context.Context) ([]domain.Result, error) {
	return m.View.Load(ctx, func(ctx context.Context, _ domain.ResultFilter) ([]domain.Result, error) {
		results, err := m.results.List(ctx, client.ResultQuery{})
		if err != nil {
			return nil, fmt.Errorf("list results: %w", err)
		}
		return results, nil
	})
}

// SetFilter replaces the view filter.
func (m *ResultManager) SetFilter(f domain.ResultFilter) {
	m.View.Dispatch(FilterChanged[domain.ResultFilter]{Filter: f})
}

// Visible returns the loaded results that pass the current filter.
func (m *ResultManager) Visible() []domain.Result {
	s := m.View.State()
	return s.Filter.Apply(s.Items)
}

// Update saves a result and reloads the list.
func (m *ResultManager) Update(ctx context.Context, r domain.Result) error {
	if err := m.results.Update(ctx, ResultRequest(r)); err != nil {
		m.notify.Error("could not save result")
		return fmt.Errorf("update result %d: %w", r.ID, err)
	}
	m.notify.Success("result saved")
	m.reload(ctx, "update")
	return nil
}

// Delete removes a result after confirmation.
func (m *ResultManager) Delete(ctx context.Context, id int64) error {
	if err := confirm(ctx, m.confirm, "Delete result?"); err != nil {
		return err
	}
	if err := m.results.Delete(ctx, id); err != nil {
		m.notify.Error("could not delete result")
		return fmt.Errorf("delete result %d: %w", id, err)
	}
	m.notify.Success("result deleted")
	m.reload(ctx, "delete")
	return nil
}

func (m *ResultManager) reload(ctx context.Context, after string) {
	if _, err := m.List(ctx); err != nil {
		m.log.WarnContext(ctx, "reload after "+after, slog.String("error", err.Error()))
	}
}
