package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
)

// ListApplications returns the active list, or the trash when trashed is set.
func (s *Service) ListApplications(ctx context.Context, trashed bool) ([]domain.Application, error) {
	if trashed {
		apps, err := s.applications.ListTrashed(ctx)
		if err != nil {
			return nil, fmt.Errorf("list trashed applications: %w", err)
		}
		return apps, nil
	}

	apps, err := s.applications.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active applications: %w", err)
	}
	return apps, nil
}

// GetApplication returns one application in either list.
func (s *Service) GetApplication(ctx context.Context, id int64) (*domain.Application, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "required")
	}
	return s.applications.GetByID(ctx, id)
}

// UpdateApplication edits a live application. Only the participant fields,
// status and result change; the file, contest link and payment stay as submitted.
func (s *Service) UpdateApplication(ctx context.Context, input UpdateInput) (*domain.Application, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	fields := trimFields(input.ApplicationFields)

	updated, err := s.applications.Update(ctx, domain.Application{
		ID:          input.ID,
		FullName:    fields.FullName,
		Age:         fields.Age,
		Teacher:     fields.Teacher,
		Institution: fields.Institution,
		WorkTitle:   fields.WorkTitle,
		Email:       fields.Email,
		ContestName: fields.ContestName,
		Status:      input.Status,
		Result:      input.Result,
	})
	if err != nil {
		return nil, fmt.Errorf("update application: %w", err)
	}

	s.log.InfoContext(ctx, "application updated",
		slog.Int64("application_id", updated.ID),
		slog.String("status", string(updated.Status)),
	)
	return updated, nil
}

// SoftDeleteApplication moves an application to the trash.
func (s *Service) SoftDeleteApplication(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}
	if err := s.applications.SoftDelete(ctx, id); err != nil {
		return fmt.Errorf("soft delete application: %w", err)
	}

	s.log.InfoContext(ctx, "application trashed", slog.Int64("application_id", id))
	return nil
}

// RestoreApplication returns a trashed application to the active list.
func (s *Service) RestoreApplication(ctx context.Context, id int64) error {
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}
	if err := s.applications.Restore(ctx, id); err != nil {
		return fmt.Errorf("restore application: %w", err)
	}

	s.log.InfoContext(ctx, "application restored", slog.Int64("application_id", id))
	return nil
}
