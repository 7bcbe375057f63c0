package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/internal/service/upload"
)

// Submit stores the work file and records a new application.
// When the submission names a contest, the contest must exist and still be
// open; its title fills an empty contest name.
func (s *Service) Submit(ctx context.Context, input SubmitInput) (*domain.Application, error) {
	var contest *domain.Contest
	if input.ContestID != nil && *input.ContestID > 0 {
		c, err := s.contests.GetByID(ctx, *input.ContestID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewValidationError("contest_id", "unknown contest")
		}
		if err != nil {
			return nil, fmt.Errorf("get contest: %w", err)
		}
		if !c.IsOpen(s.now()) {
			return nil, domain.NewValidationError("contest_id", "contest is closed")
		}
		contest = c
		if input.ContestName == "" {
			input.ContestName = c.Title
		}
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}
	fields := trimFields(input.ApplicationFields)

	file, err := s.files.Upload(ctx, upload.Input{
		File:     input.File.Data,
		FileName: input.File.FileName,
		FileType: input.File.FileType,
		Folder:   WorksFolder,
	})
	if err != nil {
		return nil, fmt.Errorf("upload work: %w", err)
	}

	payment := domain.PaymentStatusNone
	if input.AwaitPayment {
		payment = domain.PaymentStatusPending
	}

	var created *domain.Application
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		created, createErr = s.applications.Create(txCtx, domain.Application{
			FullName:       fields.FullName,
			Age:            fields.Age,
			Teacher:        fields.Teacher,
			Institution:    fields.Institution,
			WorkTitle:      fields.WorkTitle,
			Email:          fields.Email,
			ContestID:      input.ContestID,
			ContestName:    fields.ContestName,
			WorkFileURL:    file.URL,
			Status:         domain.ApplicationStatusNew,
			GalleryConsent: input.GalleryConsent,
			PaymentStatus:  payment,
		})
		if createErr != nil {
			return fmt.Errorf("create application: %w", createErr)
		}

		if contest != nil {
			if err := s.contests.IncrementParticipants(txCtx, contest.ID); err != nil {
				return fmt.Errorf("count participant: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		s.removeOrphan(ctx, file.Key)
		return nil, err
	}

	s.log.InfoContext(ctx, "application submitted",
		slog.Int64("application_id", created.ID),
		slog.String("contest_name", created.ContestName),
		slog.String("payment_status", string(created.PaymentStatus)),
	)
	return created, nil
}

// removeOrphan deletes a work file whose application was never recorded.
// A failed delete is logged with the key so the object can be cleaned up by hand.
func (s *Service) removeOrphan(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.files.Remove(ctx, key); err != nil {
		s.log.WarnContext(ctx, "orphaned work file",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
	}
}
