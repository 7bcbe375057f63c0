package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artcontest/internal/console"
	"github.com/heartmarshall/artcontest/internal/domain"
)

var applicationsCmd = &cobra.Command{
	Use:     "applications",
	Aliases: []string{"apps"},
	Short:   "Manage applications and the trash",
}

func init() {
	list := &cobra.Command{Use: "list", Args: cobra.NoArgs, Short: "List active applications, or the trash"}
	trash := list.Flags().Bool("trash", false, "list the trash instead")
	list.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		if err := s.apps.Reload(ctx); err != nil {
			return err
		}
		active, trashed := s.apps.Counts()
		view := s.apps.Active
		if *trash {
			view = s.apps.Trash
		}
		if err := printApplications(s.term.out, view.State().Items, s.loc); err != nil {
			return err
		}
		fmt.Fprintf(s.term.out, "\nactive: %d, trash: %d\n", active, trashed)
		return nil
	})

	edit := &cobra.Command{Use: "edit ID", Args: cobra.ExactArgs(1), Short: "Edit an application"}
	ef := edit.Flags()
	name := ef.String("name", "", "participant full name")
	age := ef.Int("age", 0, "participant age")
	teacher := ef.String("teacher", "", "teacher")
	institution := ef.String("institution", "", "institution")
	title := ef.String("title", "", "work title")
	email := ef.String("email", "", "contact email")
	contest := ef.String("contest", "", "contest name")
	status := ef.String("status", "", "new, viewed or sent")
	result := ef.String("result", "", "placement, or 'none' to clear")
	edit.RunE = run(func(ctx context.Context, s *session, args []string) error {
		app, err := findApplication(ctx, s, args[0])
		if err != nil {
			return err
		}

		f := console.EditFields{
			ApplicationFields: domain.ApplicationFields{
				FullName:    app.FullName,
				Age:         app.Age,
				Teacher:     app.Teacher,
				Institution: app.Institution,
				WorkTitle:   app.WorkTitle,
				Email:       app.Email,
				ContestName: app.ContestName,
			},
			Status: app.Status,
			Result: app.Result,
		}
		changed := edit.Flags().Changed
		if changed("name") {
			f.FullName = *name
		}
		if changed("age") {
			f.Age = *age
		}
		if changed("teacher") {
			f.Teacher = teacher
		}
		if changed("institution") {
			f.Institution = institution
		}
		if changed("title") {
			f.WorkTitle = *title
		}
		if changed("email") {
			f.Email = *email
		}
		if changed("contest") {
			f.ContestName = *contest
		}
		if changed("status") {
			f.Status = domain.ApplicationStatus(*status)
			if !f.Status.IsValid() {
				return domain.NewValidationError("status", "must be new, viewed or sent")
			}
		}
		if changed("result") {
			p, err := domain.ParsePlacement(*result)
			if err != nil {
				return err
			}
			f.Result = p
		}
		return s.apps.Edit(ctx, app.ID, f)
	})

	del := &cobra.Command{Use: "delete ID", Args: cobra.ExactArgs(1), Short: "Move an application to the trash"}
	del.RunE = run(func(ctx context.Context, s *session, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return ignoreDeclined(s.apps.SoftDelete(ctx, id))
	})

	restore := &cobra.Command{Use: "restore ID", Args: cobra.ExactArgs(1), Short: "Restore an application from the trash"}
	restore.RunE = run(func(ctx context.Context, s *session, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return ignoreDeclined(s.apps.Restore(ctx, id))
	})

	promote := &cobra.Command{Use: "promote ID", Args: cobra.ExactArgs(1), Short: "Create a result from an application"}
	promote.RunE = run(func(ctx context.Context, s *session, args []string) error {
		app, err := findApplication(ctx, s, args[0])
		if err != nil {
			return err
		}
		res, err := s.apps.PromoteToResult(ctx, app)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.term.out, "result %d\n", res.ID)
		return nil
	})

	applicationsCmd.AddCommand(list, edit, del, restore, promote)
}

// findApplication looks id up in the active list.
func findApplication(ctx context.Context, s *session, arg string) (domain.Application, error) {
	id, err := parseID(arg)
	if err != nil {
		return domain.Application{}, err
	}
	apps, err := s.apps.ListActive(ctx)
	if err != nil {
		return domain.Application{}, err
	}
	for _, a := range apps {
		if a.ID == id {
			return a, nil
		}
	}
	return domain.Application{}, fmt.Errorf("application %d: %w", id, domain.ErrNotFound)
}

func ignoreDeclined(err error) error {
	if errors.Is(err, console.ErrNotConfirmed) {
		return nil
	}
	return err
}
