package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
	"github.com/heartmarshall/artcontest/pkg/api"
)

var contestsCmd = &cobra.Command{
	Use:   "contests",
	Short: "Manage contests",
}

func init() {
	list := &cobra.Command{Use: "list", Args: cobra.NoArgs, Short: "List contests by deadline"}
	category := list.Flags().StringP("category", "c", "", "only this category")
	list.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		var f client.ContestFilter
		if *category != "" {
			cat := domain.Category(*category)
			if !cat.IsValid() {
				return domain.NewValidationError("category", "unknown category")
			}
			f.Category = &cat
		}
		contests, err := s.client.Contests().List(ctx, f)
		if err != nil {
			return err
		}
		return printContests(s.term.out, contests, s.loc)
	})

	del := &cobra.Command{Use: "delete ID", Args: cobra.ExactArgs(1), Short: "Delete a contest"}
	del.RunE = run(func(ctx context.Context, s *session, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		ok, err := s.term.Confirm(ctx, "Delete contest?")
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		if err := s.client.Contests().Delete(ctx, id); err != nil {
			s.term.Error("could not delete contest")
			return err
		}
		s.term.Success("contest deleted")
		return nil
	})

	create := &cobra.Command{Use: "create", Args: cobra.NoArgs, Short: "Create a contest"}
	cf := bindContestFlags(create)
	create.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		var req api.ContestRequest
		cf.overlay(create, &req)
		c, err := s.client.Contests().Create(ctx, req)
		if err != nil {
			s.term.Error("could not create contest")
			return err
		}
		s.term.Success("contest created")
		fmt.Fprintf(s.term.out, "contest %d\n", c.ID)
		return nil
	})

	edit := &cobra.Command{Use: "edit ID", Args: cobra.ExactArgs(1), Short: "Edit a contest"}
	ef := bindContestFlags(edit)
	edit.RunE = run(func(ctx context.Context, s *session, args []string) error {
		c, err := findContest(ctx, s, args[0])
		if err != nil {
			return err
		}
		req := contestRequest(c, s.loc)
		ef.overlay(edit, &req)
		if err := s.client.Contests().Update(ctx, req); err != nil {
			s.term.Error("could not save contest")
			return err
		}
		s.term.Success("contest saved")
		return nil
	})

	contestsCmd.AddCommand(list, create, edit, del)
}

// contestFlags are the editable contest fields. Only flags set on the
// command line overwrite the request.
type contestFlags struct {
	title       *string
	description *string
	category    *string
	deadline    *string
	price       *int
	status      *string
	rules       *string
	diploma     *string
	image       *string
	popular     *bool
}

func bindContestFlags(cmd *cobra.Command) *contestFlags {
	f := cmd.Flags()
	return &contestFlags{
		title:       f.String("title", "", "contest title"),
		description: f.String("description", "", "description"),
		category:    f.StringP("category", "c", "", "category"),
		deadline:    f.String("deadline", "", "last day for submissions (YYYY-MM-DD)"),
		price:       f.Int("price", 0, "participation fee"),
		status:      f.String("status", "", "active or new"),
		rules:       f.String("rules", "", "rules document link, empty to clear"),
		diploma:     f.String("diploma", "", "diploma sample link, empty to clear"),
		image:       f.String("image", "", "cover image link, empty to clear"),
		popular:     f.Bool("popular", false, "show in the popular list"),
	}
}

func (cf *contestFlags) overlay(cmd *cobra.Command, req *api.ContestRequest) {
	changed := cmd.Flags().Changed
	if changed("title") {
		req.Title = *cf.title
	}
	if changed("description") {
		req.Description = *cf.description
	}
	if changed("category") {
		req.CategoryID = *cf.category
	}
	if changed("deadline") {
		req.Deadline = *cf.deadline
	}
	if changed("price") {
		req.Price = cf.price
	}
	if changed("status") {
		req.Status = *cf.status
	}
	if changed("rules") {
		req.RulesLink = optional(*cf.rules)
	}
	if changed("diploma") {
		req.DiplomaImage = optional(*cf.diploma)
	}
	if changed("image") {
		req.Image = optional(*cf.image)
	}
	if changed("popular") {
		req.IsPopular = *cf.popular
	}
}

// contestRequest turns a stored contest back into an update payload.
func contestRequest(c domain.Contest, loc *time.Location) api.ContestRequest {
	price := c.Price
	return api.ContestRequest{
		ID:           c.ID,
		Title:        c.Title,
		Description:  c.Description,
		CategoryID:   string(c.CategoryID),
		Deadline:     c.Deadline.In(loc).Format(time.DateOnly),
		Price:        &price,
		Status:       string(c.Status),
		RulesLink:    c.RulesLink,
		DiplomaImage: c.DiplomaImage,
		Image:        c.Image,
		IsPopular:    c.IsPopular,
	}
}

func findContest(ctx context.Context, s *session, arg string) (domain.Contest, error) {
	id, err := parseID(arg)
	if err != nil {
		return domain.Contest{}, err
	}
	contests, err := s.client.Contests().List(ctx, client.ContestFilter{})
	if err != nil {
		return domain.Contest{}, err
	}
	for _, c := range contests {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Contest{}, fmt.Errorf("contest %d: %w", id, domain.ErrNotFound)
}

// optional maps an empty flag value to a cleared field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
