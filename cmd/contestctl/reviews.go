package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/domain"
)

var reviewsCmd = &cobra.Command{
	Use:   "reviews",
	Short: "Moderate reviews",
}

func init() {
	list := &cobra.Command{Use: "list", Args: cobra.NoArgs, Short: "List reviews"}
	status := list.Flags().StringP("status", "s", "all", "all, approved, pending or rejected")
	list.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		var (
			reviews []domain.Review
			err     error
		)
		switch *status {
		case "all":
			reviews, err = s.reviews.ListAll(ctx)
		case string(domain.ReviewStatusApproved):
			reviews, err = s.reviews.ListPublic(ctx)
		default:
			st := domain.ReviewStatus(*status)
			if !st.IsValid() {
				return domain.NewValidationError("status", "unknown status")
			}
			reviews, err = s.client.Reviews().List(ctx, client.ReviewFilter{Status: &st})
		}
		if err != nil {
			return err
		}
		return printReviews(s.term.out, reviews, s.loc)
	})

	byID := func(use, short string, fn func(ctx context.Context, s *session, id int64) error) *cobra.Command {
		cmd := &cobra.Command{Use: use + " ID", Args: cobra.ExactArgs(1), Short: short}
		cmd.RunE = run(func(ctx context.Context, s *session, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return fn(ctx, s, id)
		})
		return cmd
	}

	reviewsCmd.AddCommand(
		list,
		byID("approve", "Publish a review", func(ctx context.Context, s *session, id int64) error {
			return s.reviews.Approve(ctx, id)
		}),
		byID("reject", "Reject or unpublish a review", func(ctx context.Context, s *session, id int64) error {
			return s.reviews.Reject(ctx, id)
		}),
		byID("delete", "Delete a review", func(ctx context.Context, s *session, id int64) error {
			return ignoreDeclined(s.reviews.Delete(ctx, id))
		}),
	)
}
