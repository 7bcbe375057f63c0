package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artcontest/internal/domain"
)

var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage contest results",
}

func init() {
	list := &cobra.Command{Use: "list", Args: cobra.NoArgs, Short: "List results, filtered locally"}
	lf := list.Flags()
	contest := lf.String("contest", "", "contest name contains")
	name := lf.String("name", "", "participant name contains")
	result := lf.String("result", "all", "placement, or 'all'")
	date := lf.String("date", "", "created on this day (YYYY-MM-DD, local time)")
	list.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		want, err := domain.ParsePlacementFilter(*result)
		if err != nil {
			return err
		}
		day, err := domain.ParseDay(*date, s.loc)
		if err != nil {
			return err
		}

		if _, err := s.results.List(ctx); err != nil {
			return err
		}
		s.results.SetFilter(domain.ResultFilter{
			ContestName: *contest,
			FullName:    *name,
			Result:      want,
			Day:         day,
			Location:    s.loc,
		})

		visible := s.results.Visible()
		if err := printResults(s.term.out, visible, s.loc); err != nil {
			return err
		}
		fmt.Fprintf(s.term.out, "\n%d of %d\n", len(visible), len(s.results.View.State().Items))
		return nil
	})

	del := &cobra.Command{Use: "delete ID", Args: cobra.ExactArgs(1), Short: "Delete a result"}
	del.RunE = run(func(ctx context.Context, s *session, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		return ignoreDeclined(s.results.Delete(ctx, id))
	})

	edit := &cobra.Command{Use: "edit ID", Args: cobra.ExactArgs(1), Short: "Edit a result"}
	rf := bindResultFlags(edit)
	edit.RunE = run(func(ctx context.Context, s *session, args []string) error {
		r, err := findResult(ctx, s, args[0])
		if err != nil {
			return err
		}
		if err := rf.overlay(edit, &r); err != nil {
			return err
		}
		return s.results.Update(ctx, r)
	})

	resultsCmd.AddCommand(list, edit, del)
}

// resultFlags are the editable result fields. Empty text clears an optional
// field; --place 0 clears the place.
type resultFlags struct {
	name        *string
	age         *int
	teacher     *string
	institution *string
	title       *string
	email       *string
	contest     *string
	result      *string
	place       *int
	score       *float64
	diploma     *string
	notes       *string
	consent     *bool
}

func bindResultFlags(cmd *cobra.Command) *resultFlags {
	f := cmd.Flags()
	return &resultFlags{
		name:        f.String("name", "", "participant full name"),
		age:         f.Int("age", 0, "participant age, 0 to clear"),
		teacher:     f.String("teacher", "", "teacher"),
		institution: f.String("institution", "", "institution"),
		title:       f.String("title", "", "work title"),
		email:       f.String("email", "", "contact email"),
		contest:     f.String("contest", "", "contest name"),
		result:      f.String("result", "", "placement, or 'none' to clear"),
		place:       f.Int("place", 0, "place within the placement"),
		score:       f.Float64("score", 0, "jury score"),
		diploma:     f.String("diploma", "", "diploma link"),
		notes:       f.String("notes", "", "notes"),
		consent:     f.Bool("gallery-consent", false, "publish in the gallery"),
	}
}

func (rf *resultFlags) overlay(cmd *cobra.Command, r *domain.Result) error {
	changed := cmd.Flags().Changed
	if changed("name") {
		r.FullName = *rf.name
	}
	if changed("age") {
		r.Age = positive(*rf.age)
	}
	if changed("teacher") {
		r.Teacher = optional(*rf.teacher)
	}
	if changed("institution") {
		r.Institution = optional(*rf.institution)
	}
	if changed("title") {
		r.WorkTitle = optional(*rf.title)
	}
	if changed("email") {
		r.Email = optional(*rf.email)
	}
	if changed("contest") {
		r.ContestName = optional(*rf.contest)
	}
	if changed("result") {
		p, err := domain.ParsePlacement(*rf.result)
		if err != nil {
			return err
		}
		r.Result = p
	}
	if changed("place") {
		r.Place = positive(*rf.place)
	}
	if changed("score") {
		score := *rf.score
		r.Score = &score
	}
	if changed("diploma") {
		r.DiplomaURL = optional(*rf.diploma)
	}
	if changed("notes") {
		r.Notes = optional(*rf.notes)
	}
	if changed("gallery-consent") {
		r.GalleryConsent = *rf.consent
	}
	return nil
}

func findResult(ctx context.Context, s *session, arg string) (domain.Result, error) {
	id, err := parseID(arg)
	if err != nil {
		return domain.Result{}, err
	}
	results, err := s.results.List(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	for _, r := range results {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Result{}, fmt.Errorf("result %d: %w", id, domain.ErrNotFound)
}

func positive(n int) *int {
	if n <= 0 {
		return nil
	}
	return &n
}
