package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/heartmarshall/artcontest/internal/domain"
)

func table(w io.Writer, header string, rows func(tw *tabwriter.Writer)) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, header)
	rows(tw)
	return tw.Flush()
}

func str(p *string) string {
	if p == nil {
		return "-"
	}
	return *p
}

func placement(p *domain.Placement) string {
	if p == nil {
		return "-"
	}
	return p.Label()
}

func day(t time.Time, loc *time.Location) string {
	return t.In(loc).Format("2006-01-02 15:04")
}

func printContests(w io.Writer, contests []domain.Contest, loc *time.Location) error {
	return table(w, "ID\tTITLE\tCATEGORY\tDEADLINE\tPRICE\tSTATUS\tENTRIES", func(tw *tabwriter.Writer) {
		for _, c := range contests {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%d\n",
				c.ID, c.Title, c.CategoryID, c.Deadline.In(loc).Format(time.DateOnly), c.Price, c.Status, c.Participants)
		}
	})
}

func printApplications(w io.Writer, apps []domain.Application, loc *time.Location) error {
	return table(w, "ID\tNAME\tAGE\tWORK\tCONTEST\tSTATUS\tRESULT\tPAYMENT\tCREATED", func(tw *tabwriter.Writer) {
		for _, a := range apps {
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				a.ID, a.FullName, a.Age, a.WorkTitle, a.ContestName, a.Status,
				placement(a.Result), a.PaymentStatus, day(a.CreatedAt, loc))
		}
	})
}

func printResults(w io.Writer, results []domain.Result, loc *time.Location) error {
	return table(w, "ID\tAPPLICATION\tNAME\tCONTEST\tRESULT\tPLACE\tCREATED", func(tw *tabwriter.Writer) {
		for _, r := range results {
			app, place := "-", "-"
			if r.ApplicationID != nil {
				app = fmt.Sprint(*r.ApplicationID)
			}
			if r.Place != nil {
				place = fmt.Sprint(*r.Place)
			}
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
				r.ID, app, r.FullName, str(r.ContestName), placement(r.Result), place, day(r.CreatedAt, loc))
		}
	})
}

func printReviews(w io.Writer, reviews []domain.Review, loc *time.Location) error {
	return table(w, "ID\tAUTHOR\tRATING\tSTATUS\tCREATED\tTEXT", func(tw *tabwriter.Writer) {
		for _, rv := range reviews {
			text := []rune(rv.Text)
			if len(text) > 60 {
				text = append(text[:57], '.', '.', '.')
			}
			fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n",
				rv.ID, rv.AuthorName, rv.Rating, rv.Status, day(rv.CreatedAt, loc), string(text))
		}
	})
}
