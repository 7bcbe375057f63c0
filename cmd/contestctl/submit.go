package main

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artcontest/internal/console"
	"github.com/heartmarshall/artcontest/internal/domain"
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Args:  cobra.NoArgs,
	Short: "Submit an application with its work file",
}

func init() {
	p := submitCmd.Flags()
	name := p.String("name", "", "participant full name")
	age := p.Int("age", 0, "participant age (5-18)")
	teacher := p.String("teacher", "", "teacher")
	institution := p.String("institution", "", "institution")
	title := p.String("title", "", "work title")
	email := p.String("email", "", "contact email")
	contest := p.String("contest", "", "contest name")
	contestID := p.Int64("contest-id", 0, "contest id")
	file := p.StringP("file", "f", "", "path to the work file")
	consent := p.Bool("gallery", false, "agree to show the work in the gallery")
	pay := p.Bool("pay", false, "pay the entry fee through the payment gateway")
	price := p.Int("price", domain.DefaultContestPrice, "entry fee, used with --pay")

	submitCmd.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		var work console.WorkFile
		if *file != "" {
			data, err := os.ReadFile(*file)
			if err != nil {
				return fmt.Errorf("read work file: %w", err)
			}
			work = console.WorkFile{
				Name: filepath.Base(*file),
				Type: mime.TypeByExtension(filepath.Ext(*file)),
				Data: data,
			}
		}

		form := console.SubmissionForm{
			ApplicationFields: domain.ApplicationFields{
				FullName:    *name,
				Age:         *age,
				WorkTitle:   *title,
				Email:       *email,
				ContestName: *contest,
			},
			GalleryConsent: *consent,
			Price:          *price,
		}
		if *teacher != "" {
			form.Teacher = teacher
		}
		if *institution != "" {
			form.Institution = institution
		}
		if *contestID > 0 {
			form.ContestID = contestID
		}

		mode := console.SubmitDirect
		if *pay {
			mode = console.SubmitPayment
		}

		out, err := s.apps.Submit(ctx, form, work, mode)
		if err != nil {
			return err
		}
		if out.Application != nil {
			fmt.Fprintf(s.term.out, "application %d\n", out.Application.ID)
		}
		return nil
	})
}
