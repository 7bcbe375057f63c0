package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Args:  cobra.NoArgs,
	Short: "Obtain an admin access token",
	Long:  "Obtain an admin access token. Export it as CONTESTCTL_TOKEN for later commands.",
}

func init() {
	p := loginCmd.Flags()
	login := p.StringP("login", "l", "admin", "admin login")
	password := p.StringP("password", "p", "", "admin password (prompted when empty)")

	loginCmd.RunE = run(func(ctx context.Context, s *session, _ []string) error {
		if *password == "" {
			fmt.Fprint(s.term.out, "Password: ")
			line, err := s.term.in.ReadString('\n')
			if err != nil && line == "" {
				return fmt.Errorf("read password: %w", err)
			}
			*password = strings.TrimRight(line, "\r\n")
		}

		out, err := s.client.Login(ctx, *login, *password)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.term.out, "export CONTESTCTL_TOKEN=%s\n", out.AccessToken)
		fmt.Fprintf(s.term.out, "# expires %s\n", out.ExpiresAt.In(s.loc).Format(time.RFC3339))
		return nil
	})
}
