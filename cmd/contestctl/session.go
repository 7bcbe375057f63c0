package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/artcontest/internal/app"
	"github.com/heartmarshall/artcontest/internal/client"
	"github.com/heartmarshall/artcontest/internal/config"
	"github.com/heartmarshall/artcontest/internal/console"
)

var assumeYes bool

func init() {
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "answer yes to every confirmation")
}

// session bundles what every subcommand needs.
type session struct {
	cfg      *config.CLIConfig
	loc      *time.Location
	client   *client.Client
	term     *terminal
	apps     *console.ApplicationManager
	results  *console.ResultManager
	reviews  *console.ReviewManager
	payments *console.PaymentHandoff
}

func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.LoadCLI(".env")
	if err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	logger := app.NewLogger(cfg.Log, "contestctl")
	c := client.New(cfg.APIURL,
		client.WithToken(cfg.Token),
		client.WithTimeout(cfg.Timeout),
		client.WithLogger(logger),
	)
	term := &terminal{
		in:  bufio.NewReader(cmd.InOrStdin()),
		out: cmd.OutOrStdout(),
		err: cmd.ErrOrStderr(),
		yes: assumeYes,
	}
	payments := console.NewPaymentHandoff(c, term)

	return &session{
		cfg:      cfg,
		loc:      loc,
		client:   c,
		term:     term,
		apps:     console.NewApplicationManager(logger, c.Applications(), c.Results(), payments, term, term),
		results:  console.NewResultManager(logger, c.Results(), term, term),
		reviews:  console.NewReviewManager(logger, c.Reviews(), term, term),
		payments: payments,
	}, nil
}

// run wraps a subcommand body with a session and a signal-aware context.
func run(fn func(ctx context.Context, s *session, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := newSession(cmd)
		if err != nil {
			return err
		}
		return fn(cmd.Context(), s, args)
	}
}

// terminal implements the console notifier, confirmer and redirector.
type terminal struct {
	mu  sync.Mutex
	in  *bufio.Reader
	out io.Writer
	err io.Writer
	yes bool
}

func (t *terminal) Success(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.out, "ok:", msg)
}

func (t *terminal) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintln(t.err, "error:", msg)
}

func (t *terminal) Confirm(ctx context.Context, prompt string) (bool, error) {
	if t.yes {
		return true, nil
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.out, "%s [y/N] ", prompt)
	line, err := t.in.ReadString('\n')
	if err != nil && line == "" {
		if err == io.EOF {
			return false, nil
		}
		return false, err
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes", nil
}

// Redirect prints the payment page; a terminal cannot navigate for the payer.
func (t *terminal) Redirect(ctx context.Context, url string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := fmt.Fprintln(t.out, "Open to pay:", url)
	return err
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
