// Command contestctl is the admin console for the contest API.
//
// Configuration comes from CONTESTCTL_* environment variables, optionally
// loaded from a .env file in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "contestctl",
	Short:         "Moderates contests, applications, results and reviews",
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(loginCmd, contestsCmd, applicationsCmd, resultsCmd, reviewsCmd, submitCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
