// Command server runs the art contest HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and the environment; see
// internal/config. The process stops gracefully on SIGINT or SIGTERM.
// With --version it prints the build version and exits.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/artcontest/internal/app"
)

func main() {
	versionFlag := flag.Bool("version", false, "print the build version and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println(app.BuildVersion())
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		stop()
		os.Exit(1)
	}
}
