package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-server/internal/cli"
	"task-server/internal/config"
)

func main() {
	// Load configuration from defaults and environment variables.
	// Command-line flags are applied on top by the root command.
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCommand(cfg).ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
