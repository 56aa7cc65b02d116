// Package main provides the tabforge command: it turns a bookmark export
// into browser windows, tabs and tab groups, or previews what it would open.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

var version = "0.1.0"

func main() {
	// Create context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nShutting down gracefully...")
		cancel()
	}()

	root := newRootCmd()
	root.Version = version

	if err := root.ExecuteContext(ctx); err != nil {
		cancel()
		_, _ = errorColor.Fprintf(os.Stderr, "✗ %v\n", err)
		os.Exit(1)
	}
	cancel()
}
