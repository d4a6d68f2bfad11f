package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/openmarquee/marquee/internal/cli"
)

// main bootstraps the marquee renderer CLI.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(cli.Run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}
