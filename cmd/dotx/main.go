package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hbjs97/dotx/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp()
	cmd := app.NewRootCmd()
	if err := cmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(int(cli.MapExitCode(err)))
	}
}
