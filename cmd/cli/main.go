package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/userdir/internal/client/cli"
	"github.com/dmitrijs2005/userdir/internal/client/config"
	"github.com/dmitrijs2005/userdir/internal/logging"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	zl, err := logging.BuildZap(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("%v", err)
	}
	logger := logging.NewZapLogger(zl)
	defer func() { _ = logger.Sync() }()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		logger.Error(ctx, "failed to start", "error", err)
		return
	}

	done := make(chan struct{})
	go func() {
		app.Run(ctx)
		close(done)
	}()

	// Run blocks on stdin, so a signal is handled here rather than in the REPL.
	select {
	case <-done:
	case <-ctx.Done():
		logger.Info(ctx, "shutting down")
	}
}
