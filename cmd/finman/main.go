// Command finman runs the interactive personal finance console.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"finman/internal/cli"
	"finman/internal/console"
	"finman/internal/log"
	"finman/internal/services"
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg, log.ComponentConsole)

	ctx := context.Background()

	l, res, err := cli.OpenLedger(ctx, logger.Logger, cfg)
	if err != nil {
		logger.Failure(ctx, "Failed to open ledger", err)
		os.Exit(1)
	}
	defer res.Close()

	client := cli.ConnectAMQP(ctx, logger.Logger, cfg)
	if client != nil {
		defer client.Close()
	}

	// A blocked stdin read cannot observe a context, so an interrupt exits here.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		logger.Info("Interrupted, closing ledger")
		if client != nil {
			client.Close()
		}
		res.Close()
		os.Exit(130)
	}()

	goals := services.NewGoalTracker()
	session := console.New(os.Stdin, os.Stdout,
		services.NewTransactionService(l, goals, cli.Publisher(client)),
		services.NewReportService(l),
		goals,
		console.Options{MaxAttempts: cfg.PromptMaxAttempts, ReportDir: cfg.ReportDir})

	if err := session.Run(ctx); err != nil {
		logger.Failure(ctx, "Console session failed", err)
		os.Exit(1)
	}
}
