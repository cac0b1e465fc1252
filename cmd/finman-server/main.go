// Command finman-server serves the ledger, reports and goals over HTTP.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/sync/errgroup"

	"finman/internal/cli"
	"finman/internal/config"
	apphttp "finman/internal/http"
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
	logger := cli.SetupLogger(cfg, log.ComponentHTTP)

	if err := run(cfg, logger); err != nil {
		logger.Failure(context.Background(), "Server exited with error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	l, res, err := cli.OpenLedger(ctx, logger.Logger, cfg)
	if err != nil {
		return err
	}
	defer res.Close()

	client := cli.ConnectAMQP(ctx, logger.Logger, cfg)
	if client != nil {
		defer client.Close()
	}

	goals := services.NewGoalTracker()
	srv := apphttp.NewServer(":"+cfg.Port, logger,
		services.NewTransactionService(l, goals, cli.Publisher(client)),
		services.NewReportService(l),
		goals)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting HTTP server", "addr", srv.Addr, log.FieldOperation, log.OpStartup)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down HTTP server", log.FieldOperation, log.OpShutdown)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		m := srv.Metrics()
		logger.Info("Server stopped", "total_requests", m.TotalRequests)
		return nil
	})
	return g.Wait()
}
