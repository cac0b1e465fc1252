// Command finman-worker mirrors recorded transactions from AMQP into the
// mirror store.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"finman/internal/amqp"
	"finman/internal/cache"
	"finman/internal/cli"
	"finman/internal/config"
	"finman/internal/log"
	"finman/internal/worker"
)

const (
	seenCapacity  = 10000
	seenTTL       = 24 * time.Hour
	pruneInterval = 10 * time.Minute
)

func main() {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err == nil {
		err = cfg.ValidateMirror()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := cli.SetupLogger(cfg, log.ComponentWorker)

	if err := run(cfg, logger); err != nil {
		logger.Failure(context.Background(), "Worker exited with error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *log.Logger) error {
	ctx, stop := cli.SignalContext(context.Background())
	defer stop()

	res, err := cli.OpenMirrorStore(ctx, logger.Logger, cfg)
	if err != nil {
		return err
	}
	defer res.Close()

	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		return fmt.Errorf("initialize AMQP client: %w", err)
	}
	defer client.Close()

	seen := cache.NewRecentSet(seenCapacity, seenTTL)
	w := worker.NewMirrorWorker(res.Store, seen)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return w.Run(gctx, client) })
	g.Go(func() error {
		seen.PruneEvery(gctx, pruneInterval)
		return nil
	})
	err = g.Wait()
	logger.Info("Worker shutdown complete", log.FieldOperation, log.OpShutdown)
	return err
}
