// Package cli provides common CLI initialization utilities shared by
// cmd/finman, cmd/finman-server and cmd/finman-worker.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"finman/internal/amqp"
	"finman/internal/backend"
	"finman/internal/config"
	"finman/internal/ledger"
	"finman/internal/log"
	"finman/internal/services"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// SetupLogger builds the logger described by cfg and installs it as the
// slog default. An unknown level falls back to info with a warning.
func SetupLogger(cfg *config.Config, component string) *log.Logger {
	level, levelErr := log.ParseLevel(cfg.LogLevel)
	logger := log.New(log.Config{
		Level:     level,
		Format:    log.Format(strings.ToLower(cfg.LogFormat)),
		Component: component,
	})
	log.SetDefault(logger)
	if levelErr != nil {
		logger.Warn("Unknown log level, using info", log.FieldError, levelErr)
	}
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
func LoadAndValidateConfig() (*config.Config, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// OpenLedger creates the configured store and loads the ledger from it.
func OpenLedger(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*ledger.Ledger, *backend.StoreResult, error) {
	bcfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return nil, nil, err
	}
	res, err := backend.NewFactory(logger).CreateStore(ctx, bcfg)
	if err != nil {
		return nil, nil, err
	}
	l, err := ledger.Open(ctx, res.Store)
	if err != nil {
		res.Close()
		return nil, nil, fmt.Errorf("open ledger: %w", err)
	}
	logger.InfoContext(ctx, "Ledger loaded", log.FieldBackend, bcfg.Type, "transactions", l.Len())
	return l, res, nil
}

// OpenMirrorStore creates the store the mirror worker appends to.
func OpenMirrorStore(ctx context.Context, logger *slog.Logger, cfg *config.Config) (*backend.StoreResult, error) {
	bcfg, err := backend.MirrorFromAppConfig(cfg)
	if err != nil {
		return nil, err
	}
	res, err := backend.NewFactory(logger).CreateStore(ctx, bcfg)
	if err != nil {
		return nil, fmt.Errorf("open mirror store: %w", err)
	}
	logger.InfoContext(ctx, "Mirror store ready", log.FieldBackend, bcfg.Type)
	return res, nil
}

// Publisher adapts a possibly nil client to services.Publisher. A nil client
// yields a nil interface so the service skips publishing.
func Publisher(client *amqp.Client) services.Publisher {
	if client == nil {
		return nil
	}
	return client
}

// ConnectAMQP returns nil when AMQP is not configured or unreachable; the
// caller then runs without publishing.
func ConnectAMQP(ctx context.Context, logger *slog.Logger, cfg *config.Config) *amqp.Client {
	if cfg.AMQPURL == "" {
		return nil
	}
	client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.WarnContext(ctx, "Failed to initialize AMQP client, continuing without events", log.FieldError, err)
		return nil
	}
	logger.InfoContext(ctx, "Initialized AMQP client", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return client
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
