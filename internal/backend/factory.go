package backend

import (
	"context"
	"fmt"
	"log/slog"

	"finman/internal/sheets/google"
	"finman/internal/storage"
	"finman/internal/storage/csvfile"
	"finman/internal/storage/memory"
)

// DefaultFactory implements the Factory interface
type DefaultFactory struct {
	logger *slog.Logger
}

// NewFactory creates a new backend factory
func NewFactory(logger *slog.Logger) Factory {
	if logger == nil {
		logger = slog.Default()
	}
	return &DefaultFactory{logger: logger}
}

// CreateStore implements Factory.CreateStore
func (f *DefaultFactory) CreateStore(ctx context.Context, config Config) (*StoreResult, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Type {
	case CSVBackend:
		return f.createCSVStore(config)
	case SQLiteBackend:
		return f.createSQLiteStore(config)
	case SheetsBackend:
		return f.createSheetsStore(ctx, config)
	case MemoryBackend:
		f.logger.Info("Initialized memory backend")
		return &StoreResult{Store: memory.New()}, nil
	default:
		return nil, fmt.Errorf("unsupported backend type: %s", config.Type)
	}
}

func (f *DefaultFactory) createCSVStore(config Config) (*StoreResult, error) {
	store, err := csvfile.Open(config.CSVPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize CSV store: %w", err)
	}
	f.logger.Info("Initialized CSV backend", "path", config.CSVPath)
	return &StoreResult{Store: store, Cleanup: store.Close}, nil
}

func (f *DefaultFactory) createSQLiteStore(config Config) (*StoreResult, error) {
	repo, err := storage.NewSQLiteRepository(config.SQLiteDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize SQLite repository: %w", err)
	}
	f.logger.Info("Initialized SQLite backend", "db_path", config.SQLiteDBPath)
	return &StoreResult{Store: repo, Cleanup: repo.Close}, nil
}

func (f *DefaultFactory) createSheetsStore(ctx context.Context, config Config) (*StoreResult, error) {
	cli, err := google.New(ctx, config.Sheets)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Google Sheets client: %w", err)
	}
	if err := cli.EnsureHeader(ctx); err != nil {
		return nil, fmt.Errorf("prepare sheet: %w", err)
	}
	f.logger.Info("Initialized Google Sheets backend", "sheet", config.Sheets.SheetName)
	return &StoreResult{Store: cli, Cleanup: cli.Close}, nil
}
