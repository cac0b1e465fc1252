package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"finman/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository stores flat transaction records in a SQLite table.
// Row IDs preserve append order.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	version, err := RunMigrations(dbPath)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	slog.Debug("SQLite schema ready", "path", dbPath, "version", version)

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// AppendRecord implements ledger.Store
func (r *SQLiteRepository) AppendRecord(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	rec := t.Record()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO transactions (date, amount, category, description) VALUES (?, ?, ?, ?)`,
		rec[0], rec[1], rec[2], rec[3])
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}

	id, _ := res.LastInsertId()
	slog.DebugContext(ctx, "Transaction saved to SQLite",
		"id", id,
		"date", rec[0],
		"amount", rec[1],
		"category", rec[2])
	return nil
}

// LoadAll implements ledger.Store
func (r *SQLiteRepository) LoadAll(ctx context.Context) ([]core.Transaction, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount, category, description FROM transactions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var out []core.Transaction
	for rows.Next() {
		var (
			id                          int64
			date, amount, category, des string
		)
		if err := rows.Scan(&id, &date, &amount, &category, &des); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		t, err := core.ParseRecord([]string{date, amount, category, des})
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", id, err)
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate transactions: %w", err)
	}
	return out, nil
}

// Count returns the number of stored rows.
func (r *SQLiteRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count transactions: %w", err)
	}
	return n, nil
}
