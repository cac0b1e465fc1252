// Package csvfile stores transactions as rows of a single CSV file with the
// header date,amount,category,description.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"finman/internal/core"
)

type Store struct {
	mu   sync.Mutex
	path string
}

// Open returns a store backed by path, creating the file with its header
// when it does not exist.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	if err := s.init(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", s.path, err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("create %s: %w", s.path, err)
	}
	w := csv.NewWriter(f)
	w.Write(core.RecordColumns)
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	slog.Info("Created transaction file", "path", s.path)
	return f.Close()
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// LoadAll implements ledger.Store. A malformed row fails the whole load and
// the error names its line.
func (s *Store) LoadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", s.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	// Row width is checked by core.ParseRecord.
	r.FieldsPerRecord = -1

	var out []core.Transaction
	for line := 1; ; line++ {
		fields, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", s.path, err)
		}
		if line == 1 && core.IsHeader(fields) {
			continue
		}
		t, err := core.ParseRecord(fields)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", s.path, line, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// AppendRecord implements ledger.Store. The row is flushed and synced before
// it returns.
func (s *Store) AppendRecord(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open %s: %w", s.path, err)
	}
	w := csv.NewWriter(f)
	w.Write(t.Record())
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("write record: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("sync %s: %w", s.path, err)
	}
	return f.Close()
}

func (s *Store) Close() error { return nil }
