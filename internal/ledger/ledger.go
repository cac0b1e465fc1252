// Package ledger owns the ordered, append-only sequence of transactions.
//
// The ledger performs no locking. Callers that share a Ledger between
// goroutines must serialise Append and Query themselves.
package ledger

import (
	"context"
	"fmt"

	"finman/internal/core"
)

// Store is the persistence collaborator. AppendRecord must be durable when it
// returns nil; LoadAll returns records in the order they were appended.
type Store interface {
	LoadAll(ctx context.Context) ([]core.Transaction, error)
	AppendRecord(ctx context.Context, t core.Transaction) error
}

// Ledger holds the in-memory sequence mirrored by a Store.
type Ledger struct {
	store Store
	txs   []core.Transaction
}

// Open loads every persisted transaction from store.
func Open(ctx context.Context, store Store) (*Ledger, error) {
	txs, err := store.LoadAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load transactions: %w", err)
	}
	for i, t := range txs {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("loaded transaction %d: %w", i+1, err)
		}
	}
	return &Ledger{store: store, txs: txs}, nil
}

// Append validates t, persists it and then adds it to the end of the
// sequence. On any error the sequence is unchanged.
func (l *Ledger) Append(ctx context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if err := l.store.AppendRecord(ctx, t); err != nil {
		return fmt.Errorf("persist transaction: %w", err)
	}
	l.txs = append(l.txs, t)
	return nil
}

// Query returns the transactions dated within [start, end], in insertion
// order. No match yields an empty, non-nil slice.
func (l *Ledger) Query(start, end core.Date) ([]core.Transaction, error) {
	if err := core.ValidateRange(start, end); err != nil {
		return nil, err
	}
	out := make([]core.Transaction, 0)
	for _, t := range l.txs {
		if t.Date.Within(start, end) {
			out = append(out, t)
		}
	}
	return out, nil
}

// All returns a copy of the whole sequence.
func (l *Ledger) All() []core.Transaction {
	return append([]core.Transaction(nil), l.txs...)
}

// Len returns the number of stored transactions.
func (l *Ledger) Len() int {
	return len(l.txs)
}
