// Package memory provides an in-process transaction store for tests and the
// "memory" data backend.
package memory

import (
	"context"
	"sync"

	"finman/internal/core"
)

type Store struct {
	mu    sync.Mutex
	items []core.Transaction
	// failNext makes the next AppendRecord return the error once.
	failNext error
}

// New returns a store preloaded with seed, in order.
func New(seed ...core.Transaction) *Store {
	return &Store{items: append([]core.Transaction(nil), seed...)}
}

// LoadAll returns a copy of every stored transaction in append order.
func (s *Store) LoadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.items...), nil
}

// AppendRecord validates and stores t.
func (s *Store) AppendRecord(_ context.Context, t core.Transaction) error {
	if err := t.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failNext; err != nil {
		s.failNext = nil
		return err
	}
	s.items = append(s.items, t)
	return nil
}

// FailNext arranges for the next AppendRecord to fail with err.
func (s *Store) FailNext(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failNext = err
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *Store) Close() error { return nil }
