package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"finman/internal/core"
)

func TestMemoryStoreAppendAndLoad(t *testing.T) {
	seed := core.Transaction{Date: core.NewDate(2024, 1, 1), Amount: decimal.NewFromInt(5), Category: core.Income}
	s := New(seed)

	tx := core.Transaction{Date: core.NewDate(2024, 1, 2), Amount: decimal.RequireFromString("1.23"), Category: core.Expense, Description: "t"}
	if err := s.AppendRecord(context.Background(), tx); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := s.LoadAll(context.Background())
	if err != nil || len(got) != 2 {
		t.Fatalf("unexpected load: %v, %v", got, err)
	}
	if got[1].Description != "t" || !got[1].Amount.Equal(tx.Amount) {
		t.Fatalf("unexpected second row %+v", got[1])
	}

	// Mutating the returned slice must not affect the store.
	got[0].Description = "changed"
	again, _ := s.LoadAll(context.Background())
	if again[0].Description != "" {
		t.Fatalf("store was mutated through LoadAll result")
	}
}

func TestMemoryStoreRejectsInvalid(t *testing.T) {
	s := New()
	err := s.AppendRecord(context.Background(), core.Transaction{Date: core.NewDate(2024, 1, 1), Amount: decimal.Zero, Category: core.Income})
	if !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected invalid amount, got %v", err)
	}
	if s.Len() != 0 {
		t.Fatalf("invalid transaction was stored")
	}
}

func TestMemoryStoreFailNext(t *testing.T) {
	s := New()
	boom := errors.New("disk full")
	s.FailNext(boom)
	tx := core.Transaction{Date: core.NewDate(2024, 1, 1), Amount: decimal.NewFromInt(1), Category: core.Income}
	if err := s.AppendRecord(context.Background(), tx); !errors.Is(err, boom) {
		t.Fatalf("expected injected error, got %v", err)
	}
	if err := s.AppendRecord(context.Background(), tx); err != nil {
		t.Fatalf("second append should succeed: %v", err)
	}
}
