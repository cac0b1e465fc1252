package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"finman/internal/core"
	"finman/internal/ledger"
	"finman/internal/storage/memory"
)

type fakePublisher struct {
	published []core.Transaction
	err       error
}

func (f *fakePublisher) PublishTransactionRecorded(_ context.Context, t core.Transaction) error {
	f.published = append(f.published, t)
	return f.err
}

func newService(t *testing.T, pub Publisher) (*TransactionService, *GoalTracker, *memory.Store) {
	t.Helper()
	store := memory.New()
	l, err := ledger.Open(context.Background(), store)
	if err != nil {
		t.Fatalf("open ledger: %v", err)
	}
	goals := NewGoalTracker()
	return NewTransactionService(l, goals, pub), goals, store
}

func TestRecordIncomeCreditsGoals(t *testing.T) {
	svc, goals, _ := newService(t, nil)
	goals.AddGoal("fund", decimal.NewFromInt(200), core.NewDate(2025, 1, 1))

	if err := svc.Record(context.Background(), row(1, "50", core.Income, "pay")); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := svc.Record(context.Background(), row(2, "30", core.Expense, "food")); err != nil {
		t.Fatalf("record: %v", err)
	}

	for p := range goals.ListGoals() {
		if !p.CurrentAmount.Equal(decimal.NewFromInt(50)) {
			t.Fatalf("expected only income credited, got %s", p.CurrentAmount)
		}
	}
}

func TestRecordRejectedDoesNotCreditOrPublish(t *testing.T) {
	pub := &fakePublisher{}
	svc, goals, store := newService(t, pub)
	goals.AddGoal("fund", decimal.NewFromInt(200), core.NewDate(2025, 1, 1))
	store.FailNext(errors.New("io"))

	if err := svc.Record(context.Background(), row(1, "50", core.Income, "pay")); err == nil {
		t.Fatalf("expected error")
	}
	for p := range goals.ListGoals() {
		if !p.CurrentAmount.IsZero() {
			t.Fatalf("goal credited after failed append")
		}
	}
	if len(pub.published) != 0 {
		t.Fatalf("failed append was published")
	}
}

func TestRecordPublishFailureIsNotFatal(t *testing.T) {
	pub := &fakePublisher{err: errors.New("broker down")}
	svc, _, store := newService(t, pub)

	if err := svc.Record(context.Background(), row(3, "12.50", core.Expense, "book")); err != nil {
		t.Fatalf("publish failure must not fail record: %v", err)
	}
	if len(pub.published) != 1 || store.Len() != 1 {
		t.Fatalf("expected one stored and one published transaction")
	}
}
