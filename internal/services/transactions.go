package services

import (
	"context"
	"fmt"
	"log/slog"

	"finman/internal/core"
	"finman/internal/ledger"
)

// Publisher announces recorded transactions to other processes.
type Publisher interface {
	PublishTransactionRecorded(ctx context.Context, t core.Transaction) error
}

// TransactionService records transactions in the ledger, credits goals on
// income and publishes the record when a publisher is configured.
type TransactionService struct {
	ledger    *ledger.Ledger
	goals     *GoalTracker
	publisher Publisher
}

// NewTransactionService wires the service. publisher may be nil.
func NewTransactionService(l *ledger.Ledger, goals *GoalTracker, publisher Publisher) *TransactionService {
	return &TransactionService{
		ledger:    l,
		goals:     goals,
		publisher: publisher,
	}
}

// Record appends t to the ledger. Goals are credited only after the append
// succeeded, and a publish failure never fails the call.
func (s *TransactionService) Record(ctx context.Context, t core.Transaction) error {
	if err := s.ledger.Append(ctx, t); err != nil {
		return fmt.Errorf("record transaction: %w", err)
	}

	if t.Category == core.Income && s.goals != nil {
		s.goals.OnIncomeEvent(t.Amount)
	}

	if err := s.publish(ctx, t); err != nil {
		slog.ErrorContext(ctx, "Failed to publish transaction recorded message",
			"date", t.Date.String(), "category", t.Category, "error", err)
	}
	return nil
}

// Query returns the ledger rows within [start, end].
func (s *TransactionService) Query(start, end core.Date) ([]core.Transaction, error) {
	return s.ledger.Query(start, end)
}

func (s *TransactionService) publish(ctx context.Context, t core.Transaction) error {
	if s.publisher == nil {
		slog.DebugContext(ctx, "AMQP publisher not available, skipping transaction message")
		return nil
	}
	return s.publisher.PublishTransactionRecorded(ctx, t)
}
