// Package worker mirrors recorded transactions from the event stream into a
// second store.
package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"finman/internal/amqp"
	"finman/internal/cache"
	"finman/internal/core"
	"finman/internal/ledger"
	"finman/internal/log"
)

// Consumer delivers TransactionRecorded messages to a handler until ctx ends.
type Consumer interface {
	ConsumeTransactionRecorded(ctx context.Context, handler amqp.Handler) error
}

// MirrorWorker appends every received record to its store.
type MirrorWorker struct {
	store ledger.Store
	seen  *cache.RecentSet
}

// NewMirrorWorker returns a worker writing to store. seen, when not nil,
// suppresses redelivered message IDs.
func NewMirrorWorker(store ledger.Store, seen *cache.RecentSet) *MirrorWorker {
	return &MirrorWorker{store: store, seen: seen}
}

// HandleMessage validates msg and appends it to the mirror store. Invalid
// records return an error wrapping amqp.ErrMalformedMessage.
func (w *MirrorWorker) HandleMessage(ctx context.Context, msg *amqp.TransactionRecorded) error {
	if w.seen != nil && msg.ID != "" && !w.seen.Add(msg.ID) {
		slog.InfoContext(ctx, "Skipping duplicate transaction message", log.FieldMessageID, msg.ID)
		return nil
	}

	t, err := msg.ToTransaction()
	if err != nil {
		return err
	}

	if err := w.store.AppendRecord(ctx, t); err != nil {
		if w.seen != nil {
			w.seen.Forget(msg.ID)
		}
		if errors.Is(err, core.ErrValidation) {
			return fmt.Errorf("%w: %w", amqp.ErrMalformedMessage, err)
		}
		return fmt.Errorf("append to mirror: %w", err)
	}

	slog.InfoContext(ctx, "Mirrored transaction",
		log.FieldMessageID, msg.ID,
		log.FieldDate, msg.Date,
		log.FieldAmount, msg.Amount,
		log.FieldCategory, msg.Category)
	return nil
}

// Run consumes until ctx is cancelled. Cancellation is not an error.
func (w *MirrorWorker) Run(ctx context.Context, consumer Consumer) error {
	slog.InfoContext(ctx, "Mirror worker started")
	err := consumer.ConsumeTransactionRecorded(ctx, w.HandleMessage)
	if errors.Is(err, context.Canceled) {
		slog.InfoContext(ctx, "Mirror worker stopped")
		return nil
	}
	return err
}
