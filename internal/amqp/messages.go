package amqp

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"finman/internal/core"
)

// ErrMalformedMessage marks a message that can never be processed.
var ErrMalformedMessage = errors.New("malformed message")

// TransactionRecorded carries one stored transaction as its flat record.
type TransactionRecorded struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`
}

// NewTransactionRecorded creates a message with a fresh ID.
func NewTransactionRecorded(t core.Transaction) *TransactionRecorded {
	rec := t.Record()
	return &TransactionRecorded{
		ID:          uuid.NewString(),
		Date:        rec[0],
		Amount:      rec[1],
		Category:    rec[2],
		Description: rec[3],
		Timestamp:   time.Now().UTC(),
	}
}

// ToJSON converts the message to JSON bytes
func (m *TransactionRecorded) ToJSON() ([]byte, error) {
	return json.Marshal(m)
}

// TransactionRecordedFromJSON decodes a message. Decoding failures wrap ErrMalformedMessage.
func TransactionRecordedFromJSON(data []byte) (*TransactionRecorded, error) {
	var msg TransactionRecorded
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedMessage, err)
	}
	return &msg, nil
}

// ToTransaction validates the carried record.
func (m *TransactionRecorded) ToTransaction() (core.Transaction, error) {
	t, err := core.ParseRecord([]string{m.Date, m.Amount, m.Category, m.Description})
	if err != nil {
		return core.Transaction{}, fmt.Errorf("%w: %w", ErrMalformedMessage, err)
	}
	return t, nil
}
