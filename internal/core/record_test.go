package core

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestRecordRoundTrip(t *testing.T) {
	tx := Transaction{
		Date:        NewDate(2024, 1, 5),
		Amount:      decimal.RequireFromString("200.50"),
		Category:    Expense,
		Description: "groceries, weekly",
	}
	rec := tx.Record()
	if rec[0] != "05-01-2024" || rec[2] != "Expense" || rec[3] != "groceries, weekly" {
		t.Fatalf("unexpected record %v", rec)
	}
	if rec[1] != "200.5" {
		t.Fatalf("amount text = %q, want trailing zeros dropped", rec[1])
	}
	got, err := ParseRecord(rec)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !got.Date.Equal(tx.Date.Time) || !got.Amount.Equal(tx.Amount) || got.Category != tx.Category || got.Description != tx.Description {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, tx)
	}
}

func TestParseRecordRejectsMalformed(t *testing.T) {
	tests := []struct {
		name   string
		fields []string
		want   error
	}{
		{"too few fields", []string{"01-01-2024", "10"}, ErrInvalidRecord},
		{"too many fields", []string{"01-01-2024", "10", "Income", "a", "b"}, ErrInvalidRecord},
		{"bad date", []string{"2024-01-01", "10", "Income", ""}, ErrInvalidDate},
		{"bad amount", []string{"01-01-2024", "ten", "Income", ""}, ErrInvalidAmount},
		{"negative amount", []string{"01-01-2024", "-10", "Income", ""}, ErrInvalidAmount},
		{"bad category", []string{"01-01-2024", "10", "I", ""}, ErrInvalidCategory},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(tt.fields)
			if !errors.Is(err, ErrValidation) || !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseRecordOptionalDescription(t *testing.T) {
	got, err := ParseRecord([]string{"01-01-2024", "10", "Income"})
	if err != nil || got.Description != "" {
		t.Fatalf("unexpected result %+v, %v", got, err)
	}
	if !IsHeader(RecordColumns) || IsHeader(got.Record()) {
		t.Fatalf("header detection mismatch")
	}
}
