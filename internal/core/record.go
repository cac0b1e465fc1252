package core

import (
	"fmt"
	"strings"
)

// RecordColumns is the header of the flat transaction record.
var RecordColumns = []string{"date", "amount", "category", "description"}

// Record serialises the transaction as date, amount, category, description.
func (t Transaction) Record() []string {
	return []string{t.Date.String(), t.Amount.String(), string(t.Category), t.Description}
}

// ParseRecord parses and validates one flat record. A missing description
// column is accepted as an empty description.
func ParseRecord(fields []string) (Transaction, error) {
	if len(fields) < 3 || len(fields) > len(RecordColumns) {
		return Transaction{}, &ValidationError{
			Field: "record",
			Value: strings.Join(fields, ","),
			Err:   fmt.Errorf("%w: want %d fields, got %d", ErrInvalidRecord, len(RecordColumns), len(fields)),
		}
	}
	date, err := ParseDate(fields[0])
	if err != nil {
		return Transaction{}, err
	}
	amount, err := ParseAmount(fields[1])
	if err != nil {
		return Transaction{}, err
	}
	category := Category(strings.TrimSpace(fields[2]))
	if err := category.Validate(); err != nil {
		return Transaction{}, err
	}
	var desc string
	if len(fields) == len(RecordColumns) {
		desc = fields[3]
	}
	return Transaction{Date: date, Amount: amount, Category: category, Description: desc}, nil
}

// IsHeader reports whether fields is the record header row.
func IsHeader(fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	return strings.EqualFold(strings.TrimSpace(fields[0]), RecordColumns[0])
}
