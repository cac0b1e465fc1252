// Package core provides money parsing and handling utilities.
//
// This file contains functions for parsing monetary amounts from user input
// and persisted records.
package core

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// ParseAmount converts a decimal string to a positive amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs,
// exponents, thousands separators, zero and anything non-numeric are rejected.
// No rounding is applied, so the value survives a round trip through a
// record. The text does not: trailing zeros are dropped when the record is
// written, so compare loaded amounts with Equal.
//
// Examples:
//
//	ParseAmount("12.34") -> 12.34, nil
//	ParseAmount("12,34") -> 12.34, nil
//	ParseAmount("-5")    -> 0, ErrInvalidAmount
func ParseAmount(s string) (decimal.Decimal, error) {
	raw := s
	s = strings.TrimSpace(s)
	invalid := &ValidationError{Field: "amount", Value: raw, Err: ErrInvalidAmount}
	if s == "" {
		return decimal.Zero, invalid
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return decimal.Zero, invalid
	}
	digits := 0
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsDigit(r) {
				return decimal.Zero, invalid
			}
			digits++
		}
	}
	if digits == 0 {
		return decimal.Zero, invalid
	}
	if parts[0] == "" {
		s = "0" + s
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, invalid
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Zero, invalid
	}
	return d, nil
}

// ValidateAmount rejects zero and negative amounts.
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return &ValidationError{Field: "amount", Value: d.String(), Err: ErrInvalidAmount}
	}
	return nil
}

// FormatAmount renders an amount with two decimals for display.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
