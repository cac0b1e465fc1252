package core

import (
	"errors"
	"testing"
)

func TestResolveMonthly(t *testing.T) {
	tests := []struct {
		name        string
		year, month int
		start, end  string
	}{
		{"leap february", 2024, 2, "01-02-2024", "29-02-2024"},
		{"common february", 2023, 2, "01-02-2023", "28-02-2023"},
		{"century non-leap", 1900, 2, "01-02-1900", "28-02-1900"},
		{"april", 2024, 4, "01-04-2024", "30-04-2024"},
		{"december", 2024, 12, "01-12-2024", "31-12-2024"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ResolveMonthly(tt.year, tt.month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if p.Start.String() != tt.start || p.End.String() != tt.end {
				t.Fatalf("got %s..%s, want %s..%s", p.Start, p.End, tt.start, tt.end)
			}
			if p.Label != Monthly {
				t.Fatalf("unexpected label %q", p.Label)
			}
		})
	}
}

func TestResolveMonthlyRejectsMonth(t *testing.T) {
	for _, m := range []int{0, 13, -1} {
		_, err := ResolveMonthly(2024, m)
		if !errors.Is(err, ErrRange) || !errors.Is(err, ErrInvalidMonth) {
			t.Fatalf("month %d: expected range error, got %v", m, err)
		}
	}
}

func TestResolveYearly(t *testing.T) {
	p, err := ResolveYearly(2024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Start.String() != "01-01-2024" || p.End.String() != "31-12-2024" || p.Label != Yearly {
		t.Fatalf("unexpected period %+v", p)
	}
	if p.Title() != "Yearly Financial Report for 01-01-2024 to 31-12-2024" {
		t.Fatalf("unexpected title %q", p.Title())
	}
	for _, year := range []int{0, MinYear - 1, MaxYear + 1} {
		if _, err := ResolveYearly(year); !errors.Is(err, ErrInvalidYear) {
			t.Fatalf("year %d: expected invalid year, got %v", year, err)
		}
	}
	p, err = ResolveYearly(MinYear)
	if err != nil {
		t.Fatalf("MinYear must resolve: %v", err)
	}
	if err := p.Start.Validate(); err != nil {
		t.Fatalf("resolved start must validate: %v", err)
	}
}

func TestValidateRange(t *testing.T) {
	if err := ValidateRange(NewDate(2024, 1, 1), NewDate(2024, 1, 1)); err != nil {
		t.Fatalf("equal bounds must be accepted: %v", err)
	}
	err := ValidateRange(NewDate(2024, 2, 1), NewDate(2024, 1, 1))
	if !errors.Is(err, ErrRange) || !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected range error, got %v", err)
	}
}
