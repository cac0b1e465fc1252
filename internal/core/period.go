package core

import (
	"fmt"
	"time"
)

const (
	Yearly  PeriodLabel = "Yearly"
	Monthly PeriodLabel = "Monthly"
)

type PeriodLabel string

// Period is a resolved inclusive date range.
type Period struct {
	Label PeriodLabel
	Start Date
	End   Date
}

// Title is the heading used by report renderers.
func (p Period) Title() string {
	return fmt.Sprintf("%s Financial Report for %s to %s", p.Label, p.Start, p.End)
}

// ResolveYearly returns 1 January to 31 December of year.
func ResolveYearly(year int) (Period, error) {
	if err := validateYear(year); err != nil {
		return Period{}, err
	}
	return Period{
		Label: Yearly,
		Start: NewDate(year, 1, 1),
		End:   NewDate(year, 12, 31),
	}, nil
}

// ResolveMonthly returns the first to the last calendar day of month in year.
func ResolveMonthly(year, month int) (Period, error) {
	if err := validateYear(year); err != nil {
		return Period{}, err
	}
	if month < 1 || month > 12 {
		return Period{}, &RangeError{Detail: fmt.Sprintf("got %d", month), Err: ErrInvalidMonth}
	}
	return Period{
		Label: Monthly,
		Start: NewDate(year, month, 1),
		End:   NewDate(year, month, DaysInMonth(year, month)),
	}, nil
}

// DaysInMonth returns the number of days in month, leap years included.
func DaysInMonth(year, month int) int {
	// Day 0 of the following month normalises to the last day of this one.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidateRange rejects ranges whose start is after their end.
func ValidateRange(start, end Date) error {
	if start.After(end) {
		return &RangeError{Detail: fmt.Sprintf("%s > %s", start, end), Err: ErrInvalidRange}
	}
	return nil
}

func validateYear(year int) error {
	if year < MinYear || year > MaxYear {
		return &RangeError{Detail: fmt.Sprintf("got %d", year), Err: ErrInvalidYear}
	}
	return nil
}
