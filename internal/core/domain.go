package core

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the on-disk and on-screen date format (DD-MM-YYYY).
const DateLayout = "02-01-2006"

// parseLayout accepts one or two digit days and months.
const parseLayout = "2-1-2006"

const (
	Income  Category = "Income"
	Expense Category = "Expense"
)

type (
	Category string

	Date struct {
		time.Time
	}

	Transaction struct {
		Date        Date
		Amount      decimal.Decimal
		Category    Category
		Description string
	}

	Goal struct {
		Name          string
		TargetAmount  decimal.Decimal
		TargetDate    Date
		CurrentAmount decimal.Decimal
	}
)

// categoryCodes maps the single-letter console codes to categories.
var categoryCodes = map[string]Category{
	"I": Income,
	"E": Expense,
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in UTC.
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), int(now.Month()), now.Day())
}

// MinYear and MaxYear bound every date the ledger accepts: four digit years
// only. The zero time falls below MinYear, so an unset Date never validates.
const (
	MinYear = 1000
	MaxYear = 9999
)

// ParseDate parses a DD-MM-YYYY string. Impossible dates such as 30-02-2024
// and years outside MinYear..MaxYear are rejected.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	t, err := time.Parse(parseLayout, s)
	if err != nil || t.Year() < MinYear || t.Year() > MaxYear {
		return Date{}, &ValidationError{Field: "date", Value: s, Err: ErrInvalidDate}
	}
	return Date{Time: t}, nil
}

func (d Date) Validate() error {
	if y := d.Year(); y < MinYear || y > MaxYear {
		return &ValidationError{Field: "date", Value: d.String(), Err: ErrInvalidDate}
	}
	return nil
}

// String formats the date as DD-MM-YYYY.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool {
	return d.Time.Before(o.Time)
}

// After reports whether d is strictly later than o.
func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

// Within reports whether d lies in the inclusive range [start, end].
func (d Date) Within(start, end Date) bool {
	return !d.Before(start) && !d.After(end)
}

// ParseCategory accepts the full category name or the I/E code, case-insensitively.
func ParseCategory(s string) (Category, error) {
	v := strings.TrimSpace(s)
	if c, ok := categoryCodes[strings.ToUpper(v)]; ok {
		return c, nil
	}
	switch {
	case strings.EqualFold(v, string(Income)):
		return Income, nil
	case strings.EqualFold(v, string(Expense)):
		return Expense, nil
	}
	return "", &ValidationError{Field: "category", Value: s, Err: ErrInvalidCategory}
}

func (c Category) Validate() error {
	switch c {
	case Income, Expense:
		return nil
	}
	return &ValidationError{Field: "category", Value: string(c), Err: ErrInvalidCategory}
}

func (t Transaction) Validate() error {
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if err := ValidateAmount(t.Amount); err != nil {
		return err
	}
	return t.Category.Validate()
}

// NewGoal builds a goal with no accumulated progress.
func NewGoal(name string, target decimal.Decimal, targetDate Date) (Goal, error) {
	if !target.IsPositive() {
		return Goal{}, &ValidationError{Field: "target_amount", Value: target.String(), Err: ErrInvalidAmount}
	}
	if err := targetDate.Validate(); err != nil {
		return Goal{}, err
	}
	return Goal{
		Name:          name,
		TargetAmount:  target,
		TargetDate:    targetDate,
		CurrentAmount: decimal.Zero,
	}, nil
}

// Progress returns CurrentAmount as a percentage of TargetAmount. It can exceed 100.
func (g Goal) Progress() decimal.Decimal {
	if g.TargetAmount.IsZero() {
		return decimal.Zero
	}
	return g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100))
}
