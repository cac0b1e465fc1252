package core

import "github.com/shopspring/decimal"

// CategoryAmount represents an amount aggregated by category.
type CategoryAmount struct {
	Category Category
	Amount   decimal.Decimal
}

// DailyTotal holds the income and expense totals of a single day.
type DailyTotal struct {
	Date    Date
	Income  decimal.Decimal
	Expense decimal.Decimal
}
