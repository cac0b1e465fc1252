package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"finman/internal/core"
)

// DailySeries sums income and expense per calendar day over the dates that
// occur in txs, in ascending date order. Days without rows are absent.
func DailySeries(txs []core.Transaction) []core.DailyTotal {
	byDay := make(map[string]*core.DailyTotal)
	for _, t := range txs {
		key := t.Date.Format("2006-01-02")
		d, ok := byDay[key]
		if !ok {
			d = &core.DailyTotal{Date: t.Date, Income: decimal.Zero, Expense: decimal.Zero}
			byDay[key] = d
		}
		switch t.Category {
		case core.Income:
			d.Income = d.Income.Add(t.Amount)
		case core.Expense:
			d.Expense = d.Expense.Add(t.Amount)
		}
	}

	out := make([]core.DailyTotal, 0, len(byDay))
	for _, d := range byDay {
		out = append(out, *d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}
