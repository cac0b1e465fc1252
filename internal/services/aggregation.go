package services

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"finman/internal/core"
)

// InsightKind identifies an insight rule.
type InsightKind string

const (
	InsightLowSavings    InsightKind = "low_savings_rate"
	InsightHealthy       InsightKind = "healthy_savings_rate"
	InsightTopExpense    InsightKind = "top_expense"
	InsightUnsustainable InsightKind = "unsustainable"
)

var (
	lowSavingsThreshold     = decimal.NewFromFloat(0.10)
	healthySavingsThreshold = decimal.NewFromFloat(0.20)
)

// Insight is one rule-derived observation about a set of transactions.
type Insight struct {
	Kind    InsightKind
	Message string
}

// AggregateResult summarises a subset of transactions. It is built once per
// query and never modified afterwards.
type AggregateResult struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	NetSavings   decimal.Decimal
	SavingsRate  decimal.Decimal
	ByCategory   map[core.Category]decimal.Decimal
	Insights     []Insight
}

// Breakdown returns the per-category totals sorted by category name.
func (r *AggregateResult) Breakdown() []core.CategoryAmount {
	out := make([]core.CategoryAmount, 0, len(r.ByCategory))
	for c, amt := range r.ByCategory {
		out = append(out, core.CategoryAmount{Category: c, Amount: amt})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// Aggregate computes totals, savings rate and insights over txs.
func Aggregate(txs []core.Transaction) *AggregateResult {
	res := &AggregateResult{
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
		SavingsRate:  decimal.Zero,
		ByCategory:   make(map[core.Category]decimal.Decimal),
	}
	hasExpense := false
	for _, t := range txs {
		switch t.Category {
		case core.Income:
			res.TotalIncome = res.TotalIncome.Add(t.Amount)
		case core.Expense:
			res.TotalExpense = res.TotalExpense.Add(t.Amount)
			hasExpense = true
		}
		res.ByCategory[t.Category] = res.ByCategory[t.Category].Add(t.Amount)
	}
	res.NetSavings = res.TotalIncome.Sub(res.TotalExpense)
	if res.TotalIncome.IsPositive() {
		res.SavingsRate = res.NetSavings.Div(res.TotalIncome)
	}

	if res.SavingsRate.LessThan(lowSavingsThreshold) {
		res.Insights = append(res.Insights, Insight{
			Kind:    InsightLowSavings,
			Message: "Your savings rate is low. Consider reducing non-essential expenses to increase your savings.",
		})
	}
	if res.SavingsRate.GreaterThan(healthySavingsThreshold) {
		res.Insights = append(res.Insights, Insight{
			Kind:    InsightHealthy,
			Message: "Great job! Your savings rate is healthy. Keep it up!",
		})
	}
	if hasExpense {
		if desc, _, err := TopExpense(txs); err == nil {
			res.Insights = append(res.Insights, Insight{
				Kind:    InsightTopExpense,
				Message: fmt.Sprintf("Your highest expense category is '%s'. Review if there's room for reduction.", desc),
			})
		}
	}
	if res.TotalExpense.GreaterThan(res.TotalIncome) {
		res.Insights = append(res.Insights, Insight{
			Kind:    InsightUnsustainable,
			Message: "Warning: Your expenses exceed your income. This is unsustainable in the long term.",
		})
	}
	return res
}

// TopExpense groups the expense rows of txs by description and returns the
// description with the largest sum. Ties go to the description that sorts
// first. It returns core.ErrInsufficientData when txs has no expense rows.
func TopExpense(txs []core.Transaction) (string, decimal.Decimal, error) {
	sums := make(map[string]decimal.Decimal)
	for _, t := range txs {
		if t.Category == core.Expense {
			sums[t.Description] = sums[t.Description].Add(t.Amount)
		}
	}
	if len(sums) == 0 {
		return "", decimal.Zero, core.ErrInsufficientData
	}
	descs := make([]string, 0, len(sums))
	for d := range sums {
		descs = append(descs, d)
	}
	sort.Strings(descs)

	best := descs[0]
	for _, d := range descs[1:] {
		if sums[d].GreaterThan(sums[best]) {
			best = d
		}
	}
	return best, sums[best], nil
}
