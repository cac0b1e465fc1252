// Package report renders ledger queries and goals for the console and as PDF.
package report

import (
	"fmt"
	"io"
	"iter"
	"text/tabwriter"

	"finman/internal/core"
	"finman/internal/services"
)

const (
	NoRangeData  = "No transaction found in the given date range."
	NoPeriodData = "No transactions found for the specified period."
)

// WriteTransactions prints txs as an aligned table.
func WriteTransactions(w io.Writer, txs []core.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tamount\tcategory\tdescription")
	for _, t := range txs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Date, core.FormatAmount(t.Amount), t.Category, t.Description)
	}
	return tw.Flush()
}

// WriteRange prints the rows of a date-range query followed by its summary
// and insights.
func WriteRange(w io.Writer, r services.Report) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, NoRangeData)
		return err
	}
	fmt.Fprintf(w, "transaction from %s to %s\n", r.Period.Start, r.Period.End)
	if err := WriteTransactions(w, r.Transactions); err != nil {
		return err
	}

	res := r.Result
	fmt.Fprintln(w, "\nSummary:")
	fmt.Fprintf(w, "Total Income: %s\n", core.FormatAmount(res.TotalIncome))
	fmt.Fprintf(w, "Total Expense: %s\n", core.FormatAmount(res.TotalExpense))
	fmt.Fprintf(w, "Net Saving: %s\n", core.FormatAmount(res.NetSavings))
	fmt.Fprintln(w, "\nFinancial Insights:")
	for _, in := range res.Insights {
		fmt.Fprintf(w, "- %s\n", in.Message)
	}
	return nil
}

// WritePeriod prints a yearly or monthly report.
func WritePeriod(w io.Writer, r services.Report) error {
	if r.Empty() {
		_, err := fmt.Fprintln(w, NoPeriodData)
		return err
	}
	res := r.Result
	fmt.Fprintf(w, "\n%s\n", r.Period.Title())
	fmt.Fprintf(w, "\nTotal Income: %s\n", core.FormatAmount(res.TotalIncome))
	fmt.Fprintf(w, "Total Expenses: %s\n", core.FormatAmount(res.TotalExpense))
	fmt.Fprintf(w, "Net Savings: %s\n", core.FormatAmount(res.NetSavings))

	fmt.Fprintln(w, "\nCategory Breakdown:")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range res.Breakdown() {
		fmt.Fprintf(tw, "%s\t%s\n", c.Category, core.FormatAmount(c.Amount))
	}
	return tw.Flush()
}

// WriteGoals prints every goal with its progress.
func WriteGoals(w io.Writer, goals iter.Seq[services.GoalProgress]) error {
	n := 0
	for g := range goals {
		n++
		fmt.Fprintf(w, "%s: %s%% completed\n", g.Name, g.ProgressPercent.StringFixed(2))
		fmt.Fprintf(w, "Target: %s, Current: %s\n", core.FormatAmount(g.TargetAmount), core.FormatAmount(g.CurrentAmount))
		if _, err := fmt.Fprintf(w, "Target Date: %s\n\n", g.TargetDate); err != nil {
			return err
		}
	}
	if n == 0 {
		_, err := fmt.Fprintln(w, "No financial goals yet.")
		return err
	}
	return nil
}

// WriteSeries prints the per-day income and expense totals of txs.
func WriteSeries(w io.Writer, txs []core.Transaction) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "date\tincome\texpense")
	for _, d := range DailySeries(txs) {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", d.Date, core.FormatAmount(d.Income), core.FormatAmount(d.Expense))
	}
	return tw.Flush()
}
