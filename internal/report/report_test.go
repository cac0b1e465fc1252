package report

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finman/internal/core"
	"finman/internal/services"
)

func januaryReport(t *testing.T) services.Report {
	t.Helper()
	txs := []core.Transaction{
		{Date: core.NewDate(2024, 1, 1), Amount: decimal.RequireFromString("1000"), Category: core.Income, Description: "salary"},
		{Date: core.NewDate(2024, 1, 5), Amount: decimal.RequireFromString("200"), Category: core.Expense, Description: "groceries"},
		{Date: core.NewDate(2024, 1, 10), Amount: decimal.RequireFromString("150"), Category: core.Expense, Description: "rent"},
		{Date: core.NewDate(2024, 1, 15), Amount: decimal.RequireFromString("100"), Category: core.Expense, Description: "groceries"},
	}
	p, err := core.ResolveMonthly(2024, 1)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	return services.Report{Period: p, Transactions: txs, Result: services.Aggregate(txs)}
}

func TestWriteRange(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteRange(&buf, januaryReport(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"transaction from 01-01-2024 to 31-01-2024",
		"05-01-2024",
		"Total Income: 1000.00",
		"Total Expense: 450.00",
		"Net Saving: 550.00",
		"- Great job! Your savings rate is healthy. Keep it up!",
		"- Your highest expense category is 'groceries'.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	buf.Reset()
	WriteRange(&buf, services.Report{})
	if strings.TrimSpace(buf.String()) != NoRangeData {
		t.Fatalf("unexpected empty output %q", buf.String())
	}
}

func TestWritePeriod(t *testing.T) {
	var buf bytes.Buffer
	if err := WritePeriod(&buf, januaryReport(t)); err != nil {
		t.Fatalf("write: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Monthly Financial Report for 01-01-2024 to 31-01-2024",
		"Total Expenses: 450.00",
		"Net Savings: 550.00",
		"Category Breakdown:",
		"Expense  450.00",
		"Income   1000.00",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteGoals(t *testing.T) {
	g := services.NewGoalTracker()
	g.AddGoal("car", decimal.NewFromInt(1000), core.NewDate(2025, 1, 1))
	g.OnIncomeEvent(decimal.NewFromInt(125))

	var buf bytes.Buffer
	if err := WriteGoals(&buf, g.ListGoals()); err != nil {
		t.Fatalf("write: %v", err)
	}
	want := "car: 12.50% completed\nTarget: 1000.00, Current: 125.00\nTarget Date: 01-01-2025\n\n"
	if buf.String() != want {
		t.Fatalf("got %q, want %q", buf.String(), want)
	}
}

func TestDailySeries(t *testing.T) {
	txs := []core.Transaction{
		{Date: core.NewDate(2024, 1, 5), Amount: decimal.NewFromInt(20), Category: core.Expense},
		{Date: core.NewDate(2024, 1, 1), Amount: decimal.NewFromInt(100), Category: core.Income},
		{Date: core.NewDate(2024, 1, 5), Amount: decimal.NewFromInt(30), Category: core.Expense},
		{Date: core.NewDate(2024, 1, 5), Amount: decimal.NewFromInt(7), Category: core.Income},
	}
	got := DailySeries(txs)
	if len(got) != 2 {
		t.Fatalf("expected 2 days, got %d", len(got))
	}
	if got[0].Date.String() != "01-01-2024" || !got[0].Income.Equal(decimal.NewFromInt(100)) || !got[0].Expense.IsZero() {
		t.Fatalf("unexpected first day %+v", got[0])
	}
	if !got[1].Expense.Equal(decimal.NewFromInt(50)) || !got[1].Income.Equal(decimal.NewFromInt(7)) {
		t.Fatalf("unexpected second day %+v", got[1])
	}
	if len(DailySeries(nil)) != 0 {
		t.Fatal("expected empty series")
	}
}

func TestPDFFileName(t *testing.T) {
	got := PDFFileName("Yearly Financial Report for 01-01-2024 to 31-12-2024")
	if got != "financial_report_Yearly_Financial_Report_for_01-01-2024_to_31-12-2024.pdf" {
		t.Fatalf("unexpected name %q", got)
	}
}

func TestExportPDF(t *testing.T) {
	dir := t.TempDir()
	path, err := ExportPDF(dir, januaryReport(t))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if filepath.Base(path) != PDFFileName("Monthly Financial Report for 01-01-2024 to 31-01-2024") {
		t.Fatalf("unexpected path %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}

	if _, err := ExportPDF(dir, services.Report{}); err == nil {
		t.Fatal("expected error for empty report")
	}
}

func TestWriteSeries(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSeries(&buf, januaryReport(t).Transactions); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("expected header and 4 days, got %d lines:\n%s", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "01-01-2024") || !strings.Contains(lines[1], "1000.00") {
		t.Fatalf("unexpected first row %q", lines[1])
	}
}
