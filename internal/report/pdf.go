package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"finman/internal/core"
	"finman/internal/services"
)

const (
	chartHeight = 60.0
	rowHeight   = 7.0
)

// PDFFileName returns financial_report_<title>.pdf with spaces replaced by underscores.
func PDFFileName(title string) string {
	return fmt.Sprintf("financial_report_%s.pdf", strings.ReplaceAll(title, " ", "_"))
}

// ExportPDF writes the report into dir and returns the file path.
func ExportPDF(dir string, r services.Report) (string, error) {
	if r.Empty() {
		return "", fmt.Errorf("export pdf: %w", core.ErrInsufficientData)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create report directory: %w", err)
	}
	path := filepath.Join(dir, PDFFileName(r.Period.Title()))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePDF(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	return path, nil
}

// WritePDF renders the title, summary, category breakdown, daily chart and
// transaction table of r.
func WritePDF(w io.Writer, r services.Report) error {
	if r.Empty() {
		return fmt.Errorf("write pdf: %w", core.ErrInsufficientData)
	}
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	title := r.Period.Title()
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	res := r.Result
	section(pdf, "Summary")
	table(pdf, []float64{60, 40}, [][]string{
		{"Total Income", core.FormatAmount(res.TotalIncome)},
		{"Total Expenses", core.FormatAmount(res.TotalExpense)},
		{"Net Savings", core.FormatAmount(res.NetSavings)},
	}, tr)
	pdf.Ln(4)

	section(pdf, "Category Breakdown")
	rows := make([][]string, 0, len(res.ByCategory))
	for _, c := range res.Breakdown() {
		rows = append(rows, []string{string(c.Category), core.FormatAmount(c.Amount)})
	}
	table(pdf, []float64{60, 40}, rows, tr)
	pdf.Ln(4)

	section(pdf, "Income and Expenses Over Time")
	drawChart(pdf, DailySeries(r.Transactions))
	pdf.Ln(4)

	section(pdf, "Transactions")
	widths := []float64{30, 30, 30, 90}
	pdf.SetFont("Arial", "B", 10)
	for i, h := range []string{"Date", "Amount", "Category", "Description"} {
		pdf.CellFormat(widths[i], rowHeight, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	txRows := make([][]string, 0, len(r.Transactions))
	for _, t := range r.Transactions {
		txRows = append(txRows, []string{t.Date.String(), core.FormatAmount(t.Amount), string(t.Category), t.Description})
	}
	table(pdf, widths, txRows, tr)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}

func section(pdf *fpdf.Fpdf, name string) {
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, name, "", 1, "L", false, 0, "")
}

func table(pdf *fpdf.Fpdf, widths []float64, rows [][]string, tr func(string) string) {
	pdf.SetFont("Arial", "", 10)
	for _, row := range rows {
		for i, cell := range row {
			align := "L"
			if i == 1 {
				align = "R"
			}
			pdf.CellFormat(widths[i], rowHeight, tr(cell), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}
}

// drawChart plots the daily income and expense totals as two polylines.
func drawChart(pdf *fpdf.Fpdf, series []core.DailyTotal) {
	left, _, right, _ := pdf.GetMargins()
	pageW, _ := pdf.GetPageSize()
	x0, y0 := left+10, pdf.GetY()+2
	width := pageW - right - x0
	bottom := y0 + chartHeight

	maxVal := decimal.Zero
	for _, d := range series {
		maxVal = decimal.Max(maxVal, d.Income, d.Expense)
	}
	top, _ := maxVal.Float64()
	if top <= 0 {
		top = 1
	}

	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.2)
	pdf.Line(x0, y0, x0, bottom)
	pdf.Line(x0, bottom, x0+width, bottom)

	pdf.SetFont("Arial", "", 8)
	pdf.Text(left, y0+3, decimal.NewFromFloat(top).StringFixed(0))
	pdf.Text(left, bottom, "0")

	point := func(i int, v decimal.Decimal) (float64, float64) {
		x := x0
		if len(series) > 1 {
			x = x0 + width*float64(i)/float64(len(series)-1)
		}
		f, _ := v.Float64()
		return x, bottom - chartHeight*f/top
	}
	plot := func(value func(core.DailyTotal) decimal.Decimal) {
		for i := range series {
			x, y := point(i, value(series[i]))
			pdf.Circle(x, y, 0.6, "F")
			if i > 0 {
				px, py := point(i-1, value(series[i-1]))
				pdf.Line(px, py, x, y)
			}
		}
	}

	pdf.SetLineWidth(0.5)
	pdf.SetDrawColor(46, 139, 87)
	pdf.SetFillColor(46, 139, 87)
	plot(func(d core.DailyTotal) decimal.Decimal { return d.Income })
	pdf.SetDrawColor(200, 40, 40)
	pdf.SetFillColor(200, 40, 40)
	plot(func(d core.DailyTotal) decimal.Decimal { return d.Expense })

	pdf.SetLineWidth(0.2)
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetTextColor(0, 0, 0)
	if len(series) > 0 {
		pdf.Text(x0, bottom+4, series[0].Date.String())
		if len(series) > 1 {
			pdf.Text(x0+width-18, bottom+4, series[len(series)-1].Date.String())
		}
	}
	pdf.SetTextColor(46, 139, 87)
	pdf.Text(x0+width-40, y0+3, "Income")
	pdf.SetTextColor(200, 40, 40)
	pdf.Text(x0+width-20, y0+3, "Expense")
	pdf.SetTextColor(0, 0, 0)

	pdf.SetY(bottom + 6)
}
