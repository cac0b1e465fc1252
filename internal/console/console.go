// Package console runs the interactive personal finance menu.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"finman/internal/core"
	"finman/internal/prompt"
	"finman/internal/report"
	"finman/internal/services"
)

const menu = `
===== Personal Finance Manager =====

1. Add a new transaction
2. View transaction and summary within a date range
3. Generate financial report
4. Add a financial goal
5. View your financial goal
6. Exit
=====================================`

const reportMenu = `
Generate Financial Report
1. Yearly Report
2. Monthly Report
3. Return to Main Menu`

// Session is one interactive run over a ledger. Not safe for concurrent use.
type Session struct {
	out       io.Writer
	prompt    *prompt.Prompter
	tx        *services.TransactionService
	reports   *services.ReportService
	goals     *services.GoalTracker
	reportDir string
}

// Options configures a Session.
type Options struct {
	MaxAttempts int
	ReportDir   string
}

func New(in io.Reader, out io.Writer, tx *services.TransactionService, reports *services.ReportService, goals *services.GoalTracker, opts Options) *Session {
	if opts.ReportDir == "" {
		opts.ReportDir = "."
	}
	return &Session{
		out:       out,
		prompt:    prompt.New(in, out, opts.MaxAttempts),
		tx:        tx,
		reports:   reports,
		goals:     goals,
		reportDir: opts.ReportDir,
	}
}

// Run shows the main menu until the user exits, the input ends or ctx is
// cancelled. Errors from a single action are printed and the menu is shown
// again.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, menu)
		choice, err := s.prompt.Line("Enter your choice(1-6): ")
		if err != nil {
			return endOfInput(err)
		}

		switch choice {
		case "1":
			err = s.addTransaction(ctx)
		case "2":
			err = s.viewRange()
		case "3":
			err = s.reportLoop()
		case "4":
			err = s.addGoal()
		case "5":
			err = report.WriteGoals(s.out, s.goals.ListGoals())
		case "6":
			fmt.Fprintln(s.out, "Thank you for using Personal Finance Manager. Goodbye!")
			fmt.Fprintln(s.out, "Exiting......")
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Enter 1, 2, 3, 4, 5 or 6. ")
		}

		if errors.Is(err, prompt.ErrNoInput) {
			return nil
		}
		if err != nil {
			slog.DebugContext(ctx, "Console action failed", "choice", choice, "error", err)
			fmt.Fprintln(s.out, err)
		}
	}
}

func endOfInput(err error) error {
	if errors.Is(err, prompt.ErrNoInput) {
		return nil
	}
	return err
}

func (s *Session) addTransaction(ctx context.Context) error {
	date, err := s.prompt.Date("Enter the date of the transaction (dd-mm-yyyy) or enter for today's date: ", true)
	if err != nil {
		return err
	}
	amount, err := s.prompt.Amount("Enter the amount: ")
	if err != nil {
		return err
	}
	category, err := s.prompt.Category("Enter the category ('I' for Income or 'E' for Expense): ")
	if err != nil {
		return err
	}
	description, err := s.prompt.Line("Enter a description (optional): ")
	if err != nil {
		return err
	}

	t := core.Transaction{Date: date, Amount: amount, Category: category, Description: description}
	if err := s.tx.Record(ctx, t); err != nil {
		return err
	}
	fmt.Fprintln(s.out, "added successfully...!")
	return nil
}

func (s *Session) viewRange() error {
	start, err := s.prompt.Date("Enter the start date (dd-mm-yyyy): ", false)
	if err != nil {
		return err
	}
	end, err := s.prompt.Date("Enter the end date(dd-mm-yyyy): ", false)
	if err != nil {
		return err
	}
	r, err := s.reports.Range(start, end)
	if err != nil {
		return err
	}
	if err := report.WriteRange(s.out, r); err != nil {
		return err
	}
	if r.Empty() {
		return nil
	}

	plot, err := s.prompt.Confirm("Do you want to see a plot (y/n): ")
	if err != nil || !plot {
		return err
	}
	return report.WriteSeries(s.out, r.Transactions)
}

func (s *Session) reportLoop() error {
	for {
		fmt.Fprintln(s.out, reportMenu)
		choice, err := s.prompt.Line("Enter your choice (1-3): ")
		if err != nil {
			return err
		}

		var r services.Report
		switch choice {
		case "1":
			year, err := s.prompt.Int("Enter the year for the report (YYYY): ")
			if err != nil {
				return err
			}
			if r, err = s.reports.Yearly(year); err != nil {
				fmt.Fprintln(s.out, err)
				continue
			}
		case "2":
			year, err := s.prompt.Int("Enter the year for the report (YYYY): ")
			if err != nil {
				return err
			}
			month, err := s.prompt.Int("Enter the month for the report (1-12): ")
			if err != nil {
				return err
			}
			if r, err = s.reports.Monthly(year, month); err != nil {
				fmt.Fprintf(s.out, "Invalid month: %v\n", err)
				continue
			}
		case "3":
			return nil
		default:
			fmt.Fprintln(s.out, "Invalid choice. Please try again.")
			continue
		}

		if err := report.WritePeriod(s.out, r); err != nil {
			return err
		}
		if r.Empty() {
			continue
		}

		export, err := s.prompt.Confirm("\nDo you want to export this report as a PDF? (y/n): ")
		if err != nil {
			return err
		}
		if export {
			path, err := report.ExportPDF(s.reportDir, r)
			if err != nil {
				return err
			}
			fmt.Fprintf(s.out, "PDF report saved as '%s'\n", path)
		}

		again, err := s.prompt.Confirm("\nDo you want to generate another report? (y/n): ")
		if err != nil || !again {
			return err
		}
	}
}

func (s *Session) addGoal() error {
	name, err := s.prompt.Line("Enter goal name: ")
	if err != nil {
		return err
	}
	target, err := s.prompt.Amount("Enter target amount: ")
	if err != nil {
		return err
	}
	date, err := s.prompt.Date("Enter target date (dd-mm-yyyy): ", false)
	if err != nil {
		return err
	}
	if _, err := s.goals.AddGoal(name, target, date); err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Added new goal: %s\n", name)
	return nil
}
