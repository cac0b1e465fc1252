// Package prompt reads validated values from a line-oriented input stream,
// re-prompting a bounded number of times on invalid input.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"finman/internal/core"
)

const DefaultMaxAttempts = 3

// ErrNoInput is returned once the input stream is exhausted.
var ErrNoInput = errors.New("no more input")

const (
	hintDate     = "Invalid date format. Please enter the date in dd-mm-yyyy format."
	hintCategory = "Invalid category. Please enter 'I' for Income or 'E' for Expense."
)

type Prompter struct {
	in          *bufio.Reader
	out         io.Writer
	maxAttempts int
	today       func() core.Date
}

// New returns a prompter reading from in and writing prompts to out.
// maxAttempts below 1 selects DefaultMaxAttempts.
func New(in io.Reader, out io.Writer, maxAttempts int) *Prompter {
	if maxAttempts < 1 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Prompter{
		in:          bufio.NewReader(in),
		out:         out,
		maxAttempts: maxAttempts,
		today:       core.Today,
	}
}

// Line prints label and returns the next input line without its line ending.
func (p *Prompter) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrNoInput
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// retry asks for label until parse succeeds or the attempts run out, in
// which case the last parse error is returned.
func retry[T any](p *Prompter, label, hint string, parse func(string) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		line, err := p.Line(label)
		if err != nil {
			return zero, err
		}
		v, err := parse(line)
		if err == nil {
			return v, nil
		}
		lastErr = err
		if hint != "" {
			fmt.Fprintln(p.out, hint)
		} else {
			fmt.Fprintln(p.out, err)
		}
	}
	return zero, lastErr
}

// Date reads a DD-MM-YYYY date. With allowDefault a blank line yields today.
func (p *Prompter) Date(label string, allowDefault bool) (core.Date, error) {
	return retry(p, label, hintDate, func(s string) (core.Date, error) {
		if allowDefault && strings.TrimSpace(s) == "" {
			return p.today(), nil
		}
		return core.ParseDate(s)
	})
}

// Amount reads a positive decimal amount.
func (p *Prompter) Amount(label string) (decimal.Decimal, error) {
	return retry(p, label, "", core.ParseAmount)
}

// Category reads I or E (full names are accepted too).
func (p *Prompter) Category(label string) (core.Category, error) {
	return retry(p, label, hintCategory, core.ParseCategory)
}

// Int reads a base-10 integer.
func (p *Prompter) Int(label string) (int, error) {
	return retry(p, label, "", func(s string) (int, error) {
		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, &core.ValidationError{Field: "number", Value: s, Err: strconv.ErrSyntax}
		}
		return n, nil
	})
}

// Confirm reads a y/n answer. Anything other than y or yes is false.
func (p *Prompter) Confirm(label string) (bool, error) {
	line, err := p.Line(label)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	}
	return false, nil
}
