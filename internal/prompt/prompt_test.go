package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"finman/internal/core"
)

func newTestPrompter(input string, attempts int) (*Prompter, *bytes.Buffer) {
	var out bytes.Buffer
	p := New(strings.NewReader(input), &out, attempts)
	p.today = func() core.Date { return core.NewDate(2024, 6, 15) }
	return p, &out
}

func TestDate(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		allowDefault bool
		want         string
		wantErr      error
	}{
		{"valid", "05-01-2024\n", false, "05-01-2024", nil},
		{"blank defaults to today", "\n", true, "15-06-2024", nil},
		{"retry then valid", "2024-01-05\n30-02-2024\n01-03-2024\n", false, "01-03-2024", nil},
		{"blank not allowed", "\n\n\n", false, "", core.ErrInvalidDate},
		{"exhausted input", "", false, "", ErrNoInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input, 3)
			got, err := p.Date("Date: ", tt.allowDefault)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil || got.String() != tt.want {
				t.Fatalf("got %s, %v; want %s", got, err, tt.want)
			}
		})
	}
}

func TestRetryIsBounded(t *testing.T) {
	p, out := newTestPrompter("x\ny\n10\n", 2)
	_, err := p.Amount("Amount: ")
	if !errors.Is(err, core.ErrValidation) || !errors.Is(err, core.ErrInvalidAmount) {
		t.Fatalf("expected validation error after 2 attempts, got %v", err)
	}
	if n := strings.Count(out.String(), "Amount: "); n != 2 {
		t.Fatalf("expected 2 prompts, got %d", n)
	}

	// The third line is still unread.
	got, err := p.Amount("Amount: ")
	if err != nil || !got.Equal(decimal.NewFromInt(10)) {
		t.Fatalf("got %s, %v", got, err)
	}
}

func TestCategory(t *testing.T) {
	p, out := newTestPrompter("x\ne\n", 3)
	got, err := p.Category("Category: ")
	if err != nil || got != core.Expense {
		t.Fatalf("got %q, %v", got, err)
	}
	if !strings.Contains(out.String(), hintCategory) {
		t.Fatalf("expected category hint in %q", out.String())
	}
}

func TestIntAndConfirm(t *testing.T) {
	p, _ := newTestPrompter("abc\n2024\nY\nno\n", 3)
	n, err := p.Int("Year: ")
	if err != nil || n != 2024 {
		t.Fatalf("got %d, %v", n, err)
	}
	if ok, _ := p.Confirm("? "); !ok {
		t.Fatal("expected yes")
	}
	if ok, _ := p.Confirm("? "); ok {
		t.Fatal("expected no")
	}
	if _, err := p.Confirm("? "); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected no input, got %v", err)
	}
}

func TestLineWithoutTrailingNewline(t *testing.T) {
	p, _ := newTestPrompter("last line", 3)
	got, err := p.Line("> ")
	if err != nil || got != "last line" {
		t.Fatalf("got %q, %v", got, err)
	}
}
