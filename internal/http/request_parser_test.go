package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"finman/internal/core"
)

func TestParseMonthParams(t *testing.T) {
	tests := []struct {
		name      string
		query     url.Values
		wantYear  int
		wantMonth int
		wantErr   bool
	}{
		{
			name:      "both values provided",
			query:     url.Values{"year": {"2024"}, "month": {"12"}},
			wantYear:  2024,
			wantMonth: 12,
		},
		{
			name:      "only year",
			query:     url.Values{"year": {"2023"}},
			wantYear:  2023,
			wantMonth: 0, // will be current month
		},
		{
			name:      "only month",
			query:     url.Values{"month": {"5"}},
			wantYear:  0, // will be current year
			wantMonth: 5,
		},
		{
			name:    "non numeric year",
			query:   url.Values{"year": {"abc"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseMonthParams(tt.query)
			if tt.wantErr {
				if !errors.Is(err, core.ErrValidation) {
					t.Fatalf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.wantYear != 0 && result.Year != tt.wantYear {
				t.Errorf("Year = %d, want %d", result.Year, tt.wantYear)
			}

			if tt.wantMonth != 0 && result.Month != tt.wantMonth {
				t.Errorf("Month = %d, want %d", result.Month, tt.wantMonth)
			}
		})
	}
}

func TestParseYearParam(t *testing.T) {
	year, err := ParseYearParam(url.Values{"year": {"2022"}, "month": {"junk"}})
	if err != nil || year != 2022 {
		t.Fatalf("got %d, %v", year, err)
	}
	if year, _ := ParseYearParam(url.Values{}); year != core.Today().Year() {
		t.Fatalf("missing year should default to this year, got %d", year)
	}
	if _, err := ParseYearParam(url.Values{"year": {"x"}}); !errors.Is(err, core.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, err := ParseDateRange(url.Values{"start": {"01-01-2024"}, "end": {"31-01-2024"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if start.String() != "01-01-2024" || end.String() != "31-01-2024" {
		t.Fatalf("got %s..%s", start, end)
	}

	for _, q := range []url.Values{
		{"start": {"01-01-2024"}},
		{"start": {"2024-01-01"}, "end": {"31-01-2024"}},
	} {
		if _, _, err := ParseDateRange(q); !errors.Is(err, core.ErrValidation) {
			t.Errorf("%v: expected validation error, got %v", q, err)
		}
	}
}

func TestRequestBodyParser_JSON(t *testing.T) {
	body := `{"date": "05-01-2024", "amount": 42.5, "category": "E"}`
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if !parser.IsJSON() {
		t.Error("Expected IsJSON() to be true")
	}
	if amount := parser.Get("amount"); amount != "42.5" {
		t.Errorf("Get('amount') = %q, want '42.5'", amount)
	}
	if desc := parser.Get("description"); desc != "" {
		t.Errorf("Get('description') = %q, want empty", desc)
	}
}

func TestRequestBodyParser_FormData(t *testing.T) {
	body := "amount=10&category=I&description=form+test%01"
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	parser := NewRequestBodyParser(req)
	if err := parser.Parse(); err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if parser.IsJSON() {
		t.Error("Expected IsJSON() to be false for form data")
	}
	if name := parser.Get("description"); name != "form test" {
		t.Errorf("Get('description') = %q, want 'form test'", name)
	}
}

func TestRequestBodyParser_InvalidJSON(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(`{"amount":`))
	if err := NewRequestBodyParser(req).Parse(); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseTransaction(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr error
	}{
		{"valid", `{"date":"05-01-2024","amount":"12.50","category":"Expense","description":"lunch"}`, nil},
		{"default date", `{"amount":"1","category":"I"}`, nil},
		{"bad date", `{"date":"2024-01-05","amount":"1","category":"I"}`, core.ErrInvalidDate},
		{"bad amount", `{"amount":"-3","category":"I"}`, core.ErrInvalidAmount},
		{"bad category", `{"amount":"3","category":"X"}`, core.ErrInvalidCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewRequestBodyParser(httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(tt.body)))
			if err := p.Parse(); err != nil {
				t.Fatalf("parse: %v", err)
			}
			tx, err := ParseTransaction(p)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if err := tx.Validate(); err != nil {
				t.Fatalf("parsed transaction invalid: %v", err)
			}
		})
	}
}
