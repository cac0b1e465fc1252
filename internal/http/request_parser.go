// Package http exposes the ledger, reports and goals as a JSON API.
//
// This file holds the request parsing helpers shared by the handlers.

package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"finman/internal/core"
)

const maxBodyBytes = 1 << 16

// MonthParams holds parsed year/month values from request parameters.
type MonthParams struct {
	Year  int
	Month int
}

// ParseMonthParams reads year and month from query, defaulting missing
// values to today. A present but non-numeric value is a validation error.
func ParseMonthParams(query url.Values) (MonthParams, error) {
	today := core.Today()
	params := MonthParams{
		Year:  today.Year(),
		Month: int(today.Month()),
	}

	var err error
	if params.Year, err = intParam(query, "year", params.Year); err != nil {
		return MonthParams{}, err
	}
	if params.Month, err = intParam(query, "month", params.Month); err != nil {
		return MonthParams{}, err
	}
	return params, nil
}

// ParseYearParam reads year from query, defaulting to the current year.
// Other parameters are ignored.
func ParseYearParam(query url.Values) (int, error) {
	return intParam(query, "year", core.Today().Year())
}

func intParam(query url.Values, key string, def int) (int, error) {
	v := strings.TrimSpace(query.Get(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &core.ValidationError{Field: key, Value: v, Err: strconv.ErrSyntax}
	}
	return n, nil
}

// ParseDateRange reads the required start and end DD-MM-YYYY parameters.
func ParseDateRange(query url.Values) (start, end core.Date, err error) {
	if start, err = requiredDate(query, "start"); err != nil {
		return core.Date{}, core.Date{}, err
	}
	if end, err = requiredDate(query, "end"); err != nil {
		return core.Date{}, core.Date{}, err
	}
	return start, end, nil
}

func requiredDate(query url.Values, key string) (core.Date, error) {
	v := strings.TrimSpace(query.Get(key))
	if v == "" {
		return core.Date{}, &core.ValidationError{Field: key, Err: core.ErrInvalidDate}
	}
	return core.ParseDate(v)
}

// RequestBodyParser reads a JSON or form-encoded body once and serves its
// fields as strings.
type RequestBodyParser struct {
	body     []byte
	jsonData map[string]any
	formData url.Values
	parsed   bool
	err      error
}

// NewRequestBodyParser reads at most maxBodyBytes of the request body.
func NewRequestBodyParser(r *http.Request) *RequestBodyParser {
	p := &RequestBodyParser{}
	p.body, p.err = io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	return p
}

// Parse attempts to parse the body as JSON or form data.
func (p *RequestBodyParser) Parse() error {
	if p.parsed {
		return p.err
	}
	p.parsed = true

	if p.err != nil {
		return p.err
	}

	if len(p.body) == 0 {
		p.formData = url.Values{}
		return nil
	}

	if p.body[0] == '{' {
		p.jsonData = make(map[string]any)
		if err := json.Unmarshal(p.body, &p.jsonData); err != nil {
			p.err = err
			return err
		}
		return nil
	}

	p.formData, p.err = url.ParseQuery(string(p.body))
	return p.err
}

// Get returns a trimmed, sanitized string value from the parsed data.
func (p *RequestBodyParser) Get(key string) string {
	if p.jsonData != nil {
		if val, ok := p.jsonData[key]; ok {
			return sanitizeInput(stringValue(val))
		}
		return ""
	}
	if p.formData != nil {
		return sanitizeInput(p.formData.Get(key))
	}
	return ""
}

// IsJSON returns true if the parsed content was JSON.
func (p *RequestBodyParser) IsJSON() bool {
	return p.jsonData != nil
}

func stringValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// sanitizeInput removes control characters other than tab, newline and
// carriage return, and trims whitespace.
func sanitizeInput(s string) string {
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

// ParseTransaction builds a transaction from body fields date, amount,
// category and description. A blank date means today.
func ParseTransaction(p *RequestBodyParser) (core.Transaction, error) {
	date := core.Today()
	if v := p.Get("date"); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			return core.Transaction{}, err
		}
		date = d
	}
	amount, err := core.ParseAmount(p.Get("amount"))
	if err != nil {
		return core.Transaction{}, err
	}
	category, err := core.ParseCategory(p.Get("category"))
	if err != nil {
		return core.Transaction{}, err
	}
	return core.Transaction{
		Date:        date,
		Amount:      amount,
		Category:    category,
		Description: p.Get("description"),
	}, nil
}
