package google

import (
	"fmt"
	"strings"

	"finman/internal/core"
)

// parseRows converts a values matrix (as returned by the Sheets API) into
// transactions. A header in the first row and fully blank rows are skipped.
// Sheets drops trailing empty cells, so a row may carry only three columns.
// Cells are passed through as written; ParseRecord trims the typed fields
// and the description keeps any surrounding whitespace.
func parseRows(values [][]interface{}) ([]core.Transaction, error) {
	out := make([]core.Transaction, 0, len(values))
	for i, raw := range values {
		row := toStrings(raw)
		if isBlank(row) {
			continue
		}
		if i == 0 && core.IsHeader(row) {
			continue
		}
		t, err := core.ParseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("sheet row %d: %w", i+1, err)
		}
		out = append(out, t)
	}
	return out, nil
}

func toStrings(in []interface{}) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = fmt.Sprint(v)
	}
	return out
}

func isBlank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
