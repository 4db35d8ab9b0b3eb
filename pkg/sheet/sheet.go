// Package sheet recognizes spreadsheet content pasted from applications
// like Excel or Google Sheets, which put cell ranges on the clipboard as
// tab-separated rows.
package sheet

import (
	"strings"
)

// Table holds detected spreadsheet rows in paste order.
type Table struct {
	Rows [][]string
}

// Columns returns the width of the widest row.
func (t *Table) Columns() int {
	max := 0
	for _, row := range t.Rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// String renders the table back as tab-separated text.
func (t *Table) String() string {
	lines := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		lines[i] = strings.Join(row, "\t")
	}
	return strings.Join(lines, "\n")
}

// Detect reports whether text looks like a pasted spreadsheet range and
// returns the parsed rows when it does. The heuristic requires at least
// two columns in the first row and the same column count on a majority
// of rows; untabbed text or a single cell is not a spreadsheet.
func Detect(text string) (*Table, bool) {
	trimmed := strings.TrimRight(text, "\r\n")
	if trimmed == "" || !strings.Contains(trimmed, "\t") {
		return nil, false
	}

	lines := strings.Split(strings.ReplaceAll(trimmed, "\r\n", "\n"), "\n")
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(line, "\t"))
	}

	want := len(rows[0])
	if want < 2 {
		return nil, false
	}
	matching := 0
	for _, row := range rows {
		if len(row) == want {
			matching++
		}
	}
	if matching*2 <= len(rows) {
		return nil, false
	}

	return &Table{Rows: rows}, true
}
