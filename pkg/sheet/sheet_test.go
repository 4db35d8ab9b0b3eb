package sheet

import (
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"two by two", "a\tb\nc\td", true},
		{"single row range", "name\tqty\tprice", true},
		{"windows line endings", "a\tb\r\nc\td\r\n", true},
		{"plain text", "hello world", false},
		{"empty", "", false},
		{"single cell", "42", false},
		{"single column", "a\nb\nc", false},
		{"mostly ragged", "a\tb\nc\td\te\nf\tg\th", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, got := Detect(tt.text)
			if got != tt.want {
				t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetect_Rows(t *testing.T) {
	table, ok := Detect("name\tqty\napples\t3\npears\t5")
	if !ok {
		t.Fatal("Detect() = false, want true")
	}
	want := [][]string{
		{"name", "qty"},
		{"apples", "3"},
		{"pears", "5"},
	}
	if !reflect.DeepEqual(table.Rows, want) {
		t.Errorf("Rows = %v, want %v", table.Rows, want)
	}
	if table.Columns() != 2 {
		t.Errorf("Columns() = %d, want 2", table.Columns())
	}
}

func TestTable_String(t *testing.T) {
	table := &Table{Rows: [][]string{{"a", "b"}, {"c", "d"}}}
	if got := table.String(); got != "a\tb\nc\td" {
		t.Errorf("String() = %q", got)
	}
}

func TestDetect_ToleratesTrailingBlankRow(t *testing.T) {
	// Excel appends a trailing newline to copied ranges.
	if _, ok := Detect("a\tb\nc\td\n"); !ok {
		t.Error("Detect() rejected range with trailing newline")
	}
}
