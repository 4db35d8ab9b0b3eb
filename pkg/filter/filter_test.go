package filter

import (
	"testing"
)

func TestNewStringFilter(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    FilterMode
		wantErr bool
	}{
		{
			name:    "valid exact filter",
			pattern: "test",
			mode:    FilterModeExact,
			wantErr: false,
		},
		{
			name:    "valid contains filter",
			pattern: "test",
			mode:    FilterModeContains,
			wantErr: false,
		},
		{
			name:    "valid regex filter",
			pattern: "^test$",
			mode:    FilterModeRegex,
			wantErr: false,
		},
		{
			name:    "invalid regex filter",
			pattern: "[invalid(",
			mode:    FilterModeRegex,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewStringFilter(tt.pattern, tt.mode)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewStringFilter() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestStringFilter_Match(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		mode    FilterMode
		input   string
		want    bool
	}{
		{"none matches everything", "", FilterModeNone, "anything", true},
		{"exact match", "shapes", FilterModeExact, "Shapes", true},
		{"exact mismatch", "shapes", FilterModeExact, "shapes and more", false},
		{"contains match", "rect", FilterModeContains, "frame, rect, image", true},
		{"contains mismatch", "oval", FilterModeContains, "frame, rect", false},
		{"regex match", "^sha", FilterModeRegex, "shapes", true},
		{"regex mismatch", "^sha", FilterModeRegex, "mixed", false},
		{"fuzzy match", "frct", FilterModeFuzzy, "frame, rect", true},
		{"fuzzy mismatch", "xyz", FilterModeFuzzy, "frame, rect", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewStringFilter(tt.pattern, tt.mode)
			if err != nil {
				t.Fatalf("NewStringFilter() error: %v", err)
			}
			if got := f.Match(tt.input); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFuzzyMatch(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"", "anything", true},
		{"abc", "", false},
		{"sheet", "spreadsheet", true},
		{"txim", "text and image", true},
		{"zzz", "text", false},
	}

	for _, tt := range tests {
		if got := FuzzyMatch(tt.pattern, tt.text); got != tt.want {
			t.Errorf("FuzzyMatch(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
	}
}
