package mixed

import (
	"strings"
	"testing"
)

func TestParse_DocumentOrder(t *testing.T) {
	htmlText := `<div><p>caption above</p><img src="https://example.com/cat.png"><p>caption below</p></div>`

	frags, err := Parse(htmlText)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	want := []Fragment{
		{Kind: FragmentText, Value: "caption above"},
		{Kind: FragmentImageURL, Value: "https://example.com/cat.png"},
		{Kind: FragmentText, Value: "caption below"},
	}
	if len(frags) != len(want) {
		t.Fatalf("Parse() returned %d fragments, want %d: %+v", len(frags), len(want), frags)
	}
	for i, f := range frags {
		if f != want[i] {
			t.Errorf("fragment %d = %+v, want %+v", i, f, want[i])
		}
	}
}

func TestParse_SkipsScriptAndStyle(t *testing.T) {
	frags, err := Parse(`<style>p { color: red }</style><script>alert(1)</script><p>visible</p>`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(frags) != 1 || frags[0].Value != "visible" {
		t.Errorf("Parse() = %+v, want single visible text fragment", frags)
	}
}

func TestParse_ImageWithoutSrc(t *testing.T) {
	frags, err := Parse(`<img alt="broken">`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if len(frags) != 0 {
		t.Errorf("Parse() = %+v, want no fragments for src-less image", frags)
	}
}

func TestHasContent(t *testing.T) {
	tests := []struct {
		name string
		html string
		want bool
	}{
		{"text node", "<p>hi</p>", true},
		{"image tag", `<img src="x.png">`, true},
		{"empty markup", "<div></div>", false},
		{"whitespace only", "<p>   </p>", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasContent(tt.html); got != tt.want {
				t.Errorf("HasContent(%q) = %v, want %v", tt.html, got, tt.want)
			}
		})
	}
}

func TestPlainText(t *testing.T) {
	got := PlainText("<p>Hello <strong>world</strong></p>")
	if !strings.Contains(got, "Hello") || !strings.Contains(got, "world") {
		t.Errorf("PlainText() = %q, want text content preserved", got)
	}
}
