package envelope

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"sketchclip/pkg/scene"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	shapes := []scene.Shape{
		{ID: "shape:a", Type: "rect", X: 10, Y: 20, Index: "a1"},
		{ID: "shape:b", Type: "image", X: 5, Y: 5, FileID: "file:1"},
	}
	files := map[scene.FileID][]byte{
		"file:1": []byte{0x89, 0x50, 0x4e, 0x47},
	}

	text, err := Encode(shapes, files, KindClipboard)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	env, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if env.Kind != KindClipboard {
		t.Errorf("Kind = %q, want %q", env.Kind, KindClipboard)
	}
	if !reflect.DeepEqual(env.Shapes, shapes) {
		t.Errorf("Shapes = %+v, want %+v", env.Shapes, shapes)
	}
	if !reflect.DeepEqual(env.Files, files) {
		t.Errorf("Files = %+v, want %+v", env.Files, files)
	}
}

func TestDecode_NotEnvelope(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"plain text", "hello world"},
		{"not json", "{nope"},
		{"json without kind", `{"foo": 1}`},
		{"json array", `[1, 2, 3]`},
		{"unknown kind", `{"kind": "bookmark", "shapes": []}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			if !errors.Is(err, ErrNotEnvelope) {
				t.Errorf("Decode(%q) error = %v, want ErrNotEnvelope", tt.text, err)
			}
		})
	}
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"no shapes", `{"kind": "clipboard"}`},
		{"empty shapes", `{"kind": "clipboard", "shapes": []}`},
		{"shapes wrong type", `{"kind": "clipboard", "shapes": "oops"}`},
		{"shape missing id", `{"kind": "clipboard", "shapes": [{"type": "rect", "x": 0, "y": 0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.text)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode(%q) error = %v, want ErrMalformed", tt.text, err)
			}
		})
	}
}

func TestFromAPI(t *testing.T) {
	text, err := Encode([]scene.Shape{{ID: "shape:a", Type: "rect"}}, nil, KindClipboardAPI)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	env, err := Decode(text)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !env.FromAPI() {
		t.Error("FromAPI() = false for clipboard-api kind")
	}
}

func TestPrettyText(t *testing.T) {
	env := &Envelope{
		Kind: KindClipboard,
		Shapes: []scene.Shape{
			{ID: "shape:a", Type: "note", X: 1, Y: 2, Props: map[string]any{"text": "todo list"}},
			{ID: "shape:b", Type: "rect", X: 3, Y: 4},
		},
	}

	got := env.PrettyText()

	if !strings.Contains(got, "note at (1, 2): todo list") {
		t.Errorf("PrettyText() = %q, missing note line", got)
	}
	if !strings.Contains(got, "rect at (3, 4)") {
		t.Errorf("PrettyText() = %q, missing rect line", got)
	}
	if strings.Index(got, "note") > strings.Index(got, "rect") {
		t.Errorf("PrettyText() lost shape order: %q", got)
	}
}
