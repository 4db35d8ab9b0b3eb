package clipboard

import (
	"testing"
)

func TestEnvelopeFormats(t *testing.T) {
	envText := `{"kind":"clipboard","shapes":[]}`
	plain := "rect at (1, 2)"

	formats := envelopeFormats(envText, plain)

	if got := string(formats[MediaType]); got != envText {
		t.Errorf("formats[%q] = %q, want envelope text", MediaType, got)
	}
	for _, target := range []string{"text/plain;charset=utf-8", "text/plain", "UTF8_STRING"} {
		if got := string(formats[target]); got != envText {
			t.Errorf("formats[%q] = %q, want envelope text", target, got)
		}
	}
	// Legacy targets get the readable rendering, not raw JSON.
	if got := string(formats["STRING"]); got != plain {
		t.Errorf("formats[%q] = %q, want plain rendering", "STRING", got)
	}
}

func TestNativeImplementsEnvelopeWriter(t *testing.T) {
	var sys System = &Native{}
	if _, ok := sys.(EnvelopeWriter); !ok {
		t.Error("Native does not implement EnvelopeWriter")
	}
}
