// Package clipboard provides system clipboard access with fallback write
// strategies. Text goes through the async-style API first (atotto); when
// that is unavailable or fails, a platform fallback takes over: on
// Linux/Wayland a daemonized clipboard owner that serves the envelope
// media type and text/plain simultaneously, so pasting back into the
// application recovers shapes while plain-text targets get readable text.
package clipboard

import (
	"errors"

	atotto "github.com/atotto/clipboard"
)

var errUnsupported = errors.New("clipboard: no primary clipboard writer available")

// MediaType is the clipboard format under which the shape envelope is
// offered on multi-format platforms.
const MediaType = "application/vnd.sketchclip+json"

// System is the clipboard surface the paste/copy adapter depends on.
// The zero-dependency fake in adapter tests implements it too.
type System interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// EnvelopeWriter is the optional capability of offering the envelope
// under its own media type next to a plain-text rendering. The adapter
// detects it and prefers it over a bare text write.
type EnvelopeWriter interface {
	WriteEnvelope(envText, plain string) error
}

// Native reads and writes the operating system clipboard.
type Native struct {
	// DisableFallback turns off the platform fallback writer, leaving
	// only the primary write path. Used by configuration.
	DisableFallback bool
}

var _ System = (*Native)(nil)

// ReadText returns the current plain-text clipboard content.
func (n *Native) ReadText() (string, error) {
	return atotto.ReadAll()
}

// WriteText copies text to the system clipboard. The primary path is
// tried first; on failure the platform fallback runs. An error is
// returned only when every strategy failed.
func (n *Native) WriteText(text string) error {
	primaryErr := writePrimary(text)
	if primaryErr == nil {
		return nil
	}
	if n.DisableFallback {
		return primaryErr
	}
	if err := writeFallback(map[string][]byte{
		"text/plain;charset=utf-8": []byte(text),
		"text/plain":               []byte(text),
		"UTF8_STRING":              []byte(text),
		"STRING":                   []byte(text),
	}); err != nil {
		// Both strategies failed; the primary error is the useful one.
		return primaryErr
	}
	return nil
}

// WriteEnvelope copies serialized envelope text alongside a plain-text
// rendering. On multi-format platforms both are offered at once; elsewhere
// the envelope text wins so pasting back into the application round-trips.
func (n *Native) WriteEnvelope(envText, plain string) error {
	if !n.DisableFallback {
		if err := writeFallback(envelopeFormats(envText, plain)); err == nil {
			return nil
		}
	}
	return n.WriteText(envText)
}

var _ EnvelopeWriter = (*Native)(nil)

// envelopeFormats builds the multi-format clipboard offer: the envelope
// under its own media type and the common text targets, with the legacy
// STRING target carrying the human-readable rendering.
func envelopeFormats(envText, plain string) map[string][]byte {
	return map[string][]byte{
		MediaType:                  []byte(envText),
		"text/plain;charset=utf-8": []byte(envText),
		"text/plain":               []byte(envText),
		"UTF8_STRING":              []byte(envText),
		"STRING":                   []byte(plain),
	}
}

func writePrimary(text string) error {
	if atotto.Unsupported {
		return errUnsupported
	}
	return atotto.WriteAll(text)
}
