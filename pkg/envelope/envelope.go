// Package envelope implements the JSON wire format used to transport
// shapes and their binary files through the clipboard.
package envelope

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"sketchclip/pkg/scene"
	"sketchclip/pkg/utils"
)

// Kind tags an envelope's origin.
type Kind string

const (
	// KindClipboard marks content produced by a user copy.
	KindClipboard Kind = "clipboard"
	// KindClipboardAPI marks content written by the programmatic
	// clipboard API rather than a user gesture.
	KindClipboardAPI Kind = "clipboard-api"
	// KindExport marks content produced by a scene export.
	KindExport Kind = "export"
)

// ErrNotEnvelope reports that text is not this wire format at all: not
// JSON, or JSON without a recognized kind tag. Paste classification
// treats it as "try the next rule".
var ErrNotEnvelope = errors.New("not an envelope")

// ErrMalformed reports text that carries a recognized kind tag but an
// invalid body. It also falls through during paste, but is worth logging.
var ErrMalformed = errors.New("malformed envelope")

// Envelope is the clipboard transport record: a tagged, ordered shape
// list plus the binary payloads those shapes reference. File payloads
// ride as base64 through encoding/json.
type Envelope struct {
	Kind   Kind                    `json:"kind"`
	Shapes []scene.Shape           `json:"shapes"`
	Files  map[scene.FileID][]byte `json:"files,omitempty"`
}

// Encode serializes shapes and files under the given kind.
func Encode(shapes []scene.Shape, files map[scene.FileID][]byte, kind Kind) (string, error) {
	env := Envelope{Kind: kind, Shapes: shapes, Files: files}
	data, err := json.Marshal(env)
	if err != nil {
		return "", fmt.Errorf("encode envelope: %w", err)
	}
	return string(data), nil
}

// Decode inspects text and, when it is an envelope, returns it. The two
// sentinel errors keep "not this format" distinct from "this format,
// but broken" so callers can fall through without losing the difference.
func Decode(text string) (*Envelope, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || (trimmed[0] != '{' && trimmed[0] != '[') {
		return nil, ErrNotEnvelope
	}

	// Peek at the tag before committing to the full decode.
	var probe struct {
		Kind Kind `json:"kind"`
	}
	if err := json.Unmarshal([]byte(trimmed), &probe); err != nil {
		return nil, ErrNotEnvelope
	}
	switch probe.Kind {
	case KindClipboard, KindClipboardAPI, KindExport:
	default:
		return nil, ErrNotEnvelope
	}

	var env Envelope
	if err := json.Unmarshal([]byte(trimmed), &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(env.Shapes) == 0 {
		return nil, ErrMalformed
	}
	for _, s := range env.Shapes {
		if s.ID == "" || s.Type == "" {
			return nil, fmt.Errorf("%w: shape missing id or type", ErrMalformed)
		}
	}
	return &env, nil
}

// FromAPI reports whether the envelope was written by the programmatic
// clipboard API.
func (e *Envelope) FromAPI() bool {
	return e.Kind == KindClipboardAPI
}

// PrettyText renders the shape list as readable text, used when a plain
// paste lands on envelope content.
func (e *Envelope) PrettyText() string {
	var b strings.Builder
	for i, s := range e.Shapes {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%s at (%s, %s)", s.Type,
			utils.ToString(s.X), utils.ToString(s.Y))
		if text := utils.ToString(s.Props["text"]); text != "" {
			fmt.Fprintf(&b, ": %s", utils.Truncate(text, 120))
		}
	}
	return b.String()
}
