// Package adapter orchestrates copy and paste between the drawing
// application's scene graph and the operating system clipboard.
package adapter

import (
	"context"
	stderrors "errors"
	"strings"

	"sketchclip/pkg/clipboard"
	"sketchclip/pkg/envelope"
	"sketchclip/pkg/errors"
	"sketchclip/pkg/export"
	"sketchclip/pkg/logger"
	"sketchclip/pkg/mixed"
	"sketchclip/pkg/scene"
	"sketchclip/pkg/sheet"
	"sketchclip/pkg/utils"
)

// Session is the per-session clipboard state: the text of the last copy
// and a flag preferring it over the system clipboard after a failed
// system write. Callers sequence clipboard operations, so access is not
// locked.
type Session struct {
	cachedText     string
	preferInternal bool
}

// CachedText returns the last serialized copy.
func (s *Session) CachedText() string { return s.cachedText }

// PreferInternal reports whether the last system write failed.
func (s *Session) PreferInternal() bool { return s.preferInternal }

// Event carries the data supplied with a paste gesture. A nil Event
// means the content must be read from the system clipboard instead.
type Event struct {
	HTML string
	Text string
}

// Recorder receives a note of each copy. The history store implements it.
type Recorder interface {
	Record(kind string, size int, preview string) error
}

// Adapter owns the session state and the system clipboard handle.
type Adapter struct {
	system       clipboard.System
	session      Session
	recorder     Recorder
	maxFileBytes int
}

// New returns an adapter over the given system clipboard.
func New(system clipboard.System) *Adapter {
	return &Adapter{system: system}
}

// WithRecorder attaches a copy recorder and returns the adapter.
func (a *Adapter) WithRecorder(r Recorder) *Adapter {
	a.recorder = r
	return a
}

// WithMaxFileBytes caps individual file payloads carried in the
// envelope; oversized files are dropped from the copy with a warning.
// Zero means no cap.
func (a *Adapter) WithMaxFileBytes(n int) *Adapter {
	a.maxFileBytes = n
	return a
}

// Session exposes the session state, mainly for inspection.
// System exposes the clipboard the adapter was built with, for callers
// that read the clipboard themselves (the watch loop).
func (a *Adapter) System() clipboard.System {
	return a.system
}

func (a *Adapter) Session() *Session {
	return &a.session
}

// Copy serializes the selected shapes and their referenced files into
// the clipboard envelope. Shapes whose container is not part of the
// selection are copied with the container relation cleared. The envelope
// always lands in the session cache first; a failed system write is
// degraded, not fatal — it flips the session to prefer the internal
// cache until the next successful write.
func (a *Adapter) Copy(ctx context.Context, shapes []scene.Shape, files map[scene.FileID][]byte) error {
	if len(shapes) == 0 {
		return errors.ValidationError("no shapes selected to copy")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	copied := scene.CloneForCopy(shapes)
	used := scene.ReferencedFiles(copied, files)
	if a.maxFileBytes > 0 {
		for id, data := range used {
			if len(data) > a.maxFileBytes {
				logger.Warn().Str("file", string(id)).Int("bytes", len(data)).
					Msg("file payload exceeds limit, dropped from copy")
				delete(used, id)
			}
		}
	}

	text, err := envelope.Encode(copied, used, envelope.KindClipboard)
	if err != nil {
		return errors.Wrap(err, "serialize selection")
	}

	a.session.cachedText = text

	if a.recorder != nil {
		if recErr := a.recorder.Record("shapes", len(text), previewOf(copied)); recErr != nil {
			logger.Debug().Err(recErr).Msg("history record failed")
		}
	}

	if err := a.writeEnvelope(text, copied, used); err != nil {
		a.session.preferInternal = true
		logger.Warn().Err(err).Msg("system clipboard write failed, using internal cache")
		return nil
	}
	a.session.preferInternal = false
	return nil
}

// writeEnvelope places the envelope on the system clipboard. Systems
// that can offer multiple formats get the envelope under its own media
// type plus a readable text rendering; everything else gets the
// envelope text alone.
func (a *Adapter) writeEnvelope(text string, shapes []scene.Shape, files map[scene.FileID][]byte) error {
	if ew, ok := a.system.(clipboard.EnvelopeWriter); ok {
		env := &envelope.Envelope{Kind: envelope.KindClipboard, Shapes: shapes, Files: files}
		return ew.WriteEnvelope(text, env.PrettyText())
	}
	return a.system.WriteText(text)
}

// CopyImage places a rendered image of the selection on the system
// clipboard. Unlike Copy, a total write failure here is an error.
func (a *Adapter) CopyImage(ctx context.Context, payload clipboard.ImagePayload) error {
	if err := clipboard.WriteImage(ctx, payload); err != nil {
		return errors.ClipboardWriteError(err)
	}
	return nil
}

// Paste classifies clipboard content through a priority chain:
// HTML-derived mixed content, then spreadsheet, then the shape envelope,
// then the internal cache, then literal text. With plain set, the HTML
// and spreadsheet interpretations are bypassed and envelope content is
// additionally rendered as text. Content that fails to parse as one
// format simply falls through to the next.
func (a *Adapter) Paste(ctx context.Context, ev *Event, plain bool) Result {
	if err := ctx.Err(); err != nil {
		return Result{Kind: KindError, Message: err.Error()}
	}

	if !plain && ev != nil && ev.HTML != "" && mixed.HasContent(ev.HTML) {
		frags, _ := mixed.Parse(ev.HTML)
		return Result{Kind: KindMixed, Fragments: frags}
	}

	text := a.readText(ev, plain)

	if strings.TrimSpace(text) == "" || export.IsOwnExport(text) {
		text = a.session.cachedText
	}

	if !plain {
		if table, ok := sheet.Detect(text); ok {
			return Result{Kind: KindSheet, Sheet: table}
		}
	}

	if env, err := envelope.Decode(text); err == nil {
		res := Result{
			Kind:    KindShapes,
			Shapes:  env.Shapes,
			Files:   env.Files,
			FromAPI: env.FromAPI(),
		}
		if plain {
			res.Text = env.PrettyText()
		}
		return res
	} else if stderrors.Is(err, envelope.ErrMalformed) {
		logger.Debug().Err(err).Msg("clipboard content looked like an envelope but did not decode")
	}

	if a.session.preferInternal {
		if env, err := envelope.Decode(a.session.cachedText); err == nil {
			return Result{
				Kind:    KindShapes,
				Shapes:  env.Shapes,
				Files:   env.Files,
				FromAPI: env.FromAPI(),
			}
		}
	}

	if text == "" {
		return Result{Kind: KindError, Message: "nothing to paste"}
	}
	return Result{Kind: KindText, Text: text}
}

// readText resolves the paste text: event-supplied text first, a text
// rendering of event HTML for plain pastes, then the system clipboard
// when no event is present. Read failures degrade to empty text.
func (a *Adapter) readText(ev *Event, plain bool) string {
	if ev != nil {
		if ev.Text != "" {
			return ev.Text
		}
		if plain && ev.HTML != "" {
			return mixed.PlainText(ev.HTML)
		}
		return ""
	}
	text, err := a.system.ReadText()
	if err != nil {
		logger.Debug().Err(err).Msg("system clipboard read failed")
		return ""
	}
	return text
}

// previewOf summarizes a copy for the history log: up to three distinct
// shape types in selection order.
func previewOf(shapes []scene.Shape) string {
	if len(shapes) == 0 {
		return ""
	}
	types := make([]string, 0, len(shapes))
	for _, s := range shapes {
		types = append(types, s.Type)
	}
	types = utils.Deduplicate(types)
	if len(types) > 3 {
		types = append(types[:3], "…")
	}
	return strings.Join(types, ", ")
}
