// Package scene defines the shape and file records the clipboard adapter
// moves between the drawing application's scene graph and the OS clipboard.
package scene

import (
	"github.com/google/uuid"
)

// ShapeID identifies a shape within the scene graph.
type ShapeID string

// FileID identifies a binary payload (image, embedded document) referenced
// by a shape.
type FileID string

// Shape is one scene graph record. ParentID is empty for top-level shapes;
// Index is the fractional ordering key among siblings. Props carries
// shape-type-specific attributes as decoded JSON values.
type Shape struct {
	ID       ShapeID        `json:"id"`
	Type     string         `json:"type"`
	ParentID ShapeID        `json:"parentId,omitempty"`
	Index    string         `json:"index,omitempty"`
	X        float64        `json:"x"`
	Y        float64        `json:"y"`
	Rotation float64        `json:"rotation,omitempty"`
	FileID   FileID         `json:"fileId,omitempty"`
	Props    map[string]any `json:"props,omitempty"`
}

// Clone returns a deep copy of the shape. The props map is copied so the
// clone never aliases the original's storage.
func (s Shape) Clone() Shape {
	c := s
	if s.Props != nil {
		c.Props = make(map[string]any, len(s.Props))
		for k, v := range s.Props {
			c.Props[k] = v
		}
	}
	return c
}

// NewShapeID mints a fresh shape identifier.
func NewShapeID() ShapeID {
	return ShapeID("shape:" + uuid.NewString())
}

// NewFileID mints a fresh file identifier.
func NewFileID() FileID {
	return FileID("file:" + uuid.NewString())
}

// EnsureIDs assigns fresh identifiers to shapes that arrive without one,
// as scene files authored by hand often do. Existing IDs are kept.
func EnsureIDs(shapes []Shape) {
	for i := range shapes {
		if shapes[i].ID == "" {
			shapes[i].ID = NewShapeID()
		}
	}
}

// CloneForCopy prepares a shape set for serialization. Shapes whose parent
// is not part of the copied set are deep-copied with the parent relation
// cleared, so pasting them elsewhere never dangle-references a container
// that wasn't copied. Shapes whose parent is included are copied as-is.
// The input slice and its shapes are never mutated.
func CloneForCopy(shapes []Shape) []Shape {
	included := make(map[ShapeID]bool, len(shapes))
	for _, s := range shapes {
		included[s.ID] = true
	}

	out := make([]Shape, 0, len(shapes))
	for _, s := range shapes {
		c := s.Clone()
		if c.ParentID != "" && !included[c.ParentID] {
			c.ParentID = ""
		}
		out = append(out, c)
	}
	return out
}

// ReferencedFiles filters a file map down to the payloads actually
// referenced by the shape set. Returns nil when nothing is referenced.
func ReferencedFiles(shapes []Shape, files map[FileID][]byte) map[FileID][]byte {
	var out map[FileID][]byte
	for _, s := range shapes {
		if s.FileID == "" {
			continue
		}
		data, ok := files[s.FileID]
		if !ok {
			continue
		}
		if out == nil {
			out = make(map[FileID][]byte)
		}
		out[s.FileID] = data
	}
	return out
}
