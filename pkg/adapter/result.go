package adapter

import (
	"sketchclip/pkg/mixed"
	"sketchclip/pkg/scene"
	"sketchclip/pkg/sheet"
)

// ResultKind tags what a paste resolved to.
type ResultKind int

const (
	// KindError means nothing pasteable was found; Message says why.
	KindError ResultKind = iota
	// KindText is literal text.
	KindText
	// KindShapes is a shape list with its referenced files.
	KindShapes
	// KindSheet is detected spreadsheet content.
	KindSheet
	// KindMixed is an ordered text/image-URL fragment list from HTML.
	KindMixed
)

func (k ResultKind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindShapes:
		return "shapes"
	case KindSheet:
		return "sheet"
	case KindMixed:
		return "mixed"
	default:
		return "error"
	}
}

// Result is the outcome of paste classification. Exactly the fields for
// its Kind are populated; FromAPI marks content written by the
// programmatic clipboard API rather than a user copy.
type Result struct {
	Kind      ResultKind
	Shapes    []scene.Shape
	Files     map[scene.FileID][]byte
	Sheet     *sheet.Table
	Fragments []mixed.Fragment
	Text      string
	FromAPI   bool
	Message   string
}
