// Package export renders shapes to SVG and recognizes the application's
// own exports when they come back through the clipboard.
package export

import (
	"fmt"
	"strings"

	"sketchclip/pkg/scene"
)

// Marker is embedded in every SVG export. Paste classification uses it
// to recognize our own exports and fall back to the richer session cache
// instead of pasting opaque markup.
const Marker = `data-sketchclip="export"`

const defaultShapeSize = 100

// IsOwnExport reports whether text is an SVG document produced by SVG.
func IsOwnExport(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "<svg") && strings.Contains(trimmed, Marker)
}

// SVG renders the shape set as a minimal SVG document carrying the
// export marker. Shapes render as positioned placeholder rects; the
// document exists so external targets receive something visual, while
// pastes back into the application recover the original shapes from the
// session cache.
func SVG(shapes []scene.Shape) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" ` + Marker + ">\n")
	for _, s := range shapes {
		fmt.Fprintf(&b, `  <rect x="%g" y="%g" width="%d" height="%d" data-shape-type="%s"/>`+"\n",
			s.X, s.Y, defaultShapeSize, defaultShapeSize, s.Type)
	}
	b.WriteString("</svg>\n")
	return b.String()
}
