//go:build !linux

package clipboard

import "fmt"

// writeFallback has no second strategy on non-Linux platforms; the
// primary writer already speaks the native clipboard there.
func writeFallback(formats map[string][]byte) error {
	return fmt.Errorf("clipboard: no fallback writer on this platform")
}

// ServeFormats is not used on non-Linux platforms.
func ServeFormats(formats map[string][]byte) error {
	return nil
}
