package clipboard

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	xclip "golang.design/x/clipboard"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

var (
	imageInitOnce sync.Once
	imageInitErr  error
)

// ImagePayload carries a rendered image for the clipboard. Data holds
// immediate PNG bytes; Resolve produces them on demand when rendering is
// still pending at write time. At least one must be set.
type ImagePayload struct {
	Data    []byte
	Resolve func(ctx context.Context) ([]byte, error)
}

// WriteImage places a PNG image on the system clipboard. If the
// immediate payload is missing or rejected as invalid, the deferred
// resolver runs and the write retries once with its result. Failure at
// both stages propagates to the caller.
func WriteImage(ctx context.Context, p ImagePayload) error {
	imageInitOnce.Do(func() {
		imageInitErr = xclip.Init()
	})
	if imageInitErr != nil {
		return fmt.Errorf("clipboard: image write unavailable: %w", imageInitErr)
	}

	data := p.Data
	if !isPNG(data) {
		if p.Resolve == nil {
			return fmt.Errorf("clipboard: image payload is not PNG and has no resolver")
		}
		resolved, err := p.Resolve(ctx)
		if err != nil {
			return fmt.Errorf("clipboard: resolve image payload: %w", err)
		}
		if !isPNG(resolved) {
			return fmt.Errorf("clipboard: resolved image payload is not PNG")
		}
		data = resolved
	}

	if err := ctx.Err(); err != nil {
		return err
	}
	xclip.Write(xclip.FmtImage, data)
	return nil
}

func isPNG(data []byte) bool {
	return len(data) > len(pngMagic) && bytes.HasPrefix(data, pngMagic)
}
