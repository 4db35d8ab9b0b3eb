package cmd

import (
	"context"
	"encoding/json"
	"os"

	"sketchclip/pkg/clipboard"
	"sketchclip/pkg/errors"
	"sketchclip/pkg/export"
	"sketchclip/pkg/progress"
	"sketchclip/pkg/scene"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var copySVGOut string

// sceneFile is the on-disk shape of `sketchclip copy` input: the shape
// list plus optional base64 file payloads, matching the envelope layout.
type sceneFile struct {
	Shapes []scene.Shape           `json:"shapes"`
	Files  map[scene.FileID][]byte `json:"files,omitempty"`
}

var copyCmd = &cobra.Command{
	Use:   "copy <scene.json>",
	Short: "Copy shapes from a scene file to the clipboard",
	Long: `Read a scene file (a JSON object with a "shapes" array and optional
"files" map) and place its shapes on the system clipboard the way a copy
inside the application would.`,
	Example: `  # Copy a scene file
  sketchclip copy selection.json

  # Also write an SVG rendering next to it
  sketchclip copy selection.json --svg out.svg`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read scene file", err)
		}

		var sf sceneFile
		if err := json.Unmarshal(data, &sf); err != nil {
			return errors.NewWithError(errors.ExitCodeValidation, errors.ErrMsgInvalidScene, err)
		}
		scene.EnsureIDs(sf.Shapes)

		a, cleanup, err := newAdapter()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := GetContext()
		defer cancel()

		if err := progress.WithSpinner("Writing clipboard...", func() error {
			return a.Copy(ctx, sf.Shapes, sf.Files)
		}); err != nil {
			return err
		}

		if copySVGOut != "" {
			svg := export.SVG(sf.Shapes)
			if err := os.WriteFile(copySVGOut, []byte(svg), 0644); err != nil {
				return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write SVG export", err)
			}
		}

		green := color.New(color.FgGreen)
		green.Printf("✓ Copied %d shape(s) to clipboard\n", len(sf.Shapes))
		if a.Session().PreferInternal() {
			yellow := color.New(color.FgYellow)
			yellow.Println("  (system clipboard unavailable, content held in session cache)")
		}
		return nil
	},
}

var copyImageCmd = &cobra.Command{
	Use:   "copy-image <image.png>",
	Short: "Copy a rendered PNG image to the clipboard",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		a, cleanup, err := newAdapter()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := GetContext()
		defer cancel()

		data, err := os.ReadFile(path)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read image file", err)
		}

		payload := clipboard.ImagePayload{
			Data: data,
			// Re-read on retry in case the renderer was still flushing
			// the file when the first attempt was made.
			Resolve: func(ctx context.Context) ([]byte, error) {
				return os.ReadFile(path)
			},
		}
		if err := progress.WithSpinner("Writing clipboard...", func() error {
			return a.CopyImage(ctx, payload)
		}); err != nil {
			return err
		}

		color.New(color.FgGreen).Println("✓ Copied image to clipboard")
		return nil
	},
}

func init() {
	copyCmd.Flags().StringVar(&copySVGOut, "svg", "", "Also write an SVG rendering of the shapes to this path")
}
