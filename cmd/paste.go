package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"sketchclip/pkg/adapter"
	"sketchclip/pkg/errors"
	"sketchclip/pkg/mixed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	pastePlain    bool
	pasteHTMLFile string
)

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Classify clipboard content the way a paste would",
	Long: `Read the system clipboard and run it through the paste classifier,
reporting whether it resolves to shapes, a spreadsheet, mixed HTML
content or plain text. With --html, classify a saved HTML fragment
instead of the clipboard.`,
	Example: `  # Classify the current clipboard
  sketchclip paste

  # Force literal-text interpretation
  sketchclip paste --plain

  # Classify an HTML fragment as if it arrived with a paste event
  sketchclip paste --html fragment.html`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newAdapter()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := GetContext()
		defer cancel()

		var ev *adapter.Event
		if pasteHTMLFile != "" {
			data, err := os.ReadFile(pasteHTMLFile)
			if err != nil {
				return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read HTML file", err)
			}
			ev = &adapter.Event{HTML: string(data)}
		}

		res := a.Paste(ctx, ev, pastePlain)

		if jsonOutput {
			return printResultJSON(res)
		}
		printResult(res)
		return nil
	},
}

func printResultJSON(res adapter.Result) error {
	out := map[string]any{
		"kind":    res.Kind.String(),
		"fromApi": res.FromAPI,
	}
	switch res.Kind {
	case adapter.KindShapes:
		out["shapes"] = res.Shapes
		out["files"] = len(res.Files)
		if res.Text != "" {
			out["text"] = res.Text
		}
	case adapter.KindSheet:
		out["rows"] = res.Sheet.Rows
	case adapter.KindMixed:
		frags := make([]map[string]string, 0, len(res.Fragments))
		for _, f := range res.Fragments {
			entry := map[string]string{"value": f.Value}
			if f.Kind == mixed.FragmentImageURL {
				entry["type"] = "image-url"
			} else {
				entry["type"] = "text"
			}
			frags = append(frags, entry)
		}
		out["fragments"] = frags
	case adapter.KindText:
		out["text"] = res.Text
	default:
		out["message"] = res.Message
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printResult(res adapter.Result) {
	cyan := color.New(color.FgCyan, color.Bold)

	switch res.Kind {
	case adapter.KindShapes:
		cyan.Printf("Shapes (%d)\n", len(res.Shapes))
		for _, s := range res.Shapes {
			fmt.Printf("  %-10s %s\n", s.Type, s.ID)
		}
		if len(res.Files) > 0 {
			fmt.Printf("  + %d file payload(s)\n", len(res.Files))
		}
		if res.FromAPI {
			fmt.Println("  (written by programmatic API)")
		}
		if res.Text != "" {
			fmt.Println(res.Text)
		}
	case adapter.KindSheet:
		cyan.Printf("Spreadsheet (%d rows × %d columns)\n", len(res.Sheet.Rows), res.Sheet.Columns())
		fmt.Println(res.Sheet.String())
	case adapter.KindMixed:
		cyan.Printf("Mixed content (%d fragments)\n", len(res.Fragments))
		for _, f := range res.Fragments {
			if f.Kind == mixed.FragmentImageURL {
				fmt.Printf("  [image] %s\n", f.Value)
			} else {
				fmt.Printf("  [text]  %s\n", f.Value)
			}
		}
	case adapter.KindText:
		cyan.Println("Text")
		fmt.Println(res.Text)
	default:
		color.New(color.FgRed).Printf("Nothing to paste: %s\n", res.Message)
	}
}

func init() {
	pasteCmd.Flags().BoolVar(&pastePlain, "plain", false, "Bypass HTML and spreadsheet interpretation")
	pasteCmd.Flags().StringVar(&pasteHTMLFile, "html", "", "Classify this HTML file as event-supplied paste data")
}
