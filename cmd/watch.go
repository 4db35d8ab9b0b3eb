package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"sketchclip/pkg/adapter"
	"sketchclip/pkg/errors"
	"sketchclip/pkg/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var watchIntervalSec int

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the clipboard and classify content as it changes",
	Long: `Poll the system clipboard and run each new piece of content through
the paste classifier, printing the result. Stop with Ctrl-C.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, cleanup, err := newAdapter()
		if err != nil {
			return err
		}
		defer cleanup()

		if _, err := a.System().ReadText(); err != nil {
			return errors.ClipboardReadError(err)
		}

		interval := time.Duration(watchIntervalSec) * time.Second
		if interval <= 0 {
			interval = 2 * time.Second
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		fmt.Printf("Watching clipboard every %s (Ctrl-C to stop)\n", interval)

		var last string
		for {
			select {
			case <-ctx.Done():
				fmt.Println()
				return nil
			case <-ticker.C:
			}

			text, err := a.System().ReadText()
			if err != nil {
				logger.Debug().Err(err).Msg("clipboard read failed during watch")
				continue
			}
			if text == "" || text == last {
				continue
			}
			last = text

			color.New(color.Faint).Printf("--- %s ---\n", time.Now().Format("15:04:05"))
			res := a.Paste(ctx, &adapter.Event{Text: text}, false)
			if jsonOutput {
				if err := printResultJSON(res); err != nil {
					return err
				}
			} else {
				printResult(res)
			}
		}
	},
}

func init() {
	watchCmd.Flags().IntVar(&watchIntervalSec, "interval", 2, "Polling interval in seconds")
}
