package cmd

import (
	"encoding/json"
	"os"

	"sketchclip/pkg/clipboard"
	"sketchclip/pkg/logger"

	"github.com/spf13/cobra"
)

var clipboardServeCmd = &cobra.Command{
	Use:    "__clipboard-serve",
	Hidden: true,
	Short:  "Internal: serve clipboard formats over Wayland (do not call directly)",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.GetLogger().With().Str("component", "clipboard-serve").Logger()

		var formats map[string][]byte
		if err := json.NewDecoder(os.Stdin).Decode(&formats); err != nil {
			log.Error().Err(err).Msg("bad format payload on stdin")
			return err
		}

		log.Debug().Int("formats", len(formats)).Msg("taking clipboard ownership")
		if err := clipboard.ServeFormats(formats); err != nil {
			log.Error().Err(err).Msg("clipboard ownership lost with error")
			return err
		}
		return nil
	},
}
