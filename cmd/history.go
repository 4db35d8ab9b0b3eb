package cmd

import (
	"fmt"
	"time"

	"sketchclip/pkg/config"
	"sketchclip/pkg/errors"
	"sketchclip/pkg/filter"
	"sketchclip/pkg/history"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	historyLimit      int
	historyFilter     string
	historyFilterMode string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Inspect the local copy history",
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent copy operations",
	Example: `  # Show the last 20 copies
  sketchclip history list

  # Fuzzy-search previews
  sketchclip history list --filter "rect" --filter-mode fuzzy`,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := openHistory()
		if err != nil {
			return err
		}
		defer m.Close()

		entries, err := m.Recent(historyLimit)
		if err != nil {
			return errors.NewWithError(errors.ExitCodeGeneral, errors.ErrMsgHistoryFailed, err)
		}

		f, err := filter.NewStringFilter(historyFilter, parseFilterMode(historyFilterMode))
		if err != nil {
			return errors.NewWithError(errors.ExitCodeValidation, "invalid filter", err)
		}

		bold := color.New(color.Bold)
		shown := 0
		for _, e := range entries {
			if !f.Match(e.Preview) && !f.Match(e.Kind) {
				continue
			}
			shown++
			bold.Printf("%s", e.Kind)
			fmt.Printf("  %6d bytes  %s", e.Size, e.CreatedAt.Local().Format("02/01 15:04"))
			if e.Preview != "" {
				fmt.Printf("  %s", e.Preview)
			}
			fmt.Println()
		}
		if shown == 0 {
			fmt.Println("No matching history entries.")
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all copy history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := RequireConfirmation("delete all copy history entries"); err != nil {
			return errors.CancelledError(err.Error())
		}

		m, err := openHistory()
		if err != nil {
			return err
		}
		defer m.Close()

		if err := m.Clear(); err != nil {
			return errors.NewWithError(errors.ExitCodeGeneral, errors.ErrMsgHistoryFailed, err)
		}
		color.New(color.FgGreen).Println("✓ History cleared")
		return nil
	},
}

func openHistory() (*history.Manager, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cfg.History.Disabled {
		return nil, errors.NewWithSuggestion(errors.ExitCodeConfig,
			"copy history is disabled",
			"Remove history.disabled from the config file or unset SKETCHCLIP_HISTORY_DISABLED.")
	}
	path := cfg.History.Path
	if path == "" {
		if path, err = config.DefaultHistoryPath(); err != nil {
			return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to resolve history path", err)
		}
	}
	ttl := time.Duration(cfg.History.TTLDays) * 24 * time.Hour
	m, err := history.NewManagerWithTTL(path, ttl)
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeGeneral, errors.ErrMsgHistoryFailed, err)
	}
	return m, nil
}

func parseFilterMode(mode string) filter.FilterMode {
	switch mode {
	case "exact":
		return filter.FilterModeExact
	case "contains":
		return filter.FilterModeContains
	case "regex":
		return filter.FilterModeRegex
	case "fuzzy":
		return filter.FilterModeFuzzy
	default:
		if historyFilter != "" {
			return filter.FilterModeContains
		}
		return filter.FilterModeNone
	}
}

func init() {
	historyListCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Maximum entries to show")
	historyListCmd.Flags().StringVar(&historyFilter, "filter", "", "Filter entries by preview or kind")
	historyListCmd.Flags().StringVar(&historyFilterMode, "filter-mode", "", "Filter mode (exact, contains, regex, fuzzy)")
}
