package completions

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Completer supplies shell completion values for sketchclip flags and
// positional arguments.
type Completer struct{}

func NewCompleter() *Completer {
	return &Completer{}
}

func (c *Completer) CompleteFilterMode(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	modes := []string{"exact", "contains", "regex", "fuzzy"}

	completions := make([]string, 0, len(modes))
	for _, mode := range modes {
		completions = append(completions, fmt.Sprintf("%s\t%s", mode, filterModeDescription(mode)))
	}

	return c.filterPrefix(completions, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteConfigKey(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		// The value position is free-form.
		return []string{}, cobra.ShellCompDirectiveNoFileComp
	}

	keys := []string{
		"log_level\tLog verbosity (debug, info, warn, error, fatal)",
		"clipboard.disable_fallback\tTurn off the platform fallback write strategy",
		"clipboard.max_file_bytes\tMaximum size of a file payload in a copy",
		"history.disabled\tDisable the local copy history",
		"history.path\tLocation of the copy history database",
		"history.ttl_days\tDays to keep copy history entries",
	}

	return c.filterPrefix(keys, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) CompleteLogLevel(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	levels := []string{"debug", "info", "warn", "error", "fatal"}
	return c.filterPrefix(levels, toComplete), cobra.ShellCompDirectiveNoFileComp
}

func (c *Completer) filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		return items
	}

	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), strings.ToLower(prefix)) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func filterModeDescription(mode string) string {
	switch mode {
	case "exact":
		return "Match the full string exactly"
	case "contains":
		return "Match entries containing the text"
	case "regex":
		return "Match entries against a regular expression"
	case "fuzzy":
		return "Subsequence match with gaps allowed"
	default:
		return ""
	}
}

func RegisterCompletions(rootCmd *cobra.Command) {
	completer := NewCompleter()

	rootCmd.RegisterFlagCompletionFunc("log-level", completer.CompleteLogLevel)

	historyListCmd, _, _ := rootCmd.Find([]string{"history", "list"})
	if historyListCmd != nil {
		historyListCmd.RegisterFlagCompletionFunc("filter-mode", completer.CompleteFilterMode)
	}

	configSetCmd, _, _ := rootCmd.Find([]string{"config", "set"})
	if configSetCmd != nil {
		configSetCmd.ValidArgsFunction = completer.CompleteConfigKey
	}
}
