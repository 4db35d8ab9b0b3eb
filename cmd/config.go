package cmd

import (
	"fmt"
	"strconv"

	"sketchclip/pkg/config"
	"sketchclip/pkg/errors"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage sketchclip configuration",
	Long:  `Inspect and modify the sketchclip configuration file.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long:  `Display the current configuration after defaults and environment overrides.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		fmt.Println("Current Configuration:")
		fmt.Println("======================")
		fmt.Printf("Log Level: %s\n", cfg.LogLevel)
		fmt.Println()
		fmt.Printf("Clipboard Fallback: %s\n", func() string {
			if cfg.Clipboard.DisableFallback {
				return "disabled"
			}
			return "enabled"
		}())
		fmt.Printf("Max File Bytes: %d\n", cfg.Clipboard.MaxFileBytes)
		fmt.Println()
		fmt.Printf("History: %s\n", func() string {
			if cfg.History.Disabled {
				return "disabled"
			}
			return "enabled"
		}())
		fmt.Printf("History Path: %s\n", func() string {
			if cfg.History.Path != "" {
				return cfg.History.Path
			}
			path, err := config.DefaultHistoryPath()
			if err != nil {
				return "(unknown)"
			}
			return path + " (default)"
		}())
		fmt.Printf("History TTL: %d days\n", cfg.History.TTLDays)

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long:  `Set a configuration value and write it back to the configuration file.`,
	Example: `  # Raise log verbosity
  sketchclip config set log_level debug

  # Cap clipboard file payloads at 8 MiB
  sketchclip config set clipboard.max_file_bytes 8388608

  # Turn off copy history
  sketchclip config set history.disabled true`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]

		cfg, err := config.Load()
		if err != nil {
			cfg = &config.Config{}
		}

		switch key {
		case "log_level":
			cfg.LogLevel = value
		case "clipboard.disable_fallback":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return errors.ConfigError(fmt.Sprintf("invalid boolean for %s: %s", key, value))
			}
			cfg.Clipboard.DisableFallback = b
		case "clipboard.max_file_bytes":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return errors.ConfigError(fmt.Sprintf("invalid byte count for %s: %s", key, value))
			}
			cfg.Clipboard.MaxFileBytes = n
		case "history.disabled":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return errors.ConfigError(fmt.Sprintf("invalid boolean for %s: %s", key, value))
			}
			cfg.History.Disabled = b
		case "history.path":
			cfg.History.Path = value
		case "history.ttl_days":
			n, err := strconv.Atoi(value)
			if err != nil || n < 0 {
				return errors.ConfigError(fmt.Sprintf("invalid day count for %s: %s", key, value))
			}
			cfg.History.TTLDays = n
		default:
			return errors.ConfigError(fmt.Sprintf("unknown configuration key: %s", key))
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Set %s = %s\n", key, value)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show configuration file path",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)
}
