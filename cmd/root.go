package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"sketchclip/pkg/adapter"
	"sketchclip/pkg/clipboard"
	"sketchclip/pkg/completions"
	"sketchclip/pkg/config"
	"sketchclip/pkg/errors"
	"sketchclip/pkg/history"
	"sketchclip/pkg/logger"

	"github.com/spf13/cobra"
)

const (
	unknownValue = "unknown"
)

var (
	Version   string
	BuildTime string
	GitCommit string
)

var defaultTimeout = 30 * time.Second
var globalTimeout time.Duration
var jsonOutput bool
var logLevel string
var assumeYesFlag bool

var rootCmd = &cobra.Command{
	Use:   "sketchclip",
	Short: "Scene clipboard tool",
	Long: `Command-line companion for the sketchclip clipboard adapter. Copies
scene shape files to the system clipboard, classifies clipboard content
the way a paste into the application would, and inspects copy history.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if globalTimeout <= 0 {
			globalTimeout = defaultTimeout
		}
		// Set log level: explicit flag takes precedence over env var
		level := logLevel
		if !cmd.Flags().Changed("log-level") {
			if envLevel := os.Getenv("SKETCHCLIP_LOG_LEVEL"); envLevel != "" {
				level = envLevel
			}
		}
		logger.SetLevel(level)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		ver := Version
		if ver == "" {
			ver = "dev"
		}
		bt := BuildTime
		if bt == "" {
			bt = unknownValue
		}
		gc := GitCommit
		if gc == "" {
			gc = unknownValue
		}

		fmt.Printf("sketchclip version %s\n", ver)
		fmt.Printf("Built: %s\n", bt)
		fmt.Printf("Git commit: %s\n", gc)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		// A user-cancelled operation is not a failure worth the full
		// error treatment; exit with its code and a short note.
		if errors.IsExitCode(err, errors.ExitCodeCancellation) {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(int(errors.ExitCodeCancellation))
		}
		exitCode := errors.HandleReturn(err)
		os.Exit(int(exitCode))
	}
}

func GetContext() (context.Context, context.CancelFunc) {
	timeout := globalTimeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return context.WithTimeout(context.Background(), timeout)
}

// newAdapter builds the clipboard adapter from configuration. The
// returned cleanup closes the history store when one was attached.
func newAdapter() (*adapter.Adapter, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if cfg.LogLevel != "" && logLevel == "warn" {
		logger.SetLevel(cfg.LogLevel)
	}

	native := &clipboard.Native{DisableFallback: cfg.Clipboard.DisableFallback}
	a := adapter.New(native).WithMaxFileBytes(cfg.Clipboard.MaxFileBytes)
	cleanup := func() {}

	if !cfg.History.Disabled {
		path := cfg.History.Path
		if path == "" {
			if path, err = config.DefaultHistoryPath(); err != nil {
				return nil, nil, errors.NewWithError(errors.ExitCodeConfig, "failed to resolve history path", err)
			}
		}
		ttl := time.Duration(cfg.History.TTLDays) * 24 * time.Hour
		if m, histErr := history.NewManagerWithTTL(path, ttl); histErr != nil {
			logger.Warn().Err(histErr).Msg("copy history unavailable")
		} else {
			a.WithRecorder(m)
			cleanup = func() { m.Close() }
		}
	}

	return a, cleanup, nil
}

func init() {
	RegisterCommands(rootCmd)

	rootCmd.PersistentFlags().DurationVar(&globalTimeout, "timeout", defaultTimeout, "Timeout for clipboard operations (e.g., 30s, 1m)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results as JSON")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error, fatal)")
	rootCmd.PersistentFlags().BoolVarP(&assumeYesFlag, "yes", "y", false, "Skip confirmation prompts")

	completions.RegisterCompletions(rootCmd)
}
