package config

import (
	"os"
	"path/filepath"
	"strconv"

	"sketchclip/pkg/errors"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultMaxFileBytes caps individual file payloads carried through
	// the clipboard envelope.
	DefaultMaxFileBytes = 32 * 1024 * 1024
	// DefaultHistoryTTLDays is how long copy history entries are kept.
	DefaultHistoryTTLDays = 7
)

// Config holds the complete clipboard adapter configuration.
type Config struct {
	LogLevel  string          `yaml:"log_level,omitempty"`
	Clipboard ClipboardConfig `yaml:"clipboard"`
	History   HistoryConfig   `yaml:"history"`
}

type ClipboardConfig struct {
	// DisableFallback turns off the platform fallback write strategy.
	DisableFallback bool `yaml:"disable_fallback,omitempty"`
	// MaxFileBytes caps individual file payloads; larger files are
	// dropped from the envelope with a warning.
	MaxFileBytes int `yaml:"max_file_bytes,omitempty"`
}

type HistoryConfig struct {
	Disabled bool   `yaml:"disabled,omitempty"`
	Path     string `yaml:"path,omitempty"`
	TTLDays  int    `yaml:"ttl_days,omitempty"`
}

// Load loads the configuration from file and environment.
func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, errors.NewWithError(errors.ExitCodeConfig, "failed to get config path", err)
	}
	return loadFromPath(configPath)
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "sketchclip", "config.yaml"), nil
}

// DefaultHistoryPath returns the history database location when the
// config does not override it.
func DefaultHistoryPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "sketchclip", "history.db"), nil
}

// Save saves the configuration to file.
func Save(cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to marshal config", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to write config file", err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func loadFromPath(configPath string) (*Config, error) {
	cfg := &Config{}

	if err := loadConfigFile(configPath, cfg); err != nil {
		return nil, err
	}

	applyEnvironmentOverrides(cfg)
	applyDefaults(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// loadConfigFile reads and parses the config file from the given path
func loadConfigFile(path string, cfg *Config) error {
	if _, err := os.Stat(path); err != nil {
		// File doesn't exist, that's okay - we'll use env vars and defaults
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errors.NewWithError(errors.ExitCodeFileOperation, "failed to read config file", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return errors.NewWithError(errors.ExitCodeConfig, "failed to parse config file", err)
	}

	return nil
}

// applyEnvironmentOverrides applies environment variable overrides to the config
func applyEnvironmentOverrides(cfg *Config) {
	if cfg.LogLevel == "" {
		cfg.LogLevel = getEnv("SKETCHCLIP_LOG_LEVEL", "")
	}
	if cfg.History.Path == "" {
		cfg.History.Path = getEnv("SKETCHCLIP_HISTORY_PATH", "")
	}
	if cfg.History.TTLDays == 0 {
		cfg.History.TTLDays = getEnvInt("SKETCHCLIP_HISTORY_TTL_DAYS", 0)
	}
	if cfg.Clipboard.MaxFileBytes == 0 {
		cfg.Clipboard.MaxFileBytes = getEnvInt("SKETCHCLIP_MAX_FILE_BYTES", 0)
	}
	if !cfg.Clipboard.DisableFallback {
		cfg.Clipboard.DisableFallback = getEnvBool("SKETCHCLIP_DISABLE_FALLBACK", false)
	}
	if !cfg.History.Disabled {
		cfg.History.Disabled = getEnvBool("SKETCHCLIP_HISTORY_DISABLED", false)
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Clipboard.MaxFileBytes == 0 {
		cfg.Clipboard.MaxFileBytes = DefaultMaxFileBytes
	}
	if cfg.History.TTLDays == 0 {
		cfg.History.TTLDays = DefaultHistoryTTLDays
	}
}

// validateConfig ensures configuration values are usable
func validateConfig(cfg *Config) error {
	if cfg.Clipboard.MaxFileBytes < 0 {
		return errors.ConfigError("clipboard max_file_bytes must not be negative")
	}
	if cfg.History.TTLDays < 0 {
		return errors.ConfigError("history ttl_days must not be negative")
	}
	return nil
}
