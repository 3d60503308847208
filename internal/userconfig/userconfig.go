// Package userconfig provides optional file-based defaults for the dialog
// subsystem. Settings are stored in ~/.config/xtgeo/dialog.toml (or the
// file named by XTG_CONFIG) and can be modified via `xtgdialog config`.
//
// Precedence is built-in default < config file < environment variable;
// the file never overrides XTG_* values captured at construction.
package userconfig

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/slangeveld/xtgeo/internal/config"
)

// Config represents user-configurable dialog defaults.
type Config struct {
	// LoggingLevel is the structured-logging level
	// (INFO, WARNING, DEBUG or CRITICAL). Empty means unset.
	LoggingLevel string `toml:"logging_level"`

	// LoggingFormat selects the formatter template (>= 1).
	LoggingFormat int `toml:"logging_format"`

	// VerboseLevel is the syslevel default. Stored as a pointer so that
	// "unset" is distinguishable from an explicit 0.
	VerboseLevel *int `toml:"verbose_level"`

	// RuntimeWarnings enables the runtime warning channel (xtg.Warn).
	// Default is true.
	RuntimeWarnings bool `toml:"runtime_warnings"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LoggingFormat:   config.DefaultFormatLevel,
		RuntimeWarnings: true,
	}
}

// Load reads the config file and returns the configuration.
// Returns default values if the file doesn't exist.
// Returns an error only for file parsing issues, not missing files.
func Load() (*Config, error) {
	path, err := config.ConfigFilePath()
	if err != nil {
		return DefaultConfig(), nil // No resolvable home, use defaults
	}
	return loadFromPath(path)
}

// loadFromPath reads config from a specific file path (for testing).
func loadFromPath(path string) (*Config, error) {
	userCfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return userCfg, nil // File doesn't exist, use defaults
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}

	if _, err := toml.Decode(string(data), userCfg); err != nil {
		return nil, errors.Wrap(err, "failed to parse config file")
	}

	return userCfg, nil
}

// Save writes the configuration to the config file.
func (c *Config) Save() error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return errors.Wrap(err, "failed to resolve config path")
	}
	return c.saveToPath(path)
}

// saveToPath writes config to a specific file path (for testing).
func (c *Config) saveToPath(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "failed to create config directory")
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create config file")
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return errors.Wrap(err, "failed to write config file")
	}

	return nil
}

// Get returns the value of a config key as a string.
// Returns empty string and false if the key doesn't exist.
func (c *Config) Get(key string) (string, bool) {
	switch strings.ToLower(key) {
	case "logging_level":
		return c.LoggingLevel, true
	case "logging_format":
		return strconv.Itoa(c.LoggingFormat), true
	case "verbose_level":
		if c.VerboseLevel == nil {
			return "", true
		}
		return strconv.Itoa(*c.VerboseLevel), true
	case "runtime_warnings":
		return strconv.FormatBool(c.RuntimeWarnings), true
	default:
		return "", false
	}
}

// Set updates a config value from a string.
// Returns an error if the key doesn't exist or the value is invalid.
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "logging_level":
		level := strings.ToUpper(value)
		switch level {
		case "INFO", "WARNING", "DEBUG", "CRITICAL":
			c.LoggingLevel = level
			return nil
		}
		return errors.Errorf("invalid value for logging_level: %q", value)
	case "logging_format":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 {
			return errors.Errorf("invalid value for logging_format: must be an integer >= 1")
		}
		c.LoggingFormat = n
		return nil
	case "verbose_level":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Errorf("invalid value for verbose_level: must be an integer")
		}
		c.VerboseLevel = &n
		return nil
	case "runtime_warnings":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return errors.Errorf("invalid value for runtime_warnings: must be true or false")
		}
		c.RuntimeWarnings = b
		return nil
	default:
		return errors.Errorf("unknown config key: %s", key)
	}
}

// AvailableKeys returns a list of all configurable keys with descriptions.
func AvailableKeys() map[string]string {
	return map[string]string{
		"logging_level":    "Default structured-logging level (INFO/WARNING/DEBUG/CRITICAL)",
		"logging_format":   "Log formatter template selector (integer >= 1)",
		"verbose_level":    "Default syslevel for tiered console messages",
		"runtime_warnings": "Show runtime warnings issued via warn (true/false)",
	}
}
