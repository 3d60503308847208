// Package config captures the XTG_* environment variables that steer the
// dialog subsystem. Values are read once, at coordinator construction, and
// kept as an immutable snapshot; later changes to the process environment
// have no effect on an existing coordinator.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// EnvLoggingLevel selects the structured-logging level
	// (INFO, WARNING, DEBUG or CRITICAL). When set, it permanently
	// overrides any later explicit level change on the coordinator.
	EnvLoggingLevel = "XTG_LOGGING_LEVEL"

	// EnvLoggingFormat selects the log formatter template (integer >= 1).
	EnvLoggingFormat = "XTG_LOGGING_FORMAT"

	// EnvVerboseLevel overrides syslevel, the gate for the severity-tiered
	// console messages. Any integer is accepted, including negative ones.
	EnvVerboseLevel = "XTG_VERBOSE_LEVEL"

	// EnvConfigFile points at an alternative TOML defaults file.
	EnvConfigFile = "XTG_CONFIG"

	// DefaultFormatLevel is the compact one-line template.
	DefaultFormatLevel = 1

	// DefaultSyslevel suppresses everything above warnings.
	DefaultSyslevel = 0
)

// Env is a snapshot of the dialog-related environment variables.
// The Has* fields record whether a variable was set at all, which matters
// for the precedence rules: an environment-sourced logging level blocks
// later explicit sets, and an environment-sourced syslevel is re-applied
// after every explicit set.
type Env struct {
	LoggingLevel    string
	HasLoggingLevel bool

	FormatLevel    int
	HasFormatLevel bool

	Syslevel    int
	HasSyslevel bool
}

// FromEnv reads the XTG_* variables and returns the snapshot.
// Unparseable numeric values produce a warning on stderr and are treated
// as unset.
func FromEnv() Env {
	e := Env{
		FormatLevel: DefaultFormatLevel,
		Syslevel:    DefaultSyslevel,
	}

	if v, ok := os.LookupEnv(EnvLoggingLevel); ok {
		e.LoggingLevel = v
		e.HasLoggingLevel = true
	}

	if v, ok := os.LookupEnv(EnvLoggingFormat); ok {
		n, err := strconv.Atoi(v)
		switch {
		case err != nil:
			fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, using default %d\n",
				EnvLoggingFormat, v, DefaultFormatLevel)
		case n < 1:
			fmt.Fprintf(os.Stderr, "Warning: %s too low (%d), using default %d\n",
				EnvLoggingFormat, n, DefaultFormatLevel)
		default:
			e.FormatLevel = n
			e.HasFormatLevel = true
		}
	}

	if v, ok := os.LookupEnv(EnvVerboseLevel); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, ignored\n",
				EnvVerboseLevel, v)
		} else {
			e.Syslevel = n
			e.HasSyslevel = true
		}
	}

	return e
}

// ConfigFilePath returns the path of the TOML defaults file: $XTG_CONFIG
// when set, otherwise ~/.config/xtgeo/dialog.toml.
func ConfigFilePath() (string, error) {
	if p := os.Getenv(EnvConfigFile); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "xtgeo", "dialog.toml"), nil
}
