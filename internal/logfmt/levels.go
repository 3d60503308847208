package logfmt

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelCritical is the level used for CRITICAL records. slog has no
// critical level of its own, so a custom level above Error is used.
const LevelCritical = slog.Level(12)

// validLevels is the accepted set for SetLoggingLevel and friends.
var validLevels = []string{"INFO", "WARNING", "DEBUG", "CRITICAL"}

// InvalidLevelError reports a logging-level string outside the valid set.
type InvalidLevelError struct {
	Level string
}

func (e *InvalidLevelError) Error() string {
	return fmt.Sprintf("invalid logging level %q: must be one of %s",
		e.Level, strings.Join(validLevels, ", "))
}

// ParseLevel maps a level name to its slog ordinal.
func ParseLevel(level string) (slog.Level, error) {
	switch level {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO":
		return slog.LevelInfo, nil
	case "WARNING":
		return slog.LevelWarn, nil
	case "CRITICAL":
		return LevelCritical, nil
	}
	return 0, &InvalidLevelError{Level: level}
}

// LevelName returns the display name used in formatted records.
func LevelName(l slog.Level) string {
	switch {
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
