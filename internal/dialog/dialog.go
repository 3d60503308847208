// Package dialog handles console dialogs and messages for xtgeo: nine
// severity-tiered message operations gated by syslevel, structured
// logging handles bound to a per-coordinator formatter registry, a
// startup banner, and one-shot deprecation/user warnings.
//
// Logging is enabled by setting an environment variable:
//
//	export XTG_LOGGING_LEVEL=INFO
//
// Other levels are DEBUG, WARNING and CRITICAL. CRITICAL is the default.
// XTG_VERBOSE_LEVEL steers the tiered console messages (syslevel), and
// XTG_LOGGING_FORMAT selects one of three message templates.
//
// Usage:
//
//	xtg := dialog.New()
//	logger := xtg.BasicLogger("mymodule")
//	logger.Info("reading surface", "file", name)
//
//	xtg.Say("This is a message")
//	xtg.Warn("This is a warning")
//	xtg.Error("This is an error, will continue")
//	if err := xtg.Critical("This is a big error"); err != nil {
//		return err // unwinds to the process boundary, which exits
//	}
//
// A Dialog owns all of its logging state; independent coordinators never
// share handlers. Usage is single-threaded and cooperative, there is no
// internal locking.
package dialog

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/slangeveld/xtgeo/internal/config"
	"github.com/slangeveld/xtgeo/internal/logfmt"
	"github.com/slangeveld/xtgeo/internal/userconfig"
)

// Dialog is the message and logging coordinator. Construct with New,
// once per process.
type Dialog struct {
	out    io.Writer
	errOut io.Writer

	syslevel     int
	envSyslevel  *int
	loggingLevel string
	levelFromEnv bool
	formatLevel  int

	showRTWarnings bool
	warnFormatter  WarningFormatter
	seenWarnings   map[string]struct{}

	registry *logfmt.Registry
}

// Option configures a Dialog.
type Option func(*Dialog)

// WithWriter directs message and log output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(d *Dialog) { d.out = w }
}

// WithErrWriter directs warning-channel output to w instead of os.Stderr.
func WithErrWriter(w io.Writer) Option {
	return func(d *Dialog) { d.errOut = w }
}

// WithWarningFormatter replaces the one-line rendering used by
// WarnDeprecated and WarnUser.
func WithWarningFormatter(f WarningFormatter) Option {
	return func(d *Dialog) { d.warnFormatter = f }
}

// New constructs a coordinator. Defaults come from the optional user
// config file, then the XTG_* environment variables; both are read here,
// once. An environment-sourced logging level permanently blocks later
// explicit level changes, and an environment-sourced syslevel re-asserts
// itself after every explicit syslevel change.
func New(opts ...Option) *Dialog {
	d := &Dialog{
		out:            os.Stdout,
		errOut:         os.Stderr,
		syslevel:       config.DefaultSyslevel,
		loggingLevel:   "CRITICAL",
		formatLevel:    config.DefaultFormatLevel,
		showRTWarnings: true,
		warnFormatter:  defaultWarningFormatter,
		seenWarnings:   make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(d)
	}
	d.registry = logfmt.NewRegistry(d.out)

	if fileCfg, err := userconfig.Load(); err == nil {
		d.applyFileConfig(fileCfg)
	} else {
		fmt.Fprintf(d.errOut, "Warning: ignoring user config: %v\n", err)
	}

	env := config.FromEnv()
	if env.HasLoggingLevel {
		if _, perr := logfmt.ParseLevel(env.LoggingLevel); perr == nil {
			d.loggingLevel = env.LoggingLevel
			d.levelFromEnv = true
		} else {
			fmt.Fprintf(d.errOut, "Warning: %v\n", perr)
		}
	}
	if env.HasFormatLevel {
		d.formatLevel = env.FormatLevel
	}
	if env.HasSyslevel {
		d.syslevel = env.Syslevel
		lvl := env.Syslevel
		d.envSyslevel = &lvl
	}

	return d
}

func (d *Dialog) applyFileConfig(cfg *userconfig.Config) {
	if cfg.LoggingLevel != "" {
		if _, err := logfmt.ParseLevel(cfg.LoggingLevel); err == nil {
			d.loggingLevel = cfg.LoggingLevel
		}
	}
	if cfg.LoggingFormat >= 1 {
		d.formatLevel = cfg.LoggingFormat
	}
	if cfg.VerboseLevel != nil {
		d.syslevel = *cfg.VerboseLevel
	}
	d.showRTWarnings = cfg.RuntimeWarnings
}

// Syslevel returns the gate level for the tiered console messages.
func (d *Dialog) Syslevel() int {
	return d.syslevel
}

// SetSyslevel sets the gate level. Valid range is 0 <= n < 5; anything
// else keeps the stored value and prints a diagnostic, without raising an
// error. An XTG_VERBOSE_LEVEL captured at construction wins afterwards
// either way.
func (d *Dialog) SetSyslevel(n int) {
	if n >= 0 && n < 5 {
		d.syslevel = n
	} else {
		fmt.Fprintln(d.out, "Invalid range for syslevel")
	}

	if d.envSyslevel != nil {
		d.syslevel = *d.envSyslevel
	}
}

// LoggingLevel returns the current structured-logging level name.
func (d *Dialog) LoggingLevel() string {
	return d.loggingLevel
}

// SetLoggingLevel sets the structured-logging level. Only INFO, WARNING,
// DEBUG and CRITICAL are accepted; anything else returns an
// *logfmt.InvalidLevelError and leaves the level unchanged. The call is a
// no-op when XTG_LOGGING_LEVEL was set at construction.
func (d *Dialog) SetLoggingLevel(level string) error {
	if _, err := logfmt.ParseLevel(level); err != nil {
		return err
	}
	if d.levelFromEnv {
		return nil
	}
	d.loggingLevel = level
	return nil
}

// NumericLoggingLevel returns the slog ordinal of the current level.
func (d *Dialog) NumericLoggingLevel() slog.Level {
	lvl, err := logfmt.ParseLevel(d.loggingLevel)
	if err != nil {
		return logfmt.LevelCritical
	}
	return lvl
}

// FormatLevel returns the active formatter template selector.
func (d *Dialog) FormatLevel() int {
	return d.formatLevel
}

// ShowRuntimeWarnings controls whether Warn messages are shown.
func (d *Dialog) ShowRuntimeWarnings(flag bool) {
	d.showRTWarnings = flag
}

// LoggerOption adjusts BasicLogger behavior.
type LoggerOption func(*loggerOptions)

type loggerOptions struct {
	level  string
	format int
	info   bool
}

// WithLoggingLevel sets the logging level for this and subsequent
// loggers, unless an environment-sourced level was captured.
func WithLoggingLevel(level string) LoggerOption {
	return func(o *loggerOptions) { o.level = level }
}

// WithFormatLevel selects the formatter template.
func WithFormatLevel(n int) LoggerOption {
	return func(o *loggerOptions) { o.format = n }
}

// WithInfo prints a one-line summary of the effective logging settings.
func WithInfo() LoggerOption {
	return func(o *loggerOptions) { o.info = true }
}

// BasicLogger configures the formatter registry with the effective
// settings and returns a named logger handle. Initiate top-level loggers
// with this; reconfiguration replaces rather than stacks formatter state.
func (d *Dialog) BasicLogger(name string, opts ...LoggerOption) *slog.Logger {
	var lo loggerOptions
	for _, opt := range opts {
		opt(&lo)
	}

	if lo.level != "" && !d.levelFromEnv {
		if _, err := logfmt.ParseLevel(lo.level); err == nil {
			d.loggingLevel = lo.level
		}
	}
	if lo.format >= 1 {
		d.formatLevel = lo.format
	}

	d.registry.Configure(d.formatLevel)
	d.registry.SetLevel(d.NumericLoggingLevel())

	if lo.info {
		fmt.Fprintf(d.out, "Logginglevel is %s, formatlevel is %d, and format is %q\n",
			d.loggingLevel, d.formatLevel, d.registry.Template())
	}

	return d.registry.Logger(name)
}

// FunctionLogger returns a named logger handle for functions below top
// level. It stays silent until some top-level caller has initiated
// logging via BasicLogger.
func (d *Dialog) FunctionLogger(name string) *slog.Logger {
	return d.registry.Logger(name)
}
