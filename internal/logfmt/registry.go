// Package logfmt implements the log formatter registry: a slog backend
// producing one of three canned templates, each carrying the elapsed
// wall-clock time since the previous record.
//
// A Registry is owned by a single coordinator and holds all otherwise
// process-global logging state (template selection, level, delta clock),
// so independent coordinators never race on shared handlers. The only
// supported usage model is single-threaded and cooperative; there is no
// internal locking.
package logfmt

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// Registry selects the active formatter template and hands out named
// logger handles bound to it. Loggers obtained before Configure is called
// are silent, like a logger with only a null handler attached.
type Registry struct {
	out        io.Writer
	format     int
	level      *slog.LevelVar
	configured bool

	// last is the timestamp of the previously emitted record, shared by
	// all loggers from this registry so the delta field reflects the
	// registry-wide record stream.
	last time.Time
}

// NewRegistry creates an unconfigured registry writing to out.
// A nil out defaults to os.Stdout.
func NewRegistry(out io.Writer) *Registry {
	if out == nil {
		out = os.Stdout
	}
	return &Registry{
		out:    out,
		format: 1,
		level:  new(slog.LevelVar),
	}
}

// Configure selects the template for the given format level and arms the
// delta-time computation. The call is idempotent: repeated calls replace
// the template selection and reset the delta clock rather than stacking
// formatters.
func (g *Registry) Configure(formatLevel int) {
	if formatLevel < 1 {
		formatLevel = 1
	}
	g.format = formatLevel
	g.last = time.Time{}
	g.configured = true
}

// Configured reports whether Configure has been called.
func (g *Registry) Configured() bool {
	return g.configured
}

// FormatLevel returns the active template selector.
func (g *Registry) FormatLevel() int {
	return g.format
}

// SetLevel sets the minimum level for records to be emitted.
func (g *Registry) SetLevel(l slog.Level) {
	g.level.Set(l)
}

// Logger returns a named logger handle bound to this registry.
func (g *Registry) Logger(name string) *slog.Logger {
	return slog.New(&templateHandler{reg: g, name: name})
}

// Template returns a printf-style rendering of the active template, for
// informational output only.
func (g *Registry) Template() string {
	switch {
	case g.format <= 1:
		return "%8s: (%ss) \t%s"
	case g.format == 2:
		return "%8s (%ss) %44s [%40s()] %4d >> \t%s"
	default:
		return "%s Line: %4d %44s (Delta=%ss) [%40s()]%8s:\t%s"
	}
}

// delta returns the elapsed seconds since the previous record, formatted
// with two decimals. The first record has no predecessor and reports the
// elapsed time against itself, which is zero.
func (g *Registry) delta(t time.Time) string {
	last := g.last
	if last.IsZero() {
		last = t
	}
	g.last = t
	return fmt.Sprintf("%.2f", t.Sub(last).Seconds())
}
