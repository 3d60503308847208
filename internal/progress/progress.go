// Package progress reports the progress of long-running computations to
// the terminal.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// IsTerminalFunc is the function used to check if a file descriptor is a terminal.
// It can be overridden for testing.
var IsTerminalFunc = term.IsTerminal

// Reporter prints percent-threshold progress lines for a computation with
// a known number of steps.
//
//	rep := progress.New(30, "compute stuff")
//	for i := 0; i < 30; i++ {
//		doSlowComputation()
//		rep.Flush(i)
//	}
//	rep.Finished()
type Reporter struct {
	out      io.Writer
	total    int
	info     string
	leadText string
	skip     int
	next     int
	show     bool
}

// Option configures a Reporter.
type Option func(*Reporter)

// WithLeadText prefixes every progress line with the given text.
func WithLeadText(text string) Option {
	return func(r *Reporter) { r.leadText = text }
}

// WithSkip sets the percent increment between reported lines.
// Values below 1 are ignored.
func WithSkip(skip int) Option {
	return func(r *Reporter) {
		if skip >= 1 {
			r.skip = skip
		}
	}
}

// WithWriter directs output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(r *Reporter) { r.out = w }
}

// WithDisplay enables or disables output entirely.
func WithDisplay(show bool) Option {
	return func(r *Reporter) { r.show = show }
}

// New creates a Reporter for a computation with total steps, annotated
// with the given info text.
func New(total int, info string, opts ...Option) *Reporter {
	r := &Reporter{
		out:   os.Stdout,
		total: total,
		info:  info,
		skip:  1,
		show:  true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Flush reports the percent corresponding to step, if it has reached the
// next threshold. Thresholds advance monotonically; a step that regresses
// never re-triggers a line already passed.
func (r *Reporter) Flush(step int) {
	if !r.show {
		return
	}
	percent := int(float64(step) / float64(r.total) * 100.0)
	if percent >= r.next {
		fmt.Fprintf(r.out, "%s%d%% %s\n", r.leadText, percent, r.info)
		r.next = percent + r.skip
	}
}

// Finished reports the final 100% line regardless of prior thresholds.
func (r *Reporter) Finished() {
	if !r.show {
		return
	}
	fmt.Fprintf(r.out, "%s100%% %s\n", r.leadText, r.info)
}

// ShouldShowProgress returns true if progress should be displayed.
// Progress is shown when stdout is a terminal.
func ShouldShowProgress() bool {
	return IsTerminalFunc(int(os.Stdout.Fd()))
}
