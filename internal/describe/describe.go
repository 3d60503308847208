// Package describe builds tabular text descriptions of object instances,
// e.g. for a grid or surface "describe" operation.
package describe

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// ruleWidth is the width of the horizontal rule lines.
const ruleWidth = 99

// Description is an append-only buffer of description lines.
//
// Both Flush and Text append a trailing rule line to the buffer before
// producing output, so the buffer keeps growing across repeated renders
// (two renders in sequence yield two trailing rules). This mirrors
// long-standing behavior that downstream output comparisons rely on.
type Description struct {
	out   io.Writer
	lines []string
}

// Option configures a Description.
type Option func(*Description)

// WithWriter directs Flush output to w instead of os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(d *Description) { d.out = w }
}

// New creates an empty description.
func New(opts ...Option) *Description {
	d := &Description{out: os.Stdout}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Title appends a rule line, the title text and another rule line.
func (d *Description) Title(title string) {
	rule := strings.Repeat("=", ruleWidth)
	d.lines = append(d.lines, rule, title, rule)
}

// Row appends one aligned row with 1 to 7 fields. The first field is
// left-justified in a 40-character column; a literal "=>" separator
// follows, then the remaining fields joined by double spaces.
func (d *Description) Row(fields ...string) {
	if len(fields) == 0 {
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%-40s", fields[0])
	if len(fields) > 1 {
		fmt.Fprintf(&sb, " %2s %s", "=>", fields[1])
		for _, f := range fields[2:] {
			sb.WriteString("  ")
			sb.WriteString(f)
		}
	}
	d.lines = append(d.lines, sb.String())
}

// Flush prints the description, appending a trailing rule line to the
// buffer first.
func (d *Description) Flush() {
	d.lines = append(d.lines, strings.Repeat("=", ruleWidth))
	for _, line := range d.lines {
		fmt.Fprintln(d.out, line)
	}
}

// Text returns the description as a single string with no trailing
// newline, appending a trailing rule line to the buffer first.
func (d *Description) Text() string {
	d.lines = append(d.lines, strings.Repeat("=", ruleWidth))
	return strings.Join(d.lines, "\n")
}
