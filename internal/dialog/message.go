package dialog

import (
	"fmt"
	"strconv"
)

// ANSI escapes for colorized output.
const (
	ansiHeader   = "\033[1;96m"
	ansiWarn     = "\033[93;43m"
	ansiError    = "\033[93;41m"
	ansiCritical = "\033[1;91m"
	ansiEnd      = "\033[0m"
)

// Each tier carries a numeric level checked against syslevel and a style
// index selecting prefix and color. A message is emitted iff its level is
// <= the current syslevel, so the negative (severe) tiers nearly always
// pass while insane/trace/debug require an explicitly raised syslevel.

// Insane emits an ultra-verbose message (level 4, opt-in).
func (d *Dialog) Insane(msg string) {
	d.emit(0, 4, msg, inspectCaller(2))
}

// Trace emits a verbose tracing message (level 3).
func (d *Dialog) Trace(msg string) {
	d.emit(0, 3, msg, inspectCaller(2))
}

// Debug emits a debugging message (level 2).
func (d *Dialog) Debug(msg string) {
	d.emit(0, 2, msg, inspectCaller(2))
}

// Speak emits an informational message (level 1).
func (d *Dialog) Speak(msg string) {
	d.emit(1, 1, msg, inspectCaller(2))
}

// Info is an alias for Speak.
func (d *Dialog) Info(msg string) {
	d.emit(1, 1, msg, inspectCaller(2))
}

// Say emits a user-facing message (level -5), shown unless syslevel is
// pushed below -5.
func (d *Dialog) Say(msg string) {
	d.emit(3, -5, msg, inspectCaller(2))
}

// Warn shows a runtime warning (level 0), honoring the runtime-warnings
// flag.
func (d *Dialog) Warn(msg string) {
	if d.showRTWarnings {
		d.emit(6, 0, msg, inspectCaller(2))
	}
}

// Warning is an alias for Warn.
func (d *Dialog) Warning(msg string) {
	if d.showRTWarnings {
		d.emit(6, 0, msg, inspectCaller(2))
	}
}

// Error emits an error message (level -8). It does not alter control
// flow; use Critical for unrecoverable conditions.
func (d *Dialog) Error(msg string) {
	d.emit(8, -8, msg, inspectCaller(2))
}

// Critical emits a critical message (level -9) and returns a *FatalError
// that must be propagated to the process boundary, which performs the
// actual termination. Callers must not expect to continue past a
// propagated Critical; ignoring the returned error is the moral
// equivalent of the old "do not exit" escape hatch and is discouraged.
func (d *Dialog) Critical(msg string) error {
	d.emit(9, -9, msg, inspectCaller(2))
	return &FatalError{Message: "STOP!"}
}

// emit prints one message line. Caller inspection has already happened
// by the time the gate is evaluated; that cost is accepted for every
// call, suppressed or not.
func (d *Dialog) emit(idx, level int, msg string, ci CallerInfo) {
	var prefix, endfix string
	switch idx {
	case 0:
		prefix = "++"
	case 1:
		prefix = "**"
	case 3:
		prefix = ">>"
	case 6:
		prefix = ansiWarn + "##"
		endfix = ansiEnd
	case 8:
		prefix = ansiError + "!#"
		endfix = ansiEnd
	case 9:
		prefix = ansiCritical + "!!"
		endfix = ansiEnd
	}

	if level > d.syslevel {
		return
	}

	if d.syslevel <= 1 {
		fmt.Fprintf(d.out, "%s %s%s\n", prefix, msg, endfix)
		return
	}

	// Single-letter codes in rich mode. The codes for say and critical
	// overlap oddly with the other tiers; preserved as-is.
	code := strconv.Itoa(level)
	switch level {
	case -5:
		code = "M"
	case -8:
		code = "E"
	case -9:
		code = "W"
	}
	fmt.Fprintf(d.out, "%s <%s> [%-23s->%33s] %s%s\n",
		prefix, code, ci.Class, ci.Function, msg, endfix)
}
