package dialog

import (
	"fmt"
	"runtime"
)

// WarningFormatter renders a one-line side-channel warning. file and line
// are zero-valued for user warnings. Inject a replacement with
// WithWarningFormatter; no global formatting state exists to mutate.
type WarningFormatter func(category, message, file string, line int) string

func defaultWarningFormatter(category, message, file string, line int) string {
	if file != "" {
		return fmt.Sprintf("%s: %s: (%s:%d)", category, message, file, line)
	}
	return fmt.Sprintf("%s: %s", category, message)
}

// WarnDeprecated shows a deprecation warning with the caller's file and
// line, once per call site and message.
func (d *Dialog) WarnDeprecated(msg string) {
	file, line := "?", 0
	if _, f, l, ok := runtime.Caller(1); ok {
		file, line = f, l
	}
	d.emitWarning("DeprecationWarning", msg, file, line)
}

// WarnUser shows a user warning, once per message.
func (d *Dialog) WarnUser(msg string) {
	d.emitWarning("UserWarning", msg, "", 0)
}

// emitWarning deduplicates and prints to the warning channel. Warnings
// never raise and never abort.
func (d *Dialog) emitWarning(category, msg, file string, line int) {
	key := fmt.Sprintf("%s|%s|%s:%d", category, msg, file, line)
	if _, seen := d.seenWarnings[key]; seen {
		return
	}
	d.seenWarnings[key] = struct{}{}
	fmt.Fprintln(d.errOut, d.warnFormatter(category, msg, file, line))
}
