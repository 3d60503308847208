package main

import "os"

// Exit codes for different error types.
const (
	// ExitSuccess indicates successful execution
	ExitSuccess = 0

	// ExitGeneral indicates a general error
	ExitGeneral = 1

	// ExitUsage indicates invalid arguments or usage error
	ExitUsage = 2

	// ExitFatal indicates a critical dialog message terminated the run
	ExitFatal = 9
)

// exitWithCode exits with the specified exit code
func exitWithCode(code int) {
	os.Exit(code)
}

// usageError marks invalid arguments or keys. Commands return it instead
// of exiting so main stays the single exit boundary; it maps to ExitUsage.
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}
