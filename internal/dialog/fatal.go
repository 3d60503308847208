package dialog

// FatalError is the unrecoverable outcome of Critical. It unwinds to a
// single top-level boundary (the command entry point) that performs the
// actual process termination; the core never exits by itself, which keeps
// everything below the boundary testable.
type FatalError struct {
	Message string
}

func (e *FatalError) Error() string {
	return e.Message
}
