package progress

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

var spinnerFrames = [...]byte{'|', '/', '-', '\\'}

// Spinner reports activity for computations with no known step count,
// the indeterminate counterpart to Reporter. On a terminal it animates a
// single line in place; otherwise each message is printed once on its
// own line. A stopped spinner can be started again.
//
// Unlike the rest of the package, the spinner animates from a goroutine
// and therefore guards its state with a mutex.
type Spinner struct {
	out      io.Writer
	interval time.Duration
	show     bool

	mu      sync.Mutex
	message string
	width   int
	done    chan struct{}
	wg      sync.WaitGroup
}

// SpinnerOption configures a Spinner.
type SpinnerOption func(*Spinner)

// WithSpinnerWriter directs output to w instead of os.Stderr.
func WithSpinnerWriter(w io.Writer) SpinnerOption {
	return func(s *Spinner) { s.out = w }
}

// WithInterval sets the time between animation frames.
// Values below 1ms are ignored.
func WithInterval(d time.Duration) SpinnerOption {
	return func(s *Spinner) {
		if d >= time.Millisecond {
			s.interval = d
		}
	}
}

// NewSpinner creates a spinner. Terminal detection happens here, once.
func NewSpinner(opts ...SpinnerOption) *Spinner {
	s := &Spinner{
		out:      os.Stderr,
		interval: 100 * time.Millisecond,
		show:     ShouldShowProgress(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins reporting with the given message. Starting an already
// running spinner only replaces the message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	s.message = message
	if s.done != nil {
		s.mu.Unlock()
		return
	}
	done := make(chan struct{})
	s.done = done
	s.mu.Unlock()

	if !s.show {
		fmt.Fprintln(s.out, message)
		return
	}
	s.wg.Add(1)
	go s.animate(done)
}

// SetMessage replaces the message of a running spinner. Without a
// terminal the new message is printed on its own line.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	running := s.done != nil
	s.message = message
	s.mu.Unlock()

	if running && !s.show {
		fmt.Fprintln(s.out, message)
	}
}

// Stop ends the animation and clears the spinner line. A non-empty
// final message is printed in its place. Stopping a spinner that is not
// running is a no-op.
func (s *Spinner) Stop(final string) {
	s.mu.Lock()
	done := s.done
	s.done = nil
	s.mu.Unlock()
	if done == nil {
		return
	}

	close(done)
	s.wg.Wait()

	if s.show && s.width > 0 {
		fmt.Fprintf(s.out, "\r%s\r", strings.Repeat(" ", s.width))
		s.width = 0
	}
	if final != "" {
		fmt.Fprintln(s.out, final)
	}
}

// animate redraws the spinner line until done is closed. The rendered
// width is tracked so Stop can blank the full line.
func (s *Spinner) animate(done <-chan struct{}) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for frame := 0; ; frame++ {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.mu.Lock()
			msg := s.message
			s.mu.Unlock()

			n, _ := fmt.Fprintf(s.out, "\r%c %s", spinnerFrames[frame%len(spinnerFrames)], msg)
			if n > s.width {
				s.width = n
			}
		}
	}
}
