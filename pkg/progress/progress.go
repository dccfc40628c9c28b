// Package progress draws a one-line spinner while the CLI waits on the host.
package progress

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

var frames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spinner writes frames to its writer until stopped. A disabled spinner
// does nothing, so callers can start one unconditionally.
type Spinner struct {
	mu       sync.Mutex
	writer   io.Writer
	message  string
	interval time.Duration
	enabled  bool
	running  bool
	stop     chan struct{}
	done     chan struct{}
}

// NewSpinner returns a spinner on stderr, enabled only when stderr is a
// terminal.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		writer:   os.Stderr,
		message:  message,
		interval: 80 * time.Millisecond,
		enabled:  isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()),
	}
}

// SetWriter sets a custom writer and enables the spinner (used in tests)
func (s *Spinner) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writer = w
	s.enabled = true
}

// Disable turns the spinner into a no-op.
func (s *Spinner) Disable() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.enabled = false
}

func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.enabled || s.running {
		return
	}
	s.running = true
	s.stop = make(chan struct{})
	s.done = make(chan struct{})
	go s.loop(s.stop, s.done)
}

// Stop halts the spinner and clears its line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	close(s.stop)
	done := s.done
	s.mu.Unlock()

	<-done
	fmt.Fprint(s.writer, "\r\033[K")
}

func (s *Spinner) loop(stop, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		fmt.Fprintf(s.writer, "\r%s %s", frames[i%len(frames)], s.message)
		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}
