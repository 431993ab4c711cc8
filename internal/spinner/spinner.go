// Package spinner provides a terminal progress indicator for long scoring runs.
package spinner

import (
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"
)

// Spinner animates a message on one terminal line until stopped.
type Spinner struct {
	frames  []string
	delay   time.Duration
	writer  io.Writer
	message string
	active  bool
	mu      sync.RWMutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
}

// New creates a spinner that writes to w.
func New(w io.Writer, message string) *Spinner {
	return &Spinner{
		frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		delay:   100 * time.Millisecond,
		writer:  w,
		message: message,
	}
}

// Start begins the animation. ctx cancellation stops the spinner goroutine.
// Starting an active spinner is a no-op.
func (s *Spinner) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.active {
		return
	}
	s.active = true

	spinCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(spinCtx)
}

// Stop halts the animation and clears the line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.active = false
	s.cancel()
	s.mu.Unlock()

	s.wg.Wait()

	// clear the line only when actually writing to a terminal
	if f, ok := s.writer.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(s.writer, "\r\033[2K")
	} else {
		fmt.Fprint(s.writer, "\r")
	}
}

// IsActive reports whether the spinner is currently running.
func (s *Spinner) IsActive() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.active
}

// SetMessage replaces the message shown next to the spinner.
func (s *Spinner) SetMessage(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.message = message
}

// SetProgress renders a done/total count after the message, e.g.
// "Scoring documents (40/120)".
func (s *Spinner) SetProgress(message string, done, total int) {
	s.SetMessage(fmt.Sprintf("%s (%d/%d)", message, done, total))
}

func (s *Spinner) run(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.delay)
	defer ticker.Stop()

	frame := 0
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.mu.RLock()
			glyph := s.frames[frame%len(s.frames)]
			message := s.message
			s.mu.RUnlock()

			fmt.Fprintf(s.writer, "\r%s %s", glyph, message)
			frame++
		}
	}
}
