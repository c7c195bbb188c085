package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
)

// writerIsTTY returns true if the given writer exposes an Fd() method
// (e.g. *os.File) and that fd is a terminal. Falls back to false for
// plain io.Writer values such as *bytes.Buffer.
func writerIsTTY(w io.Writer) bool {
	type fder interface {
		Fd() uintptr
	}
	if f, ok := w.(fder); ok {
		return isatty.IsTerminal(f.Fd())
	}
	return false
}

// ProgressBar displays a progress bar with percentage and description.
// Example: [=========>          ] 45% Searching repositories
type ProgressBar struct {
	total       int
	current     int
	description string
	width       int
	mu          sync.Mutex
	writer      io.Writer
}

// NewProgress creates a new progress bar.
func NewProgress(total int, description string) *ProgressBar {
	return &ProgressBar{
		total:       total,
		description: description,
		width:       40,
		writer:      os.Stdout,
	}
}

// SetWriter sets the output writer (useful for testing).
func (p *ProgressBar) SetWriter(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.writer = w
}

// Increment advances the progress by 1 and redraws the bar.
func (p *ProgressBar) Increment() {
	p.IncrementBy(1)
}

// IncrementBy advances the progress by n and redraws the bar.
func (p *ProgressBar) IncrementBy(n int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current += n
	if p.current > p.total {
		p.current = p.total
	}
	p.render()
}

// Finish completes the progress bar and moves to a new line.
func (p *ProgressBar) Finish() {
	p.mu.Lock()
	defer p.mu.Unlock()

	alreadyDone := p.current == p.total
	p.current = p.total

	if writerIsTTY(p.writer) {
		p.render()
		fmt.Fprintln(p.writer)
	} else if !alreadyDone {
		// Non-TTY render emits a line only on completion; skip the
		// re-render when the last increment already printed it.
		p.render()
	}
}

// render draws the progress bar (must be called with lock held).
func (p *ProgressBar) render() {
	percentage := 0
	filled := 0
	if p.total > 0 {
		percentage = (p.current * 100) / p.total
		filled = (p.current * p.width) / p.total
	}

	var bar strings.Builder
	bar.WriteString("[")
	for i := 0; i < p.width; i++ {
		switch {
		case i < filled-1:
			bar.WriteString("=")
		case i == filled-1:
			bar.WriteString(">")
		default:
			bar.WriteString(" ")
		}
	}
	bar.WriteString("]")

	if writerIsTTY(p.writer) {
		fmt.Fprintf(p.writer, "\r%s %3d%% %s", bar.String(), percentage, p.description)
	} else if p.current == p.total {
		// Non-TTY: only emit output on completion to avoid duplicate lines.
		fmt.Fprintf(p.writer, "%s %3d%% %s\n", bar.String(), percentage, p.description)
	}
}

// Spinner displays an animated spinner with a message while an external
// command or download is running.
// Example: |  Installing via Homebrew...
type Spinner struct {
	message string
	running bool
	chars   []string
	mu      sync.Mutex
	writer  io.Writer
	ticker  *time.Ticker
	done    chan struct{}
}

// NewSpinner creates a new spinner with a message. If stdout is not a
// TTY, the animation goroutine is skipped and the message is printed
// once so that log output is not cluttered.
func NewSpinner(message string) *Spinner {
	return &Spinner{
		message: message,
		chars:   []string{"|", "/", "-", "\\"},
		writer:  os.Stdout,
		done:    make(chan struct{}),
	}
}

// SetWriter sets the output writer (useful for testing).
func (s *Spinner) SetWriter(w io.Writer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.writer = w
}

// Start begins the spinner animation. On a non-TTY writer the message
// is printed once instead.
func (s *Spinner) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return
	}
	s.running = true

	if !writerIsTTY(s.writer) {
		fmt.Fprintln(s.writer, s.message)
		return
	}

	s.ticker = time.NewTicker(100 * time.Millisecond)
	go func() {
		i := 0
		for {
			select {
			case <-s.done:
				return
			case <-s.ticker.C:
				s.mu.Lock()
				fmt.Fprintf(s.writer, "\r%s  %s", s.chars[i%len(s.chars)], s.message)
				s.mu.Unlock()
				i++
			}
		}
	}()
}

// Stop halts the animation and clears the spinner line.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return
	}
	s.running = false

	if s.ticker != nil {
		s.ticker.Stop()
		close(s.done)
		fmt.Fprintf(s.writer, "\r%s\r", strings.Repeat(" ", len(s.message)+4))
	}
}
