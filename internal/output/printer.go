package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
)

// ANSI color codes for console output.
const (
	colorReset  = "\033[0m"
	colorBlue   = "\033[94m"
	colorGreen  = "\033[92m"
	colorYellow = "\033[93m"
	colorRed    = "\033[91m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[96m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// Printer writes leveled, optionally colored console output. It replaces
// ambient global logging state: construct one from the CLI flags and pass
// it into each component.
//
// In JSON mode all human-readable output is suppressed so that stdout
// carries only the structured document. Quiet mode suppresses everything
// below error level.
type Printer struct {
	Out     io.Writer
	Quiet   bool
	Verbose bool
	JSON    bool

	color bool
	mu    sync.Mutex
}

// NewPrinter builds a Printer writing to stdout with color auto-detection.
func NewPrinter(quiet, verbose, jsonMode bool) *Printer {
	return &Printer{
		Out:     os.Stdout,
		Quiet:   quiet,
		Verbose: verbose,
		JSON:    jsonMode,
		color:   IsColorEnabled(),
	}
}

// print is safe for concurrent use; search tasks log from the pool.
func (p *Printer) print(color, format string, args ...any) {
	if p == nil || p.JSON {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	msg := fmt.Sprintf(format, args...)
	if p.color && color != "" {
		fmt.Fprintf(p.Out, "%s%s%s\n", color, msg, colorReset)
		return
	}
	fmt.Fprintln(p.Out, msg)
}

// Infof prints an informational line. Suppressed in quiet mode.
func (p *Printer) Infof(format string, args ...any) {
	if p != nil && p.Quiet {
		return
	}
	p.print(colorBlue, format, args...)
}

// Successf prints a success line. Suppressed in quiet mode.
func (p *Printer) Successf(format string, args ...any) {
	if p != nil && p.Quiet {
		return
	}
	p.print(colorGreen, format, args...)
}

// Warnf prints a warning line. Suppressed in quiet mode.
func (p *Printer) Warnf(format string, args ...any) {
	if p != nil && p.Quiet {
		return
	}
	p.print(colorYellow, format, args...)
}

// Errorf prints an error line. Never suppressed by quiet mode.
func (p *Printer) Errorf(format string, args ...any) {
	p.print(colorRed, format, args...)
}

// Mutedf prints a de-emphasized line. Suppressed in quiet mode.
func (p *Printer) Mutedf(format string, args ...any) {
	if p != nil && p.Quiet {
		return
	}
	p.print(colorGray, format, args...)
}

// Headerf prints a section header line. Suppressed in quiet mode.
func (p *Printer) Headerf(format string, args ...any) {
	if p != nil && p.Quiet {
		return
	}
	p.print(colorCyan, format, args...)
}

// Verbosef prints only when verbose output was requested.
func (p *Printer) Verbosef(format string, args ...any) {
	if p == nil || !p.Verbose {
		return
	}
	p.print(colorGray, format, args...)
}

// Progress returns a progress bar that follows the printer's output
// rules: in quiet or JSON mode the bar is silenced so stdout carries
// only the structured document.
func (p *Printer) Progress(total int, description string) *ProgressBar {
	bar := NewProgress(total, description)
	if p == nil || p.Quiet || p.JSON {
		bar.SetWriter(io.Discard)
	}
	return bar
}
