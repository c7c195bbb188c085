// Package execx runs external package-manager commands with bounded
// timeouts, optional retries, and progress indication. The orchestration
// layer treats its Result as opaque data.
package execx

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/blackwell-systems/crossfire/internal/output"
)

// Result captures the outcome of one external command.
type Result struct {
	OK       bool   `json:"ok"`
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
	// TimedOut distinguishes a timeout from an ordinary nonzero exit.
	TimedOut bool `json:"timed_out,omitempty"`
}

// Output returns stderr if present, otherwise stdout, trimmed. Useful
// for surfacing the most relevant failure text.
func (r Result) Output() string {
	if s := strings.TrimSpace(r.Stderr); s != "" {
		return s
	}
	return strings.TrimSpace(r.Stdout)
}

// Options control a single Run call.
type Options struct {
	// Timeout bounds the whole command; exceeding it kills the process
	// and reports a timeout-flavored failure. Zero means no bound
	// beyond the caller's context.
	Timeout time.Duration
	// Retries re-runs the command when it could not be started at all
	// (binary missing, fork failure). A command that ran and exited
	// nonzero is never retried here; fallback across managers is the
	// orchestrator's job.
	Retries int
	// Dir is the working directory; empty means inherit.
	Dir string
	// Spinner, when non-empty and stdout is a TTY, shows an animated
	// indicator with this message while the command runs. Cosmetic.
	Spinner string
}

// Runner executes external commands. The concrete implementation is
// Exec; tests substitute a Stub.
type Runner interface {
	Run(ctx context.Context, argv []string, opts Options) Result
}

const retryDelay = 2 * time.Second

// Exec is the real Runner backed by os/exec.
type Exec struct {
	// Quiet disables the progress spinner regardless of Options.
	Quiet bool
}

// Run executes argv and blocks until the process exits or the timeout
// elapses. It never returns an error: every failure mode is folded into
// the Result so callers can record it as attempt data.
func (e *Exec) Run(ctx context.Context, argv []string, opts Options) Result {
	if len(argv) == 0 {
		return Result{ExitCode: -1, Stderr: "empty command"}
	}

	for attempt := 0; ; attempt++ {
		res, startErr := e.runOnce(ctx, argv, opts)
		if !startErr || attempt >= opts.Retries {
			return res
		}
		time.Sleep(retryDelay)
	}
}

// runOnce reports startErr=true only when the process could not be
// spawned, which is the sole retryable condition.
func (e *Exec) runOnce(ctx context.Context, argv []string, opts Options) (Result, bool) {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = opts.Dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Spinner != "" && !e.Quiet {
		sp := output.NewSpinner(opts.Spinner)
		sp.Start()
		defer sp.Stop()
	}

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	switch {
	case err == nil:
		res.OK = true
		return res, false
	case ctx.Err() == context.DeadlineExceeded:
		res.ExitCode = -1
		res.TimedOut = true
		res.Stderr = fmt.Sprintf("command timed out after %s", opts.Timeout)
		return res, false
	default:
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, false
		}
		// The process never started (e.g. binary not found).
		res.ExitCode = -1
		res.Stderr = err.Error()
		return res, true
	}
}
