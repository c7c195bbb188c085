package execx

import (
	"context"
	"sync"
)

// Stub is a Runner test double. Respond maps an argv to its canned
// Result; when nil, every call succeeds with empty output. Calls are
// recorded in order and safe for concurrent use.
type Stub struct {
	Respond func(argv []string) Result

	mu    sync.Mutex
	calls [][]string
}

// Run records the call and returns the canned result.
func (s *Stub) Run(ctx context.Context, argv []string, opts Options) Result {
	s.mu.Lock()
	cp := make([]string, len(argv))
	copy(cp, argv)
	s.calls = append(s.calls, cp)
	s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return Result{ExitCode: -1, Stderr: err.Error(), TimedOut: err == context.DeadlineExceeded}
	}
	if s.Respond != nil {
		return s.Respond(argv)
	}
	return Result{OK: true}
}

// Calls returns a copy of every argv Run has seen, in order.
func (s *Stub) Calls() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.calls))
	copy(out, s.calls)
	return out
}
