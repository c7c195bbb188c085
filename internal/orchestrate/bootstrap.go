package orchestrate

import (
	"context"
	"errors"
	"fmt"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/output"
)

// ErrUnsupported means a bootstrap was requested for a manager the
// registry or current OS does not support.
var ErrUnsupported = errors.New("manager not supported")

// Bootstrapper installs a package manager itself when the registry
// provides a scripted bootstrap command for the current OS.
type Bootstrapper struct {
	Runner  execx.Runner
	Printer *output.Printer
	OS      string

	// Detect recomputes manager availability; defaults to
	// manager.Detect when nil.
	Detect func() manager.Availability
}

func (b *Bootstrapper) detect() manager.Availability {
	if b.Detect != nil {
		return b.Detect()
	}
	return manager.Detect()
}

// InstallManager installs the named manager. Already-available managers
// are a successful no-op. Managers without a scripted bootstrap print
// their manual instructions and return false with a nil error: a
// deliberate terminal state, not a failure to retry.
func (b *Bootstrapper) InstallManager(ctx context.Context, name string) (bool, error) {
	id, err := manager.Parse(name)
	if err != nil {
		return false, fmt.Errorf("%w: %q", ErrUnsupported, name)
	}

	desc := manager.Lookup(id)
	if !desc.SupportsOS(b.OS) {
		return false, fmt.Errorf("%w: %s is not supported on this OS (%s)", ErrUnsupported, id, b.OS)
	}

	if b.detect()[id] {
		b.Printer.Successf("%s is already installed.", id.Human())
		return true, nil
	}

	if desc.BootstrapArgs == nil {
		b.Printer.Warnf("Manual installation required for %s:", id.Human())
		b.Printer.Infof("  %s", desc.BootstrapHint)
		return false, nil
	}

	b.Printer.Infof("Installing %s...", id.Human())
	res := b.Runner.Run(ctx, desc.BootstrapArgs(), execx.Options{
		Timeout: bootstrapTimeout,
		Spinner: "Installing " + id.Human() + "...",
	})
	if !res.OK {
		b.Printer.Errorf("Failed to install %s: %s", id.Human(), res.Output())
		return false, nil
	}
	b.Printer.Successf("Successfully installed %s", id.Human())
	return true, nil
}
