// Package orchestrate drives install and remove attempts across the
// ranked candidate managers: strictly sequential, stop at first
// success, every attempt captured for the caller.
package orchestrate

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/output"
	"github.com/blackwell-systems/crossfire/internal/store"
)

const (
	// Installs can legitimately take minutes; searches take seconds.
	installTimeout   = 30 * time.Minute
	removeTimeout    = 10 * time.Minute
	bootstrapTimeout = 15 * time.Minute
	updateTimeout    = 20 * time.Minute
	cleanupTimeout   = 5 * time.Minute
)

var (
	// ErrNoManagers means zero managers were detected at all.
	ErrNoManagers = errors.New("no supported package managers are available on this system")
	// ErrNoCandidates means managers exist but none qualify for the
	// requested operation.
	ErrNoCandidates = errors.New("no package managers available for this operation")
)

// Attempt captures one orchestration attempt against one manager.
// Attempts are append-only and ordered by candidate priority.
type Attempt struct {
	Manager manager.ID   `json:"-"`
	Name    string       `json:"manager"`
	Result  execx.Result `json:"result"`
}

// Installer coordinates install and remove operations. All
// dependencies are explicit; there is no ambient state.
type Installer struct {
	Runner  execx.Runner
	Store   *store.Store
	Ranker  manager.Ranker
	Printer *output.Printer

	// Detect recomputes manager availability; defaults to
	// manager.Detect when nil.
	Detect func() manager.Availability
}

func (in *Installer) detect() manager.Availability {
	if in.Detect != nil {
		return in.Detect()
	}
	return manager.Detect()
}

func newAttempt(id manager.ID, res execx.Result) Attempt {
	return Attempt{Manager: id, Name: id.String(), Result: res}
}

// Install tries each ranked candidate manager in turn until one
// succeeds. preferred, when non-empty, names a manager to move to the
// front of the candidate list; an unknown or unavailable preference is
// reported as a warning and the ranked order is used unchanged.
//
// The bool reports overall success; the attempts slice records every
// manager tried, in order, including the successful one.
func (in *Installer) Install(ctx context.Context, pkg, preferred string) (bool, []Attempt) {
	in.Printer.Infof("Preparing to install: %s", pkg)

	avail := in.detect()
	if !avail.Any() {
		in.Printer.Errorf("%v", ErrNoManagers)
		return false, nil
	}

	candidates := in.Ranker.Rank(pkg, avail)
	if preferred != "" {
		if id, err := manager.Parse(preferred); err == nil && avail[id] && manager.Lookup(id).InstallArgs != nil {
			candidates = manager.Promote(candidates, id)
		} else {
			names := make([]string, 0, len(candidates))
			for _, m := range avail.Installed() {
				names = append(names, m.String())
			}
			in.Printer.Warnf("Warning: manager %q not available. Available: %s",
				preferred, strings.Join(names, ", "))
		}
	}
	if len(candidates) == 0 {
		in.Printer.Errorf("%v", ErrNoCandidates)
		return false, nil
	}

	in.Printer.Headerf("Installation plan:")
	for i, id := range candidates {
		in.Printer.Mutedf("  %d. %s", i+1, id.Human())
	}

	var attempts []Attempt
	for i, id := range candidates {
		desc := manager.Lookup(id)
		argv := desc.InstallArgs(pkg)
		in.Printer.Infof("Attempt %d/%d: installing via %s...", i+1, len(candidates), desc.Name)

		res := in.Runner.Run(ctx, argv, execx.Options{
			Timeout: installTimeout,
			Spinner: "Installing " + pkg + " via " + desc.Name + "...",
		})
		attempts = append(attempts, newAttempt(id, res))

		if !res.OK {
			in.reportFailure(desc.Name, res)
			continue
		}

		version, ok := ExtractVersion(res.Stdout, id)
		if !ok {
			version = "installed"
		}
		if in.Store != nil {
			if err := in.Store.Add(pkg, version, id.String(), strings.Join(argv, " ")); err != nil {
				in.Printer.Warnf("Installed, but failed to record %s: %v", pkg, err)
			}
		}
		in.Printer.Successf("Successfully installed %q via %s", pkg, desc.Name)
		return true, attempts
	}

	in.Printer.Errorf("Failed to install %q with all available managers.", pkg)
	return false, attempts
}

// Remove uninstalls a package. When mgrName is supplied it is the ONLY
// candidate tried: an unavailable or removal-incapable explicit manager
// fails immediately with zero attempts, unlike Install's lenient
// preferred-manager fallback. With no manager the ranked candidate list
// is used, filtered to managers that support removal.
func (in *Installer) Remove(ctx context.Context, pkg, mgrName string) (bool, []Attempt) {
	in.Printer.Infof("Preparing to remove: %s", pkg)

	avail := in.detect()
	if !avail.Any() {
		in.Printer.Errorf("%v", ErrNoManagers)
		return false, nil
	}

	var candidates []manager.ID
	if mgrName != "" {
		id, err := manager.Parse(mgrName)
		if err != nil || !avail[id] || manager.Lookup(id).RemoveArgs == nil {
			in.Printer.Errorf("Manager %q not available for package removal", mgrName)
			return false, nil
		}
		candidates = []manager.ID{id}
	} else {
		for _, id := range in.Ranker.Rank(pkg, avail) {
			if manager.Lookup(id).RemoveArgs != nil {
				candidates = append(candidates, id)
			}
		}
	}
	if len(candidates) == 0 {
		in.Printer.Errorf("%v", ErrNoCandidates)
		return false, nil
	}

	var attempts []Attempt
	for _, id := range candidates {
		desc := manager.Lookup(id)
		argv := desc.RemoveArgs(pkg)
		in.Printer.Infof("Attempting removal via %s...", desc.Name)

		res := in.Runner.Run(ctx, argv, execx.Options{
			Timeout: removeTimeout,
			Spinner: "Removing " + pkg + " via " + desc.Name + "...",
		})
		attempts = append(attempts, newAttempt(id, res))

		if !res.OK {
			in.reportFailure(desc.Name, res)
			continue
		}

		if in.Store != nil {
			if err := in.Store.Remove(pkg, id.String()); err != nil {
				in.Printer.Warnf("Removed, but failed to delete record for %s: %v", pkg, err)
			}
		}
		in.Printer.Successf("Removed %q via %s", pkg, desc.Name)
		return true, attempts
	}

	in.Printer.Errorf("Failed to remove %q with all available managers.", pkg)
	return false, attempts
}

// reportFailure surfaces the most relevant line of a failed attempt.
func (in *Installer) reportFailure(name string, res execx.Result) {
	msg := res.Output()
	if msg == "" {
		in.Printer.Warnf("%s failed with no error message", name)
		return
	}
	lines := strings.Split(msg, "\n")
	last := strings.TrimSpace(lines[len(lines)-1])
	if len(last) > 180 {
		last = last[:177] + "..."
	}
	in.Printer.Warnf("%s failed: %s", name, last)
}
