package orchestrate

import (
	"context"
	"fmt"
	"time"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/output"
)

// Maintenance runs per-manager update and cache-cleanup command
// sequences. Individual manager failures are reported and never abort
// the remaining managers.
type Maintenance struct {
	Runner  execx.Runner
	Printer *output.Printer

	Detect func() manager.Availability
}

func (m *Maintenance) detect() manager.Availability {
	if m.Detect != nil {
		return m.Detect()
	}
	return manager.Detect()
}

// Outcome is the per-manager result of a maintenance pass.
type Outcome struct {
	Manager string `json:"manager"`
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

// UpdateOne updates a single named manager.
func (m *Maintenance) UpdateOne(ctx context.Context, name string) Outcome {
	id, err := manager.Parse(name)
	if err != nil {
		return Outcome{Manager: name, OK: false, Message: err.Error()}
	}
	if !m.detect()[id] {
		return Outcome{Manager: name, OK: false, Message: id.Human() + " is not installed"}
	}
	return m.update(ctx, id)
}

// UpdateAll updates every available manager in declaration order.
func (m *Maintenance) UpdateAll(ctx context.Context) []Outcome {
	installed := m.detect().Installed()
	if len(installed) == 0 {
		m.Printer.Warnf("No package managers found to update")
		return nil
	}
	m.Printer.Infof("Updating %d package managers...", len(installed))

	var outcomes []Outcome
	progress := m.Printer.Progress(len(installed), "Updating managers")
	for _, id := range installed {
		out := m.update(ctx, id)
		outcomes = append(outcomes, out)
		if out.OK {
			m.Printer.Successf("%s: %s", id.Human(), out.Message)
		} else {
			m.Printer.Warnf("%s: %s", id.Human(), out.Message)
		}
		progress.Increment()
	}
	progress.Finish()
	return outcomes
}

func (m *Maintenance) update(ctx context.Context, id manager.ID) Outcome {
	desc := manager.Lookup(id)
	if desc.UpdateArgs == nil {
		return Outcome{Manager: id.String(), OK: false, Message: "update not supported for " + id.String()}
	}
	if out, ok := m.runSequence(ctx, desc.UpdateArgs(), updateTimeout, "Updating "+desc.Name+"..."); !ok {
		return Outcome{Manager: id.String(), OK: false, Message: out}
	}
	return Outcome{Manager: id.String(), OK: true, Message: "update successful"}
}

// Cleanup clears caches for every available manager that supports it.
func (m *Maintenance) Cleanup(ctx context.Context) []Outcome {
	var outcomes []Outcome
	for _, id := range m.detect().Installed() {
		desc := manager.Lookup(id)
		if desc.CleanArgs == nil {
			continue
		}
		m.Printer.Infof("Cleaning %s caches...", desc.Name)
		if out, ok := m.runSequence(ctx, desc.CleanArgs(), cleanupTimeout, "Cleaning "+desc.Name+" caches..."); !ok {
			outcomes = append(outcomes, Outcome{Manager: id.String(), OK: false, Message: out})
			m.Printer.Warnf("%s cleanup failed: %s", desc.Name, out)
		} else {
			outcomes = append(outcomes, Outcome{Manager: id.String(), OK: true, Message: "cache cleared"})
			m.Printer.Successf("%s cache cleared", desc.Name)
		}
	}
	return outcomes
}

// runSequence executes each argv in order, stopping at the first
// failure. Returns the failure text and false, or "" and true.
func (m *Maintenance) runSequence(ctx context.Context, seq [][]string, timeout time.Duration, msg string) (string, bool) {
	for _, argv := range seq {
		res := m.Runner.Run(ctx, argv, execx.Options{
			Timeout: timeout,
			Spinner: msg,
		})
		if !res.OK {
			out := res.Output()
			if out == "" {
				out = fmt.Sprintf("command exited with code %d", res.ExitCode)
			}
			return out, false
		}
	}
	return "", true
}
