package orchestrate

import (
	"regexp"

	"github.com/blackwell-systems/crossfire/internal/manager"
)

// Version extraction is best-effort pattern matching on free-text
// install output. A failed extraction is a first-class outcome (ok is
// false), never an error: callers substitute a sentinel value.
var (
	pipVersionRe    = regexp.MustCompile(`Successfully installed .* (\S+)-(\d+\.\d+\.\d+)`)
	npmVersionRe    = regexp.MustCompile(`@(\d+\.\d+\.\d+)`)
	genericSemverRe = regexp.MustCompile(`(\d+\.\d+\.\d+)`)
)

// ExtractVersion pulls a version string out of a manager's install
// output using manager-specific pattern rules.
func ExtractVersion(out string, id manager.ID) (string, bool) {
	switch id {
	case manager.Pip:
		if m := pipVersionRe.FindStringSubmatch(out); m != nil {
			return m[2], true
		}
	case manager.Npm:
		if m := npmVersionRe.FindStringSubmatch(out); m != nil {
			return m[1], true
		}
	case manager.Apt, manager.Dnf, manager.Yum:
		if m := genericSemverRe.FindStringSubmatch(out); m != nil {
			return m[1], true
		}
	}
	return "", false
}
