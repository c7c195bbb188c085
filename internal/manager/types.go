package manager

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// ID identifies one of the supported package managers.
type ID int

const (
	Pip ID = iota
	Npm
	Apt
	Dnf
	Yum
	Pacman
	Zypper
	Apk
	Brew
	Choco
	Winget
	Snap
	Flatpak

	numManagers
)

// ErrUnknown is returned by Parse for names outside the supported set.
var ErrUnknown = errors.New("unknown package manager")

// All returns every supported manager ID in declaration order.
func All() []ID {
	ids := make([]ID, 0, numManagers)
	for id := ID(0); id < numManagers; id++ {
		ids = append(ids, id)
	}
	return ids
}

var commandNames = [numManagers]string{
	Pip:     "pip",
	Npm:     "npm",
	Apt:     "apt",
	Dnf:     "dnf",
	Yum:     "yum",
	Pacman:  "pacman",
	Zypper:  "zypper",
	Apk:     "apk",
	Brew:    "brew",
	Choco:   "choco",
	Winget:  "winget",
	Snap:    "snap",
	Flatpak: "flatpak",
}

var humanNames = [numManagers]string{
	Pip:     "Python (pip)",
	Npm:     "Node.js (npm)",
	Apt:     "APT",
	Dnf:     "DNF",
	Yum:     "YUM",
	Pacman:  "Pacman",
	Zypper:  "Zypper",
	Apk:     "APK",
	Brew:    "Homebrew",
	Choco:   "Chocolatey",
	Winget:  "Winget",
	Snap:    "Snap",
	Flatpak: "Flatpak",
}

// String returns the conventional command name (e.g. "pip", "brew").
func (id ID) String() string {
	if id < 0 || id >= numManagers {
		return fmt.Sprintf("manager(%d)", int(id))
	}
	return commandNames[id]
}

// Human returns a display name suitable for user-facing output.
func (id ID) Human() string {
	if id < 0 || id >= numManagers {
		return id.String()
	}
	return humanNames[id]
}

// Parse maps a command name to its ID. Matching is exact on the
// lowercased input, so user-supplied names are case-insensitive.
func Parse(name string) (ID, error) {
	lower := strings.ToLower(name)
	for id := ID(0); id < numManagers; id++ {
		if commandNames[id] == lower {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Availability maps every supported manager to whether its executable
// is currently reachable on PATH. Recomputed per call, never cached.
type Availability map[ID]bool

// Any reports whether at least one manager is available.
func (a Availability) Any() bool {
	for _, ok := range a {
		if ok {
			return true
		}
	}
	return false
}

// Installed returns the available managers in declaration order.
func (a Availability) Installed() []ID {
	var ids []ID
	for id := ID(0); id < numManagers; id++ {
		if a[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// CurrentOS returns a simplified OS family name used for manager
// support checks and ranking: "macos", "windows", "linux" or "unknown".
func CurrentOS() string {
	switch runtime.GOOS {
	case "darwin":
		return "macos"
	case "windows":
		return "windows"
	case "linux":
		return "linux"
	default:
		return "unknown"
	}
}
