package manager

import "strings"

// pythonSpecifiers are version-specifier tokens that only appear in
// Python requirement strings (PEP 508).
var pythonSpecifiers = []string{"==", ">=", "<=", "~=", "!=", "[", "]"}

// pythonPrefixes are well-known Python package name prefixes.
var pythonPrefixes = []string{
	"py", "django", "flask", "numpy", "pandas", "requests",
	"boto3", "tensorflow", "torch",
}

// nodePackages are well-known JS package names matched exactly.
var nodePackages = map[string]bool{
	"express": true, "react": true, "vue": true, "angular": true,
	"typescript": true, "eslint": true, "webpack": true,
	"lodash": true, "axios": true,
}

// LooksLikePythonPackage reports whether a package string matches the
// Python-package heuristics: it contains a version-specifier token or
// starts with a well-known Python package prefix.
func LooksLikePythonPackage(pkg string) bool {
	for _, tok := range pythonSpecifiers {
		if strings.Contains(pkg, tok) {
			return true
		}
	}
	lower := strings.ToLower(pkg)
	for _, prefix := range pythonPrefixes {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

// LooksLikeNodePackage reports whether a package string matches the
// npm-package heuristics: it starts with a scope marker ("@") or is
// exactly a well-known JS package name.
func LooksLikeNodePackage(pkg string) bool {
	if strings.HasPrefix(pkg, "@") {
		return true
	}
	return nodePackages[strings.ToLower(pkg)]
}

// linuxNativeOrder is the probe preference for native Linux managers.
var linuxNativeOrder = []ID{Apt, Dnf, Yum, Pacman, Zypper, Apk}

// Ranker produces the ordered candidate list of managers to try for a
// package. OS is the simplified OS family name; use CurrentOS() outside
// of tests.
type Ranker struct {
	OS string
}

// NewRanker returns a Ranker for the current host OS.
func NewRanker() Ranker {
	return Ranker{OS: CurrentOS()}
}

// systemPriority returns the OS-specific system-manager trial order.
// On Linux the first present native manager is chosen from a fixed
// preference order, followed by the universal managers.
func (r Ranker) systemPriority(avail Availability) []ID {
	switch r.OS {
	case "macos":
		return []ID{Brew, Snap, Flatpak}
	case "windows":
		return []ID{Winget, Choco}
	case "linux":
		for _, id := range linuxNativeOrder {
			if avail[id] {
				return []ID{id, Snap, Flatpak}
			}
		}
		return []ID{Snap, Flatpak}
	}
	return []ID{Snap, Flatpak}
}

// Rank returns the managers to try for pkg, highest priority first.
// The result contains no duplicates, only available managers, and is
// empty when nothing is available. The ordering is deterministic:
// package-family heuristics first, then OS system-manager priority,
// then any remaining available managers in declaration order.
func (r Ranker) Rank(pkg string, avail Availability) []ID {
	var prefs []ID
	seen := make(map[ID]bool, numManagers)
	add := func(id ID) {
		if avail[id] && !seen[id] {
			prefs = append(prefs, id)
			seen[id] = true
		}
	}

	if LooksLikePythonPackage(pkg) {
		add(Pip)
	}
	if LooksLikeNodePackage(pkg) {
		add(Npm)
	}
	for _, id := range r.systemPriority(avail) {
		add(id)
	}
	for id := ID(0); id < numManagers; id++ {
		add(id)
	}
	return prefs
}

// Promote moves id to the front of list, preserving the relative order
// of the remaining entries. The list is returned unchanged when id is
// not present.
func Promote(list []ID, id ID) []ID {
	found := false
	for _, m := range list {
		if m == id {
			found = true
			break
		}
	}
	if !found {
		return list
	}
	out := make([]ID, 0, len(list))
	out = append(out, id)
	for _, m := range list {
		if m != id {
			out = append(out, m)
		}
	}
	return out
}
