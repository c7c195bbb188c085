package manager

import "os/exec"

// lookPath is swapped out in tests so detection does not depend on the
// host machine.
var lookPath = exec.LookPath

// pythonProbes are runtime aliases that may provide pip. Availability of
// pip is an OR over these, not a single binary check.
var pythonProbes = []string{"python3", "python", "py"}

// pythonArgv returns the argv prefix for invoking the Python runtime,
// preferring the first alias found on PATH. Falls back to "python3" so
// command construction never fails outright; the run itself will report
// the missing binary.
func pythonArgv() []string {
	for _, probe := range pythonProbes {
		if _, err := lookPath(probe); err == nil {
			return []string{probe}
		}
	}
	return []string{"python3"}
}

// Detect probes PATH for every supported manager and returns a fresh
// availability map with exactly one entry per manager. It performs PATH
// lookups only, never spawns subprocesses, and is cheap to call
// repeatedly; results are intentionally not cached because the
// environment can change between invocations.
func Detect() Availability {
	avail := make(Availability, numManagers)
	for id := ID(0); id < numManagers; id++ {
		if id == Pip {
			found := false
			for _, probe := range pythonProbes {
				if _, err := lookPath(probe); err == nil {
					found = true
					break
				}
			}
			avail[id] = found
			continue
		}
		_, err := lookPath(id.String())
		avail[id] = err == nil
	}
	return avail
}
