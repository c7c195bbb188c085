package manager

import (
	"reflect"
	"testing"
)

func allAvailable() Availability {
	avail := make(Availability, numManagers)
	for _, id := range All() {
		avail[id] = true
	}
	return avail
}

func availOf(ids ...ID) Availability {
	avail := make(Availability, numManagers)
	for _, id := range All() {
		avail[id] = false
	}
	for _, id := range ids {
		avail[id] = true
	}
	return avail
}

func TestLooksLikePythonPackage(t *testing.T) {
	cases := []struct {
		pkg  string
		want bool
	}{
		{"django==4.2", true},
		{"requests>=2.0", true},
		{"uvicorn[standard]", true},
		{"numpy", true},
		{"pytest", true},
		{"flask-login", true},
		{"boto3", true},
		{"ripgrep", false},
		{"express", false},
		{"htop", false},
	}
	for _, c := range cases {
		if got := LooksLikePythonPackage(c.pkg); got != c.want {
			t.Errorf("LooksLikePythonPackage(%q) = %v, want %v", c.pkg, got, c.want)
		}
	}
}

func TestLooksLikeNodePackage(t *testing.T) {
	cases := []struct {
		pkg  string
		want bool
	}{
		{"@angular/cli", true},
		{"@types/node", true},
		{"express", true},
		{"React", true},
		{"lodash", true},
		{"express-session", false},
		{"django", false},
		{"htop", false},
	}
	for _, c := range cases {
		if got := LooksLikeNodePackage(c.pkg); got != c.want {
			t.Errorf("LooksLikeNodePackage(%q) = %v, want %v", c.pkg, got, c.want)
		}
	}
}

func TestRank_PythonSpecifierPutsPipFirst(t *testing.T) {
	r := Ranker{OS: "linux"}
	got := r.Rank("django==4.2", availOf(Pip, Npm, Apt, Snap))
	want := []ID{Pip, Apt, Snap, Npm}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_ScopedPackagePutsNpmFirst(t *testing.T) {
	r := Ranker{OS: "linux"}
	got := r.Rank("@angular/cli", availOf(Pip, Npm, Apt, Snap))
	want := []ID{Npm, Apt, Snap, Pip}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_MacOSPrefersBrew(t *testing.T) {
	r := Ranker{OS: "macos"}
	got := r.Rank("htop", availOf(Pip, Npm, Brew))
	want := []ID{Brew, Pip, Npm}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_WindowsPrefersWinget(t *testing.T) {
	r := Ranker{OS: "windows"}
	got := r.Rank("htop", availOf(Choco, Winget, Pip))
	want := []ID{Winget, Choco, Pip}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_LinuxUsesFirstNativeManager(t *testing.T) {
	// dnf present but apt absent: dnf is the native choice.
	r := Ranker{OS: "linux"}
	got := r.Rank("htop", availOf(Dnf, Pacman, Snap, Flatpak))
	want := []ID{Dnf, Snap, Flatpak, Pacman}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_LinuxWithoutNativeFallsBackToUniversal(t *testing.T) {
	r := Ranker{OS: "linux"}
	got := r.Rank("htop", availOf(Snap, Flatpak, Pip))
	want := []ID{Snap, Flatpak, Pip}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestRank_EmptyAvailability(t *testing.T) {
	r := Ranker{OS: "linux"}
	if got := r.Rank("anything", availOf()); len(got) != 0 {
		t.Errorf("Rank with nothing available = %v, want empty", got)
	}
}

func TestRank_NoDuplicatesAndOnlyAvailable(t *testing.T) {
	// pyyaml matches the python heuristic AND pip is in the tail sweep;
	// it must appear exactly once.
	r := Ranker{OS: "linux"}
	avail := allAvailable()
	got := r.Rank("pyyaml", avail)

	seen := make(map[ID]bool)
	for _, id := range got {
		if seen[id] {
			t.Errorf("duplicate manager %s in ranking %v", id, got)
		}
		seen[id] = true
		if !avail[id] {
			t.Errorf("unavailable manager %s in ranking %v", id, got)
		}
	}
	if got[0] != Pip {
		t.Errorf("expected pip first for pyyaml, got %v", got)
	}
	if len(got) != len(avail.Installed()) {
		t.Errorf("ranking omitted managers: got %d, want %d", len(got), len(avail.Installed()))
	}
}

func TestRank_UnknownOS(t *testing.T) {
	r := Ranker{OS: "plan9"}
	got := r.Rank("htop", availOf(Snap, Flatpak, Apt))
	want := []ID{Snap, Flatpak, Apt}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank = %v, want %v", got, want)
	}
}

func TestPromote(t *testing.T) {
	list := []ID{Apt, Snap, Pip}

	got := Promote(list, Pip)
	want := []ID{Pip, Apt, Snap}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Promote = %v, want %v", got, want)
	}

	// Absent ID leaves the list unchanged.
	got = Promote(list, Brew)
	if !reflect.DeepEqual(got, list) {
		t.Errorf("Promote of absent ID = %v, want %v", got, list)
	}

	// Already-first ID is a no-op reorder.
	got = Promote([]ID{Pip, Apt}, Pip)
	want = []ID{Pip, Apt}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Promote of first ID = %v, want %v", got, want)
	}
}
