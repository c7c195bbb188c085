package manager

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	for _, id := range All() {
		got, err := Parse(id.String())
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", id.String(), err)
			continue
		}
		if got != id {
			t.Errorf("Parse(%q) = %v, want %v", id.String(), got, id)
		}
	}
}

func TestParse_CaseInsensitive(t *testing.T) {
	cases := []struct {
		name string
		want ID
	}{
		{"PIP", Pip},
		{"Brew", Brew},
		{"WinGet", Winget},
		{"FLATPAK", Flatpak},
	}
	for _, c := range cases {
		got, err := Parse(c.name)
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", c.name, err)
			continue
		}
		if got != c.want {
			t.Errorf("Parse(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestParse_Unknown(t *testing.T) {
	for _, name := range []string{"", "cargo", "apt-get"} {
		if _, err := Parse(name); !errors.Is(err, ErrUnknown) {
			t.Errorf("Parse(%q) error = %v, want ErrUnknown", name, err)
		}
	}
}

func TestRegistry_EveryManagerIsComplete(t *testing.T) {
	for _, id := range All() {
		desc := Lookup(id)
		if desc.ID != id {
			t.Errorf("%s: descriptor ID mismatch: %v", id, desc.ID)
		}
		if desc.Name == "" {
			t.Errorf("%s: missing display name", id)
		}
		if len(desc.OS) == 0 {
			t.Errorf("%s: no supported OS listed", id)
		}
		if desc.InstallArgs == nil {
			t.Errorf("%s: missing InstallArgs", id)
		} else if argv := desc.InstallArgs("pkg"); len(argv) == 0 {
			t.Errorf("%s: empty install argv", id)
		}
		if desc.SearchKind == SearchCLI && desc.SearchArgs == nil {
			t.Errorf("%s: CLI search without SearchArgs", id)
		}
		if desc.BootstrapHint == "" {
			t.Errorf("%s: missing bootstrap hint", id)
		}
	}
}

func TestRegistry_RemovalSupport(t *testing.T) {
	// These managers are install-only through this tool.
	noRemove := map[ID]bool{Zypper: true, Apk: true, Choco: true, Winget: true}
	for _, id := range All() {
		desc := Lookup(id)
		if noRemove[id] {
			if desc.RemoveArgs != nil {
				t.Errorf("%s: unexpected RemoveArgs", id)
			}
			continue
		}
		if desc.RemoveArgs == nil {
			t.Errorf("%s: missing RemoveArgs", id)
			continue
		}
		argv := desc.RemoveArgs("pkg")
		if !contains(argv, "pkg") {
			t.Errorf("%s: removal argv %v does not name the package", id, argv)
		}
	}
}

func TestRegistry_InstallArgvNamesPackage(t *testing.T) {
	for _, id := range All() {
		argv := Lookup(id).InstallArgs("ripgrep")
		if !contains(argv, "ripgrep") {
			t.Errorf("%s: install argv %v does not name the package", id, argv)
		}
	}
}

func TestRegistry_LinuxNativeManagersUseSudo(t *testing.T) {
	for _, id := range []ID{Apt, Dnf, Yum, Pacman, Zypper, Apk, Snap} {
		argv := Lookup(id).InstallArgs("pkg")
		if argv[0] != "sudo" {
			t.Errorf("%s: install argv %v does not start with sudo", id, argv)
		}
	}
}

func TestRegistry_BootstrapArgs(t *testing.T) {
	scripted := map[ID]bool{Pip: true, Snap: true, Flatpak: true}
	for _, id := range All() {
		got := Lookup(id).BootstrapArgs != nil
		if got != scripted[id] {
			t.Errorf("%s: BootstrapArgs present = %v, want %v", id, got, scripted[id])
		}
	}
}

func TestSupportsOS(t *testing.T) {
	if !Lookup(Brew).SupportsOS("macos") || !Lookup(Brew).SupportsOS("linux") {
		t.Error("brew should support macos and linux")
	}
	if Lookup(Brew).SupportsOS("windows") {
		t.Error("brew should not support windows")
	}
	if !Lookup(Winget).SupportsOS("windows") {
		t.Error("winget should support windows")
	}
	if Lookup(Apt).SupportsOS("macos") {
		t.Error("apt should not support macos")
	}
}

func TestHumanNames(t *testing.T) {
	if got := Pip.Human(); !strings.Contains(got, "pip") {
		t.Errorf("Pip.Human() = %q", got)
	}
	if got := ID(99).String(); got != "manager(99)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}

func contains(argv []string, want string) bool {
	for _, a := range argv {
		if a == want {
			return true
		}
	}
	return false
}
