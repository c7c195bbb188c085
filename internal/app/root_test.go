package app

import (
	"os"
	"testing"
)

func TestAllCommandsRegistered(t *testing.T) {
	want := []string{
		"install", "remove", "search", "managers", "list", "stats",
		"doctor", "update", "cleanup", "import", "export", "net",
	}
	have := make(map[string]bool)
	for _, cmd := range RootCmd.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestManagersSubcommands(t *testing.T) {
	for _, cmd := range RootCmd.Commands() {
		if cmd.Name() != "managers" {
			continue
		}
		have := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			have[sub.Name()] = true
		}
		if !have["list"] || !have["install"] {
			t.Errorf("managers subcommands = %v, want list and install", have)
		}
		return
	}
	t.Fatal("managers command not registered")
}

func TestNetSubcommands(t *testing.T) {
	for _, cmd := range RootCmd.Commands() {
		if cmd.Name() != "net" {
			continue
		}
		have := make(map[string]bool)
		for _, sub := range cmd.Commands() {
			have[sub.Name()] = true
		}
		if !have["speed"] || !have["ping"] {
			t.Errorf("net subcommands = %v, want speed and ping", have)
		}
		return
	}
	t.Fatal("net command not registered")
}

func TestReadPackageList(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/requirements.txt"
	body := "# comment\n\ndjango==4.2\n  requests  \n# trailing\nnumpy\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write list: %v", err)
	}

	entries, err := readPackageList(path)
	if err != nil {
		t.Fatalf("readPackageList failed: %v", err)
	}
	want := []string{"django==4.2", "requests", "numpy"}
	if len(entries) != len(want) {
		t.Fatalf("entries = %v, want %v", entries, want)
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("entries[%d] = %q, want %q", i, entries[i], want[i])
		}
	}
}

func TestReadPackageList_MissingFile(t *testing.T) {
	if _, err := readPackageList(t.TempDir() + "/nope.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
