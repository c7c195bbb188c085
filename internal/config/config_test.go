package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFile_MissingFileIsDefaults(t *testing.T) {
	f, err := LoadFile(filepath.Join(t.TempDir(), "config.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if f.DefaultManager != "" || f.SearchLimit != 0 || f.Quiet {
		t.Errorf("expected zero-value defaults, got %+v", f)
	}
}

func TestLoadFile_ParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := "default_manager: brew\nsearch_limit: 50\nquiet: true\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if f.DefaultManager != "brew" {
		t.Errorf("DefaultManager = %q, want brew", f.DefaultManager)
	}
	if f.SearchLimit != 50 {
		t.Errorf("SearchLimit = %d, want 50", f.SearchLimit)
	}
	if !f.Quiet {
		t.Error("Quiet should be true")
	}
}

func TestLoadFile_PartialConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_manager: pip\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	f, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if f.DefaultManager != "pip" || f.SearchLimit != 0 || f.Quiet {
		t.Errorf("partial config = %+v", f)
	}
}

func TestLoadFile_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("default_manager: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Error("expected parse error")
	}
}
