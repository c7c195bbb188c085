package output

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/blackwell-systems/crossfire/internal/store"
)

func TestPrinter_Levels(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	p.Infof("info %d", 1)
	p.Successf("success")
	p.Warnf("warn")
	p.Errorf("error")
	p.Verbosef("hidden")

	out := buf.String()
	for _, want := range []string{"info 1", "success", "warn", "error"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Error("verbose line printed without verbose mode")
	}
}

func TestPrinter_QuietSuppressesAllButErrors(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Quiet: true}

	p.Infof("info")
	p.Successf("success")
	p.Warnf("warn")
	p.Mutedf("muted")
	p.Headerf("header")
	p.Errorf("error")

	out := buf.String()
	if strings.TrimSpace(out) != "error" {
		t.Errorf("quiet output = %q, want only the error line", out)
	}
}

func TestPrinter_JSONModeSuppressesEverything(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, JSON: true}

	p.Infof("info")
	p.Errorf("error")

	if buf.Len() != 0 {
		t.Errorf("JSON mode printed: %q", buf.String())
	}
}

func TestPrinter_VerboseMode(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf, Verbose: true}

	p.Verbosef("detail")
	if !strings.Contains(buf.String(), "detail") {
		t.Error("verbose line missing")
	}
}

func TestPrinter_NilIsSafe(t *testing.T) {
	var p *Printer
	p.Infof("no panic")
	p.Errorf("no panic")
}

func TestPrinter_ConcurrentUse(t *testing.T) {
	var buf bytes.Buffer
	p := &Printer{Out: &buf}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.Infof("line")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 20 {
		t.Errorf("expected 20 intact lines, got %d", len(lines))
	}
}

func TestPrinterProgress_SilencedInJSONMode(t *testing.T) {
	p := &Printer{JSON: true}
	bar := p.Progress(2, "work")

	if bar.writer == nil {
		t.Fatal("bar has no writer")
	}
	if _, ok := bar.writer.(interface{ Fd() uintptr }); ok {
		t.Error("JSON-mode progress bar still writes to a file descriptor")
	}
	// Exercising the bar must not panic on the discarded writer.
	bar.IncrementBy(2)
	bar.Finish()
}

func TestPrinterProgress_SilencedInQuietMode(t *testing.T) {
	p := &Printer{Quiet: true}
	bar := p.Progress(1, "work")
	if _, ok := bar.writer.(interface{ Fd() uintptr }); ok {
		t.Error("quiet-mode progress bar still writes to a file descriptor")
	}
}

func TestPrinterProgress_NormalModeWritesToStdout(t *testing.T) {
	p := &Printer{}
	bar := p.Progress(1, "work")
	if _, ok := bar.writer.(interface{ Fd() uintptr }); !ok {
		t.Error("normal-mode progress bar lost its stdout writer")
	}
}

func TestRenderManagerTable(t *testing.T) {
	out := RenderManagerTable([]ManagerStatus{
		{Name: "Homebrew", Command: "brew", Available: true},
		{Name: "APT", Command: "apt", Available: false},
	})
	if !strings.Contains(out, "Homebrew") || !strings.Contains(out, "installed") {
		t.Errorf("table missing rows: %s", out)
	}
	if !strings.Contains(out, "not installed") {
		t.Errorf("table missing unavailable status: %s", out)
	}
}

func TestRenderPackageTable(t *testing.T) {
	if out := RenderPackageTable(nil); !strings.Contains(out, "No packages") {
		t.Errorf("empty table = %q", out)
	}

	out := RenderPackageTable([]store.InstalledPackage{
		{Name: "zsh", Version: "5.9", Manager: "brew", InstalledAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{Name: "bat", Version: "0.24.0", Manager: "apt", InstalledAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)},
	})
	// Sorted by name.
	if strings.Index(out, "bat") > strings.Index(out, "zsh") {
		t.Errorf("rows not sorted by name:\n%s", out)
	}
	if !strings.Contains(out, "2026-03-01") {
		t.Errorf("missing install date:\n%s", out)
	}
}

func TestRenderSearchTable(t *testing.T) {
	if out := RenderSearchTable(nil); !strings.Contains(out, "No results") {
		t.Errorf("empty table = %q", out)
	}

	longDesc := strings.Repeat("x", 100)
	out := RenderSearchTable([]SearchRow{
		{Name: "express", Version: "4.19.2", Manager: "npm", Score: 90, Description: longDesc},
	})
	if !strings.Contains(out, "express") || !strings.Contains(out, "90.0") {
		t.Errorf("table missing data:\n%s", out)
	}
	if strings.Contains(out, longDesc) {
		t.Error("description was not truncated")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("a-very-long-name", 10); got != "a-very-..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("abcdef", 3); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
