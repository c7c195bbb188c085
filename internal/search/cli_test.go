package search

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/manager"
)

func TestParseCLIOutput(t *testing.T) {
	out := "htop - interactive process viewer\n" +
		"\n" +
		"   htop-vim - htop fork with vim keybindings   \n"
	results := ParseCLIOutput(out, manager.Apt)

	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	first := results[0]
	if first.Name != "htop" {
		t.Errorf("name = %q, want htop", first.Name)
	}
	if first.Description != "- interactive process viewer" {
		t.Errorf("description = %q", first.Description)
	}
	if first.Manager != "apt" || first.Version != "unknown" || first.Relevance != cliScore {
		t.Errorf("result = %+v", first)
	}
	if results[1].Name != "htop-vim" {
		t.Errorf("whitespace-padded line parsed wrong: %+v", results[1])
	}
}

func TestParseCLIOutput_EmptyOutput(t *testing.T) {
	if results := ParseCLIOutput("", manager.Snap); results != nil {
		t.Errorf("expected nil for empty output, got %v", results)
	}
	if results := ParseCLIOutput("\n\n  \n", manager.Snap); results != nil {
		t.Errorf("expected nil for blank output, got %v", results)
	}
}

func TestParseCLIOutput_CapsResults(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, fmt.Sprintf("pkg%d description here", i))
	}
	results := ParseCLIOutput(strings.Join(lines, "\n"), manager.Dnf)
	if len(results) != perManagerCap {
		t.Errorf("expected cap of %d, got %d", perManagerCap, len(results))
	}
}

func TestParseCLIOutput_SingleTokenLine(t *testing.T) {
	results := ParseCLIOutput("ripgrep", manager.Pacman)
	if len(results) != 1 || results[0].Description != "" {
		t.Errorf("results = %+v", results)
	}
}

func TestSearchCLI_CommandFailure(t *testing.T) {
	stub := &execx.Stub{Respond: func([]string) execx.Result {
		return execx.Result{ExitCode: 1, Stderr: "no index"}
	}}
	e := newTestEngine(t, stub, registryHandler())

	if _, err := e.searchCLI(context.Background(), manager.Apt, "htop"); err == nil {
		t.Error("expected error on search command failure")
	}
}

func TestSearchCLI_Timeout(t *testing.T) {
	stub := &execx.Stub{Respond: func([]string) execx.Result {
		return execx.Result{ExitCode: -1, TimedOut: true}
	}}
	e := newTestEngine(t, stub, registryHandler())

	_, err := e.searchCLI(context.Background(), manager.Apt, "htop")
	if err == nil || !strings.Contains(err.Error(), "timed out") {
		t.Errorf("err = %v, want timeout message", err)
	}
}

func TestSearchCLI_RunsRegistrySearchArgs(t *testing.T) {
	stub := &execx.Stub{Respond: func([]string) execx.Result {
		return execx.Result{OK: true, Stdout: "htop viewer"}
	}}
	e := newTestEngine(t, stub, registryHandler())

	if _, err := e.searchCLI(context.Background(), manager.Apt, "htop"); err != nil {
		t.Fatalf("searchCLI failed: %v", err)
	}
	calls := stub.Calls()
	if len(calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(calls))
	}
	want := []string{"apt-cache", "search", "htop"}
	if strings.Join(calls[0], " ") != strings.Join(want, " ") {
		t.Errorf("argv = %v, want %v", calls[0], want)
	}
}
