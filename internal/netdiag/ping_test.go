package netdiag

import (
	"context"
	"io"
	"runtime"
	"testing"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/output"
)

func TestParseLatency(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix ping output format")
	}
	cases := []struct {
		out    string
		want   float64
		wantOK bool
	}{
		{"64 bytes from 8.8.8.8: icmp_seq=1 ttl=117 time=12.3 ms", 12.3, true},
		{"64 bytes from host: icmp_seq=1 ttl=64 time=0.045 ms", 0.045, true},
		{"64 bytes from host: time=7 ms", 7, true},
		{"Request timeout for icmp_seq 0", 0, false},
		{"", 0, false},
	}
	for _, c := range cases {
		got, ok := ParseLatency(c.out)
		if ok != c.wantOK {
			t.Errorf("ParseLatency(%q) ok = %v, want %v", c.out, ok, c.wantOK)
			continue
		}
		if ok && got != c.want {
			t.Errorf("ParseLatency(%q) = %v, want %v", c.out, got, c.want)
		}
	}
}

func TestProbe_MixedOutcomes(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix ping output format")
	}
	stub := &execx.Stub{Respond: func(argv []string) execx.Result {
		host := argv[len(argv)-1]
		switch host {
		case "good.example":
			return execx.Result{OK: true, Stdout: "64 bytes from good.example: icmp_seq=1 ttl=64 time=5.5 ms"}
		case "slow.example":
			return execx.Result{ExitCode: -1, TimedOut: true}
		default:
			return execx.Result{ExitCode: 1, Stderr: "unknown host"}
		}
	}}
	p := &Pinger{Runner: stub, Printer: &output.Printer{Out: io.Discard}}

	results := p.Probe(context.Background(), []string{"good.example", "slow.example", "bad.example"})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if !results["good.example"].OK || results["good.example"].LatencyMs != 5.5 {
		t.Errorf("good.example = %+v", results["good.example"])
	}
	if results["slow.example"].OK || results["slow.example"].Message != "timed out" {
		t.Errorf("slow.example = %+v", results["slow.example"])
	}
	if results["bad.example"].OK {
		t.Errorf("bad.example = %+v", results["bad.example"])
	}
}

func TestProbe_DefaultHosts(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix ping output format")
	}
	stub := &execx.Stub{Respond: func([]string) execx.Result {
		return execx.Result{OK: true, Stdout: "64 bytes: time=1.0 ms"}
	}}
	p := &Pinger{Runner: stub, Printer: &output.Printer{Out: io.Discard}}

	results := p.Probe(context.Background(), nil)
	if len(results) != len(DefaultPingHosts) {
		t.Errorf("expected %d results, got %d", len(DefaultPingHosts), len(results))
	}
	if len(stub.Calls()) != len(DefaultPingHosts) {
		t.Errorf("expected one ping per default host, got %d", len(stub.Calls()))
	}
}
