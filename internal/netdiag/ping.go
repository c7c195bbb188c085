package netdiag

import (
	"context"
	"regexp"
	"runtime"
	"strconv"
	"time"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/output"
)

// DefaultPingHosts are the probe targets for the latency test.
var DefaultPingHosts = []string{"google.com", "github.com", "cloudflare.com", "8.8.8.8"}

const pingTimeout = 10 * time.Second

var (
	unixLatencyRe    = regexp.MustCompile(`time=(\d+\.?\d*)\s*ms`)
	windowsLatencyRe = regexp.MustCompile(`time[<=](\d+)ms`)
)

// PingResult is the outcome of probing one host.
type PingResult struct {
	OK        bool    `json:"ok"`
	LatencyMs float64 `json:"latency_ms,omitempty"`
	Message   string  `json:"message,omitempty"`
}

// Pinger measures latency by shelling out to the system ping tool.
type Pinger struct {
	Runner  execx.Runner
	Printer *output.Printer
}

func pingArgs(host string) []string {
	if runtime.GOOS == "windows" {
		return []string{"ping", "-n", "1", "-w", "5000", host}
	}
	return []string{"ping", "-c", "1", "-W", "5", host}
}

// Probe pings each host once and reports per-host latency plus an
// average over the successful probes.
func (p *Pinger) Probe(ctx context.Context, hosts []string) map[string]PingResult {
	if len(hosts) == 0 {
		hosts = DefaultPingHosts
	}
	p.Printer.Infof("Starting network latency test...")

	results := make(map[string]PingResult, len(hosts))
	progress := p.Printer.Progress(len(hosts), "Ping test")

	for _, host := range hosts {
		res := p.Runner.Run(ctx, pingArgs(host), execx.Options{Timeout: pingTimeout})
		switch {
		case res.TimedOut:
			results[host] = PingResult{Message: "timed out"}
			p.Printer.Warnf("%s: timed out", host)
		case !res.OK:
			results[host] = PingResult{Message: res.Output()}
			p.Printer.Warnf("%s: %s", host, res.Output())
		default:
			if ms, ok := ParseLatency(res.Stdout); ok {
				results[host] = PingResult{OK: true, LatencyMs: ms}
				p.Printer.Successf("%s: %.1fms", host, ms)
			} else {
				results[host] = PingResult{Message: "could not parse ping output"}
				p.Printer.Warnf("%s: could not parse ping output", host)
			}
		}
		progress.Increment()
	}
	progress.Finish()

	var sum float64
	var count int
	for _, r := range results {
		if r.OK {
			sum += r.LatencyMs
			count++
		}
	}
	if count > 0 {
		p.Printer.Successf("Average latency: %.1fms", sum/float64(count))
	}
	return results
}

// ParseLatency extracts the round-trip time from ping output.
func ParseLatency(out string) (float64, bool) {
	re := unixLatencyRe
	if runtime.GOOS == "windows" {
		re = windowsLatencyRe
	}
	m := re.FindStringSubmatch(out)
	if m == nil {
		return 0, false
	}
	ms, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return ms, true
}
