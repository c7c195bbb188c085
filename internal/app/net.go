package app

import (
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/netdiag"
)

var (
	netSpeedFlagURL      string
	netSpeedFlagDuration time.Duration
)

var netCmd = &cobra.Command{
	Use:   "net",
	Short: "Network diagnostics",
	Long:  `Network diagnostics: download throughput sampling and latency probing.`,
}

var netSpeedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Measure download speed",
	Long: `Downloads from a test URL for a fixed duration and reports the
achieved throughput in Mbps.`,
	RunE: runNetSpeed,
}

var netPingCmd = &cobra.Command{
	Use:   "ping [HOST...]",
	Short: "Measure latency to well-known hosts",
	Long: `Pings each host once and reports per-host latency plus the average.
With no arguments a default host set is probed.`,
	RunE: runNetPing,
}

func init() {
	netSpeedCmd.Flags().StringVar(&netSpeedFlagURL, "url", "", "download URL (default: a public speed test file)")
	netSpeedCmd.Flags().DurationVar(&netSpeedFlagDuration, "duration", 10*time.Second, "how long to sample the download")
	netCmd.AddCommand(netSpeedCmd)
	netCmd.AddCommand(netPingCmd)
	RootCmd.AddCommand(netCmd)
}

func runNetSpeed(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)

	test := &netdiag.SpeedTest{
		Client:  &http.Client{Timeout: netSpeedFlagDuration + time.Minute},
		Printer: p,
	}
	result := test.Download(cmd.Context(), netSpeedFlagURL, netSpeedFlagDuration)

	if s.JSON {
		if err := emitJSON(result); err != nil {
			return err
		}
	}
	if !result.OK {
		p.Errorf("Speed test failed: %s", result.Error)
		return errOperationFailed
	}
	return nil
}

func runNetPing(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)

	pinger := &netdiag.Pinger{
		Runner:  newRunner(s),
		Printer: p,
	}
	results := pinger.Probe(cmd.Context(), args)

	if s.JSON {
		if err := emitJSON(results); err != nil {
			return err
		}
	}
	for _, r := range results {
		if r.OK {
			return nil
		}
	}
	return errOperationFailed
}
