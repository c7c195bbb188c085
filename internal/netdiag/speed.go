// Package netdiag provides network diagnostics used by the doctor and
// net commands: download throughput sampling and ICMP latency probing.
package netdiag

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/blackwell-systems/crossfire/internal/output"
)

// DefaultSpeedURL is a well-known speed test file.
const DefaultSpeedURL = "http://speedtest.tele2.net/10MB.zip"

const readChunk = 32 * 1024

// SpeedResult summarizes one download throughput sample.
type SpeedResult struct {
	OK             bool    `json:"ok"`
	DownloadMbps   float64 `json:"download_mbps"`
	DownloadedMB   float64 `json:"downloaded_mb"`
	ElapsedSeconds float64 `json:"elapsed_seconds"`
	Error          string  `json:"error,omitempty"`
}

// SpeedTest samples download throughput from url for at most duration.
type SpeedTest struct {
	Client  *http.Client
	Printer *output.Printer
}

// Download reads from url for up to duration and reports the achieved
// throughput.
func (s *SpeedTest) Download(ctx context.Context, url string, duration time.Duration) SpeedResult {
	if url == "" {
		url = DefaultSpeedURL
	}
	s.Printer.Infof("Testing download speed from: %s", url)

	ctx, cancel := context.WithTimeout(ctx, duration+30*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return SpeedResult{Error: err.Error()}
	}
	resp, err := s.Client.Do(req)
	if err != nil {
		return SpeedResult{Error: err.Error()}
	}
	defer resp.Body.Close()

	start := time.Now()
	var downloaded int64
	buf := make([]byte, readChunk)
	for time.Since(start) < duration {
		n, err := resp.Body.Read(buf)
		downloaded += int64(n)
		if err != nil {
			if err != io.EOF {
				return SpeedResult{Error: err.Error()}
			}
			break
		}
	}

	elapsed := time.Since(start).Seconds()
	result := SpeedResult{
		OK:             true,
		DownloadedMB:   round2(float64(downloaded) / 1024 / 1024),
		ElapsedSeconds: round2(elapsed),
	}
	if elapsed > 0 {
		result.DownloadMbps = round2(float64(downloaded) * 8 / elapsed / 1e6)
	}
	s.Printer.Successf("Speed test complete: %.2f Mbps (%.2f MB downloaded)",
		result.DownloadMbps, result.DownloadedMB)
	return result
}

func round2(v float64) float64 {
	return float64(int64(v*100+0.5)) / 100
}
