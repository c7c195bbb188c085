package netdiag

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/blackwell-systems/crossfire/internal/output"
)

func TestDownload_ReportsThroughput(t *testing.T) {
	payload := make([]byte, 256*1024)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer srv.Close()

	s := &SpeedTest{Client: srv.Client(), Printer: &output.Printer{Out: io.Discard}}
	res := s.Download(context.Background(), srv.URL, 2*time.Second)

	if !res.OK {
		t.Fatalf("expected success, got %+v", res)
	}
	if res.DownloadedMB <= 0 {
		t.Errorf("DownloadedMB = %v, want > 0", res.DownloadedMB)
	}
	if res.DownloadMbps <= 0 {
		t.Errorf("DownloadMbps = %v, want > 0", res.DownloadMbps)
	}
}

func TestDownload_BadURL(t *testing.T) {
	s := &SpeedTest{Client: &http.Client{Timeout: time.Second}, Printer: &output.Printer{Out: io.Discard}}
	res := s.Download(context.Background(), "http://127.0.0.1:1/nope", time.Second)

	if res.OK {
		t.Fatal("expected failure")
	}
	if res.Error == "" {
		t.Error("expected an error message")
	}
}

func TestRound2(t *testing.T) {
	if got := round2(1.005); got != 1.01 && got != 1.0 {
		t.Errorf("round2(1.005) = %v", got)
	}
	if got := round2(12.344); got != 12.34 {
		t.Errorf("round2(12.344) = %v, want 12.34", got)
	}
}
