package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/config"
	"github.com/blackwell-systems/crossfire/internal/manager"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose common issues and check system health",
	Long: `Runs diagnostic checks on your crossfire setup.

Checks:
  - at least one package manager is available
  - the record database is accessible
  - the internet is reachable
  - the cache directory is writable`,
	RunE: runDoctor,
}

func init() {
	RootCmd.AddCommand(doctorCmd)
}

const connectivityProbeURL = "https://www.google.com"

type doctorCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // good, warning, error
	Message string `json:"message"`
}

type doctorReport struct {
	OverallStatus   string        `json:"overall_status"` // healthy, needs_attention, unhealthy
	Checks          []doctorCheck `json:"checks"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)
	report := doctorReport{OverallStatus: "healthy"}

	avail := manager.Detect()
	count := len(avail.Installed())
	switch {
	case count == 0:
		report.Checks = append(report.Checks, doctorCheck{"package_managers", "error", "no package managers detected"})
		report.Recommendations = append(report.Recommendations, "Install at least one package manager (pip, npm, brew, apt, ...)")
	case count == 1:
		report.Checks = append(report.Checks, doctorCheck{"package_managers", "warning", "only one package manager available"})
		report.Recommendations = append(report.Recommendations, "Install additional package managers for better coverage")
	default:
		report.Checks = append(report.Checks, doctorCheck{"package_managers", "good", fmt.Sprintf("%d of %d managers available", count, len(manager.All()))})
	}

	if st, err := openStore(); err != nil {
		report.Checks = append(report.Checks, doctorCheck{"database", "error", err.Error()})
		report.Recommendations = append(report.Recommendations, "Database may be corrupted; consider removing ~/.crossfire/packages.db")
	} else {
		packages, lerr := st.List("")
		st.Close()
		if lerr != nil {
			report.Checks = append(report.Checks, doctorCheck{"database", "error", lerr.Error()})
		} else {
			report.Checks = append(report.Checks, doctorCheck{"database", "good", fmt.Sprintf("%d packages recorded", len(packages))})
		}
	}

	client := &http.Client{Timeout: 10 * time.Second}
	if resp, err := client.Head(connectivityProbeURL); err != nil {
		report.Checks = append(report.Checks, doctorCheck{"internet", "error", "no internet connection"})
		report.Recommendations = append(report.Recommendations, "Check your internet connection")
	} else {
		resp.Body.Close()
		report.Checks = append(report.Checks, doctorCheck{"internet", "good", "internet connection available"})
	}

	if _, err := config.CacheDir(); err != nil {
		report.Checks = append(report.Checks, doctorCheck{"cache", "warning", err.Error()})
	} else {
		report.Checks = append(report.Checks, doctorCheck{"cache", "good", "cache directory writable"})
	}

	for _, check := range report.Checks {
		switch check.Status {
		case "error":
			report.OverallStatus = "unhealthy"
		case "warning":
			if report.OverallStatus == "healthy" {
				report.OverallStatus = "needs_attention"
			}
		}
	}

	if s.JSON {
		if err := emitJSON(report); err != nil {
			return err
		}
	} else {
		p.Headerf("Running crossfire diagnostics...")
		for _, check := range report.Checks {
			if check.Status == "good" {
				p.Successf("✓ %s: %s", check.Name, check.Message)
			} else {
				p.Errorf("✗ %s: %s", check.Name, check.Message)
			}
		}
		if len(report.Recommendations) > 0 {
			p.Infof("Recommendations:")
			for i, rec := range report.Recommendations {
				p.Mutedf("  %d. %s", i+1, rec)
			}
		}
		p.Infof("Overall status: %s", report.OverallStatus)
	}

	if report.OverallStatus == "unhealthy" {
		return errOperationFailed
	}
	return nil
}
