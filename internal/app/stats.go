package app

import (
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show package statistics",
	RunE:  runStats,
}

func init() {
	RootCmd.AddCommand(statsCmd)
}

type statsReport struct {
	TotalPackages       int                     `json:"total_packages"`
	PackagesByManager   map[string]int          `json:"packages_by_manager"`
	RecentInstallations []store.InstalledPackage `json:"recent_installations"`
	AvailableManagers   int                     `json:"available_managers"`
	SupportedManagers   int                     `json:"total_supported_managers"`
}

func buildStats(packages []store.InstalledPackage, avail manager.Availability) statsReport {
	report := statsReport{
		TotalPackages:     len(packages),
		PackagesByManager: make(map[string]int),
		AvailableManagers: len(avail.Installed()),
		SupportedManagers: len(manager.All()),
	}
	weekAgo := time.Now().AddDate(0, 0, -7)
	for _, pkg := range packages {
		report.PackagesByManager[pkg.Manager]++
		if pkg.InstalledAt.After(weekAgo) {
			report.RecentInstallations = append(report.RecentInstallations, pkg)
		}
	}
	return report
}

func runStats(cmd *cobra.Command, args []string) error {
	s := settings()
	printer := newPrinter(s)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	packages, err := st.List("")
	if err != nil {
		return err
	}
	report := buildStats(packages, manager.Detect())

	if s.JSON {
		return emitJSON(report)
	}

	printer.Headerf("crossfire statistics")
	printer.Infof("  Packages installed via crossfire: %d", report.TotalPackages)
	printer.Infof("  Available package managers: %d/%d", report.AvailableManagers, report.SupportedManagers)

	if len(report.PackagesByManager) > 0 {
		printer.Headerf("Packages by manager")
		names := make([]string, 0, len(report.PackagesByManager))
		for name := range report.PackagesByManager {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return report.PackagesByManager[names[i]] > report.PackagesByManager[names[j]]
		})
		for _, name := range names {
			printer.Infof("  %-10s %d", name, report.PackagesByManager[name])
		}
	}

	if len(report.RecentInstallations) > 0 {
		printer.Headerf("Recent installations (last 7 days)")
		show := report.RecentInstallations
		if len(show) > 5 {
			show = show[:5]
		}
		for _, pkg := range show {
			printer.Infof("  %s via %s on %s", pkg.Name, pkg.Manager, pkg.InstalledAt.Format("2006-01-02"))
		}
		if extra := len(report.RecentInstallations) - len(show); extra > 0 {
			printer.Mutedf("  ... and %d more", extra)
		}
	}
	return nil
}
