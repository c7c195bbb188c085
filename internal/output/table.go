// Package output provides terminal output utilities for crossfire.
//
// This package includes:
//   - A leveled Printer that replaces ambient global logging state
//   - Table rendering for manager status, installed packages, and search results
//   - Progress bars and spinners for long-running operations
//
// All rendering uses ASCII characters and ANSI color codes for terminal
// output. Progress indicators are thread-safe.
package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/blackwell-systems/crossfire/internal/store"
)

// ManagerStatus is one row of the manager availability table.
type ManagerStatus struct {
	Name      string
	Command   string
	Available bool
}

// RenderManagerTable renders the availability of every supported manager.
func RenderManagerTable(rows []ManagerStatus) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-16s %-10s %s\n", "MANAGER", "COMMAND", "STATUS"))
	sb.WriteString(strings.Repeat("-", 40) + "\n")

	color := IsColorEnabled()
	for _, row := range rows {
		status := "not installed"
		if row.Available {
			status = "installed"
		}
		if color {
			code := colorGray
			if row.Available {
				code = colorGreen
			}
			sb.WriteString(fmt.Sprintf("%-16s %-10s %s%s%s\n",
				row.Name, row.Command, code, status, colorReset))
			continue
		}
		sb.WriteString(fmt.Sprintf("%-16s %-10s %s\n", row.Name, row.Command, status))
	}
	return sb.String()
}

// RenderPackageTable renders packages recorded in the install store,
// sorted by name for consistent output.
func RenderPackageTable(packages []store.InstalledPackage) string {
	if len(packages) == 0 {
		return "No packages recorded yet.\n"
	}

	sorted := make([]store.InstalledPackage, len(packages))
	copy(sorted, packages)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-28s %-14s %-10s %s\n", "NAME", "VERSION", "MANAGER", "INSTALLED"))
	sb.WriteString(strings.Repeat("-", 66) + "\n")
	for _, pkg := range sorted {
		sb.WriteString(fmt.Sprintf("%-28s %-14s %-10s %s\n",
			truncate(pkg.Name, 28),
			truncate(pkg.Version, 14),
			pkg.Manager,
			pkg.InstalledAt.Format("2006-01-02"),
		))
	}
	return sb.String()
}

// SearchRow is one row of the search results table.
type SearchRow struct {
	Name        string
	Version     string
	Manager     string
	Score       float64
	Description string
}

// RenderSearchTable renders merged search results in the order given
// (callers sort by relevance before rendering).
func RenderSearchTable(rows []SearchRow) string {
	if len(rows) == 0 {
		return "No results found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-28s %-12s %-8s %6s  %s\n", "NAME", "VERSION", "MANAGER", "SCORE", "DESCRIPTION"))
	sb.WriteString(strings.Repeat("-", 100) + "\n")
	for _, row := range rows {
		sb.WriteString(fmt.Sprintf("%-28s %-12s %-8s %6.1f  %s\n",
			truncate(row.Name, 28),
			truncate(row.Version, 12),
			row.Manager,
			row.Score,
			truncate(row.Description, 44),
		))
	}
	return sb.String()
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
