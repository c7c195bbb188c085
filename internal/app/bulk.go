package app

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/orchestrate"
)

var (
	importFlagManager string
	exportFlagOutput  string
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Install every package listed in a file",
	Long: `Reads a package list (one name per line, requirements.txt style)
and installs each entry. Blank lines and lines starting with "#"
are skipped.

Examples:
  crossfire import requirements.txt
  crossfire import packages.txt --manager pip`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var exportCmd = &cobra.Command{
	Use:   "export <manager>",
	Short: "Export recorded packages as a requirements-style list",
	Long: `Writes the packages recorded for a manager as "name==version"
lines, one per line, suitable for re-import on another machine.

Examples:
  crossfire export pip
  crossfire export npm -o npm-packages.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	importCmd.Flags().StringVar(&importFlagManager, "manager", "", "preferred manager for every entry")
	exportCmd.Flags().StringVarP(&exportFlagOutput, "output", "o", "", "write to a file instead of stdout")
	RootCmd.AddCommand(importCmd)
	RootCmd.AddCommand(exportCmd)
}

type importReport struct {
	File      string   `json:"file"`
	Requested int      `json:"requested"`
	Installed int      `json:"installed"`
	Failed    []string `json:"failed,omitempty"`
}

func runImport(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)

	entries, err := readPackageList(args[0])
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		p.Warnf("No packages listed in %s", args[0])
		return nil
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	preferred := importFlagManager
	if preferred == "" {
		preferred = s.DefaultManager
	}

	in := &orchestrate.Installer{
		Runner:  newRunner(s),
		Store:   st,
		Ranker:  manager.NewRanker(),
		Printer: p,
	}

	report := importReport{File: args[0], Requested: len(entries)}
	p.Headerf("Installing %d packages from %s", len(entries), args[0])
	for i, pkg := range entries {
		p.Infof("[%d/%d] %s", i+1, len(entries), pkg)
		if ok, _ := in.Install(cmd.Context(), pkg, preferred); ok {
			report.Installed++
		} else {
			report.Failed = append(report.Failed, pkg)
		}
	}

	if s.JSON {
		if err := emitJSON(report); err != nil {
			return err
		}
	} else {
		p.Infof("Imported %d/%d packages", report.Installed, report.Requested)
		for _, pkg := range report.Failed {
			p.Warnf("  failed: %s", pkg)
		}
	}
	if len(report.Failed) > 0 {
		return errOperationFailed
	}
	return nil
}

// readPackageList parses a requirements-style file: one package per
// line, blank lines and "#" comments skipped.
func readPackageList(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read package list: %w", err)
	}
	defer f.Close()

	var entries []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		entries = append(entries, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read package list: %w", err)
	}
	return entries, nil
}

func runExport(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)

	id, err := manager.Parse(args[0])
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	packages, err := st.List(id.String())
	if err != nil {
		return err
	}
	if len(packages) == 0 {
		p.Warnf("No packages recorded for %s", id.Human())
		return nil
	}

	var b strings.Builder
	for _, pkg := range packages {
		version := pkg.Version
		if version == "" || version == "unknown" || version == "installed" {
			fmt.Fprintf(&b, "%s\n", pkg.Name)
			continue
		}
		fmt.Fprintf(&b, "%s==%s\n", pkg.Name, version)
	}

	if exportFlagOutput == "" {
		fmt.Print(b.String())
		return nil
	}
	if err := os.WriteFile(exportFlagOutput, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	p.Successf("Exported %d packages to %s", len(packages), exportFlagOutput)
	return nil
}
