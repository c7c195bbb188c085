package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/config"
	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/output"
	"github.com/blackwell-systems/crossfire/internal/store"
)

var (
	flagDBPath  string
	flagJSON    bool
	flagQuiet   bool
	flagVerbose bool

	// RootCmd is the root command for crossfire
	RootCmd = &cobra.Command{
		Use:   "crossfire",
		Short: "One interface for every package manager on your system",
		Long: `crossfire unifies install, remove, search, update and cleanup
operations across the package managers present on this machine
(pip, npm, apt, dnf, yum, pacman, zypper, apk, brew, choco, winget,
snap, flatpak).

It detects which managers are available, ranks them per package using
name heuristics and OS priority, tries them in order until one
succeeds, and records what it installed in a local database.

Examples:
  # Install a package with the best-matching manager
  crossfire install ripgrep

  # Force a specific manager
  crossfire install django==4.2 --manager pip

  # Search every available manager at once
  crossfire search http-server

  # Show which managers crossfire found
  crossfire managers list

  # Update every available manager
  crossfire update all`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	RootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "database path (default: ~/.crossfire/packages.db)")
	RootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output results as JSON")
	RootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "quiet mode (errors only)")
	RootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// settings resolves flags over the optional config file.
func settings() config.Settings {
	s := config.Settings{
		Quiet:   flagQuiet,
		Verbose: flagVerbose,
		JSON:    flagJSON,
	}
	path, err := config.FilePath()
	if err != nil {
		return s
	}
	file, err := config.LoadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return s
	}
	s.DefaultManager = file.DefaultManager
	s.SearchLimit = file.SearchLimit
	if file.Quiet {
		s.Quiet = true
	}
	return s
}

func newPrinter(s config.Settings) *output.Printer {
	return output.NewPrinter(s.Quiet, s.Verbose, s.JSON)
}

func newRunner(s config.Settings) *execx.Exec {
	return &execx.Exec{Quiet: s.Quiet || s.JSON}
}

// openStore opens the record store at the flag path or the default
// location, creating the schema if needed.
func openStore() (*store.Store, error) {
	path := flagDBPath
	if path == "" {
		var err error
		path, err = config.DBPath()
		if err != nil {
			return nil, err
		}
	}
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return st, nil
}

// emitJSON writes v to stdout as an indented JSON document. Both output
// modes carry the same data; JSON mode just drops the formatting.
func emitJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
