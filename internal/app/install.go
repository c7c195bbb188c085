package app

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/orchestrate"
)

var errOperationFailed = errors.New("operation failed")

var installFlagManager string

var installCmd = &cobra.Command{
	Use:   "install <package>",
	Short: "Install a package using the best available manager",
	Long: `Installs a package by trying the ranked candidate managers in order
until one succeeds. Ranking uses package-name heuristics (pip for
version specifiers like "pkg==1.0", npm for "@scope/pkg") and the
OS system-manager priority.

Examples:
  crossfire install ripgrep
  crossfire install django==4.2
  crossfire install @angular/cli
  crossfire install htop --manager brew`,
	Args: cobra.ExactArgs(1),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installFlagManager, "manager", "", "preferred manager to try first")
	RootCmd.AddCommand(installCmd)
}

type installReport struct {
	Package  string                `json:"package"`
	Success  bool                  `json:"success"`
	Attempts []orchestrate.Attempt `json:"attempts"`
}

func runInstall(cmd *cobra.Command, args []string) error {
	s := settings()
	printer := newPrinter(s)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	preferred := installFlagManager
	if preferred == "" {
		preferred = s.DefaultManager
	}

	in := &orchestrate.Installer{
		Runner:  newRunner(s),
		Store:   st,
		Ranker:  manager.NewRanker(),
		Printer: printer,
	}
	ok, attempts := in.Install(cmd.Context(), args[0], preferred)

	if s.JSON {
		if err := emitJSON(installReport{Package: args[0], Success: ok, Attempts: attempts}); err != nil {
			return err
		}
	}
	if !ok {
		return errOperationFailed
	}
	return nil
}
