package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/orchestrate"
)

var removeFlagManager string

var removeCmd = &cobra.Command{
	Use:   "remove <package>",
	Short: "Remove a package",
	Long: `Removes a package. With --manager only that manager is tried; without
it, removal-capable managers are tried in ranked order until one
succeeds.

Examples:
  crossfire remove ripgrep
  crossfire remove flask --manager pip`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func init() {
	removeCmd.Flags().StringVar(&removeFlagManager, "manager", "", "only try this manager")
	RootCmd.AddCommand(removeCmd)
}

type removeReport struct {
	Package  string                `json:"package"`
	Success  bool                  `json:"success"`
	Attempts []orchestrate.Attempt `json:"attempts"`
}

func runRemove(cmd *cobra.Command, args []string) error {
	s := settings()
	printer := newPrinter(s)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	in := &orchestrate.Installer{
		Runner:  newRunner(s),
		Store:   st,
		Ranker:  manager.NewRanker(),
		Printer: printer,
	}
	ok, attempts := in.Remove(cmd.Context(), args[0], removeFlagManager)

	if s.JSON {
		if err := emitJSON(removeReport{Package: args[0], Success: ok, Attempts: attempts}); err != nil {
			return err
		}
	}
	if !ok {
		return errOperationFailed
	}
	return nil
}
