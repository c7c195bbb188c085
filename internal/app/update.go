package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/orchestrate"
)

var updateCmd = &cobra.Command{
	Use:   "update [MANAGER|all]",
	Short: "Update package managers and their package indexes",
	Long: `Updates the named package manager, or every available manager
when given "all" or no argument.

Examples:
  crossfire update          # update every available manager
  crossfire update all      # same as above
  crossfire update brew     # update only Homebrew`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

func init() {
	RootCmd.AddCommand(updateCmd)
}

type updateReport struct {
	Success  bool                  `json:"success"`
	Outcomes []orchestrate.Outcome `json:"outcomes"`
}

func runUpdate(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)
	maint := &orchestrate.Maintenance{
		Runner:  newRunner(s),
		Printer: p,
	}

	target := "all"
	if len(args) == 1 {
		target = args[0]
	}

	var outcomes []orchestrate.Outcome
	if target == "all" {
		outcomes = maint.UpdateAll(cmd.Context())
	} else {
		out := maint.UpdateOne(cmd.Context(), target)
		outcomes = []orchestrate.Outcome{out}
		if out.OK {
			p.Successf("%s: %s", out.Manager, out.Message)
		} else {
			p.Errorf("%s: %s", out.Manager, out.Message)
		}
	}

	success := true
	for _, out := range outcomes {
		if !out.OK {
			success = false
		}
	}

	if s.JSON {
		if err := emitJSON(updateReport{Success: success, Outcomes: outcomes}); err != nil {
			return err
		}
	}
	if !success {
		return errOperationFailed
	}
	return nil
}
