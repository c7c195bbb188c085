package app

import (
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/orchestrate"
)

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Clear package manager caches",
	Long: `Clears the download and metadata caches of every available
package manager that supports it. Managers without a cleanup
command are skipped.`,
	RunE: runCleanup,
}

func init() {
	RootCmd.AddCommand(cleanupCmd)
}

type cleanupReport struct {
	Success  bool                  `json:"success"`
	Outcomes []orchestrate.Outcome `json:"outcomes"`
}

func runCleanup(cmd *cobra.Command, args []string) error {
	s := settings()
	p := newPrinter(s)
	maint := &orchestrate.Maintenance{
		Runner:  newRunner(s),
		Printer: p,
	}

	outcomes := maint.Cleanup(cmd.Context())
	if len(outcomes) == 0 {
		p.Warnf("No package managers with cleanup support found")
	}

	success := true
	for _, out := range outcomes {
		if !out.OK {
			success = false
		}
	}

	if s.JSON {
		if err := emitJSON(cleanupReport{Success: success, Outcomes: outcomes}); err != nil {
			return err
		}
	}
	if !success {
		return errOperationFailed
	}
	return nil
}
