package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/orchestrate"
	"github.com/blackwell-systems/crossfire/internal/output"
)

var managersCmd = &cobra.Command{
	Use:   "managers",
	Short: "Inspect and install package managers",
}

var managersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all supported package managers and their status",
	RunE:  runManagersList,
}

var managersInstallCmd = &cobra.Command{
	Use:   "install <name>",
	Short: "Install a package manager itself",
	Long: `Installs the named package manager when a scripted bootstrap exists
for this OS. Managers that require manual installation print their
setup instructions instead.

Examples:
  crossfire managers install pip
  crossfire managers install flatpak`,
	Args: cobra.ExactArgs(1),
	RunE: runManagersInstall,
}

func init() {
	managersCmd.AddCommand(managersListCmd)
	managersCmd.AddCommand(managersInstallCmd)
	RootCmd.AddCommand(managersCmd)
}

func runManagersList(cmd *cobra.Command, args []string) error {
	s := settings()
	avail := manager.Detect()

	if s.JSON {
		status := make(map[string]string, len(avail))
		for _, id := range manager.All() {
			if avail[id] {
				status[id.String()] = "installed"
			} else {
				status[id.String()] = "not installed"
			}
		}
		return emitJSON(status)
	}

	rows := make([]output.ManagerStatus, 0, len(avail))
	for _, id := range manager.All() {
		rows = append(rows, output.ManagerStatus{
			Name:      id.Human(),
			Command:   id.String(),
			Available: avail[id],
		})
	}
	fmt.Print(output.RenderManagerTable(rows))
	return nil
}

type bootstrapReport struct {
	Manager string `json:"manager"`
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func runManagersInstall(cmd *cobra.Command, args []string) error {
	s := settings()
	printer := newPrinter(s)

	b := &orchestrate.Bootstrapper{
		Runner:  newRunner(s),
		Printer: printer,
		OS:      manager.CurrentOS(),
	}
	ok, err := b.InstallManager(cmd.Context(), args[0])

	if s.JSON {
		report := bootstrapReport{Manager: args[0], Success: ok}
		if err != nil {
			report.Error = err.Error()
		}
		if jerr := emitJSON(report); jerr != nil {
			return jerr
		}
	}
	if err != nil {
		if s.JSON {
			return errOperationFailed
		}
		return err
	}
	if !ok {
		return errOperationFailed
	}
	return nil
}
