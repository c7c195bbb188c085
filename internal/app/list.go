package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/output"
)

var listFlagManager string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show packages installed via crossfire",
	Long: `Shows the packages crossfire has recorded installing. Packages
installed directly through other managers do not appear here.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listFlagManager, "manager", "", "only show packages from this manager")
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	s := settings()

	st, err := openStore()
	if err != nil {
		return err
	}
	defer st.Close()

	packages, err := st.List(listFlagManager)
	if err != nil {
		return err
	}

	if s.JSON {
		return emitJSON(packages)
	}
	fmt.Print(output.RenderPackageTable(packages))
	return nil
}
