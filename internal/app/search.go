package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/crossfire/internal/config"
	"github.com/blackwell-systems/crossfire/internal/output"
	"github.com/blackwell-systems/crossfire/internal/search"
)

var (
	searchFlagManager string
	searchFlagLimit   int
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search for a package across all available managers",
	Long: `Searches every available manager in parallel (PyPI and the npm
registry over HTTP, the Homebrew formulae catalog through a local
cache, the rest via their CLI search commands) and prints one merged
list sorted by relevance.

Examples:
  crossfire search flask
  crossfire search http-server --manager npm
  crossfire search editor --limit 5`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().StringVar(&searchFlagManager, "manager", "", "search only this manager")
	searchCmd.Flags().IntVar(&searchFlagLimit, "limit", 0, "maximum number of results (default 20)")
	RootCmd.AddCommand(searchCmd)
}

type searchReport struct {
	Query   string          `json:"query"`
	Results []search.Result `json:"results"`
}

func runSearch(cmd *cobra.Command, args []string) error {
	s := settings()
	printer := newPrinter(s)

	limit := searchFlagLimit
	if limit == 0 {
		limit = s.SearchLimit
	}

	cacheDir, err := config.CacheDir()
	if err != nil {
		printer.Warnf("Cache unavailable: %v", err)
	}

	engine := search.NewEngine(newRunner(s), printer, cacheDir)
	results := engine.Search(cmd.Context(), args[0], searchFlagManager, limit)

	if s.JSON {
		if err := emitJSON(searchReport{Query: args[0], Results: results}); err != nil {
			return err
		}
		if len(results) == 0 {
			return errOperationFailed
		}
		return nil
	}

	rows := make([]output.SearchRow, len(results))
	for i, r := range results {
		rows[i] = output.SearchRow{
			Name:        r.Name,
			Version:     r.Version,
			Manager:     r.Manager,
			Score:       r.Relevance,
			Description: r.Description,
		}
	}
	fmt.Print(output.RenderSearchTable(rows))
	if len(results) == 0 {
		return errOperationFailed
	}
	return nil
}
