package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/manager"
)

// cliScore is the fixed relevance for results scraped from a manager's
// CLI output, which carries no scoring signal of its own.
const cliScore = 5

// searchCLI runs the manager's own search subcommand and parses its
// line-oriented output heuristically: first whitespace-delimited token
// is the name, the remainder is the description.
func (e *Engine) searchCLI(ctx context.Context, id manager.ID, query string) ([]Result, error) {
	desc := manager.Lookup(id)
	if desc.SearchArgs == nil {
		return nil, nil
	}

	res := e.Runner.Run(ctx, desc.SearchArgs(query), execx.Options{Timeout: cliSearchTimeout})
	if !res.OK {
		if res.TimedOut {
			return nil, fmt.Errorf("search command timed out")
		}
		return nil, fmt.Errorf("search command failed: %s", res.Output())
	}

	return ParseCLIOutput(res.Stdout, id), nil
}

// ParseCLIOutput converts line-oriented search output into results.
// Exposed for tests; the parsing is intentionally lax because each
// manager formats its listing differently.
func ParseCLIOutput(out string, id manager.ID) []Result {
	var results []Result
	for _, line := range strings.Split(out, "\n") {
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) == 0 {
			continue
		}
		description := ""
		if len(parts) > 1 {
			description = clip(strings.Join(parts[1:], " "))
		}
		results = append(results, Result{
			Name:        parts[0],
			Description: description,
			Version:     "unknown",
			Manager:     id.String(),
			Relevance:   cliScore,
		})
		if len(results) == perManagerCap {
			break
		}
	}
	return results
}
