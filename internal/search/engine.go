// Package search fans a query out to every available package manager
// in parallel and merges the ranked results. Registry-backed managers
// (pip, npm, brew) are queried over HTTP; the rest are scraped from
// their CLI search output.
package search

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/crossfire/internal/execx"
	"github.com/blackwell-systems/crossfire/internal/manager"
	"github.com/blackwell-systems/crossfire/internal/output"
)

const (
	// searchWorkers bounds concurrency regardless of how many managers
	// are targeted; extra tasks queue.
	searchWorkers = 5
	// overallTimeout bounds the whole aggregation, independent of each
	// task's own timeout. Tasks still outstanding when it fires are
	// abandoned and counted as failures for their manager.
	overallTimeout = 120 * time.Second

	cliSearchTimeout = 30 * time.Second

	// DefaultLimit is the result cap applied when the caller does not
	// specify one.
	DefaultLimit = 20

	maxDescription = 200
	perManagerCap  = 10
)

// Result is one merged search hit. Relevance scores are
// manager-specific and not comparable in absolute units across
// managers; they are used only to sort the merged list.
type Result struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Version     string  `json:"version"`
	Manager     string  `json:"manager"`
	Homepage    string  `json:"homepage,omitempty"`
	Relevance   float64 `json:"relevance_score"`
}

// Engine aggregates search results across managers.
type Engine struct {
	Runner  execx.Runner
	Client  *http.Client
	Printer *output.Printer

	// CacheDir holds the Homebrew catalog cache file.
	CacheDir string

	// Registry endpoints, overridable in tests.
	PyPIBaseURL    string
	NPMSearchURL   string
	BrewCatalogURL string

	// Detect recomputes manager availability; defaults to
	// manager.Detect when nil.
	Detect func() manager.Availability
}

// NewEngine builds an Engine with production registry endpoints.
func NewEngine(runner execx.Runner, printer *output.Printer, cacheDir string) *Engine {
	return &Engine{
		Runner:         runner,
		Client:         &http.Client{Timeout: 30 * time.Second},
		Printer:        printer,
		CacheDir:       cacheDir,
		PyPIBaseURL:    "https://pypi.org",
		NPMSearchURL:   "https://registry.npmjs.org/-/v1/search",
		BrewCatalogURL: "https://formulae.brew.sh/api/formula.json",
	}
}

func (e *Engine) detect() manager.Availability {
	if e.Detect != nil {
		return e.Detect()
	}
	return manager.Detect()
}

// Search queries the given manager (or every available one when
// mgrName is empty) and returns the merged results sorted by relevance
// descending, truncated to limit. Ties keep insertion order. An empty
// return with no usable managers is reported to the user so it can be
// told apart from a query with zero hits.
func (e *Engine) Search(ctx context.Context, query, mgrName string, limit int) []Result {
	if limit <= 0 {
		limit = DefaultLimit
	}

	avail := e.detect()
	var targets []manager.ID
	if mgrName != "" {
		if id, err := manager.Parse(mgrName); err == nil && avail[id] {
			targets = []manager.ID{id}
		}
	} else {
		targets = avail.Installed()
	}
	if len(targets) == 0 {
		e.Printer.Errorf("No usable package managers available for searching.")
		return nil
	}

	e.Printer.Infof("Searching for %q across %d package managers...", query, len(targets))

	ctx, cancel := context.WithTimeout(ctx, overallTimeout)
	defer cancel()

	progress := e.Printer.Progress(len(targets), "Searching repositories")

	// Each task writes only its own slot; aggregation happens after
	// Wait. One task's failure never cancels its siblings.
	collected := make([][]Result, len(targets))
	var g errgroup.Group
	g.SetLimit(searchWorkers)
	for i, id := range targets {
		i, id := i, id
		g.Go(func() error {
			found, err := e.searchOne(ctx, id, query)
			if err != nil {
				e.Printer.Warnf("%s: search failed - %v", strings.ToUpper(id.String()), err)
			} else {
				collected[i] = found
				e.Printer.Successf("%s: found %d results", strings.ToUpper(id.String()), len(found))
			}
			progress.Increment()
			return nil
		})
	}
	g.Wait()
	progress.Finish()

	var merged []Result
	for _, part := range collected {
		merged = append(merged, part...)
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Relevance > merged[j].Relevance
	})
	if len(merged) > limit {
		merged = merged[:limit]
	}
	return merged
}

func (e *Engine) searchOne(ctx context.Context, id manager.ID, query string) ([]Result, error) {
	switch manager.Lookup(id).SearchKind {
	case manager.SearchPyPI:
		return e.searchPyPI(ctx, query)
	case manager.SearchNPM:
		return e.searchNPM(ctx, query)
	case manager.SearchBrewCatalog:
		return e.searchBrew(ctx, query)
	default:
		return e.searchCLI(ctx, id, query)
	}
}

func clip(s string) string {
	if len(s) > maxDescription {
		return s[:maxDescription]
	}
	return s
}
