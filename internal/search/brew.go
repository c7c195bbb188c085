package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/blackwell-systems/crossfire/internal/manager"
)

const (
	brewTimeout = 20 * time.Second
	// brewCacheTTL bounds the age of the local catalog copy. The
	// catalog is large, so it is fetched at most once an hour; a stale
	// or concurrently rewritten cache is harmless because the content
	// is a reproducible public catalog (last writer wins).
	brewCacheTTL  = time.Hour
	brewCacheFile = "brew_formulae.json"

	brewNameScore = 50
	brewDescScore = 30
)

type brewFormula struct {
	Name     string `json:"name"`
	Desc     string `json:"desc"`
	Homepage string `json:"homepage"`
	Versions struct {
		Stable string `json:"stable"`
	} `json:"versions"`
}

// searchBrew scans the Homebrew formulae catalog for substring matches
// on name and description. The catalog is served through a read-through
// file cache with age as its only invalidation.
func (e *Engine) searchBrew(ctx context.Context, query string) ([]Result, error) {
	formulae, err := e.brewCatalog(ctx)
	if err != nil {
		return nil, err
	}

	lower := strings.ToLower(query)
	var results []Result
	for _, f := range formulae {
		score := 0.0
		if strings.Contains(strings.ToLower(f.Name), lower) {
			score += brewNameScore
		}
		if strings.Contains(strings.ToLower(f.Desc), lower) {
			score += brewDescScore
		}
		if score == 0 {
			continue
		}
		version := f.Versions.Stable
		if version == "" {
			version = "unknown"
		}
		results = append(results, Result{
			Name:        f.Name,
			Description: clip(f.Desc),
			Version:     version,
			Manager:     manager.Brew.String(),
			Homepage:    f.Homepage,
			Relevance:   score,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > perManagerCap {
		results = results[:perManagerCap]
	}
	return results, nil
}

// brewCatalog returns the formulae catalog, from the cache file when it
// is younger than brewCacheTTL, otherwise freshly downloaded.
func (e *Engine) brewCatalog(ctx context.Context) ([]brewFormula, error) {
	cachePath := filepath.Join(e.CacheDir, brewCacheFile)

	if info, err := os.Stat(cachePath); err == nil && time.Since(info.ModTime()) < brewCacheTTL {
		data, err := os.ReadFile(cachePath)
		if err == nil {
			var formulae []brewFormula
			if err := json.Unmarshal(data, &formulae); err == nil {
				return formulae, nil
			}
			// Corrupt cache: fall through to a fresh download.
		}
	}

	ctx, cancel := context.WithTimeout(ctx, brewTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.BrewCatalogURL, nil)
	if err != nil {
		return nil, err
	}
	resp, err := e.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("formulae catalog returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read formulae catalog: %w", err)
	}
	var formulae []brewFormula
	if err := json.Unmarshal(data, &formulae); err != nil {
		return nil, fmt.Errorf("decode formulae catalog: %w", err)
	}

	if e.CacheDir != "" {
		if err := os.MkdirAll(e.CacheDir, 0o755); err == nil {
			// Best effort; search still works without the cache.
			_ = os.WriteFile(cachePath, data, 0o644)
		}
	}
	return formulae, nil
}
