package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/blackwell-systems/crossfire/internal/manager"
)

const (
	pypiTimeout = 10 * time.Second
	npmTimeout  = 15 * time.Second

	// pypiScore is the fixed relevance for a PyPI exact-name hit; the
	// API has no search scoring of its own.
	pypiScore = 50
)

// getJSON issues a GET with per-call timeout and decodes a JSON body.
// A non-2xx status is returned as the status code with a nil decode.
func (e *Engine) getJSON(ctx context.Context, rawURL string, params url.Values, timeout time.Duration, v any) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if len(params) > 0 {
		rawURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, err
	}
	resp, err := e.Client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp.StatusCode, nil
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

// searchPyPI looks the query up as an exact package name on the PyPI
// JSON API. A 404 is zero results, not a failure.
func (e *Engine) searchPyPI(ctx context.Context, query string) ([]Result, error) {
	var payload struct {
		Info struct {
			Name       string `json:"name"`
			Summary    string `json:"summary"`
			Version    string `json:"version"`
			HomePage   string `json:"home_page"`
			ProjectURL string `json:"project_url"`
		} `json:"info"`
	}

	endpoint := e.PyPIBaseURL + "/pypi/" + url.PathEscape(query) + "/json"
	status, err := e.getJSON(ctx, endpoint, nil, pypiTimeout, &payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, nil
	}

	homepage := payload.Info.HomePage
	if homepage == "" {
		homepage = payload.Info.ProjectURL
	}
	version := payload.Info.Version
	if version == "" {
		version = "unknown"
	}
	return []Result{{
		Name:        payload.Info.Name,
		Description: clip(payload.Info.Summary),
		Version:     version,
		Manager:     manager.Pip.String(),
		Homepage:    homepage,
		Relevance:   pypiScore,
	}}, nil
}

// searchNPM queries the npm registry full-text search API. The
// registry's final score (0..1) is scaled by 100, which makes npm
// results rank high against fixed-score managers; the weighting is
// deliberate and not renormalized.
func (e *Engine) searchNPM(ctx context.Context, query string) ([]Result, error) {
	var payload struct {
		Objects []struct {
			Package struct {
				Name        string `json:"name"`
				Description string `json:"description"`
				Version     string `json:"version"`
				Links       struct {
					Homepage   string `json:"homepage"`
					Repository string `json:"repository"`
				} `json:"links"`
			} `json:"package"`
			Score struct {
				Final float64 `json:"final"`
			} `json:"score"`
		} `json:"objects"`
	}

	params := url.Values{"text": {query}, "size": {"10"}}
	status, err := e.getJSON(ctx, e.NPMSearchURL, params, npmTimeout, &payload)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, nil
	}

	results := make([]Result, 0, len(payload.Objects))
	for _, obj := range payload.Objects {
		pkg := obj.Package
		homepage := pkg.Links.Homepage
		if homepage == "" {
			homepage = pkg.Links.Repository
		}
		version := pkg.Version
		if version == "" {
			version = "unknown"
		}
		results = append(results, Result{
			Name:        pkg.Name,
			Description: clip(pkg.Description),
			Version:     version,
			Manager:     manager.Npm.String(),
			Homepage:    homepage,
			Relevance:   obj.Score.Final * 100,
		})
	}
	return results, nil
}
