package preflight

import (
	"context"
	"path/filepath"

	"gw2inventory/internal/config"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the key and path checks for the given config.
func RunAll(ctx context.Context, cfg *config.Config, tokens TokenSource) []Result {
	if cfg == nil {
		return nil
	}

	var results []Result
	results = append(results, CheckToken(ctx, tokens))
	results = append(results, CheckWritableTarget("Cache directory", filepath.Dir(cfg.Cache.Path)))
	if cfg.Logging.Dir != "" {
		results = append(results, CheckWritableTarget("Log directory", cfg.Logging.Dir))
	}
	return results
}

// Failed reports whether any result did not pass.
func Failed(results []Result) bool {
	for _, result := range results {
		if !result.Passed {
			return true
		}
	}
	return false
}
