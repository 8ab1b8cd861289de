package main

import (
	"net/http"

	"hunter/internal/config"
	"hunter/pkg/source"

	"golang.org/x/time/rate"
)

// buildSources assembles the configured keyword sources: the static buzzword
// list, the configured Wikipedia listing pages, GitHub trending, and the
// Y Combinator directory. All scraping sources share one HTTP client and one
// rate limiter so a run never hammers anybody.
func buildSources(cfg *config.Config) []source.Source {
	sources := []source.Source{
		source.NewStatic("buzzwords", cfg.Sources.Buzzwords),
	}

	httpClient := &http.Client{Timeout: cfg.Sources.FetchTimeout}
	rps := cfg.Sources.RequestsPerSecond
	if rps <= 0 {
		rps = 1
	}
	limiter := rate.NewLimiter(rate.Limit(rps), 1)

	for _, page := range cfg.Sources.WikiPages {
		sources = append(sources, source.NewWikiTable(httpClient, limiter, source.WikiTableOptions{
			Name:          page.Name,
			URL:           page.URL,
			TableSelector: page.TableSelector,
			CellIndex:     page.CellIndex,
			Limit:         page.Limit,
		}))
	}

	if cfg.Sources.GitHubTrending {
		sources = append(sources, source.NewGHTrending(httpClient, limiter, ""))
	}

	if cfg.Sources.YCombinator {
		sources = append(sources, source.NewYCompanies(httpClient, limiter))
	}

	return sources
}
