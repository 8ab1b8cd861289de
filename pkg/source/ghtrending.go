package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// trendingURL is the GitHub trending repositories page.
const trendingURL = "https://github.com/trending"

// GHTrending scrapes repository names from GitHub's trending page. Trending
// repo names are a steady feed of project names worth checking as domains.
type GHTrending struct {
	url        string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewGHTrending constructs a GHTrending source. An empty url selects the
// public trending page.
func NewGHTrending(httpClient *http.Client, limiter *rate.Limiter, url string) *GHTrending {
	if url == "" {
		url = trendingURL
	}

	return &GHTrending{url: url, httpClient: httpClient, limiter: limiter}
}

// Name identifies the source in logs.
func (g *GHTrending) Name() string { return "github-trending" }

// Fetch extracts repository names from the trending page's heading links
// (href form "/owner/repo").
func (g *GHTrending) Fetch(ctx context.Context) ([]string, error) {
	resp, err := get(ctx, g.httpClient, g.limiter, g.url)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not parse page: %w", err)
	}

	seen := make(map[string]struct{})
	var names []string
	doc.Find("h2 a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		parts := strings.Split(href, "/")
		if len(parts) < 3 {
			return
		}

		repo := strings.TrimSpace(parts[2])
		if len(repo) <= 2 || len(repo) >= maxRawNameLen {
			return
		}
		if _, dup := seen[repo]; dup {
			return
		}
		seen[repo] = struct{}{}
		names = append(names, repo)
	})

	return names, nil
}

// Ensure GHTrending satisfies Source.
var _ Source = (*GHTrending)(nil)
