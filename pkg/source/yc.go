package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// ycURLs are the Y Combinator directory pages scanned for company names.
var ycURLs = []string{ //nolint: gochecknoglobals
	"https://www.ycombinator.com/companies",
	"https://www.ycombinator.com/topcompanies",
}

// YCompanies scrapes company names from the Y Combinator directory pages.
// Each page links its companies as anchors pointing under /companies/.
type YCompanies struct {
	urls       []string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewYCompanies constructs a YCompanies source. An empty url list selects the
// public YC directory pages.
func NewYCompanies(httpClient *http.Client, limiter *rate.Limiter, urls ...string) *YCompanies {
	if len(urls) == 0 {
		urls = ycURLs
	}

	return &YCompanies{urls: urls, httpClient: httpClient, limiter: limiter}
}

// Name identifies the source in logs.
func (y *YCompanies) Name() string { return "yc-companies" }

// Fetch extracts the anchor text of every /companies/ link across the
// configured pages, deduplicated. A page that fails is skipped; Fetch errors
// only when every page failed.
func (y *YCompanies) Fetch(ctx context.Context) ([]string, error) {
	seen := make(map[string]struct{})
	var names []string
	var lastErr error

	for _, url := range y.urls {
		pageNames, err := y.fetchPage(ctx, url)
		if err != nil {
			lastErr = err

			continue
		}
		for _, name := range pageNames {
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	if len(names) == 0 && lastErr != nil {
		return nil, lastErr
	}

	return names, nil
}

func (y *YCompanies) fetchPage(ctx context.Context, url string) ([]string, error) {
	resp, err := get(ctx, y.httpClient, y.limiter, url)
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

	var names []string
	doc.Find("a[href]").Each(func(_ int, link *goquery.Selection) {
		href, _ := link.Attr("href")
		if !strings.Contains(href, "/companies/") {
			return
		}

		name := strings.TrimSpace(link.Text())
		if len(name) <= 2 || len(name) >= maxRawNameLen || strings.Contains(name, "http") {
			return
		}
		names = append(names, name)
	})

	return names, nil
}

// Ensure YCompanies satisfies Source.
var _ Source = (*YCompanies)(nil)
