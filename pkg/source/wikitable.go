package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// maxRawNameLen filters out table cells that are clearly not company names.
const maxRawNameLen = 50

// WikiTable scrapes company names out of the tables of a Wikipedia listing
// page (Fortune 500, S&P 500 constituents, unicorn startups, ...).
type WikiTable struct {
	name string
	url  string
	// tableSelector picks the tables holding the listing, e.g.
	// "table.wikitable" or "table#constituents".
	tableSelector string
	// cellIndex is the zero-based td column carrying the company name.
	cellIndex int
	// limit caps the number of names returned; 0 means unlimited.
	limit int

	httpClient *http.Client
	limiter    *rate.Limiter
}

// WikiTableOptions configure a WikiTable source.
type WikiTableOptions struct {
	Name          string
	URL           string
	TableSelector string
	CellIndex     int
	Limit         int
}

// NewWikiTable constructs a WikiTable source. An empty TableSelector defaults
// to the common "table.wikitable".
func NewWikiTable(httpClient *http.Client, limiter *rate.Limiter, opts WikiTableOptions) *WikiTable {
	if opts.TableSelector == "" {
		opts.TableSelector = "table.wikitable"
	}

	return &WikiTable{
		name:          opts.Name,
		url:           opts.URL,
		tableSelector: opts.TableSelector,
		cellIndex:     opts.CellIndex,
		limit:         opts.Limit,
		httpClient:    httpClient,
		limiter:       limiter,
	}
}

// Name identifies the source in logs.
func (w *WikiTable) Name() string { return w.name }

// Fetch downloads the page and extracts the configured cell of every table
// row, deduplicated.
func (w *WikiTable) Fetch(ctx context.Context) ([]string, error) {
	resp, err := get(ctx, w.httpClient, w.limiter, w.url)
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
	doc.Find(w.tableSelector).Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= w.cellIndex {
			return
		}

		name := strings.TrimSpace(cells.Eq(w.cellIndex).Text())
		if name == "" || len(name) >= maxRawNameLen {
			return
		}
		if _, dup := seen[name]; dup {
			return
		}
		seen[name] = struct{}{}
		names = append(names, name)
	})

	if w.limit > 0 && len(names) > w.limit {
		names = names[:w.limit]
	}

	return names, nil
}

// Ensure WikiTable satisfies Source.
var _ Source = (*WikiTable)(nil)
