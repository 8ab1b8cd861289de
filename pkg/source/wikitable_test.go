package source_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"hunter/pkg/source"

	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

const listingPage = `<html><body>
<table class="wikitable">
  <tr><th>Rank</th><th>Company</th></tr>
  <tr><td>1</td><td> Walmart </td></tr>
  <tr><td>2</td><td>Amazon</td></tr>
  <tr><td>3</td><td>Amazon</td></tr>
  <tr><td>4</td><td></td></tr>
  <tr><td>5</td><td>An absurdly long cell value that cannot possibly be a company name at all</td></tr>
</table>
<table class="wikitable">
  <tr><td>6</td><td>Apple</td></tr>
</table>
<table id="constituents">
  <tr><td>MMM</td><td>3M</td></tr>
</table>
</body></html>`

func TestWikiTable_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	src := source.NewWikiTable(srv.Client(), rate.NewLimiter(rate.Inf, 1), source.WikiTableOptions{
		Name:      "fortune-500",
		URL:       srv.URL,
		CellIndex: 1,
	})

	names, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"Walmart", "Amazon", "Apple"}, names)
}

func TestWikiTable_Fetch_SelectorAndLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(listingPage))
	}))
	defer srv.Close()

	src := source.NewWikiTable(srv.Client(), nil, source.WikiTableOptions{
		Name:          "sp500",
		URL:           srv.URL,
		TableSelector: "table#constituents",
		CellIndex:     1,
		Limit:         5,
	})

	names, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"3M"}, names)
}

func TestWikiTable_Fetch_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	src := source.NewWikiTable(srv.Client(), nil, source.WikiTableOptions{Name: "x", URL: srv.URL, CellIndex: 1})

	_, err := src.Fetch(context.Background())
	require.Error(t, err)
}
