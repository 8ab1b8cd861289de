// Package rdap provides a minimal RDAP client used as the primary
// registration lookup. Responses are decoded once at this boundary into a
// small typed Record; classification happens upstream on typed data.
package rdap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hunter/pkg/serrors"
)

// DefaultBaseURL is the public rdap.org bootstrap redirector.
const DefaultBaseURL = "https://rdap.org/domain/"

// Record is the registration signal extracted from an RDAP domain response.
type Record struct {
	// Statuses is the RDAP status list, verbatim.
	Statuses []string
	// HasNameservers reports whether the record lists delegated nameservers.
	HasNameservers bool
	// HasEntities reports whether the record lists registrant entities.
	HasEntities bool
}

// Client queries an RDAP service over HTTP. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	baseURL    string
	timeout    time.Duration
}

// New constructs a Client. baseURL must end with a path the domain name can
// be appended to; an empty baseURL selects DefaultBaseURL.
func New(httpClient *http.Client, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		timeout:    timeout,
	}
}

// Lookup fetches the RDAP record for the given domain name. A 404 maps to
// serrors.ErrNotFound (the name is unregistered as far as the registry knows);
// any other non-200 answer or transport failure is an ordinary error the
// caller folds into its unclear signal.
func (c *Client) Lookup(ctx context.Context, fqdn string) (*Record, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+fqdn, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode == http.StatusNotFound {
		return nil, serrors.With(serrors.ErrNotFound, "no registration for %s", fqdn)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, serrors.With(serrors.ErrUnavailable,
			"lookup of %s failed with status %d: %s", fqdn, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var payload struct {
		Status      []string          `json:"status"`
		Nameservers []json.RawMessage `json:"nameservers"`
		Entities    []json.RawMessage `json:"entities"`
	}
	if err := json.Unmarshal(b, &payload); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &Record{
		Statuses:       payload.Status,
		HasNameservers: len(payload.Nameservers) > 0,
		HasEntities:    len(payload.Entities) > 0,
	}, nil
}
