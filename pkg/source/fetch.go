package source

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// userAgent identifies the crawler politely to the listing sites.
const userAgent = "domain-hunter/1.0 (+https://github.com/domain-hunter)"

// get performs a rate-limited GET. The limiter is shared across sources so
// concurrent universe builds do not hammer the same site.
func get(ctx context.Context, client *http.Client, limiter *rate.Limiter, url string) (*http.Response, error) {
	if limiter != nil {
		if err := limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("could not wait for rate limiter: %w", err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not send request: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()

		return nil, fmt.Errorf("unexpected status %d from %s", resp.StatusCode, url)
	}

	return resp, nil
}
