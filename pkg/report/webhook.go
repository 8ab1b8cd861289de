package report

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"hunter/pkg/domain"
	"hunter/pkg/serrors"
)

// Webhook posts the run report as a JSON message of the form
// {"text": "..."}, the shape accepted by Slack-compatible incoming webhooks.
type Webhook struct {
	url        string
	maxGroups  int
	httpClient *http.Client
}

// NewWebhook constructs a Webhook notifier. A nil httpClient falls back to
// http.DefaultClient.
func NewWebhook(httpClient *http.Client, url string, maxGroups int) *Webhook {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &Webhook{url: url, maxGroups: maxGroups, httpClient: httpClient}
}

// Name identifies the notifier in logs.
func (w *Webhook) Name() string { return "webhook" }

type webhookPayload struct {
	Text string `json:"text"`
}

// Notify posts the rendered report. Any non-2xx response is an error.
func (w *Webhook) Notify(ctx context.Context, summary domain.Summary, groups []domain.Group) error {
	payload, err := json.Marshal(webhookPayload{Text: BuildBody(summary, groups, w.maxGroups)})
	if err != nil {
		return fmt.Errorf("could not marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("could not create webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return serrors.Wrap(serrors.ErrUnavailable, err, "could not deliver webhook")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return serrors.With(serrors.ErrUnavailable, "webhook answered with status %d", resp.StatusCode)
	}

	return nil
}
