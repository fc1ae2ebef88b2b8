package notifiers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/daniacca/genchem/internal/genchem"
)

// EventHeader carries the event type on every webhook request.
const EventHeader = "X-Genchem-Event"

// WebhookNotifier posts chemistry events as JSON to a URL.
type WebhookNotifier struct {
	id      string
	url     string
	client  *http.Client
	headers http.Header
	events  []genchem.EventType
}

// WebhookOption customises a WebhookNotifier.
type WebhookOption func(*WebhookNotifier)

// WithHeader adds a header to every request, e.g. an auth token.
func WithHeader(key, value string) WebhookOption {
	return func(wn *WebhookNotifier) { wn.headers.Set(key, value) }
}

// WithTimeout bounds each delivery attempt. The default is 5s.
func WithTimeout(d time.Duration) WebhookOption {
	return func(wn *WebhookNotifier) { wn.client.Timeout = d }
}

// WithEvents restricts delivery to the given event types. Other events are
// accepted and dropped without a request.
func WithEvents(types ...genchem.EventType) WebhookOption {
	return func(wn *WebhookNotifier) { wn.events = types }
}

// NewWebhookNotifier creates a webhook notifier for url.
func NewWebhookNotifier(id, url string, opts ...WebhookOption) *WebhookNotifier {
	wn := &WebhookNotifier{
		id:      id,
		url:     url,
		client:  &http.Client{Timeout: 5 * time.Second},
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(wn)
	}
	return wn
}

func (wn *WebhookNotifier) ID() string   { return wn.id }
func (wn *WebhookNotifier) Type() string { return "webhook" }

// Wants reports whether events of type t are delivered.
func (wn *WebhookNotifier) Wants(t genchem.EventType) bool {
	return len(wn.events) == 0 || slices.Contains(wn.events, t)
}

// Notify posts event to the webhook URL. Any non-2xx answer is an error that
// includes the start of the response body.
func (wn *WebhookNotifier) Notify(ctx context.Context, event genchem.ChemistryEvent) error {
	if !wn.Wants(event.Type) {
		return nil
	}

	payload, err := event.JSON()
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, wn.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for key, values := range wn.headers {
		req.Header[key] = values
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(EventHeader, string(event.Type))

	resp, err := wn.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("webhook for chemistry %s returned status %d: %s",
			event.ChemistryID, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// Close is a no-op for webhooks.
func (wn *WebhookNotifier) Close() error {
	return nil
}
