// Package fetch retrieves score sheets over HTTP. Sheets live as static
// files behind a plain web server; only network transports are supported.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Default fetch configuration constants.
const (
	defaultTimeout = 15 * time.Second
)

// TextFetcher retrieves the raw text body of a URL. Implementations must
// treat a non-2xx response as an error.
type TextFetcher interface {
	// FetchText performs a GET and returns the response body as text,
	// honoring ctx for cancellation.
	FetchText(ctx context.Context, url string) (string, error)
}

// Client implements TextFetcher over net/http.
type Client struct {
	client *http.Client
}

// NewClient creates a fetch client with configuration options.
func NewClient(opts ...Option) *Client {
	c := &Client{
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchText performs a GET and returns the body as a string. Any non-2xx
// status is reported as ErrStatus; transport failures as ErrUnreachable.
func (c *Client) FetchText(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request for %s: %w", url, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrUnreachable, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return "", fmt.Errorf("%w: %s returned %d", ErrStatus, url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read body of %s: %v", ErrUnreachable, url, err)
	}
	return string(body), nil
}
