// Package rest is the shared HTTP client used by every upstream adapter:
// one GET, a bounded timeout, JSON decoding, and status-code inspection.
// Transport treats every HTTP status as a completed exchange; failures are
// judged by status code, not transport exceptions.
package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const userAgent = "mission-briefing/1.0"

// maxErrorBody bounds how much of an error response is kept for diagnostics.
const maxErrorBody = 512

// StatusError reports an HTTP response with status >= 400.
type StatusError struct {
	Status int
	Body   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d: %s", e.Status, e.Body)
}

// StatusFromError extracts the HTTP status from an error chain, or 0 when
// no status was obtained.
func StatusFromError(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// Client is a GET-JSON client bound to one base URL.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the given base URL with a per-request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// GetJSON performs one GET against baseURL+path and decodes the JSON body
// into v. A status >= 400 is returned as a *StatusError carrying a bounded
// copy of the response body. The returned status is 0 when no response was
// obtained.
func (c *Client) GetJSON(ctx context.Context, path string, params url.Values, v any) (int, error) {
	fullURL := c.baseURL + path
	if len(params) > 0 {
		fullURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, &StatusError{
			Status: resp.StatusCode,
			Body:   strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}
