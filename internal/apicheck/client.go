// Package apicheck exercises a running analytics API end to end and reports
// which endpoints answered as expected.
package apicheck

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

	"github.com/liamashdown/flowintel/internal/ratelimit"
)

// ErrUnexpectedStatus is returned when the API answers with a status other than expected
var ErrUnexpectedStatus = errors.New("unexpected status")

const bodySnippetLen = 200

// Client calls the API under test
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
}

// NewClient creates a client for the API rooted at baseURL. rps <= 0 disables pacing.
func NewClient(baseURL string, rps float64, timeout time.Duration) *Client {
	limiter := ratelimit.Unlimited()
	if rps > 0 {
		limiter = ratelimit.New(rps, 1)
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/api",
		httpClient: &http.Client{Timeout: timeout},
		limiter:    limiter,
	}
}

// BaseURL is the API prefix requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get requests endpoint with params and decodes the body into out when the
// status equals want. It returns the status received.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, want int, out any) (int, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, fmt.Errorf("rate limit wait: %w", err)
	}

	u, err := url.Parse(c.baseURL + "/" + strings.TrimLeft(endpoint, "/"))
	if err != nil {
		return 0, fmt.Errorf("parse URL: %w", err)
	}
	if len(params) > 0 {
		u.RawQuery = params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, bodySnippetLen))
		return resp.StatusCode, fmt.Errorf("%w: expected %d, got %d: %s", ErrUnexpectedStatus, want, resp.StatusCode, string(body))
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}
