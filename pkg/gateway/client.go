// Package gateway fetches daily records from the backend record endpoint and
// translates non-success responses into typed failures.
package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/XolaniXAD/cosmic-calendar/pkg/record"
)

const userAgent = "cosmic-calendar/0.1"

// Client fetches records over HTTP. The zero value is not usable; construct
// with New.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying transport, mostly for tests and for
// callers that want their own timeout policy.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// New creates a Client against the given base URL. A bare host:port is
// accepted and defaults to http.
func New(base string, opts ...Option) (*Client, error) {
	base = strings.TrimRight(base, "/")
	if base == "" {
		return nil, fmt.Errorf("gateway: base URL required")
	}
	if !strings.Contains(base, "://") {
		base = "http://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("gateway: parse base URL: %w", err)
	}
	c := &Client{
		baseURL: base,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Fetch retrieves the record for the given date. An empty date asks for the
// most recent record. Upstream is trusted for field shape; nothing beyond the
// JSON decode is validated here.
func (c *Client) Fetch(ctx context.Context, date string) (*record.Record, error) {
	u := c.baseURL + "/api/record"
	if date != "" {
		u += "?date=" + url.QueryEscape(date)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return nil, ErrInvalidDate
	case resp.StatusCode == http.StatusUnauthorized:
		return nil, ErrAuth
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &UpstreamError{Status: resp.StatusCode}
	}

	var r record.Record
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("gateway: decode response: %w", err)
	}
	return &r, nil
}
