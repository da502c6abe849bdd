// Package restcountries is a client for the REST Countries v2 API. Each method maps to
// one fixed endpoint, normalizes its arguments and decodes the JSON response.
package restcountries

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samvad-hq/restcountries-go/pkg/httpclient"
)

// DefaultBaseURL is used when New is given an empty base URL.
const DefaultBaseURL = "https://restcountries.eu/rest/v2"

// Client issues requests against a single API base URL. It holds no mutable state and
// is safe for concurrent use.
type Client struct {
	http    httpclient.Client
	baseURL string
	log     Logger
}

// New creates a Client for baseURL, or DefaultBaseURL when baseURL is empty.
func New(baseURL string, opts ...Option) *Client {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	var s settings
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	transport := s.httpClient
	if transport == nil {
		transport = httpclient.NewRestyClient(httpclient.Options{
			BaseURL:   baseURL,
			Timeout:   s.timeout,
			UserAgent: s.userAgent,
		})
	}

	return &Client{
		http:    transport,
		baseURL: baseURL,
		log:     ensureLogger(s.log),
	}
}

// BaseURL returns the API base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Do issues req and returns the raw response body.
func (c *Client) Do(ctx context.Context, req Request) ([]byte, error) {
	if c == nil || c.http == nil {
		return nil, fmt.Errorf("restcountries client is not initialized")
	}

	c.log.DebugObj("restcountries request", "request", map[string]any{
		"operation": req.Operation,
		"url":       req.URL(c.baseURL),
	})

	resp, err := c.http.Get(ctx, req.Path, req.Query)
	if err != nil {
		c.log.WarnObj("restcountries request failed", "request_error", map[string]any{
			"operation": req.Operation,
			"url":       req.URL(c.baseURL),
			"status":    httpclient.StatusCode(err),
			"error":     err.Error(),
		})
		return nil, err
	}
	return resp.Body(), nil
}

// getJSON issues req and decodes the body into Output.
func getJSON[Output any](ctx context.Context, c *Client, req Request, buildErr error) (Output, error) {
	var out Output
	if buildErr != nil {
		return out, buildErr
	}

	body, err := c.Do(ctx, req)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, fmt.Errorf("decode %s response: %w", req.Operation, err)
	}
	return out, nil
}
