package httpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 15 * time.Second

// Options configures a RestyClient.
type Options struct {
	BaseURL   string
	Timeout   time.Duration
	UserAgent string
	Accept    string
	// Success reports whether a status code counts as success. Defaults to OnlyOK.
	Success func(status int) bool
}

// RestyClient adapts resty.Client to the httpclient.Client interface.
type RestyClient struct {
	client  *resty.Client
	success func(status int) bool
}

// NewRestyClient creates a new RestyClient bound to opts.BaseURL.
func NewRestyClient(opts Options) *RestyClient {
	success := opts.Success
	if success == nil {
		success = OnlyOK
	}
	return &RestyClient{
		client:  newRestyBaseClient(opts),
		success: success,
	}
}

// OnlyOK is the default success predicate: HTTP 200 and nothing else.
func OnlyOK(status int) bool { return status == http.StatusOK }

// newRestyBaseClient creates a new resty.Client from the given options.
func newRestyBaseClient(opts Options) *resty.Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	c := resty.New()
	c.SetTimeout(timeout)
	if base := strings.TrimSpace(opts.BaseURL); base != "" {
		c.SetBaseURL(strings.TrimRight(base, "/"))
	}
	if opts.UserAgent != "" {
		c.SetHeader("User-Agent", opts.UserAgent)
	}
	accept := opts.Accept
	if accept == "" {
		accept = "application/json"
	}
	c.SetHeader("Accept", accept)
	return c
}

// BaseURL returns the base URL requests are resolved against.
func (r *RestyClient) BaseURL() string {
	return r.client.BaseURL
}

// Get performs an HTTP GET for path with the given query parameters.
// Responses rejected by the success predicate are returned as *StatusError.
func (r *RestyClient) Get(ctx context.Context, path string, query url.Values) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if len(query) > 0 {
		req.SetQueryParamsFromValues(query)
	}

	resp, err := req.Get(path)
	if err != nil {
		return nil, fmt.Errorf("http get %s: %w", path, err)
	}
	if !r.success(resp.StatusCode()) {
		return nil, NewStatusError(resp.StatusCode(), resp.Request.URL, resp.Body())
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte    { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int { return r.resp.StatusCode() }

// NewRestyHTTPClient exposes a configured resty.Client for callers needing custom verbs.
func NewRestyHTTPClient(timeout time.Duration) *resty.Client {
	return newRestyBaseClient(Options{Timeout: timeout})
}
