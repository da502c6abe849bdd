package httpclient

import (
	"context"
	"net/url"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP calls so callers can inject mocks or different transports.
// Implementations resolve path against their configured base URL and only hand back
// responses that satisfy their success predicate.
type Client interface {
	Get(ctx context.Context, path string, query url.Values) (Response, error)
}
