package restcountries

import (
	"net/url"
	"time"

	"github.com/samvad-hq/restcountries-go/pkg/httpclient"
)

// Option configures a Client at construction time.
type Option func(*settings)

type settings struct {
	httpClient httpclient.Client
	timeout    time.Duration
	userAgent  string
	log        Logger
}

// WithHTTPClient injects the transport. The transport is used as-is, so it must already
// be bound to the base URL.
func WithHTTPClient(client httpclient.Client) Option {
	return func(s *settings) { s.httpClient = client }
}

// WithTimeout sets the per-request timeout of the default transport.
func WithTimeout(timeout time.Duration) Option {
	return func(s *settings) { s.timeout = timeout }
}

// WithUserAgent sets the User-Agent header of the default transport.
func WithUserAgent(ua string) Option {
	return func(s *settings) { s.userAgent = ua }
}

// WithLogger routes request diagnostics to log.
func WithLogger(log Logger) Option {
	return func(s *settings) { s.log = log }
}

// RequestOption modifies a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	fields Fields
}

// WithFields limits the response to the named fields. A single name is a one-element filter.
func WithFields(names ...string) RequestOption {
	return func(o *requestOptions) { o.fields = append(o.fields, names...) }
}

// WithFieldFilter applies a prepared Fields value.
func WithFieldFilter(fields Fields) RequestOption {
	return WithFields(fields...)
}

// queryFor resolves opts into a fresh query. Each call gets its own values, so the
// field filter is normalized exactly once per request.
func queryFor(opts []RequestOption) (url.Values, error) {
	var ro requestOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&ro)
		}
	}

	query := url.Values{}
	fields, err := ro.fields.normalize()
	if err != nil {
		return nil, err
	}
	if fields != "" {
		query.Set(paramFields, fields)
	}
	return query, nil
}
