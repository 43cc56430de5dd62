// Package apiclient is the web tier's bridge to the API tier: one generic
// Send call turns a request description into a decoded result of any type.
package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	errEmptyBody = errors.New("empty response body")
	errNullBody  = errors.New("null response body")
)

// Method is one of the verbs the API tier exposes.
type Method string

const (
	GET    Method = http.MethodGet
	POST   Method = http.MethodPost
	PUT    Method = http.MethodPut
	PATCH  Method = http.MethodPatch
	DELETE Method = http.MethodDelete
)

// Valid reports whether m is a supported verb.
func (m Method) Valid() bool {
	switch m {
	case GET, POST, PUT, PATCH, DELETE:
		return true
	}
	return false
}

// Request describes one call. It is built per call and consumed once.
type Request struct {
	Method Method
	// URL is the fully-qualified endpoint.
	URL string
	// Body is serialized as JSON when non-nil.
	Body any
	// Token is sent as a bearer credential when non-empty.
	Token string
	// ContentType overrides the body media type, e.g. application/json-patch+json.
	ContentType string
}

// Client issues requests over an HTTP transport. It keeps no per-call state
// and is safe for concurrent use.
type Client struct {
	http *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// New returns a Client whose transport is traced with otelhttp. No timeout
// is imposed beyond what the transport itself enforces.
func New(opts ...Option) *Client {
	cl := &Client{
		http: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
	}
	for _, o := range opts {
		o(cl)
	}
	return cl
}

// Send performs req and decodes the response body into R.
//
// The status code is not interpreted: a non-2xx response whose body decodes
// into R is returned normally. Failures to complete the call are
// *TransportError; bodies that do not decode into R are *DecodeError and no
// partial value is returned. A 204 response yields the zero R.
func Send[R any](ctx context.Context, c *Client, req Request) (R, error) {
	var zero R

	if !req.Method.Valid() {
		return zero, fmt.Errorf("apiclient: unsupported method %q", req.Method)
	}

	var body io.Reader
	if req.Body != nil {
		b, err := json.Marshal(req.Body)
		if err != nil {
			return zero, fmt.Errorf("apiclient: encode %s %s body: %w", req.Method, req.URL, err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, string(req.Method), req.URL, body)
	if err != nil {
		return zero, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		ct := req.ContentType
		if ct == "" {
			ct = "application/json"
		}
		httpReq.Header.Set("Content-Type", ct)
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return zero, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return zero, &TransportError{Method: req.Method, URL: req.URL, Err: err}
	}
	if resp.StatusCode == http.StatusNoContent {
		return zero, nil
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return zero, &DecodeError{Method: req.Method, URL: req.URL, StatusCode: resp.StatusCode, Err: errEmptyBody}
	}
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return zero, &DecodeError{Method: req.Method, URL: req.URL, StatusCode: resp.StatusCode, Body: raw, Err: errNullBody}
	}

	var out R
	if err := json.Unmarshal(raw, &out); err != nil {
		return zero, &DecodeError{Method: req.Method, URL: req.URL, StatusCode: resp.StatusCode, Body: raw, Err: err}
	}
	return out, nil
}
