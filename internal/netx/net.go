// Package netx builds the HTTP client used by the GraphQL transport.
package netx

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// ErrBadStatus is returned for a 4xx or 5xx response whose body is not JSON.
var ErrBadStatus = errors.New("unexpected response status")

// DecorateFunc adjusts an outbound request (headers only) before it is sent.
type DecorateFunc func(r *http.Request)

// DecoratingTransport applies Decorate to a clone of every request and
// hands it to Base. The caller's request is never mutated.
type DecoratingTransport struct {
	Base     http.RoundTripper
	Decorate DecorateFunc
}

func (t *DecoratingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	if t.Decorate != nil {
		r = r.Clone(r.Context())
		t.Decorate(r)
	}
	res, err := base.RoundTrip(r)
	if err != nil {
		return nil, err
	}
	return checkStatus(res)
}

// checkStatus passes responses below 400 through untouched, redirects
// included. A 4xx or 5xx passes only when its body is valid JSON, so GraphQL
// error payloads still reach the decoder.
func checkStatus(res *http.Response) (*http.Response, error) {
	if res.StatusCode < http.StatusBadRequest {
		return res, nil
	}
	body, err := io.ReadAll(res.Body)
	_ = res.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("%w: %s: reading body: %v", ErrBadStatus, res.Status, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%w: %s", ErrBadStatus, res.Status)
	}
	res.Body = io.NopCloser(bytes.NewReader(body))
	return res, nil
}

// NewHTTPClient returns a client with a cookie jar, so that cookies set by
// the backend are sent back, and with decorate applied to every request.
// A zero timeout means no client-side timeout.
func NewHTTPClient(timeout time.Duration, decorate DecorateFunc) (*http.Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("cookie jar: %w", err)
	}
	return &http.Client{
		Timeout:   timeout,
		Jar:       jar,
		Transport: &DecoratingTransport{Decorate: decorate},
	}, nil
}
