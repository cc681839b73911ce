// Package apiclient talks to the YNOT backend. Every request is bounded by a
// timeout and every failure comes back as a classified *Error.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

const DefaultTimeout = 30 * time.Second

// TokenSource supplies the bearer token for requests that carry no explicit
// token. An empty string means anonymous.
type TokenSource interface {
	Token() string
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func() string

func (f TokenFunc) Token() string { return f() }

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	baseURL *url.URL
	client  httpClient
	timeout time.Duration
	tokens  TokenSource
	log     *zap.Logger
}

type Option func(*Client)

func WithHTTPClient(hc httpClient) Option {
	return func(c *Client) { c.client = hc }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for the API rooted at baseURL, e.g.
// "http://localhost:8080/api".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("apiclient: parse base url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("apiclient: base url %q must be absolute", baseURL)
	}
	c := &Client{
		baseURL: u,
		client:  http.DefaultClient,
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Request describes one API call.
type Request struct {
	Method   string
	Endpoint string
	Query    url.Values
	Body     any
	// Token overrides the client's TokenSource when set.
	Token  string
	Header http.Header
}

// Do performs r and decodes a successful body into T. An empty successful
// body leaves T at its zero value. Any returned error is an *Error.
func Do[T any](ctx context.Context, c *Client, r Request) (T, error) {
	var out T
	body, err := c.roundTrip(ctx, r)
	if err != nil {
		return out, err
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(body, &out); err != nil {
		return out, &Error{Kind: KindDecode, Message: "invalid response body", Err: err}
	}
	return out, nil
}

func (c *Client) roundTrip(ctx context.Context, r Request) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, r)
	if err != nil {
		return nil, &Error{Kind: KindNetwork, Message: "build request", Err: err}
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		apiErr := classifyTransport(ctx, err)
		c.log.Debug("api request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.Redacted()),
			zap.Stringer("kind", apiErr.Kind),
			zap.Duration("duration", time.Since(start)),
			zap.Error(err))
		return nil, apiErr
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransport(ctx, err)
	}

	c.log.Debug("api request",
		zap.String("method", req.Method),
		zap.String("url", req.URL.Redacted()),
		zap.Int("status", resp.StatusCode),
		zap.Int("size", len(body)),
		zap.Duration("duration", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, newHTTPError(resp.StatusCode, body)
	}
	return body, nil
}

func (c *Client) newRequest(ctx context.Context, r Request) (*http.Request, error) {
	target, err := c.resolve(r.Endpoint, r.Query)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if r.Body != nil {
		data, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode body: %w", err)
		}
		body = bytes.NewReader(data)
	}

	method := r.Method
	if method == "" {
		method = http.MethodGet
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, err
	}
	for k, vs := range r.Header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	token := r.Token
	if token == "" && c.tokens != nil {
		token = c.tokens.Token()
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

// resolve joins the endpoint path onto the base URL. A query string inside
// the endpoint is kept and merged with query.
func (c *Client) resolve(endpoint string, query url.Values) (string, error) {
	ref, err := url.Parse(endpoint)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	if ref.Scheme != "" || ref.Host != "" {
		return "", fmt.Errorf("endpoint %q must be relative", endpoint)
	}

	u := c.baseURL.JoinPath(ref.Path)
	q := ref.Query()
	for k, vs := range query {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}

func classifyTransport(ctx context.Context, err error) *Error {
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(ctx.Err(), context.DeadlineExceeded):
		return &Error{Kind: KindTimeout, Message: "request timeout", Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Kind: KindTimeout, Message: "request canceled", Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &Error{Kind: KindTimeout, Message: "request timeout", Err: err}
	}
	return &Error{Kind: KindNetwork, Message: "network error", Err: err}
}
