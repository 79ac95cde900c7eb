package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is used when no API base URL is configured.
	DefaultBaseURL = "http://localhost:3000"

	// DefaultTimeout bounds every upstream request.
	DefaultTimeout = 10 * time.Second

	// RequestIDHeader carries a per-request UUID to the upstream API.
	RequestIDHeader = "X-Request-ID"
)

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is the shared HTTP client for the blog API. It owns the base URL,
// timeout and default headers, and runs request/response interceptors around
// every call. It never retries: any failure goes straight back to the caller.
type Client struct {
	baseURL string
	http    *http.Client
	rest    *resty.Client
	log     zerolog.Logger

	authToken            string
	requestInterceptors  []RequestInterceptor
	responseInterceptors []ResponseInterceptor
}

// New constructs a Client for baseURL. An empty baseURL falls back to
// DefaultBaseURL. Additional options can be provided via functional arguments.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q", baseURL)
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     zerolog.Nop(),
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	c.rest = resty.NewWithClient(c.http).
		SetBaseURL(c.baseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(c.http.Timeout).
		SetLogger(restyLogger{log: c.log})
	c.rest.OnBeforeRequest(c.interceptRequest)
	c.rest.OnAfterResponse(c.interceptResponse)

	return c, nil
}

// BaseURL returns the normalized upstream base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Get issues a GET for path, substituting {name} placeholders from
// pathParams. Parameter values are percent-encoded.
func (c *Client) Get(ctx context.Context, path string, pathParams map[string]string) (*resty.Response, error) {
	return c.do(ctx, http.MethodGet, path, pathParams, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, pathParams map[string]string, body any) (*resty.Response, error) {
	return c.do(ctx, http.MethodPost, path, pathParams, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, pathParams map[string]string, body any) (*resty.Response, error) {
	return c.do(ctx, http.MethodPut, path, pathParams, body)
}

func (c *Client) do(ctx context.Context, method, path string, pathParams map[string]string, body any) (*resty.Response, error) {
	req := c.rest.R().SetContext(ctx)
	if len(pathParams) > 0 {
		req.SetPathParams(pathParams)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		err = classifyTransportError(ctx, method, c.baseURL+path, err)
	}
	for _, intercept := range c.responseInterceptors {
		err = intercept(resp, err)
	}
	observeRequest(method, resp, err, time.Since(start))

	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("upstream request failed")
		return resp, err
	}
	return resp, nil
}

// interceptRequest is the outgoing hook. It stamps a request ID, attaches the
// bearer token when one is configured, then runs caller interceptors in order.
func (c *Client) interceptRequest(_ *resty.Client, req *resty.Request) error {
	req.SetHeader(RequestIDHeader, uuid.NewString())
	if c.authToken != "" {
		req.SetHeader("Authorization", "Bearer "+c.authToken)
	}
	for _, intercept := range c.requestInterceptors {
		if err := intercept(req); err != nil {
			return err
		}
	}
	return nil
}

// interceptResponse rejects every non-success status, the way a browser
// client treats anything outside 2xx.
func (c *Client) interceptResponse(_ *resty.Client, resp *resty.Response) error {
	if resp.IsError() {
		return newResponseError(resp)
	}
	return nil
}

// classifyTransportError wraps failures where the request went out but no
// response came back. Caller cancellation and interceptor errors pass through.
func classifyTransportError(ctx context.Context, method, target string, err error) error {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return err
	}
	if ctx.Err() != nil {
		return err
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &NetworkError{Method: method, URL: target, Err: err}
	}
	return err
}
