package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// Option configures a Client during construction in New.
//
// Options are applied before the resty client is built, so transport-related
// options (like debug logging) end up underneath resty's own middleware.
type Option func(*Client) error

// WithHTTPTimeout overrides DefaultTimeout. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client. A zero Timeout on hc is
// replaced with DefaultTimeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		if hc.Timeout == 0 {
			hc.Timeout = DefaultTimeout
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// dumped to the log when enabled is true. Do not enable in production: dumps
// include headers and bodies.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, already := c.http.Transport.(*debugTransport); !already {
				c.http.Transport = &debugTransport{base: c.http.Transport}
			}
		}
		return nil
	}
}

// WithAuthToken attaches "Authorization: Bearer <token>" to every request.
func WithAuthToken(token string) Option {
	return func(c *Client) error {
		c.authToken = token
		return nil
	}
}

// WithRequestInterceptor appends an outgoing-request hook.
func WithRequestInterceptor(f RequestInterceptor) Option {
	return func(c *Client) error {
		if f == nil {
			return fmt.Errorf("request interceptor must not be nil")
		}
		c.requestInterceptors = append(c.requestInterceptors, f)
		return nil
	}
}

// WithResponseInterceptor appends a response/error hook.
func WithResponseInterceptor(f ResponseInterceptor) Option {
	return func(c *Client) error {
		if f == nil {
			return fmt.Errorf("response interceptor must not be nil")
		}
		c.responseInterceptors = append(c.responseInterceptors, f)
		return nil
	}
}

// WithLogger sets the logger used for failed requests and resty warnings.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) error {
		c.log = log
		return nil
	}
}
