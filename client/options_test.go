package client

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func TestWithHTTPClientAndDebugLogging(t *testing.T) {
	// timeout option sets http timeout
	c := &Client{http: &http.Client{}}
	if err := WithHTTPTimeout(5 * time.Second)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.http.Timeout != 5*time.Second {
		t.Fatalf("http timeout not set")
	}
	if err := WithHTTPTimeout(0)(c); err == nil {
		t.Fatalf("expected error for zero timeout")
	}

	// debug logging wraps transport and still reaches the base transport
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: 200, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c2, err := New("http://example.com", WithHTTPClient(&http.Client{Transport: rt}), WithDebugLogging(true))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, ok := c2.http.Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed")
	}

	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://example.com", strings.NewReader(""))
	if _, err := c2.http.Do(req); err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if !called {
		t.Fatalf("base transport not invoked")
	}
}

func TestWithHTTPClient_DefaultsTimeout(t *testing.T) {
	hc := &http.Client{}
	c, err := New("http://example.com", WithHTTPClient(hc))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.http != hc || hc.Timeout != DefaultTimeout {
		t.Fatalf("expected supplied client with default timeout, got %v", hc.Timeout)
	}
	if _, err := New("http://example.com", WithHTTPClient(nil)); err == nil {
		t.Fatalf("expected error for nil http client")
	}
}

func TestNilInterceptorsRejected(t *testing.T) {
	if _, err := New("http://example.com", WithRequestInterceptor(nil)); err == nil {
		t.Fatalf("expected error for nil request interceptor")
	}
	if _, err := New("http://example.com", WithResponseInterceptor(nil)); err == nil {
		t.Fatalf("expected error for nil response interceptor")
	}
}
