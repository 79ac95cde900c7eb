package client

import "github.com/go-resty/resty/v2"

// RequestInterceptor runs on every outgoing request before it is sent.
// Returning an error aborts the request; the error reaches the caller as-is.
type RequestInterceptor func(req *resty.Request) error

// ResponseInterceptor runs on every completed call. resp is nil when no
// response was received. The returned error replaces err, so an interceptor
// that only observes must return err unchanged.
type ResponseInterceptor func(resp *resty.Response, err error) error
