package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// ResponseError is returned when the upstream answered with a status >= 400.
type ResponseError struct {
	Method string
	URL    string
	Status int
	Body   []byte
}

func newResponseError(resp *resty.Response) *ResponseError {
	e := &ResponseError{Status: resp.StatusCode(), Body: resp.Body()}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = resp.Request.URL
	}
	return e
}

// Error implements the error interface.
func (e *ResponseError) Error() string {
	return fmt.Sprintf("%s %s: HTTP %d", e.Method, e.URL, e.Status)
}

// ServerMessage returns the "message" field of a JSON error body, or "" when
// the body has none.
func (e *ResponseError) ServerMessage() string {
	var body struct {
		Message any `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &body); err != nil {
		return ""
	}
	if s, ok := body.Message.(string); ok {
		return s
	}
	return ""
}

// NetworkError is returned when a request was sent but no response arrived:
// connection refused, DNS failure, timeout.
type NetworkError struct {
	Method string
	URL    string
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s %s: no response: %v", e.Method, e.URL, e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error { return e.Err }

// StatusCode reports the upstream status carried by err, if any.
func StatusCode(err error) (int, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr.Status, true
	}
	return 0, false
}

// IsNotFound reports whether err is an upstream 404.
func IsNotFound(err error) bool {
	status, ok := StatusCode(err)
	return ok && status == http.StatusNotFound
}

// IsNetwork reports whether err is a no-response failure.
func IsNetwork(err error) bool {
	var netErr *NetworkError
	return errors.As(err, &netErr)
}
