// Package errmsg turns failed API calls into messages fit for display.
//
// Message is the single place where upstream errors become user-facing text.
// Callers decide where the text goes.
package errmsg

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
)

// DefaultMessage is used when the caller passes no default of its own.
const DefaultMessage = "operation failed"

// Fixed messages for the status codes the site knows how to explain.
const (
	MsgBadRequest     = "bad request params"
	MsgUnauthorized   = "unauthorized, please re-login"
	MsgForbidden      = "insufficient permission"
	MsgNotFound       = "resource not found"
	MsgInternalError  = "internal server error"
	MsgNetworkFailure = "network connection failed"
)

var statusMessages = map[int]string{
	http.StatusBadRequest:          MsgBadRequest,
	http.StatusUnauthorized:        MsgUnauthorized,
	http.StatusForbidden:           MsgForbidden,
	http.StatusNotFound:            MsgNotFound,
	http.StatusInternalServerError: MsgInternalError,
}

// Message returns the display text for err. It never panics and always
// returns a non-empty string.
//
//  1. upstream answered: known status codes map to fixed text; any other
//     status uses the body's "message" field, else defaultMsg
//  2. request sent but no response: MsgNetworkFailure
//  3. anything else: err.Error(), else defaultMsg
func Message(err error, defaultMsg string) string {
	if defaultMsg == "" {
		defaultMsg = DefaultMessage
	}
	if err == nil {
		return defaultMsg
	}

	var respErr *client.ResponseError
	if errors.As(err, &respErr) {
		if msg, ok := statusMessages[respErr.Status]; ok {
			return msg
		}
		if msg := respErr.ServerMessage(); msg != "" {
			return msg
		}
		return defaultMsg
	}

	var netErr *client.NetworkError
	if errors.As(err, &netErr) {
		return MsgNetworkFailure
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return defaultMsg
}

// Reporter echoes displayed messages to the log during development. In
// production it is silent; the message has already been shown to the user.
type Reporter struct {
	log   zerolog.Logger
	quiet bool
}

// NewReporter returns a Reporter writing to log. production silences it.
func NewReporter(log zerolog.Logger, production bool) Reporter {
	return Reporter{log: log, quiet: production}
}

// Report writes msg to the log at level unless the reporter is quiet.
func (r Reporter) Report(msg string, level zerolog.Level) {
	if r.quiet {
		return
	}
	r.log.WithLevel(level).Str("kind", "api").Msg(msg)
}
