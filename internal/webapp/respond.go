package webapp

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/client/errmsg"
	"github.com/blogfront/blogfront/internal/views"
)

// statusFor picks the page status for a failed upstream call: the upstream
// status when it answered with an error, 502 when nothing came back, 500 for
// anything else.
func statusFor(err error) int {
	if status, ok := client.StatusCode(err); ok && status >= 400 && status < 600 {
		return status
	}
	if client.IsNetwork(err) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// fail renders the error page for err. A request whose client has gone away
// gets no response.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error, defaultMsg string) {
	if r.Context().Err() != nil {
		a.deps.Log.Debug().Err(err).Str("path", r.URL.Path).Msg("request canceled")
		return
	}
	status := statusFor(err)
	level := zerolog.ErrorLevel
	if client.IsNotFound(err) {
		level = zerolog.WarnLevel
	}
	a.deps.Log.WithLevel(level).Err(err).Int("status", status).Str("path", r.URL.Path).Msg("upstream request failed")
	msg := errmsg.Message(err, defaultMsg)
	a.report.Report(msg, level)
	a.errorPage(w, r, status, msg)
}

func (a *App) errorPage(w http.ResponseWriter, r *http.Request, status int, msg string) {
	a.render(w, r, status, views.PageError, views.ErrorPage{Status: status, Message: msg})
}

func (a *App) notFound(w http.ResponseWriter, r *http.Request) {
	a.errorPage(w, r, http.StatusNotFound, errmsg.MsgNotFound)
}

// render writes a page. A template failure becomes a plain 500.
func (a *App) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	rw := &bufferedHeader{ResponseWriter: w, status: status}
	if err := a.deps.Views.Render(rw, page, data); err != nil {
		a.deps.Log.Error().Err(err).Str("page", page).Str("path", r.URL.Path).Msg("render failed")
		http.Error(w, errmsg.MsgInternalError, http.StatusInternalServerError)
	}
}

// bufferedHeader delays WriteHeader until the first body write so a failed
// render can still choose its own status.
type bufferedHeader struct {
	http.ResponseWriter
	status  int
	written bool
}

func (b *bufferedHeader) Write(p []byte) (int, error) {
	if !b.written {
		b.written = true
		b.ResponseWriter.WriteHeader(b.status)
	}
	return b.ResponseWriter.Write(p)
}

// WriteJSON writes a JSON response with the given status code
func WriteJSON(w http.ResponseWriter, statusCode int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}
