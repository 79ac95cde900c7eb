package webapp

import (
	"net/http"
	"runtime/debug"

	"github.com/blogfront/blogfront/client/errmsg"
)

// recoverPanics intercepts panics from downstream handlers, logs details, and
// renders the 500 page.
func (a *App) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				a.deps.Log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Str("remote", r.RemoteAddr).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")
				a.errorPage(w, r, http.StatusInternalServerError, errmsg.MsgInternalError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
