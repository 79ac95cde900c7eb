package webapp

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/blogfront/blogfront/client"
	"github.com/blogfront/blogfront/client/errmsg"
)

// newAPIProxy forwards /api/* unchanged to the upstream API, so browser code
// can call the API on the site's own origin.
func newAPIProxy(baseURL string, log zerolog.Logger) (http.Handler, error) {
	target, err := url.Parse(baseURL)
	if err != nil || target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("invalid proxy target %q", baseURL)
	}
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if pr.Out.Header.Get(client.RequestIDHeader) == "" {
				pr.Out.Header.Set(client.RequestIDHeader, uuid.NewString())
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			log.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("api proxy failed")
			if werr := WriteJSON(w, http.StatusBadGateway, map[string]any{
				"code":    http.StatusBadGateway,
				"message": errmsg.MsgNetworkFailure,
			}); werr != nil {
				log.Error().Err(werr).Msg("Failed to encode JSON response")
			}
		},
	}, nil
}
