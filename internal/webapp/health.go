package webapp

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/blogfront/blogfront/client"
)

// upstreamPinger pings the category endpoint. Any answer below 500 means the
// API is up, even when it rejects the request.
func upstreamPinger(cats *client.CategoryService) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		_, err := cats.Categories(ctx)
		var respErr *client.ResponseError
		if errors.As(err, &respErr) && respErr.Status < http.StatusInternalServerError {
			return nil
		}
		return err
	}
}

// healthz handles GET /healthz. It always returns 200; the body reports the
// current upstream state.
func (a *App) healthz(w http.ResponseWriter, r *http.Request) {
	status := "unknown"
	body := map[string]any{
		"timestamp": time.Now().Format(time.RFC3339),
		"upstream":  a.deps.Client.BaseURL(),
	}
	if a.deps.Health != nil {
		healthy, components := a.deps.Health.Snapshot()
		status = "unhealthy"
		if healthy {
			status = "healthy"
		}
		body["components"] = components
	}
	if a.deps.Upstream != nil {
		if msg := a.deps.Upstream.LastError(); msg != "" {
			body["error"] = msg
		}
	}
	body["status"] = status
	if err := WriteJSON(w, http.StatusOK, body); err != nil {
		a.deps.Log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
