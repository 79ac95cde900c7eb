package webapp

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pageRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blogfront_web",
			Name:      "requests_total",
			Help:      "Page requests by route and status code.",
		},
		[]string{"route", "code"},
	)

	pageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blogfront_web",
			Name:      "request_duration_seconds",
			Help:      "Page request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// instrument records named routes only; the label is the view name.
func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := mux.CurrentRoute(r)
		name := ""
		if route != nil {
			name = route.GetName()
		}
		if name == "" {
			next.ServeHTTP(w, r)
			return
		}
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		pageRequests.WithLabelValues(name, strconv.Itoa(rec.status)).Inc()
		pageDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
	})
}
