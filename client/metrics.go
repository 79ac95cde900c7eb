package client

import (
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "blogfront_client",
			Name:      "requests_total",
			Help:      "Upstream API requests by method and outcome.",
		},
		[]string{"method", "status"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "blogfront_client",
			Name:      "request_duration_seconds",
			Help:      "Upstream API request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method"},
	)
)

// observeRequest records one finished call. The status label is the HTTP
// code when a response arrived, "network" for no-response failures and
// "error" for everything else.
func observeRequest(method string, resp *resty.Response, err error, elapsed time.Duration) {
	status := "error"
	switch {
	case resp != nil && resp.StatusCode() > 0:
		status = strconv.Itoa(resp.StatusCode())
	case IsNetwork(err):
		status = "network"
	}
	requestsTotal.WithLabelValues(method, status).Inc()
	requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}
