package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// DefaultCheckTimeout bounds a check when none is configured.
const DefaultCheckTimeout = 2 * time.Second

// UpstreamHealthChecker checks the blog API on an interval.
type UpstreamHealthChecker struct {
	pinger       HealthPinger
	healthy      atomic.Int32
	lastErr      atomic.Pointer[string]
	log          zerolog.Logger
	checkTimeout time.Duration
}

// NewUpstreamHealthChecker starts unhealthy until the first successful check.
func NewUpstreamHealthChecker(pinger HealthPinger, log zerolog.Logger, checkTimeout time.Duration) *UpstreamHealthChecker {
	if checkTimeout <= 0 {
		checkTimeout = DefaultCheckTimeout
	}
	hc := &UpstreamHealthChecker{pinger: pinger, log: log, checkTimeout: checkTimeout}
	hc.healthy.Store(0)
	return hc
}

func (hc *UpstreamHealthChecker) Name() string { return "upstream" }

// IsHealthy returns the cached health status (non-blocking).
func (hc *UpstreamHealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

// LastError is the message of the most recent failed check, or "" after a success.
func (hc *UpstreamHealthChecker) LastError() string {
	if p := hc.lastErr.Load(); p != nil {
		return *p
	}
	return ""
}

// Check runs a single check and updates the cached state.
func (hc *UpstreamHealthChecker) Check(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, hc.checkTimeout)
	defer cancel()

	if err := hc.pinger.HealthPing(checkCtx); err != nil {
		msg := err.Error()
		hc.lastErr.Store(&msg)
		if hc.healthy.Swap(0) == 1 {
			hc.log.Error().Err(err).Str("checker", hc.Name()).Msg("upstream health check failed")
		}
		return false
	}
	hc.lastErr.Store(nil)
	hc.healthy.Store(1)
	return true
}

// Start checks immediately and then on every tick until ctx is done.
func (hc *UpstreamHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	hc.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			hc.Check(ctx)
		}
	}
}
