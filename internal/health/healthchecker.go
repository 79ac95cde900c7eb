// Package health tracks whether the upstream blog API is reachable.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// HealthChecker is implemented by component-level checkers.
type HealthChecker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// HealthPinger performs one check. It returns nil when the component is healthy.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}

// PingFunc adapts a function to HealthPinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) HealthPing(ctx context.Context) error { return f(ctx) }

// ServiceHealthChecker aggregates component checkers into a single service health flag.
type ServiceHealthChecker struct {
	healthy atomic.Int32
	deps    []HealthChecker
	log     zerolog.Logger
}

func NewServiceHealthChecker(log zerolog.Logger, deps ...HealthChecker) *ServiceHealthChecker {
	h := &ServiceHealthChecker{deps: deps, log: log}
	h.healthy.Store(0)
	return h
}

// IsHealthy returns cached service health.
func (h *ServiceHealthChecker) IsHealthy() bool { return h.healthy.Load() == 1 }

// Snapshot re-evaluates every dependency and returns the service flag
// together with the component states it was computed from.
func (h *ServiceHealthChecker) Snapshot() (bool, map[string]bool) {
	components := make(map[string]bool, len(h.deps))
	cur := int32(1)
	for _, c := range h.deps {
		ok := c.IsHealthy()
		components[c.Name()] = ok
		if !ok {
			cur = 0
		}
	}
	if prev := h.healthy.Swap(cur); prev != cur {
		if cur == 1 {
			h.log.Info().Msg("service health: UP")
		} else {
			h.log.Error().Msg("service health: DOWN")
		}
	}
	return cur == 1, components
}

// Start periodically evaluates dependency health and updates the service flag.
func (h *ServiceHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	h.Snapshot()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			h.Snapshot()
		}
	}
}
