package health

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"
)

// WaitForUpstream blocks until pinger succeeds or timeout elapses, probing with
// exponential backoff. It is used once at startup; page requests never retry.
func WaitForUpstream(ctx context.Context, pinger HealthPinger, timeout time.Duration, log zerolog.Logger) error {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = 200 * time.Millisecond
	exp.Multiplier = 2
	exp.MaxInterval = 5 * time.Second
	exp.MaxElapsedTime = timeout
	exp.Reset()

	attempts := 0
	op := func() error {
		attempts++
		checkCtx, cancel := context.WithTimeout(ctx, DefaultCheckTimeout)
		defer cancel()
		return pinger.HealthPing(checkCtx)
	}
	notify := func(err error, wait time.Duration) {
		log.Warn().Err(err).Int("attempt", attempts).Dur("retry_in", wait).Msg("upstream not ready")
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(exp, ctx), notify); err != nil {
		return fmt.Errorf("upstream not ready after %d attempts: %w", attempts, err)
	}
	log.Info().Int("attempts", attempts).Msg("upstream ready")
	return nil
}
