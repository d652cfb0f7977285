// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Wait blocks until the duration elapses, a value arrives on signal, or the
// context is done. A nil signal channel is never ready.
func Wait(ctx context.Context, d time.Duration, signal <-chan struct{}) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-signal:
		return nil
	case <-timer.C:
		return nil
	}
}
