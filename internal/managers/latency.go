package managers

import (
	"context"
	"time"
)

// simulateLatency stands in for the network round trip the demo does
// not have. A zero duration returns immediately, which is what tests
// configure.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
