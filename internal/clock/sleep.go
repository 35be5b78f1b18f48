// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
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

// NextSlot returns the first unix second strictly after now whose low bits under mask are zero.
func NextSlot(now time.Time, mask uint32) time.Time {
	sec := uint32(now.Unix()) + 1
	if rem := sec & mask; rem != 0 {
		sec += mask + 1 - rem
	}
	return time.Unix(int64(sec), 0)
}

// UntilNextSlot is the wait from now to NextSlot.
func UntilNextSlot(now time.Time, mask uint32) time.Duration {
	return NextSlot(now, mask).Sub(now)
}
