package testutil

import (
	"context"
	"testing"
	"time"
)

// DeadlineBuffer is kept between a derived context's deadline and the test
// binary's own deadline, so a timed-out run still reports its result.
const DeadlineBuffer = 5 * time.Second

// ContextWithTestDeadline returns a context that expires DeadlineBuffer
// before the test deadline. Without a usable test deadline it expires
// after fallback.
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	if deadline, ok := t.Deadline(); ok {
		if d := deadline.Add(-DeadlineBuffer); time.Until(d) > 0 {
			return context.WithDeadline(context.Background(), d)
		}
	}
	return context.WithTimeout(context.Background(), fallback)
}

// ContextWithTimeout bounds a blocking call, such as an animated run or a
// CLI subprocess, to d. The context is cancelled when the test ends.
func ContextWithTimeout(t *testing.T, d time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), d)
	t.Cleanup(cancel)
	return ctx, cancel
}
