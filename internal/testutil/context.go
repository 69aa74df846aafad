package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout covers one lock-load-save cycle on a slow CI disk.
const DefaultTimeout = 5 * time.Second

// Context bounds catalog locking in tests. The timeout is clamped so a stuck
// lock fails the test with a deadline error before go test kills the binary.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), clampTimeout(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

func clampTimeout(t testing.TB, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	bounded, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return timeout
	}
	deadline, ok := bounded.Deadline()
	if !ok {
		return timeout
	}
	if left := time.Until(deadline) - time.Second; left > 0 && left < timeout {
		return left
	}
	return timeout
}
