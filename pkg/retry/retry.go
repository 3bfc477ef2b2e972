package retry

import (
	"context"
	"time"
)

// BackoffFunc returns how long to sleep after the given zero-based attempt.
type BackoffFunc func(attempt int) time.Duration

// Exponential doubles the base delay on every attempt: base * 2^attempt.
func Exponential(base time.Duration) BackoffFunc {
	return func(attempt int) time.Duration {
		return base << uint(attempt)
	}
}

// None disables backoff, useful in tests.
func None() BackoffFunc {
	return func(int) time.Duration { return 0 }
}

// Do runs fn up to maxAttempts times, sleeping backoff(attempt) between
// failures. The last error is returned once attempts are exhausted. The sleep
// is interruptible by the context.
func Do(ctx context.Context, maxAttempts int, backoff BackoffFunc, fn func() error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if attempt == maxAttempts-1 {
			break
		}
		if delay := backoff(attempt); delay > 0 {
			timer := time.NewTimer(delay)
			select {
			case <-ctx.Done():
				timer.Stop()
				return ctx.Err()
			case <-timer.C:
			}
		}
	}
	return err
}
