package httputil

import (
	"context"
	"errors"
	"math"
	"time"
)

// Default retry settings.
const (
	DefaultRetries = 4
	DefaultBase    = 0.8
	DefaultOffset  = 200 * time.Millisecond
)

// RetryableError wraps an error to indicate it should trigger a retry.
// Wrap transient failures (network timeouts, 429 and 5xx responses) with this
// type so that [Policy.Do] knows to attempt the operation again.
type RetryableError struct{ Err error }

func (e *RetryableError) Error() string { return e.Err.Error() }
func (e *RetryableError) Unwrap() error { return e.Err }

// IsRetryable reports whether err is marked as transient.
func IsRetryable(err error) bool {
	return errors.As(err, new(*RetryableError))
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Policy controls retries of a single operation.
type Policy struct {
	// Retries is the number of extra attempts after the first one.
	Retries int
	// Base is the exponential backoff base, in seconds.
	Base float64
	// Offset is added to every backoff delay.
	Offset time.Duration
	// Sleep replaces [Sleep], mainly for tests. Nil means [Sleep].
	Sleep SleepFunc
	// OnRetry, if set, is called before each backoff wait.
	OnRetry func(attempt int, delay time.Duration, err error)
}

// DefaultPolicy returns the policy used when nothing is configured.
func DefaultPolicy() Policy {
	return Policy{Retries: DefaultRetries, Base: DefaultBase, Offset: DefaultOffset}
}

// Attempts returns the total attempt budget, never less than one.
func (p Policy) Attempts() int {
	return max(p.Retries, 0) + 1
}

// Delay returns the wait after failed attempt n (zero-based).
func (p Policy) Delay(n int) time.Duration {
	secs := math.Pow(p.Base, float64(n))
	return time.Duration(math.Round(secs*float64(time.Second))) + p.Offset
}

// Do runs fn until it succeeds, returns a non-retryable error, or the attempt
// budget is spent. fn receives the zero-based attempt number. There is no
// wait after the final attempt. The last error is returned on exhaustion, or
// ctx.Err() if the context ends during a wait.
func (p Policy) Do(ctx context.Context, fn func(attempt int) error) error {
	sleep := p.Sleep
	if sleep == nil {
		sleep = Sleep
	}

	attempts := p.Attempts()
	var lastErr error
	for i := range attempts {
		err := fn(i)
		if err == nil {
			return nil
		}
		if lastErr = err; !IsRetryable(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		d := p.Delay(i)
		if p.OnRetry != nil {
			p.OnRetry(i, d, err)
		}
		if err := sleep(ctx, d); err != nil {
			return err
		}
	}
	return lastErr
}

// Sleep waits for d, returning ctx.Err() if the context ends first.
// A non-positive d returns immediately.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
