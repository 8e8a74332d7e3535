// Package httputil provides the retry policy used by the PokeAPI fetcher.
//
// # Retry
//
// [Policy] describes how many times a transient failure is retried and how
// long to wait between attempts. The delay after failed attempt n (counting
// from zero) is
//
//	Base^n seconds + Offset
//
// With the defaults (Base 0.8, Offset 200ms, Retries 4) a request is tried
// at most five times.
//
// Only errors wrapped in [RetryableError] are retried; anything else is
// returned from [Policy.Do] immediately:
//
//	err := httputil.DefaultPolicy().Do(ctx, func(attempt int) error {
//	    resp, err := http.Get(url)
//	    if err != nil {
//	        return &httputil.RetryableError{Err: err}
//	    }
//	    ...
//	})
//
// Sleeping honours context cancellation, so Ctrl-C interrupts a backoff wait.
package httputil
