package pokeapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound is matched by fetch errors caused by a 404 response.
	ErrNotFound = errors.New("resource not found")

	// ErrNetwork is matched by failures that happened before a response
	// arrived (timeouts, refused connections, truncated bodies).
	ErrNetwork = errors.New("network error")

	// ErrInvalidJSON is returned when a 200 response body is not JSON.
	ErrInvalidJSON = errors.New("response is not valid JSON")
)

// StatusError is an unexpected HTTP status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

// Transient reports whether the status is retried.
func (e *StatusError) Transient() bool {
	return isTransientStatus(e.Code)
}

func isTransientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
