package cache

import "errors"

// Sentinel errors for caching operations.
var (
	// ErrUnknownBackend is returned by [Open] for an unrecognised backend name.
	ErrUnknownBackend = errors.New("unknown cache backend")

	// ErrMissingDSN is returned by [Open] when a network backend has no address.
	ErrMissingDSN = errors.New("cache backend requires a DSN")
)
