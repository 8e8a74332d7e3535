// Package cache provides key/value storage for raw HTTP response bodies.
//
// # Overview
//
// The [Cache] interface is deliberately small: get bytes for a key, put bytes
// under a key. The resource fetcher in [pokeapi] stores each successfully
// fetched JSON document under its request URL and consults the cache before
// touching the network. Entries never expire; there is no TTL and no
// invalidation. Removing entries is a manual operation ([Clearer]).
//
// # Backends
//
//   - [FileCache]: one file per key in a flat directory (default, ".cache")
//   - [NullCache]: stores nothing, every lookup is a miss
//   - [MemoryCache]: bounded in-process LRU
//   - [SQLiteCache]: single-table SQLite database
//   - [RedisCache]: Redis strings
//   - [MongoCache]: one document per key in a MongoDB collection
//
// Use [Open] to construct a backend from [Options].
//
// Keys are hashed with [Hash] by every backend that needs a safe identifier,
// so callers can use full URLs as keys.
//
// [pokeapi]: github.com/matzehuels/pokequiz/pkg/pokeapi
package cache

import "context"

// Cache stores opaque byte values by string key.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss.
// A non-nil error means the backend could not answer; callers that treat the
// cache as best-effort may handle it like a miss.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
	Close() error

	// Name identifies the backend in logs and metrics (e.g. "file").
	Name() string
}

// Stats summarises the contents of a cache.
type Stats struct {
	Entries int
	Bytes   int64
}

// Statser is implemented by backends that can report their size.
type Statser interface {
	Stats(ctx context.Context) (Stats, error)
}

// Clearer is implemented by backends that can remove all entries.
// Clear returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
