package cache

import (
	"context"
	"slices"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemorySize is the entry capacity of a [MemoryCache] created with size <= 0.
const DefaultMemorySize = 4096

// MemoryCache is an in-process LRU cache. Its contents live only as long as
// the process. It is safe for concurrent use.
type MemoryCache struct {
	lru *lru.Cache[string, []byte]
}

// NewMemoryCache creates an LRU cache holding at most size entries.
func NewMemoryCache(size int) (*MemoryCache, error) {
	if size <= 0 {
		size = DefaultMemorySize
	}
	l, err := lru.New[string, []byte](size)
	if err != nil {
		return nil, err
	}
	return &MemoryCache{lru: l}, nil
}

// Name returns "memory".
func (c *MemoryCache) Name() string { return "memory" }

// Get retrieves a copy of the stored value.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, ok := c.lru.Get(key)
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(data), true, nil
}

// Set stores a copy of data.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte) error {
	c.lru.Add(key, slices.Clone(data))
	return nil
}

// Delete removes key.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.lru.Remove(key)
	return nil
}

// Close does nothing.
func (c *MemoryCache) Close() error { return nil }

// Stats reports the number of entries and their combined size.
func (c *MemoryCache) Stats(ctx context.Context) (Stats, error) {
	s := Stats{Entries: c.lru.Len()}
	for _, v := range c.lru.Values() {
		s.Bytes += int64(len(v))
	}
	return s, nil
}

// Clear drops every entry.
func (c *MemoryCache) Clear(ctx context.Context) (int, error) {
	n := c.lru.Len()
	c.lru.Purge()
	return n, nil
}

var (
	_ Cache   = (*MemoryCache)(nil)
	_ Statser = (*MemoryCache)(nil)
	_ Clearer = (*MemoryCache)(nil)
)
