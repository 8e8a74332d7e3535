package cache

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// DefaultDir is the cache directory used when none is configured. It is
// relative to the working directory.
const DefaultDir = ".cache"

const fileExt = ".json"

// FileCache implements a file-based cache for CLI usage.
// Each entry is a single file named by the hash of its key and holds the
// raw stored bytes, so a cached response can be inspected with any JSON tool.
type FileCache struct {
	dir string
}

// NewFileCache creates a file-based cache in the given directory.
// The directory will be created if it doesn't exist. An empty dir means
// [DefaultDir].
func NewFileCache(dir string) (*FileCache, error) {
	if dir == "" {
		dir = DefaultDir
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Name returns "file".
func (c *FileCache) Name() string { return "file" }

// Get retrieves a value from the cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

// Set stores a value in the cache, replacing any previous entry.
func (c *FileCache) Set(ctx context.Context, key string, data []byte) error {
	return os.WriteFile(c.path(key), data, 0o644)
}

// Delete removes a value from the cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Close does nothing for file cache.
func (c *FileCache) Close() error {
	return nil
}

// Stats counts entry files and their total size.
func (c *FileCache) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.walk(func(path string, info os.FileInfo) {
		s.Entries++
		s.Bytes += info.Size()
	})
	return s, err
}

// Clear removes every entry file. Files that do not look like cache
// entries are left alone.
func (c *FileCache) Clear(ctx context.Context) (int, error) {
	count := 0
	err := c.walk(func(path string, info os.FileInfo) {
		if os.Remove(path) == nil {
			count++
		}
	})
	return count, err
}

func (c *FileCache) walk(fn func(path string, info os.FileInfo)) error {
	entries, err := os.ReadDir(c.dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), fileExt) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue // removed concurrently
		}
		fn(filepath.Join(c.dir, e.Name()), info)
	}
	return nil
}

func (c *FileCache) path(key string) string {
	return filepath.Join(c.dir, HashKey(key)+fileExt)
}

var (
	_ Cache   = (*FileCache)(nil)
	_ Statser = (*FileCache)(nil)
	_ Clearer = (*FileCache)(nil)
)
