package cache

import (
	"context"
	"fmt"
	"path/filepath"
)

// Backend names accepted by [Open].
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMongo  = "mongo"
	BackendNone   = "none"
)

// Backends lists every name [Open] understands.
var Backends = []string{BackendFile, BackendMemory, BackendSQLite, BackendRedis, BackendMongo, BackendNone}

// Options selects and configures a backend.
type Options struct {
	Backend string // one of [Backends]; empty means file
	Dir     string // file and sqlite: directory
	DSN     string // redis:// or mongodb:// URL
	Size    int    // memory: max entries
}

// Open constructs the backend described by opts.
func Open(ctx context.Context, opts Options) (Cache, error) {
	switch opts.Backend {
	case "", BackendFile:
		return NewFileCache(opts.Dir)
	case BackendMemory:
		return NewMemoryCache(opts.Size)
	case BackendSQLite:
		dir := opts.Dir
		if dir == "" {
			dir = DefaultDir
		}
		return NewSQLiteCache(filepath.Join(dir, SQLiteFile))
	case BackendRedis:
		if opts.DSN == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDSN, opts.Backend)
		}
		return NewRedisCache(ctx, opts.DSN, "")
	case BackendMongo:
		if opts.DSN == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingDSN, opts.Backend)
		}
		return NewMongoCache(ctx, opts.DSN, "", "")
	case BackendNone:
		return NewNullCache(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
}
