package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// SQLiteFile is the database file name used inside the cache directory.
const SQLiteFile = "responses.db"

// SQLiteCache stores entries in a single SQLite table keyed by the hashed key.
type SQLiteCache struct {
	db   *sql.DB
	path string
}

// NewSQLiteCache opens (or creates) the database at path.
func NewSQLiteCache(path string) (*SQLiteCache, error) {
	if path == "" {
		path = filepath.Join(DefaultDir, SQLiteFile)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS responses (
		key TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		payload BLOB NOT NULL,
		created_at INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create responses table: %w", err)
	}
	return &SQLiteCache{db: db, path: path}, nil
}

// Path returns the database file path.
func (c *SQLiteCache) Path() string { return c.path }

// Name returns "sqlite".
func (c *SQLiteCache) Name() string { return "sqlite" }

// Get retrieves a value from the cache.
func (c *SQLiteCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var data []byte
	err := c.db.QueryRowContext(ctx, `SELECT payload FROM responses WHERE key = ?`, HashKey(key)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("select response: %w", err)
	}
	return data, true, nil
}

// Set stores a value, replacing any previous entry.
func (c *SQLiteCache) Set(ctx context.Context, key string, data []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO responses (key, url, payload, created_at) VALUES (?, ?, ?, ?)`,
		HashKey(key), key, data, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("insert response: %w", err)
	}
	return nil
}

// Delete removes a value from the cache.
func (c *SQLiteCache) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, `DELETE FROM responses WHERE key = ?`, HashKey(key))
	return err
}

// Close closes the database.
func (c *SQLiteCache) Close() error {
	return c.db.Close()
}

// Stats reports the row count and total payload size.
func (c *SQLiteCache) Stats(ctx context.Context) (Stats, error) {
	var s Stats
	err := c.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(LENGTH(payload)), 0) FROM responses`).Scan(&s.Entries, &s.Bytes)
	return s, err
}

// Clear deletes every row.
func (c *SQLiteCache) Clear(ctx context.Context) (int, error) {
	res, err := c.db.ExecContext(ctx, `DELETE FROM responses`)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

var (
	_ Cache   = (*SQLiteCache)(nil)
	_ Statser = (*SQLiteCache)(nil)
	_ Clearer = (*SQLiteCache)(nil)
)
