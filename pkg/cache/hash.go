package cache

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

// HashKey hashes a cache key. Backends use it to derive file names and
// document ids from arbitrary keys such as URLs.
func HashKey(key string) string {
	return Hash([]byte(key))
}
