// Package cache provides the analysis result cache used by the HTTP
// server. Analysis is deterministic, so a (language, text) pair maps to
// exactly one result and can be reused until its entry expires.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a language alias and an input text.
// The alias participates in the key because an explicit language can
// override detection and change the result.
func CacheKey(language, text string) string {
	hash := sha256.Sum256([]byte(language + "\x00" + text))
	return "ithute:v1:" + hex.EncodeToString(hash[:])
}
