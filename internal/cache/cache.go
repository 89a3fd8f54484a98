// Package cache stores rendered pages across two generations. A content
// change cycles the generation instead of dropping entries, so the old
// rendering keeps serving while the new one is produced.
package cache

import (
	"context"
	"strings"
	"time"
)

const DefaultTTL = 24 * time.Hour

// Cache is one keyed segment of rendered output. Get reports the value,
// whether it was found, and whether it came from the current generation;
// a stale hit is still served but should be re-rendered.
type Cache interface {
	Class() string
	Delete(ctx context.Context, key string) error
	Generation() int64
	Get(ctx context.Context, key string) (value string, ok bool, isCurrent bool, err error)
	Set(ctx context.Context, key string, value string) error
	TTL() time.Duration
}

// Manager hands out caches by class and cycles every cache to a new
// generation when tenant content changes.
type Manager interface {
	Cycle(generation int64) error
	Cache(class string) Cache
}

// NewManager returns a valkey-backed manager when addr is set, otherwise
// an in-process one.
func NewManager(addr string, ttl time.Duration) (Manager, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if addr == "" {
		return newMemoryManager(ttl), nil
	}
	local := strings.Contains(addr, "127.0.0.1") || strings.Contains(addr, "localhost")
	return newValkeyManager(addr, local, ttl)
}
