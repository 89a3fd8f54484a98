package cache

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	expiry time.Time
	value  string
}

type memoryCache struct {
	class      string
	mu         sync.RWMutex
	generation int64
	segments   map[int64]map[string]memoryEntry
	ttl        time.Duration
}

var _ Cache = (*memoryCache)(nil)

func (c *memoryCache) Class() string { return c.class }

func (c *memoryCache) Generation() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *memoryCache) TTL() time.Duration { return c.ttl }

func (c *memoryCache) Get(_ context.Context, key string) (string, bool, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if seg, ok := c.segments[c.generation]; ok {
		if entry, found := seg[key]; found {
			if time.Now().After(entry.expiry) {
				// expired; the reaper collects it later
				return "", false, true, nil
			}
			return entry.value, true, true, nil
		}
	}

	// two-generation scheme: at most one other segment exists
	for gen, seg := range c.segments {
		if gen == c.generation {
			continue
		}
		if entry, found := seg[key]; found {
			if time.Now().After(entry.expiry) {
				return "", false, true, nil
			}
			return entry.value, true, false, nil
		}
	}

	return "", false, true, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.segments[c.generation] == nil {
		c.segments[c.generation] = make(map[string]memoryEntry)
	}
	c.segments[c.generation][key] = memoryEntry{
		expiry: time.Now().Add(c.ttl),
		value:  value,
	}
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, seg := range c.segments {
		delete(seg, key)
	}
	return nil
}

func (c *memoryCache) reap() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	for _, seg := range c.segments {
		for key, entry := range seg {
			if now.After(entry.expiry) {
				delete(seg, key)
			}
		}
	}
}

func (c *memoryCache) startReaper(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			c.reap()
		}
	}()
}

type memoryManager struct {
	mu         sync.RWMutex
	caches     map[string]*memoryCache
	generation int64
	ttl        time.Duration
}

var _ Manager = (*memoryManager)(nil)

func newMemoryManager(ttl time.Duration) *memoryManager {
	return &memoryManager{
		caches: make(map[string]*memoryCache),
		ttl:    ttl,
	}
}

func (m *memoryManager) Cycle(generation int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	oldGen := m.generation
	m.generation = generation

	for _, c := range m.caches {
		c.mu.Lock()
		c.generation = generation
		if c.segments[generation] == nil {
			c.segments[generation] = make(map[string]memoryEntry)
		}
		// keep only the current and previous generations
		for g := range c.segments {
			if g != generation && g != oldGen {
				delete(c.segments, g)
			}
		}
		c.mu.Unlock()
	}
	return nil
}

func (m *memoryManager) Cache(class string) Cache {
	m.mu.RLock()
	c, ok := m.caches[class]
	m.mu.RUnlock()
	if ok {
		return c
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if c, ok := m.caches[class]; ok {
		return c
	}
	c = &memoryCache{
		class:      class,
		generation: m.generation,
		segments:   make(map[int64]map[string]memoryEntry),
		ttl:        m.ttl,
	}
	c.startReaper(m.ttl)
	m.caches[class] = c
	return c
}
