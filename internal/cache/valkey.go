package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/valkey-io/valkey-go"
)

type valkeyCache struct {
	client     valkey.Client
	class      string
	mu         sync.RWMutex
	generation int64
	prefix     string // "{class:generation}:"
	prevPrefix string // "{class:generation-1}:"
	ttl        time.Duration
}

var _ Cache = (*valkeyCache)(nil)

func (c *valkeyCache) Class() string { return c.class }

func (c *valkeyCache) Generation() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.generation
}

func (c *valkeyCache) TTL() time.Duration { return c.ttl }

func (c *valkeyCache) Get(ctx context.Context, key string) (string, bool, bool, error) {
	c.mu.RLock()
	curr := c.prefix
	prev := c.prevPrefix
	c.mu.RUnlock()

	val, found, err := c.getValue(ctx, curr+key)
	if err != nil || found {
		return val, found, true, err
	}

	if prev != "" {
		val, found, err := c.getValue(ctx, prev+key)
		if found {
			return val, true, false, err
		}
	}

	return "", false, true, nil
}

func (c *valkeyCache) Set(ctx context.Context, key, value string) error {
	c.mu.RLock()
	prefix := c.prefix
	c.mu.RUnlock()
	cmd := c.client.B().Set().Key(prefix + key).Value(value).Px(c.ttl).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *valkeyCache) Delete(ctx context.Context, key string) error {
	c.mu.RLock()
	curr := c.prefix
	prev := c.prevPrefix
	c.mu.RUnlock()

	keys := []string{curr + key}
	if prev != "" {
		keys = append(keys, prev+key)
	}
	cmd := c.client.B().Del().Key(keys...).Build()
	return c.client.Do(ctx, cmd).Error()
}

func (c *valkeyCache) getValue(ctx context.Context, fullKey string) (string, bool, error) {
	cmd := c.client.B().Get().Key(fullKey).Build()
	val, err := c.client.Do(ctx, cmd).ToString()
	if valkey.IsValkeyNil(err) {
		return "", false, nil
	}
	return val, true, err
}

type valkeyManager struct {
	client     valkey.Client
	mu         sync.RWMutex
	caches     map[string]*valkeyCache
	generation int64
	ttl        time.Duration
}

var _ Manager = (*valkeyManager)(nil)

func newValkeyManager(addr string, local bool, ttl time.Duration) (*valkeyManager, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		DisableCache: local,
		InitAddress:  []string{addr},
	})
	if err != nil {
		return nil, err
	}
	return &valkeyManager{
		client: client,
		caches: make(map[string]*valkeyCache),
		ttl:    ttl,
	}, nil
}

func (m *valkeyManager) Cycle(generation int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.generation = generation
	for _, c := range m.caches {
		c.mu.Lock()
		c.prevPrefix = c.prefix
		c.generation = generation
		c.prefix = keyPrefix(c.class, generation)
		c.mu.Unlock()
	}
	return nil
}

func (m *valkeyManager) Cache(class string) Cache {
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
	c = &valkeyCache{
		client:     m.client,
		class:      class,
		generation: m.generation,
		prefix:     keyPrefix(class, m.generation),
		ttl:        m.ttl,
	}
	m.caches[class] = c
	return c
}

func keyPrefix(class string, generation int64) string {
	return fmt.Sprintf("{%s:%d}:", class, generation)
}
