package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_PicksBackend(t *testing.T) {
	m, err := NewManager("", 0)
	require.NoError(t, err)
	assert.IsType(t, &memoryManager{}, m)

	s := miniredis.RunT(t)
	m, err = NewManager(s.Addr(), time.Minute)
	require.NoError(t, err)
	assert.IsType(t, &valkeyManager{}, m)
}

func TestManager_TwoGenerationCycle(t *testing.T) {
	s := miniredis.RunT(t)

	tests := []struct {
		name    string
		manager func(t *testing.T) Manager
	}{
		{
			name: "memory",
			manager: func(t *testing.T) Manager {
				return newMemoryManager(time.Minute)
			},
		},
		{
			name: "valkey",
			manager: func(t *testing.T) Manager {
				m, err := newValkeyManager(s.Addr(), true, time.Minute)
				require.NoError(t, err)
				return m
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			manager := tt.manager(t)
			c := manager.Cache("pages-" + tt.name)

			assert.Equal(t, "pages-"+tt.name, c.Class())
			assert.Equal(t, int64(0), c.Generation())
			assert.Equal(t, time.Minute, c.TTL())

			// miss before any write
			_, ok, isCurrent, err := c.Get(ctx, "opulence.com/page/careers")
			require.NoError(t, err)
			assert.False(t, ok)
			assert.True(t, isCurrent)

			// current-generation hit
			require.NoError(t, c.Set(ctx, "opulence.com/page/careers", "<html>v0</html>"))
			val, ok, isCurrent, err := c.Get(ctx, "opulence.com/page/careers")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, isCurrent)
			assert.Equal(t, "<html>v0</html>", val)

			// after one cycle the entry is served stale
			require.NoError(t, manager.Cycle(1))
			assert.Equal(t, int64(1), c.Generation())
			val, ok, isCurrent, err = c.Get(ctx, "opulence.com/page/careers")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.False(t, isCurrent)
			assert.Equal(t, "<html>v0</html>", val)

			// re-render lands in the new generation
			require.NoError(t, c.Set(ctx, "opulence.com/page/careers", "<html>v1</html>"))
			val, ok, isCurrent, err = c.Get(ctx, "opulence.com/page/careers")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.True(t, isCurrent)
			assert.Equal(t, "<html>v1</html>", val)

			// two cycles later the old rendering is unreachable
			require.NoError(t, manager.Cycle(2))
			require.NoError(t, manager.Cycle(3))
			_, ok, _, err = c.Get(ctx, "opulence.com/page/careers")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestManager_Delete(t *testing.T) {
	s := miniredis.RunT(t)

	tests := []struct {
		name    string
		manager func(t *testing.T) Manager
	}{
		{
			name: "memory",
			manager: func(t *testing.T) Manager {
				return newMemoryManager(time.Minute)
			},
		},
		{
			name: "valkey",
			manager: func(t *testing.T) Manager {
				m, err := newValkeyManager(s.Addr(), true, time.Minute)
				require.NoError(t, err)
				return m
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			manager := tt.manager(t)
			c := manager.Cache("del-" + tt.name)

			require.NoError(t, c.Set(ctx, "k", "v"))
			require.NoError(t, manager.Cycle(1))
			require.NoError(t, c.Set(ctx, "k", "v1"))

			// delete clears both generations
			require.NoError(t, c.Delete(ctx, "k"))
			_, ok, _, err := c.Get(ctx, "k")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestManager_CacheIsReused(t *testing.T) {
	m := newMemoryManager(time.Minute)
	a := m.Cache("pages")
	b := m.Cache("pages")
	assert.Same(t, a, b)
}

func TestMemoryCache_Expiry(t *testing.T) {
	m := newMemoryManager(10 * time.Millisecond)
	c := m.Cache("pages")
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "k", "v"))
	time.Sleep(20 * time.Millisecond)

	_, ok, _, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
