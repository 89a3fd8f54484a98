// Package repository provides the durable tenant stores behind the
// in-memory registry: an embedded sqlite database for real deployments
// and a plain in-process map for tests and ephemeral runs.
package repository

import (
	"context"
	"sync"

	"github.com/advisorhq/web/internal/tenant"
)

// Memory keeps tenant records in process memory. Contents are lost on
// restart.
type Memory struct {
	mu      sync.RWMutex
	records map[string]tenant.Tenant
}

var _ tenant.Repository = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{records: make(map[string]tenant.Tenant)}
}

func (m *Memory) LoadAll(context.Context) ([]tenant.Tenant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]tenant.Tenant, 0, len(m.records))
	for _, t := range m.records {
		out = append(out, t.Clone())
	}
	return out, nil
}

func (m *Memory) Persist(_ context.Context, t tenant.Tenant) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[t.ID] = t.Clone()
	return nil
}

func (m *Memory) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, id)
	return nil
}
