package tenant

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-logr/logr"

	"github.com/advisorhq/web/internal/page"
)

var ErrNotFound = errors.New("tenant not found")

// Repository persists tenant records. The in-memory store is the working
// set; the repository is the durable copy behind it.
type Repository interface {
	LoadAll(ctx context.Context) ([]Tenant, error)
	Persist(ctx context.Context, t Tenant) error
	Remove(ctx context.Context, id string) error
}

// Store is the serving-path tenant registry. Reads return detached deep
// copies, so callers can mutate results freely. Every committed write goes
// through the repository first and then notifies the update hook.
type Store struct {
	mu       sync.RWMutex
	tenants  map[string]Tenant
	byDomain map[string]string
	repo     Repository
	log      logr.Logger
	onUpdate func(tenantID string)
}

func NewStore(repo Repository, log logr.Logger) *Store {
	return &Store{
		tenants:  make(map[string]Tenant),
		byDomain: make(map[string]string),
		repo:     repo,
		log:      log.WithName("tenants"),
	}
}

// OnUpdate registers a hook fired after every committed write, outside the
// store lock. Used to cycle render caches.
func (s *Store) OnUpdate(fn func(tenantID string)) {
	s.onUpdate = fn
}

// Load hydrates the store from the repository, replacing the working set.
func (s *Store) Load(ctx context.Context) error {
	tenants, err := s.repo.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading tenants: %w", err)
	}

	s.mu.Lock()
	s.tenants = make(map[string]Tenant, len(tenants))
	s.byDomain = make(map[string]string, len(tenants))
	for _, t := range tenants {
		s.tenants[t.ID] = t
		if t.Domain != "" {
			s.byDomain[strings.ToLower(t.Domain)] = t.ID
		}
	}
	s.mu.Unlock()

	s.log.V(1).Info("tenants loaded", "count", len(tenants))
	return nil
}

// Get returns a detached copy of the tenant.
func (s *Store) Get(id string) (Tenant, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tenants[id]
	if !ok {
		return Tenant{}, false
	}
	return t.Clone(), true
}

// GetByDomain resolves a request Host to a tenant. The port, if any, is
// stripped before matching.
func (s *Store) GetByDomain(host string) (Tenant, bool) {
	domain := strings.ToLower(host)
	if i := strings.IndexByte(domain, ':'); i >= 0 {
		domain = domain[:i]
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byDomain[domain]
	if !ok {
		return Tenant{}, false
	}
	return s.tenants[id].Clone(), true
}

// List returns detached copies of every tenant, ordered by id.
func (s *Store) List() []Tenant {
	s.mu.RLock()
	out := make([]Tenant, 0, len(s.tenants))
	for _, t := range s.tenants {
		out = append(out, t.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tenants)
}

// Set commits a whole tenant record: repository first, then the working
// set, then the update hook.
func (s *Store) Set(ctx context.Context, t Tenant) error {
	if t.ID == "" {
		return fmt.Errorf("tenant id is empty")
	}
	if err := s.repo.Persist(ctx, t); err != nil {
		return fmt.Errorf("persisting tenant %q: %w", t.ID, err)
	}

	s.mu.Lock()
	if prev, ok := s.tenants[t.ID]; ok && prev.Domain != "" && prev.Domain != t.Domain {
		delete(s.byDomain, strings.ToLower(prev.Domain))
	}
	s.tenants[t.ID] = t.Clone()
	if t.Domain != "" {
		s.byDomain[strings.ToLower(t.Domain)] = t.ID
	}
	s.mu.Unlock()

	s.log.V(1).Info("tenant updated", "tenant", t.ID, "domain", t.Domain)
	if s.onUpdate != nil {
		s.onUpdate(t.ID)
	}
	return nil
}

// Delete removes a tenant from the repository and the working set.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.RLock()
	t, ok := s.tenants[id]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("tenant %q: %w", id, ErrNotFound)
	}
	if err := s.repo.Remove(ctx, id); err != nil {
		return fmt.Errorf("removing tenant %q: %w", id, err)
	}

	s.mu.Lock()
	delete(s.tenants, id)
	if t.Domain != "" {
		delete(s.byDomain, strings.ToLower(t.Domain))
	}
	s.mu.Unlock()

	if s.onUpdate != nil {
		s.onUpdate(id)
	}
	return nil
}

// Pages returns detached copies of a tenant's pages.
func (s *Store) Pages(tenantID string) ([]page.CustomPage, bool) {
	s.mu.RLock()
	t, ok := s.tenants[tenantID]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	out := make([]page.CustomPage, len(t.CustomPages))
	for i, p := range t.CustomPages {
		out[i] = p.Clone()
	}
	return out, true
}

// ReplacePages swaps a tenant's full page list in one committed write.
func (s *Store) ReplacePages(ctx context.Context, tenantID string, pages []page.CustomPage) error {
	s.mu.RLock()
	t, ok := s.tenants[tenantID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}

	t = t.Clone()
	t.CustomPages = pages
	return s.Set(ctx, t)
}

// ReplaceAssets swaps a tenant's media library in one committed write.
func (s *Store) ReplaceAssets(ctx context.Context, tenantID string, assets []MediaAsset) error {
	s.mu.RLock()
	t, ok := s.tenants[tenantID]
	s.mu.RUnlock()
	if !ok {
		return fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}

	t = t.Clone()
	t.Assets = assets
	return s.Set(ctx, t)
}
