package page

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/advisorhq/web/internal/section"
)

var (
	ErrNotFound    = errors.New("page not found")
	ErrInvalidPage = errors.New("invalid page")
	ErrSlugTaken   = errors.New("slug already in use")
	ErrConflict    = errors.New("page modified concurrently")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// Store is the slice of tenant state the page service needs.
type Store interface {
	Pages(tenantID string) ([]CustomPage, bool)
	ReplacePages(ctx context.Context, tenantID string, pages []CustomPage) error
}

// Service owns the page lifecycle for all tenants: listing, publish-aware
// lookup, validated saves with conflict detection, and deletion.
type Service struct {
	store Store
	log   logr.Logger
	now   func() time.Time
}

func NewService(store Store, log logr.Logger) *Service {
	return &Service{
		store: store,
		log:   log.WithName("pages"),
		now:   time.Now,
	}
}

// List returns every page of the tenant, drafts included.
func (s *Service) List(tenantID string) ([]CustomPage, error) {
	pages, ok := s.store.Pages(tenantID)
	if !ok {
		return nil, fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}
	return pages, nil
}

// Get returns the page with the given id.
func (s *Service) Get(tenantID, pageID string) (CustomPage, error) {
	pages, ok := s.store.Pages(tenantID)
	if !ok {
		return CustomPage{}, fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}
	for _, p := range pages {
		if p.ID == pageID {
			return p, nil
		}
	}
	return CustomPage{}, fmt.Errorf("page %q: %w", pageID, ErrNotFound)
}

// FindPublished resolves a slug to a published page. Drafts never resolve;
// a draft with a matching slug behaves exactly like a missing one.
func (s *Service) FindPublished(tenantID, slug string) (CustomPage, error) {
	pages, ok := s.store.Pages(tenantID)
	if !ok {
		return CustomPage{}, fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}
	for _, p := range pages {
		if p.Slug == slug && p.IsPublished {
			return p, nil
		}
	}
	return CustomPage{}, fmt.Errorf("slug %q: %w", slug, ErrNotFound)
}

// Save commits a page. New pages (empty ID) get a generated id and version 1.
// Existing pages must carry the version they were loaded at; a mismatch
// means someone else saved in between and the write is refused.
func (s *Service) Save(ctx context.Context, tenantID string, p CustomPage) (CustomPage, error) {
	if err := validate(p); err != nil {
		return CustomPage{}, err
	}

	pages, ok := s.store.Pages(tenantID)
	if !ok {
		return CustomPage{}, fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}

	for _, existing := range pages {
		if existing.Slug == p.Slug && existing.ID != p.ID {
			return CustomPage{}, fmt.Errorf("slug %q: %w", p.Slug, ErrSlugTaken)
		}
	}

	saved := p.Clone()
	section.Normalize(saved.Sections)
	saved.LastUpdated = s.now().Format("2006-01-02")

	if saved.ID == "" {
		saved.ID = uuid.NewString()
		saved.Version = 1
		pages = append(pages, saved)
	} else {
		idx := -1
		for i, existing := range pages {
			if existing.ID == saved.ID {
				idx = i
				break
			}
		}
		if idx < 0 {
			return CustomPage{}, fmt.Errorf("page %q: %w", saved.ID, ErrNotFound)
		}
		if pages[idx].Version != saved.Version {
			return CustomPage{}, fmt.Errorf("page %q at version %d, have %d: %w",
				saved.ID, pages[idx].Version, saved.Version, ErrConflict)
		}
		saved.Version++
		pages[idx] = saved
	}

	if err := s.store.ReplacePages(ctx, tenantID, pages); err != nil {
		return CustomPage{}, err
	}

	s.log.V(1).Info("page saved",
		"tenant", tenantID, "page", saved.ID, "slug", saved.Slug,
		"published", saved.IsPublished, "version", saved.Version)
	return saved, nil
}

// Delete removes a page. Deleting an unknown id is an error.
func (s *Service) Delete(ctx context.Context, tenantID, pageID string) error {
	pages, ok := s.store.Pages(tenantID)
	if !ok {
		return fmt.Errorf("tenant %q: %w", tenantID, ErrNotFound)
	}

	idx := -1
	for i, p := range pages {
		if p.ID == pageID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("page %q: %w", pageID, ErrNotFound)
	}

	pages = append(pages[:idx], pages[idx+1:]...)
	if err := s.store.ReplacePages(ctx, tenantID, pages); err != nil {
		return err
	}

	s.log.V(1).Info("page deleted", "tenant", tenantID, "page", pageID)
	return nil
}

func validate(p CustomPage) error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("title is empty: %w", ErrInvalidPage)
	}
	if !slugPattern.MatchString(p.Slug) {
		return fmt.Errorf("slug %q is not a lowercase-hyphen slug: %w", p.Slug, ErrInvalidPage)
	}
	seen := make(map[string]struct{}, len(p.Sections))
	for _, sec := range p.Sections {
		if !sec.Type.Valid() {
			return fmt.Errorf("section %q has unknown type %q: %w", sec.ID, sec.Type, ErrInvalidPage)
		}
		if sec.Content == nil {
			return fmt.Errorf("section %q has no content: %w", sec.ID, ErrInvalidPage)
		}
		if _, dup := seen[sec.ID]; dup {
			return fmt.Errorf("duplicate section id %q: %w", sec.ID, ErrInvalidPage)
		}
		seen[sec.ID] = struct{}{}
	}
	return nil
}
