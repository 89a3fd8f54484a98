// Package editor implements the page editing session: a detached draft of
// one page that absorbs structural and content mutations locally and only
// touches the store on an explicit save.
package editor

import (
	"context"
	"errors"

	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/section"
)

var (
	ErrNoDraft        = errors.New("no draft open")
	ErrUnknownSection = errors.New("unknown section")
	ErrUnknownType    = errors.New("unknown section type")
)

// Saver commits a finished draft. *page.Service satisfies this.
type Saver interface {
	Save(ctx context.Context, tenantID string, p page.CustomPage) (page.CustomPage, error)
}

// Session edits one page of one tenant. The draft is a deep copy; nothing
// is visible outside the session until Save succeeds. A session is not safe
// for concurrent use.
type Session struct {
	tenantID string
	draft    *page.CustomPage
	saver    Saver
	log      logr.Logger
}

// NewSession opens a session over an existing page.
func NewSession(saver Saver, tenantID string, p page.CustomPage, log logr.Logger) *Session {
	draft := p.Clone()
	return &Session{
		tenantID: tenantID,
		draft:    &draft,
		saver:    saver,
		log:      log.WithName("editor"),
	}
}

// NewPageSession opens a session over a brand-new page. The page gets its
// id at save time.
func NewPageSession(saver Saver, tenantID, title, slug string, log logr.Logger) *Session {
	draft := page.CustomPage{Title: title, Slug: slug}
	return &Session{
		tenantID: tenantID,
		draft:    &draft,
		saver:    saver,
		log:      log.WithName("editor"),
	}
}

// Draft returns a detached copy of the current draft state.
func (s *Session) Draft() (page.CustomPage, error) {
	if s.draft == nil {
		return page.CustomPage{}, ErrNoDraft
	}
	return s.draft.Clone(), nil
}

// AddSection appends a section of the given type with its default content
// at the end of the page.
func (s *Session) AddSection(t section.Type) (section.Section, error) {
	if s.draft == nil {
		return section.Section{}, ErrNoDraft
	}
	if !t.Valid() {
		return section.Section{}, ErrUnknownType
	}

	added := section.Section{
		ID:      uuid.NewString(),
		Type:    t,
		Order:   len(s.draft.Sections),
		Content: section.DefaultContent(t),
	}
	s.draft.Sections = append(s.draft.Sections, added)

	s.log.V(1).Info("section added", "page", s.draft.ID, "type", t)
	return added.Clone(), nil
}

// RemoveSection deletes the section and closes the numbering gap it leaves.
func (s *Session) RemoveSection(id string) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrUnknownSection
	}
	s.draft.Sections = append(s.draft.Sections[:idx], s.draft.Sections[idx+1:]...)
	section.Normalize(s.draft.Sections)
	return nil
}

// DuplicateSection deep-copies a section, gives the copy a fresh id, and
// inserts it directly after the original.
func (s *Session) DuplicateSection(id string) (section.Section, error) {
	if s.draft == nil {
		return section.Section{}, ErrNoDraft
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return section.Section{}, ErrUnknownSection
	}

	copied := s.draft.Sections[idx].Clone()
	copied.ID = uuid.NewString()

	sections := s.draft.Sections
	sections = append(sections[:idx+1], append([]section.Section{copied}, sections[idx+1:]...)...)
	section.Normalize(sections)
	s.draft.Sections = sections

	return copied.Clone(), nil
}

// MoveUp swaps the section with its predecessor. Moving the first section
// up is a no-op.
func (s *Session) MoveUp(id string) error { return s.move(id, -1) }

// MoveDown swaps the section with its successor. Moving the last section
// down is a no-op.
func (s *Session) MoveDown(id string) error { return s.move(id, 1) }

func (s *Session) move(id string, delta int) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrUnknownSection
	}

	target := idx + delta
	if target >= 0 && target < len(s.draft.Sections) {
		sections := s.draft.Sections
		sections[idx], sections[target] = sections[target], sections[idx]
		section.Normalize(sections)
	}
	return nil
}

// Reorder lifts the section at from out of the list and reinserts it at
// to, shifting everything in between. Out-of-range positions and from==to
// are no-ops.
func (s *Session) Reorder(from, to int) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	sections := s.draft.Sections
	if from == to || from < 0 || from >= len(sections) || to < 0 || to >= len(sections) {
		return nil
	}

	moved := sections[from]
	sections = append(sections[:from], sections[from+1:]...)
	sections = append(sections[:to], append([]section.Section{moved}, sections[to:]...)...)
	section.Normalize(sections)
	s.draft.Sections = sections
	return nil
}

// UpdateContent shallow-merges a partial payload into the section's
// content. Fields absent from the patch keep their values.
func (s *Session) UpdateContent(id string, patch map[string]any) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	idx := s.indexOf(id)
	if idx < 0 {
		return ErrUnknownSection
	}

	merged, err := section.Merge(s.draft.Sections[idx].Content, patch)
	if err != nil {
		return err
	}
	s.draft.Sections[idx].Content = merged
	return nil
}

func (s *Session) SetTitle(title string) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.Title = title
	return nil
}

func (s *Session) SetSlug(slug string) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.Slug = slug
	return nil
}

func (s *Session) SetPublished(published bool) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	s.draft.IsPublished = published
	return nil
}

func (s *Session) SetSEO(seo *page.SeoConfig) error {
	if s.draft == nil {
		return ErrNoDraft
	}
	if seo == nil {
		s.draft.SEO = nil
		return nil
	}
	copied := *seo
	s.draft.SEO = &copied
	return nil
}

// Save commits the draft through the page service. On success the session
// stays open on the committed state, so further edits continue from the
// new version.
func (s *Session) Save(ctx context.Context) (page.CustomPage, error) {
	if s.draft == nil {
		return page.CustomPage{}, ErrNoDraft
	}

	saved, err := s.saver.Save(ctx, s.tenantID, *s.draft)
	if err != nil {
		return page.CustomPage{}, err
	}

	committed := saved.Clone()
	s.draft = &committed
	return saved, nil
}

// Discard closes the session, dropping every unsaved edit.
func (s *Session) Discard() {
	s.draft = nil
}

func (s *Session) indexOf(id string) int {
	if s.draft == nil {
		return -1
	}
	for i := range s.draft.Sections {
		if s.draft.Sections[i].ID == id {
			return i
		}
	}
	return -1
}
