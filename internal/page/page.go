package page

import (
	"github.com/advisorhq/web/internal/section"
)

// SeoConfig holds the metadata overrides for a page or for a whole site.
// Empty fields fall through to the next source in the resolution chain.
type SeoConfig struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
	OGImage     string `json:"ogImage,omitempty"`
}

// CustomPage is one page of a tenant's site. Version counts committed
// saves and is used to detect concurrent edits.
type CustomPage struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Slug        string            `json:"slug"`
	IsPublished bool              `json:"isPublished"`
	LastUpdated string            `json:"lastUpdated"`
	Version     int               `json:"version"`
	SEO         *SeoConfig        `json:"seo,omitempty"`
	Sections    []section.Section `json:"sections"`
}

// Clone returns a deep copy sharing no references with the original.
func (p CustomPage) Clone() CustomPage {
	out := p
	if p.SEO != nil {
		seo := *p.SEO
		out.SEO = &seo
	}
	out.Sections = section.CloneAll(p.Sections)
	return out
}

// FindSection returns a pointer into Sections for the given section id,
// or nil when absent.
func (p *CustomPage) FindSection(id string) *section.Section {
	for i := range p.Sections {
		if p.Sections[i].ID == id {
			return &p.Sections[i]
		}
	}
	return nil
}
