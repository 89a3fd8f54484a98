// Package menu derives the site chrome navigation from a tenant's header
// and footer configuration and its published pages.
package menu

import (
	"github.com/advisorhq/web/internal/tenant"
)

// Entry is one rendered navigation link.
type Entry struct {
	Label string
	Path  string
}

// PagePath is where a published custom page is served.
func PagePath(slug string) string {
	return "/page/" + slug
}

// HeaderEntries returns the header navigation: the configured links,
// followed by links to published pages the configuration does not already
// reference. Tenants with no header configuration still get their
// published pages listed.
func HeaderEntries(t tenant.Tenant) []Entry {
	var entries []Entry
	linked := make(map[string]struct{})

	if t.HeaderConfig != nil {
		for _, link := range t.HeaderConfig.Navigation {
			entries = append(entries, Entry{Label: link.Label, Path: link.Path})
			linked[link.Path] = struct{}{}
		}
	}

	for _, p := range t.CustomPages {
		if !p.IsPublished {
			continue
		}
		path := PagePath(p.Slug)
		if _, ok := linked[path]; ok {
			continue
		}
		entries = append(entries, Entry{Label: p.Title, Path: path})
	}

	return entries
}

// FooterEntries returns the configured footer links, or nil when the
// tenant has no footer configuration.
func FooterEntries(t tenant.Tenant) []Entry {
	if t.FooterConfig == nil {
		return nil
	}
	entries := make([]Entry, 0, len(t.FooterConfig.Links))
	for _, link := range t.FooterConfig.Links {
		entries = append(entries, Entry{Label: link.Label, Path: link.Path})
	}
	return entries
}
