package render

import (
	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/tenant"
)

const (
	genericDescription = "Fintech Platform"
	genericKeywords    = "finance, investment, loans, insurance"
)

// Meta is the fully resolved head metadata for one response.
type Meta struct {
	Title       string
	Description string
	Keywords    string
	OGImage     string
}

// ResolveSEO walks the metadata fallback chain: page overrides, then the
// tenant's site-wide configuration, then generic tenant facts. A page
// always contributes a title, so page responses compose it with the site
// name; pass nil for site-level responses.
func ResolveSEO(t tenant.Tenant, p *page.CustomPage) Meta {
	var pageSEO page.SeoConfig
	if p != nil && p.SEO != nil {
		pageSEO = *p.SEO
	}
	var siteSEO page.SeoConfig
	if t.SEO != nil {
		siteSEO = *t.SEO
	}

	meta := Meta{
		Description: firstOf(pageSEO.Description, siteSEO.Description, t.WelcomeMessage, genericDescription),
		Keywords:    firstOf(pageSEO.Keywords, siteSEO.Keywords, genericKeywords),
		OGImage:     firstOf(pageSEO.OGImage, siteSEO.OGImage, t.LogoURL),
	}

	if p != nil {
		meta.Title = firstOf(pageSEO.Title, p.Title) + " | " + t.Name
	} else {
		meta.Title = firstOf(siteSEO.Title, t.Name)
	}
	return meta
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
