package tenant

import (
	"github.com/advisorhq/web/internal/page"
)

// Modules toggles the product areas a tenant has licensed.
type Modules struct {
	Investment    bool `json:"investment"`
	Insurance     bool `json:"insurance"`
	Loans         bool `json:"loans"`
	DocumentVault bool `json:"documentVault"`
}

// NavigationLink is one entry of a header or footer menu.
type NavigationLink struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

type HeaderConfig struct {
	Navigation     []NavigationLink `json:"navigation"`
	ShowAuthButton bool             `json:"showAuthButton"`
}

type FooterConfig struct {
	Description   string           `json:"description"`
	Links         []NavigationLink `json:"links"`
	ShowContact   bool             `json:"showContact"`
	CopyrightText string           `json:"copyrightText"`
}

// MediaAsset is an uploaded file in a tenant's library. Size is a
// human-readable string like "2.4 MB"; Type is "image" or "document".
type MediaAsset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Date string `json:"date"`
	Size string `json:"size"`
}

// Tenant is one advisory firm on the platform, carrying its branding,
// licensed modules, site chrome, pages and media library.
type Tenant struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	PrimaryColor   string            `json:"primaryColor"`
	SecondaryColor string            `json:"secondaryColor"`
	LogoURL        string            `json:"logoUrl,omitempty"`
	Domain         string            `json:"domain"`
	ContactEmail   string            `json:"contactEmail,omitempty"`
	ContactPhone   string            `json:"contactPhone,omitempty"`
	Address        string            `json:"address,omitempty"`
	WelcomeMessage string            `json:"welcomeMessage,omitempty"`
	SebiRegNo      string            `json:"sebiRegNo,omitempty"`
	Modules        Modules           `json:"modules"`
	CustomPages    []page.CustomPage `json:"customPages"`
	Assets         []MediaAsset      `json:"assets"`
	HeaderConfig   *HeaderConfig     `json:"headerConfig,omitempty"`
	FooterConfig   *FooterConfig     `json:"footerConfig,omitempty"`
	SEO            *page.SeoConfig   `json:"seo,omitempty"`
}

// Clone returns a deep copy sharing no references with the original.
func (t Tenant) Clone() Tenant {
	out := t
	if len(t.CustomPages) > 0 {
		out.CustomPages = make([]page.CustomPage, len(t.CustomPages))
		for i, p := range t.CustomPages {
			out.CustomPages[i] = p.Clone()
		}
	}
	out.Assets = append([]MediaAsset(nil), t.Assets...)
	if t.HeaderConfig != nil {
		hc := *t.HeaderConfig
		hc.Navigation = append([]NavigationLink(nil), t.HeaderConfig.Navigation...)
		out.HeaderConfig = &hc
	}
	if t.FooterConfig != nil {
		fc := *t.FooterConfig
		fc.Links = append([]NavigationLink(nil), t.FooterConfig.Links...)
		out.FooterConfig = &fc
	}
	if t.SEO != nil {
		seo := *t.SEO
		out.SEO = &seo
	}
	return out
}
