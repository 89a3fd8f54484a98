// Package render turns a tenant's stored pages into finished HTML
// documents: resolved head metadata, tenant chrome, and one markup block
// per section in order.
package render

import (
	"fmt"
	"html/template"
	"net/url"
	"regexp"
	"strings"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-logr/logr"

	"github.com/advisorhq/web/internal/menu"
	"github.com/advisorhq/web/internal/page"
	"github.com/advisorhq/web/internal/section"
	"github.com/advisorhq/web/internal/tenant"
)

// CalculatorEmbedder renders the widget block for a CALCULATOR section.
// *tools.Embedder satisfies this.
type CalculatorEmbedder interface {
	Render(calculatorType string) (template.HTML, error)
}

const defaultMapAddress = "Mumbai"

// MapEmbedURL builds the Google Maps embed URL for an address. Empty
// addresses fall back to a city-level view.
func MapEmbedURL(address string) string {
	if address == "" {
		address = defaultMapAddress
	}
	return "https://maps.google.com/maps?q=" + url.QueryEscape(address) + "&t=&z=13&ie=UTF8&iwloc=&output=embed"
}

var colorPattern = regexp.MustCompile(`^(#[0-9a-fA-F]{3,8}|[a-zA-Z]+|rgba?\([0-9.,% ]+\))$`)

// colorsAttr emits an inline style attribute carrying the per-section
// color overrides. Values that do not look like CSS colors are dropped.
func colorsAttr(background, text string) template.HTMLAttr {
	var parts []string
	if colorPattern.MatchString(background) {
		parts = append(parts, "background-color:"+background)
	}
	if colorPattern.MatchString(text) {
		parts = append(parts, "color:"+text)
	}
	if len(parts) == 0 {
		return ""
	}
	return template.HTMLAttr(` style="` + strings.Join(parts, ";") + `"`)
}

type Renderer struct {
	frame    *template.Template
	notFound *template.Template
	sections map[section.Type]*template.Template
	embedder CalculatorEmbedder
	log      logr.Logger
}

func NewRenderer(embedder CalculatorEmbedder, log logr.Logger) (*Renderer, error) {
	funcs := sprig.FuncMap()
	funcs["raw"] = func(s string) template.HTML { return template.HTML(s) }
	funcs["colors"] = colorsAttr
	funcs["mapURL"] = func(address string) template.URL { return template.URL(MapEmbedURL(address)) }

	frame, err := template.New("frame").Funcs(funcs).Parse(frameTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing frame template: %w", err)
	}
	notFound, err := template.New("not-found").Funcs(funcs).Parse(notFoundTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing not-found template: %w", err)
	}

	sections := make(map[section.Type]*template.Template, len(sectionTemplates))
	for name, content := range sectionTemplates {
		tmpl, err := template.New(name).Funcs(funcs).Parse(content)
		if err != nil {
			return nil, fmt.Errorf("parsing section template %s: %w", name, err)
		}
		sections[section.Type(name)] = tmpl
	}

	return &Renderer{
		frame:    frame,
		notFound: notFound,
		sections: sections,
		embedder: embedder,
		log:      log.WithName("render"),
	}, nil
}

type frameData struct {
	Meta              Meta
	TenantName        string
	LogoURL           string
	PrimaryColor      template.CSS
	SecondaryColor    template.CSS
	HeaderLinks       []menu.Entry
	ShowAuthButton    bool
	FooterDescription string
	FooterLinks       []menu.Entry
	ShowContact       bool
	ContactEmail      string
	ContactPhone      string
	Address           string
	SebiRegNo         string
	CopyrightText     string
	Body              template.HTML
}

type sectionData struct {
	C       section.Content
	Widgets template.HTML
}

// RenderPage produces the full document for a published page: sections in
// Order, page-level metadata, tenant header and footer.
func (r *Renderer) RenderPage(t tenant.Tenant, p page.CustomPage) (string, error) {
	sections := section.CloneAll(p.Sections)
	section.SortByOrder(sections)

	var body strings.Builder
	for _, sec := range sections {
		block, err := r.renderSection(sec)
		if err != nil {
			return "", fmt.Errorf("page %q section %q: %w", p.ID, sec.ID, err)
		}
		body.WriteString(block)
		body.WriteString("\n")
	}

	r.log.V(1).Info("page rendered", "tenant", t.ID, "page", p.ID, "sections", len(sections))
	return r.renderFrame(t, ResolveSEO(t, &p), template.HTML(body.String()))
}

// RenderNotFound produces the 404 document in the tenant's chrome. Missing
// and unpublished slugs both land here.
func (r *Renderer) RenderNotFound(t tenant.Tenant) (string, error) {
	var body strings.Builder
	if err := r.notFound.Execute(&body, nil); err != nil {
		return "", fmt.Errorf("rendering not-found: %w", err)
	}
	return r.renderFrame(t, ResolveSEO(t, nil), template.HTML(body.String()))
}

// RenderHome produces the site-level landing document: the welcome
// message and the tenant chrome.
func (r *Renderer) RenderHome(t tenant.Tenant) (string, error) {
	var body strings.Builder
	body.WriteString(`<section class="section-hero"><h1>`)
	body.WriteString(template.HTMLEscapeString(t.Name))
	body.WriteString(`</h1>`)
	if t.WelcomeMessage != "" {
		body.WriteString(`<p class="subtitle">`)
		body.WriteString(template.HTMLEscapeString(t.WelcomeMessage))
		body.WriteString(`</p>`)
	}
	body.WriteString(`</section>`)
	return r.renderFrame(t, ResolveSEO(t, nil), template.HTML(body.String()))
}

func (r *Renderer) renderSection(sec section.Section) (string, error) {
	tmpl, ok := r.sections[sec.Type]
	if !ok {
		return "", fmt.Errorf("no template for section type %q", sec.Type)
	}

	data := sectionData{C: sec.Content}
	if calc, ok := sec.Content.(section.CalculatorContent); ok {
		widgets, err := r.embedder.Render(calc.CalculatorType)
		if err != nil {
			return "", err
		}
		data.Widgets = widgets
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (r *Renderer) renderFrame(t tenant.Tenant, meta Meta, body template.HTML) (string, error) {
	data := frameData{
		Meta:           meta,
		TenantName:     t.Name,
		LogoURL:        t.LogoURL,
		PrimaryColor:   cssColor(t.PrimaryColor, "#1e3a8a"),
		SecondaryColor: cssColor(t.SecondaryColor, "#0f172a"),
		HeaderLinks:    menu.HeaderEntries(t),
		ContactEmail:   t.ContactEmail,
		ContactPhone:   t.ContactPhone,
		Address:        t.Address,
		SebiRegNo:      t.SebiRegNo,
		Body:           body,
	}
	if t.HeaderConfig != nil {
		data.ShowAuthButton = t.HeaderConfig.ShowAuthButton
	}
	if t.FooterConfig != nil {
		data.FooterDescription = t.FooterConfig.Description
		data.FooterLinks = menu.FooterEntries(t)
		data.ShowContact = t.FooterConfig.ShowContact
		data.CopyrightText = t.FooterConfig.CopyrightText
	}

	var buf strings.Builder
	if err := r.frame.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering frame: %w", err)
	}
	return buf.String(), nil
}

func cssColor(value, fallback string) template.CSS {
	if colorPattern.MatchString(value) {
		return template.CSS(value)
	}
	return template.CSS(fallback)
}
