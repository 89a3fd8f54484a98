package render

// One template per section variant plus the page frame. The markup is
// server-rendered chrome: classes line up with the platform stylesheet,
// inline styles carry the per-section color overrides.

const frameTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Meta.Title}}</title>
<meta name="description" content="{{.Meta.Description}}">
<meta name="keywords" content="{{.Meta.Keywords}}">
<meta property="og:title" content="{{.Meta.Title}}">
<meta property="og:description" content="{{.Meta.Description}}">
{{- if .Meta.OGImage}}
<meta property="og:image" content="{{.Meta.OGImage}}">
{{- end}}
<meta property="og:type" content="website">
<style>:root{--primary-color:{{.PrimaryColor}};--secondary-color:{{.SecondaryColor}}}</style>
</head>
<body>
<header class="site-header">
  <a class="brand" href="/">
    {{- if .LogoURL}}<img src="{{.LogoURL}}" alt="{{.TenantName}}">{{end}}
    <span>{{.TenantName}}</span>
  </a>
  <nav>
  {{- range .HeaderLinks}}
    <a href="{{.Path}}">{{.Label}}</a>
  {{- end}}
  </nav>
  {{- if .ShowAuthButton}}
  <a class="auth-button" href="/login">Login</a>
  {{- end}}
</header>
<main>
{{.Body}}
</main>
<footer class="site-footer">
  {{- if .FooterDescription}}
  <p class="footer-description">{{.FooterDescription}}</p>
  {{- end}}
  {{- if .FooterLinks}}
  <nav>
  {{- range .FooterLinks}}
    <a href="{{.Path}}">{{.Label}}</a>
  {{- end}}
  </nav>
  {{- end}}
  {{- if .ShowContact}}
  <div class="footer-contact">
    {{- if .ContactEmail}}<p>{{.ContactEmail}}</p>{{end}}
    {{- if .ContactPhone}}<p>{{.ContactPhone}}</p>{{end}}
    {{- if .Address}}<p>{{.Address}}</p>{{end}}
  </div>
  {{- end}}
  {{- if .SebiRegNo}}
  <p class="sebi-reg">SEBI Reg. No: {{.SebiRegNo}}</p>
  {{- end}}
  {{- if .CopyrightText}}
  <p class="copyright">{{.CopyrightText}}</p>
  {{- end}}
</footer>
</body>
</html>`

const notFoundTemplate = `<div class="not-found">
<h1>404</h1>
<p>Page Not Found</p>
<a href="/">Return Home</a>
</div>`

var sectionTemplates = map[string]string{
	"HERO": `<section class="section-hero"{{colors .C.BackgroundColor .C.TextColor}}>
{{- if .C.BackgroundImage}}
<div class="hero-background"><img src="{{.C.BackgroundImage}}" alt=""></div>
{{- end}}
<h1>{{.C.Title}}</h1>
{{- if .C.Subtitle}}
<p class="subtitle">{{.C.Subtitle}}</p>
{{- end}}
{{- if .C.ButtonText}}
<a class="button" href="{{default "#" .C.ButtonLink}}">{{.C.ButtonText}}</a>
{{- end}}
</section>`,

	"TEXT": `<section class="section-text"{{colors .C.BackgroundColor .C.TextColor}}>
<div class="prose">{{raw .C.HTML}}</div>
</section>`,

	"IMAGE_TEXT": `<section class="section-image-text image-{{default "right" .C.ImagePosition}}"{{colors .C.BackgroundColor .C.TextColor}}>
<div class="copy">
<h2>{{.C.Title}}</h2>
<p>{{.C.Text}}</p>
</div>
{{- if .C.Image}}
<div class="media"><img src="{{.C.Image}}" alt="{{.C.Title}}"></div>
{{- end}}
</section>`,

	"FEATURES": `<section class="section-features">
<div class="feature-grid">
{{- range .C.Items}}
<div class="feature">
{{- if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
<h3>{{.Title}}</h3>
<p>{{.Description}}</p>
</div>
{{- end}}
</div>
</section>`,

	"CTA": `<section class="section-cta"{{colors .C.BackgroundColor .C.TextColor}}>
<h2>{{.C.Title}}</h2>
<a class="button button-{{default "primary" .C.Variant}}" href="{{.C.ButtonLink}}">{{.C.ButtonText}}</a>
</section>`,

	"HTML": `{{raw .C.HTML}}`,

	"STATS": `<section class="section-stats">
{{- range .C.Items}}
<div class="stat"><span class="value">{{.Value}}</span><span class="label">{{.Label}}</span></div>
{{- end}}
</section>`,

	"TESTIMONIALS": `<section class="section-testimonials">
{{- range .C.Items}}
<blockquote class="testimonial">
<p>&ldquo;{{.Quote}}&rdquo;</p>
<footer>
{{- if .Image}}<img src="{{.Image}}" alt="{{.Author}}">{{end}}
<cite>{{.Author}}</cite>{{if .Role}}<span class="role">{{.Role}}</span>{{end}}
</footer>
</blockquote>
{{- end}}
</section>`,

	"PRICING": `<section class="section-pricing">
{{- range .C.Plans}}
<div class="plan">
<h3>{{.Name}}</h3>
<p class="price">{{.Price}}</p>
<p class="features">{{.Features}}</p>
<a class="button" href="#">{{.ButtonText}}</a>
</div>
{{- end}}
</section>`,

	"TEAM": `<section class="section-team">
{{- range .C.Members}}
<div class="member">
{{- if .Image}}<img src="{{.Image}}" alt="{{.Name}}">{{end}}
<h3>{{.Name}}</h3>
<p class="role">{{.Role}}</p>
<p class="bio">{{.Bio}}</p>
</div>
{{- end}}
</section>`,

	"FAQ": `<section class="section-faq">
{{- range .C.Questions}}
<details class="faq-item">
<summary>{{.Question}}</summary>
<p>{{.Answer}}</p>
</details>
{{- end}}
</section>`,

	"CONTACT": `<section class="section-contact">
<div class="contact-details">
{{- if .C.Email}}<p><a href="mailto:{{.C.Email}}">{{.C.Email}}</a></p>{{end}}
{{- if .C.Phone}}<p>{{.C.Phone}}</p>{{end}}
{{- if .C.Address}}<p>{{.C.Address}}</p>{{end}}
</div>
{{- if .C.ShowForm}}
<form class="contact-form" method="post" action="/contact">
<input type="text" name="name" placeholder="Your Name">
<input type="email" name="email" placeholder="Your Email">
<textarea name="message" placeholder="Message"></textarea>
<button type="submit">Send</button>
</form>
{{- end}}
</section>`,

	"CALCULATOR": `<section class="section-calculator"{{colors .C.BackgroundColor .C.TextColor}}>
<h2>{{.C.Title}}</h2>
{{.Widgets}}
</section>`,

	"MAP": `<section class="section-map"{{colors .C.BackgroundColor .C.TextColor}}>
{{- if .C.Title}}
<h2>{{.C.Title}}</h2>
{{- end}}
<iframe width="100%" height="{{default "450" .C.Height}}" frameborder="0" src="{{mapURL .C.Address}}" title="Map Location"></iframe>
</section>`,
}
