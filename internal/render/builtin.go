package render

// PageSite is the name of the built-in single-page site template.
const PageSite = "site"

// DefaultStyle returns the style data the page shell's inline CSS reads.
// Callers overlay customizations on top of this map before rendering.
func DefaultStyle() map[string]interface{} {
	return map[string]interface{}{
		"primaryColor":    "#0b6e99",
		"accentColor":     "#e8a33d",
		"backgroundColor": "#f7f9fa",
		"textColor":       "#23313a",
		"fontFamily":      "'Segoe UI', 'Helvetica Neue', Arial, sans-serif",
	}
}

const siteTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{seo.title}}</title>
<meta name="description" content="{{seo.description}}">
<style>
  * { box-sizing: border-box; }
  body { margin: 0; font-family: {{{style.fontFamily}}}; background: {{style.backgroundColor}}; color: {{style.textColor}}; line-height: 1.6; }
  section, header, footer { padding: 3rem 1.5rem; }
  h1, h2, h3 { line-height: 1.2; }
  .hero { background: {{style.primaryColor}}; color: #ffffff; text-align: center; padding: 5rem 1.5rem; }
  .hero h1 { font-size: 2.4rem; margin: 0 0 0.5rem; }
  .hero p { font-size: 1.2rem; margin: 0 0 1.5rem; opacity: 0.92; }
  .hero .cta { display: inline-block; background: {{style.accentColor}}; color: #ffffff; padding: 0.8rem 2rem; border-radius: 4px; text-decoration: none; font-weight: 600; }
  .services { max-width: 960px; margin: 0 auto; }
  .services h2, .about h2, .contact h2 { text-align: center; color: {{style.primaryColor}}; }
  .service-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(240px, 1fr)); gap: 1.25rem; }
  .service-card { background: #ffffff; border-radius: 6px; padding: 1.5rem; box-shadow: 0 1px 4px rgba(0,0,0,0.08); }
  .service-card h3 { margin-top: 0; color: {{style.primaryColor}}; }
  .about { background: #ffffff; }
  .about .body { max-width: 720px; margin: 0 auto; }
  .contact { max-width: 720px; margin: 0 auto; }
  .contact dl { display: grid; grid-template-columns: auto 1fr; gap: 0.4rem 1.25rem; }
  .contact dt { font-weight: 600; color: {{style.primaryColor}}; }
  footer { text-align: center; font-size: 0.85rem; color: #667; padding: 1.5rem; }
</style>
</head>
<body>
{{> hero}}
{{> services}}
{{> about}}
{{> contact}}
<footer>
<p>{{title}}{{#if tagline}} &middot; {{tagline}}{{/if}}</p>
</footer>
</body>
</html>
`

var builtinPartials = map[string]string{
	"hero": `<header class="hero">
<h1>{{hero.headline}}</h1>
{{#if hero.subheadline}}<p>{{hero.subheadline}}</p>{{/if}}
{{#if hero.ctaText}}<a class="cta" href="#contact">{{hero.ctaText}}</a>{{/if}}
</header>
`,
	"services": `<section class="services" id="services">
<h2>Our Services</h2>
<div class="service-grid">
{{#each services}}<div class="service-card" data-icon="{{icon}}">
<h3>{{name}}</h3>
<p>{{description}}</p>
</div>
{{/each}}</div>
</section>
`,
	"about": `<section class="about" id="about">
<h2>{{about.title}}</h2>
<div class="body"><p>{{about.body}}</p></div>
</section>
`,
	"contact": `<section class="contact" id="contact">
<h2>Contact Us</h2>
<dl>
{{#if contact.phone}}<dt>Phone</dt><dd>{{contact.phone}}</dd>{{/if}}
{{#if contact.email}}<dt>Email</dt><dd>{{contact.email}}</dd>{{/if}}
{{#if contact.address}}<dt>Address</dt><dd>{{contact.address}}</dd>{{/if}}
{{#if contact.hours}}<dt>Hours</dt><dd>{{contact.hours}}</dd>{{/if}}
</dl>
</section>
`,
}
