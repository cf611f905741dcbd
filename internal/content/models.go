// Package content defines the canonical website content model and the
// validator/enhancer that turns possibly-broken generator output into a
// structurally complete object.
package content

import "time"

type Service struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type Hero struct {
	Headline    string `json:"headline"`
	Subheadline string `json:"subheadline"`
	CTAText     string `json:"ctaText"`
}

type About struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Contact struct {
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

type SEO struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// WebsiteContent is the unit that is validated, cached, cloned into
// fallbacks, and fed to rendering. Every field is guaranteed non-empty once
// it has passed through Validate.
type WebsiteContent struct {
	Specialty       string    `json:"specialty"`
	Title           string    `json:"title"`
	Tagline         string    `json:"tagline"`
	Hero            Hero      `json:"hero"`
	About           About     `json:"about"`
	Services        []Service `json:"services"`
	Contact         Contact   `json:"contact"`
	SEO             SEO       `json:"seo"`
	QualityScore    float64   `json:"qualityScore"`
	FallbackUsed    bool      `json:"fallbackUsed"`
	ContentFeatures []string  `json:"contentFeatures,omitempty"`
	GeneratedAt     time.Time `json:"generatedAt"`
}

// RawContent is what the generator parses out of the completion backend.
// Any field may be missing, empty, or out of contract; only Validate turns
// it into a WebsiteContent.
type RawContent struct {
	Title    string    `json:"title"`
	Tagline  string    `json:"tagline"`
	Hero     *Hero     `json:"hero"`
	About    *About    `json:"about"`
	Services []Service `json:"services"`
	Contact  *Contact  `json:"contact"`
	SEO      *SEO      `json:"seo"`
}

// TemplateData flattens the content into the map shape the render engine
// walks with dot-paths.
func (c *WebsiteContent) TemplateData() map[string]interface{} {
	services := make([]interface{}, len(c.Services))
	for i, s := range c.Services {
		services[i] = map[string]interface{}{
			"name":        s.Name,
			"description": s.Description,
			"icon":        s.Icon,
		}
	}
	return map[string]interface{}{
		"specialty": c.Specialty,
		"title":     c.Title,
		"tagline":   c.Tagline,
		"hero": map[string]interface{}{
			"headline":    c.Hero.Headline,
			"subheadline": c.Hero.Subheadline,
			"ctaText":     c.Hero.CTAText,
		},
		"about": map[string]interface{}{
			"title": c.About.Title,
			"body":  c.About.Body,
		},
		"services": services,
		"contact": map[string]interface{}{
			"phone":   c.Contact.Phone,
			"email":   c.Contact.Email,
			"address": c.Contact.Address,
			"hours":   c.Contact.Hours,
		},
		"seo": map[string]interface{}{
			"title":       c.SEO.Title,
			"description": c.SEO.Description,
		},
	}
}

// Clone returns a deep copy so fallback personalization never mutates the
// shared skeletons.
func (c *WebsiteContent) Clone() *WebsiteContent {
	copied := *c
	copied.Services = append([]Service(nil), c.Services...)
	copied.SEO.Keywords = append([]string(nil), c.SEO.Keywords...)
	copied.ContentFeatures = append([]string(nil), c.ContentFeatures...)
	return &copied
}
