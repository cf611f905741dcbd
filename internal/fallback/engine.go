// Package fallback produces complete, valid website content without the
// completion backend. The template tier clones a static per-specialty
// skeleton and personalizes it from indicator words in the raw text; the
// emergency tier is a specialty-agnostic literal of last resort.
package fallback

import (
	"regexp"
	"strings"
	"time"

	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/common/metrics"
	"medsite-generator/internal/content"
)

const (
	templateTierScore  = 0.6
	emergencyTierScore = 0.3
)

var locationPattern = regexp.MustCompile(`(?:located in|based in|serving)\s+([A-Za-z][A-Za-z .'-]{2,40})`)

// Engine resolves fallback content. All personalization is deterministic
// string substitution, never generation: the same raw text always yields
// the same content, and re-personalizing changes nothing.
type Engine struct {
	logger logger.Logger
}

func NewEngine(log logger.Logger) *Engine {
	return &Engine{
		logger: log.WithFields(map[string]interface{}{"component": "fallback"}),
	}
}

// Fallback builds content from the specialty's static skeleton, then
// adjusts a small closed set of fields based on indicator words.
func (e *Engine) Fallback(rawText, specialty string) *content.WebsiteContent {
	metrics.FallbackActivations.WithLabelValues("template").Inc()

	skeleton := e.skeleton(specialty)
	personalized := e.personalize(skeleton, rawText)
	personalized.QualityScore = templateTierScore
	personalized.FallbackUsed = true
	personalized.ContentFeatures = append(personalized.ContentFeatures, "fallback-template")

	e.logger.Info("template fallback produced content", map[string]interface{}{
		"specialty": specialty,
	})
	return personalized
}

// EmergencyFallback returns the specialty-agnostic last-resort content.
// Always structurally valid, always tagged as a fallback.
func (e *Engine) EmergencyFallback(specialty string) *content.WebsiteContent {
	metrics.FallbackActivations.WithLabelValues("emergency").Inc()
	e.logger.Warn("emergency fallback engaged", map[string]interface{}{
		"specialty": specialty,
	})

	if specialty == "" {
		specialty = "general-practice"
	}
	return &content.WebsiteContent{
		Specialty: specialty,
		Title:     "Welcome to Our Medical Practice",
		Tagline:   "Quality healthcare, close to home",
		Hero: content.Hero{
			Headline:    "Caring for Our Community",
			Subheadline: "Professional medical care from an experienced team",
			CTAText:     "Contact Us",
		},
		About: content.About{
			Title: "About Our Practice",
			Body: "Our practice is dedicated to providing attentive, professional medical " +
				"care to every patient. Our experienced team focuses on clear communication, " +
				"careful diagnosis, and treatment plans tailored to your individual needs.",
		},
		Services: []content.Service{
			{Name: "Consultations", Description: "In-person evaluations with our medical team.", Icon: "stethoscope"},
			{Name: "Preventive Care", Description: "Screenings and checkups to keep you healthy.", Icon: "shield"},
			{Name: "Treatment Plans", Description: "Personalized care built around your needs.", Icon: "clipboard"},
		},
		Contact: content.Contact{
			Phone:   "(555) 000-0000",
			Email:   "info@practice.example.com",
			Address: "Contact us for our location",
			Hours:   "Mon-Fri 9:00am-5:00pm",
		},
		SEO: content.SEO{
			Title:       "Medical Practice",
			Description: "Professional medical care from an experienced team.",
			Keywords:    []string{"medical practice", "healthcare"},
		},
		QualityScore:    emergencyTierScore,
		FallbackUsed:    true,
		ContentFeatures: []string{"fallback-emergency"},
		GeneratedAt:     time.Now().UTC(),
	}
}

func (e *Engine) skeleton(specialty string) *content.WebsiteContent {
	p := content.DefaultsFor(specialty)
	return &content.WebsiteContent{
		Specialty:   specialty,
		Title:       p.Title,
		Tagline:     p.Tagline,
		Hero:        p.Hero,
		About:       content.About{Title: p.AboutTitle, Body: p.AboutBody},
		Services:    append([]content.Service(nil), p.Services...),
		Contact:     p.Contact,
		SEO:         p.SEO,
		GeneratedAt: time.Now().UTC(),
	}
}

// personalize applies the closed indicator-word set. Fields are replaced,
// never appended to, so the operation is idempotent.
func (e *Engine) personalize(c *content.WebsiteContent, rawText string) *content.WebsiteContent {
	out := c.Clone()
	lowered := strings.ToLower(rawText)

	if strings.Contains(lowered, "emergency") {
		out.Hero.CTAText = "Call Now - Urgent Care Available"
		out.Contact.Hours = "Mon-Fri 8:00am-6:00pm, 24/7 emergency line"
		out.ContentFeatures = append(out.ContentFeatures, "personalized-emergency")
	}

	if strings.Contains(lowered, "family") || strings.Contains(lowered, "children") {
		out.Tagline = "Welcoming patients of all ages, from children to grandparents"
		out.ContentFeatures = append(out.ContentFeatures, "personalized-family")
	}

	if m := locationPattern.FindStringSubmatch(rawText); m != nil {
		city := strings.TrimSpace(m[1])
		out.Contact.Address = "Serving " + city
		out.SEO.Title = out.SEO.Title + " in " + city
		out.ContentFeatures = append(out.ContentFeatures, "personalized-location")
	}

	return out
}
