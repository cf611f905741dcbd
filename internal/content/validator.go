package content

import (
	"strings"
	"time"
	"unicode/utf8"
)

const (
	titleMinLen   = 10
	titleMaxLen   = 100
	taglineMinLen = 5
	taglineMaxLen = 150
	aboutMinLen   = 100
	servicesMin   = 3
	servicesMax   = 10
)

// Validator converts "might be missing or invalid" into "guaranteed
// complete". Every code path returns a structurally complete WebsiteContent;
// it never fails.
type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

// Validate repairs raw field by field against the specialty's defaults. A
// nil raw yields the pure default content for the specialty.
func (v *Validator) Validate(raw *RawContent, specialty string) *WebsiteContent {
	defaults := DefaultsFor(specialty)
	features := []string{}

	out := &WebsiteContent{
		Specialty:   specialty,
		GeneratedAt: time.Now().UTC(),
	}
	if raw == nil {
		raw = &RawContent{}
		features = append(features, "defaults-only")
	}

	out.Title, features = v.repairText(raw.Title, defaults.Title, titleMinLen, titleMaxLen, "title", features)
	out.Tagline, features = v.repairText(raw.Tagline, defaults.Tagline, taglineMinLen, taglineMaxLen, "tagline", features)

	out.Hero = v.repairHero(raw.Hero, defaults.Hero)
	out.About, features = v.repairAbout(raw.About, defaults, features)
	out.Services, features = v.repairServices(raw.Services, defaults.Services, features)
	out.Contact = v.repairContact(raw.Contact, defaults.Contact)
	out.SEO = v.repairSEO(raw.SEO, defaults.SEO)

	out.ContentFeatures = features
	out.QualityScore = Score(out)
	return out
}

// repairText enforces a [min,max] length in characters, not bytes: too
// short substitutes the default, too long truncates on a rune boundary
// with an ellipsis.
func (v *Validator) repairText(value, fallback string, min, max int, field string, features []string) (string, []string) {
	value = strings.TrimSpace(value)
	runes := []rune(value)
	if len(runes) < min {
		return fallback, append(features, field+"-defaulted")
	}
	if len(runes) > max {
		return strings.TrimSpace(string(runes[:max-3])) + "...", append(features, field+"-truncated")
	}
	return value, features
}

func (v *Validator) repairHero(h *Hero, defaults Hero) Hero {
	if h == nil {
		return defaults
	}
	out := *h
	if strings.TrimSpace(out.Headline) == "" {
		out.Headline = defaults.Headline
	}
	if strings.TrimSpace(out.Subheadline) == "" {
		out.Subheadline = defaults.Subheadline
	}
	if strings.TrimSpace(out.CTAText) == "" {
		out.CTAText = defaults.CTAText
	}
	return out
}

func (v *Validator) repairAbout(a *About, defaults Profile, features []string) (About, []string) {
	out := About{}
	if a != nil {
		out = *a
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = defaults.AboutTitle
	}
	if utf8.RuneCountInString(strings.TrimSpace(out.Body)) < aboutMinLen {
		out.Body = defaults.AboutBody
		features = append(features, "about-defaulted")
	}
	return out, features
}

// repairServices pads from the specialty's static service list up to the
// minimum and caps at the maximum. Individual entries are repaired too.
func (v *Validator) repairServices(services []Service, defaults []Service, features []string) ([]Service, []string) {
	out := make([]Service, 0, servicesMax)
	for _, s := range services {
		if strings.TrimSpace(s.Name) == "" {
			continue
		}
		if strings.TrimSpace(s.Description) == "" {
			s.Description = "Ask our team for details about this service."
		}
		if strings.TrimSpace(s.Icon) == "" {
			s.Icon = "plus"
		}
		out = append(out, s)
		if len(out) == servicesMax {
			features = append(features, "services-capped")
			break
		}
	}

	if len(out) < servicesMin {
		padded := false
		for _, d := range defaults {
			if len(out) >= servicesMin {
				break
			}
			if containsService(out, d.Name) {
				continue
			}
			out = append(out, d)
			padded = true
		}
		if padded {
			features = append(features, "services-padded")
		}
	}
	return out, features
}

func containsService(services []Service, name string) bool {
	for _, s := range services {
		if strings.EqualFold(s.Name, name) {
			return true
		}
	}
	return false
}

func (v *Validator) repairContact(c *Contact, defaults Contact) Contact {
	out := Contact{}
	if c != nil {
		out = *c
	}
	if strings.TrimSpace(out.Phone) == "" {
		out.Phone = defaults.Phone
	}
	if strings.TrimSpace(out.Email) == "" {
		out.Email = defaults.Email
	}
	if strings.TrimSpace(out.Address) == "" {
		out.Address = defaults.Address
	}
	if strings.TrimSpace(out.Hours) == "" {
		out.Hours = defaults.Hours
	}
	return out
}

func (v *Validator) repairSEO(s *SEO, defaults SEO) SEO {
	out := SEO{}
	if s != nil {
		out = *s
	}
	if strings.TrimSpace(out.Title) == "" {
		out.Title = defaults.Title
	}
	if strings.TrimSpace(out.Description) == "" {
		out.Description = defaults.Description
	}
	if len(out.Keywords) == 0 {
		out.Keywords = append([]string(nil), defaults.Keywords...)
	}
	return out
}
