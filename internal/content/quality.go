package content

import (
	"strings"
	"unicode/utf8"
)

// Score computes the informational quality score in [0,1]: five equally
// weighted checks over title, services, about, SEO, and contact. It is not
// a pass/fail gate.
func Score(c *WebsiteContent) float64 {
	score := 0.0
	if n := utf8.RuneCountInString(strings.TrimSpace(c.Title)); n >= titleMinLen && n <= titleMaxLen {
		score += 0.2
	}
	if len(c.Services) >= 4 {
		score += 0.2
	}
	if utf8.RuneCountInString(strings.TrimSpace(c.About.Body)) >= aboutMinLen {
		score += 0.2
	}
	if strings.TrimSpace(c.SEO.Title) != "" && strings.TrimSpace(c.SEO.Description) != "" {
		score += 0.2
	}
	if strings.TrimSpace(c.Contact.Phone) != "" && strings.TrimSpace(c.Contact.Email) != "" {
		score += 0.2
	}
	return score
}

// Recommendations derives caller-facing suggestions from the quality checks
// that did not pass.
func Recommendations(c *WebsiteContent) []string {
	var recs []string
	if n := utf8.RuneCountInString(strings.TrimSpace(c.Title)); n < titleMinLen || n > titleMaxLen {
		recs = append(recs, "refine the practice title to between 10 and 100 characters")
	}
	if len(c.Services) < 4 {
		recs = append(recs, "add more services to showcase the full range of care offered")
	}
	if utf8.RuneCountInString(strings.TrimSpace(c.About.Body)) < aboutMinLen {
		recs = append(recs, "expand the about section with more detail about the practice")
	}
	if strings.TrimSpace(c.SEO.Title) == "" || strings.TrimSpace(c.SEO.Description) == "" {
		recs = append(recs, "complete the SEO title and description to improve search visibility")
	}
	if strings.TrimSpace(c.Contact.Phone) == "" || strings.TrimSpace(c.Contact.Email) == "" {
		recs = append(recs, "provide both a phone number and an email address")
	}
	return recs
}
