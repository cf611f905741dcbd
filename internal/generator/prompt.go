package generator

import (
	"fmt"
	"strings"

	"medsite-generator/internal/content"
)

// outputSchemaDescription is embedded in every prompt so the backend knows
// the exact JSON shape expected back.
const outputSchemaDescription = `{
  "title": "practice name or headline (10-100 chars)",
  "tagline": "short marketing tagline",
  "hero": {"headline": "...", "subheadline": "...", "ctaText": "..."},
  "about": {"title": "...", "body": "at least 100 chars about the practice"},
  "services": [{"name": "...", "description": "...", "icon": "one-word icon id"}],
  "contact": {"phone": "...", "email": "...", "address": "...", "hours": "..."},
  "seo": {"title": "...", "description": "...", "keywords": ["..."]}
}`

// buildPrompt embeds the raw practice description and the specialty into a
// generation request with a strict output contract.
func buildPrompt(rawText, specialty string) string {
	profile := content.DefaultsFor(specialty)

	var parts []string
	parts = append(parts, fmt.Sprintf(
		"You are a medical marketing copywriter. Write website content for a %s practice.",
		profile.DisplayName))
	parts = append(parts, "Practice description (from the practitioner, may be speech-to-text):")
	parts = append(parts, rawText)
	parts = append(parts, fmt.Sprintf(
		"Keep a professional, reassuring tone appropriate for %s. Include 4 to 6 services.",
		profile.DisplayName))
	parts = append(parts, "Respond with ONLY a JSON object in exactly this shape, no prose, no markdown:")
	parts = append(parts, outputSchemaDescription)

	return strings.Join(parts, "\n\n")
}
