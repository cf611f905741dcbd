package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Key is the structured cache key. Keys always carry the region, a
// region-specific discriminant (for example the template version), the
// resolved specialty, and a content hash of the complete input. Keys derived
// from a hash of a prompt prefix are forbidden: prompts for different
// specialties share long common prefixes and collide under truncated
// hashing, which is exactly the corruption this layout prevents.
type Key struct {
	Region       Region
	Discriminant string
	Specialty    string
	ContentHash  string
}

// String renders the key as <region>:<discriminant>:<specialty>:<hash>.
// Empty segments are kept as "-" so segment positions never shift.
func (k Key) String() string {
	return fmt.Sprintf("%s:%s:%s:%s",
		k.Region, segment(k.Discriminant), segment(k.Specialty), k.ContentHash)
}

func segment(s string) string {
	if s == "" {
		return "-"
	}
	return strings.ReplaceAll(s, ":", "_")
}

// HashText returns the hex sha256 over the full concatenation of parts,
// separated by an unambiguous delimiter. Never truncated.
func HashText(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0x1f})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ClassificationKey builds the key for a classification result.
func ClassificationKey(normalizedText string) Key {
	return Key{
		Region:      RegionClassification,
		ContentHash: HashText(normalizedText),
	}
}

// ContentKey builds the key for generated content. The raw text is
// normalized (lowercase, trimmed) before hashing so requests that differ
// only in case or surrounding whitespace share one entry, matching the
// classification region. The template version is the discriminant so a
// template upgrade invalidates reuse; the nonce is mixed in only when
// freshness was explicitly requested.
func ContentKey(templateVersion, specialty, rawText, freshnessNonce string) Key {
	parts := []string{strings.ToLower(strings.TrimSpace(rawText))}
	if freshnessNonce != "" {
		parts = append(parts, freshnessNonce)
	}
	return Key{
		Region:       RegionContent,
		Discriminant: templateVersion,
		Specialty:    specialty,
		ContentHash:  HashText(parts...),
	}
}

// TemplateKey builds the key for a compiled template, addressed by the
// template source text itself, never by file path or specialty name.
func TemplateKey(source string) Key {
	return Key{
		Region:       RegionTemplates,
		Discriminant: "compiled",
		ContentHash:  HashText(source),
	}
}
