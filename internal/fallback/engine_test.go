package fallback

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/content"
)

func createTestEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(logger.NewTestLogger(t))
}

func TestFallback_ProducesCompleteContent(t *testing.T) {
	e := createTestEngine(t)

	out := e.Fallback("a dental practice", "dentistry")

	require.NotNil(t, out)
	assert.Equal(t, "dentistry", out.Specialty)
	assert.NotEmpty(t, out.Title)
	assert.GreaterOrEqual(t, len(out.Services), 3)
	assert.NotEmpty(t, out.About.Body)
	assert.NotEmpty(t, out.Contact.Phone)
	assert.True(t, out.FallbackUsed)
	assert.InDelta(t, 0.6, out.QualityScore, 0.001)
	assert.Contains(t, out.ContentFeatures, "fallback-template")
}

func TestFallback_Deterministic(t *testing.T) {
	e := createTestEngine(t)

	first := e.Fallback("emergency dental practice for families located in Springfield", "dentistry")
	second := e.Fallback("emergency dental practice for families located in Springfield", "dentistry")

	// GeneratedAt is wall-clock; everything else must match exactly.
	second.GeneratedAt = first.GeneratedAt
	assert.Equal(t, first, second)
}

func TestFallback_EmergencyIndicator(t *testing.T) {
	e := createTestEngine(t)

	out := e.Fallback("we offer emergency dental care", "dentistry")

	assert.Contains(t, out.Contact.Hours, "24/7")
	assert.Contains(t, out.ContentFeatures, "personalized-emergency")
	assert.NotEqual(t, content.DefaultsFor("dentistry").Hero.CTAText, out.Hero.CTAText)
}

func TestFallback_FamilyIndicator(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "family keyword", text: "a family practice"},
		{name: "children keyword", text: "we welcome children of all ages"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := createTestEngine(t)
			out := e.Fallback(tt.text, "dentistry")
			assert.Contains(t, out.ContentFeatures, "personalized-family")
			assert.Contains(t, out.Tagline, "all ages")
		})
	}
}

func TestFallback_LocationIndicator(t *testing.T) {
	e := createTestEngine(t)

	out := e.Fallback("a dental practice located in Springfield", "dentistry")

	assert.Equal(t, "Serving Springfield", out.Contact.Address)
	assert.Contains(t, out.SEO.Title, "in Springfield")
	assert.Contains(t, out.ContentFeatures, "personalized-location")
}

func TestFallback_NoIndicatorsLeavesSkeletonUntouched(t *testing.T) {
	e := createTestEngine(t)
	profile := content.DefaultsFor("cardiology")

	out := e.Fallback("a heart clinic", "cardiology")

	assert.Equal(t, profile.Tagline, out.Tagline)
	assert.Equal(t, profile.Contact.Address, out.Contact.Address)
	assert.Equal(t, profile.Hero.CTAText, out.Hero.CTAText)
}

func TestFallback_DoesNotMutateSharedDefaults(t *testing.T) {
	e := createTestEngine(t)
	before := content.DefaultsFor("dentistry")

	e.Fallback("emergency care located in Springfield", "dentistry")

	after := content.DefaultsFor("dentistry")
	assert.Equal(t, before, after)
}

func TestEmergencyFallback_AlwaysValid(t *testing.T) {
	e := createTestEngine(t)

	tests := []string{"dentistry", "cardiology", "", "unknown-specialty"}
	for _, specialty := range tests {
		out := e.EmergencyFallback(specialty)

		require.NotNil(t, out)
		assert.NotEmpty(t, out.Title)
		assert.GreaterOrEqual(t, len(out.Services), 3)
		assert.True(t, out.FallbackUsed)
		assert.InDelta(t, 0.3, out.QualityScore, 0.001)
		assert.Contains(t, out.ContentFeatures, "fallback-emergency")
	}
}

func TestFallbackTiers_MonotonicDegradation(t *testing.T) {
	e := createTestEngine(t)

	template := e.Fallback("a dental practice", "dentistry")
	emergency := e.EmergencyFallback("dentistry")

	assert.Greater(t, template.QualityScore, emergency.QualityScore)
}
