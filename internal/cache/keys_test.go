package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashText_DistinctForDifferentInputs(t *testing.T) {
	tests := []struct {
		name string
		a    []string
		b    []string
	}{
		{
			name: "different descriptions",
			a:    []string{"teeth and dentistry"},
			b:    []string{"heart and cardiology"},
		},
		{
			name: "separator prevents boundary collisions",
			a:    []string{"ab", "c"},
			b:    []string{"a", "bc"},
		},
		{
			name: "nonce changes the hash",
			a:    []string{"v1", "dentistry", "text"},
			b:    []string{"v1", "dentistry", "text", "nonce-1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, HashText(tt.a...), HashText(tt.b...))
		})
	}
}

func TestHashText_Deterministic(t *testing.T) {
	assert.Equal(t, HashText("teeth and dentistry"), HashText("teeth and dentistry"))
}

func TestKey_String(t *testing.T) {
	key := ContentKey("v1", "dentistry", "a family dental practice", "")
	parts := strings.Split(key.String(), ":")
	require.Len(t, parts, 4)
	assert.Equal(t, "content", parts[0])
	assert.Equal(t, "v1", parts[1])
	assert.Equal(t, "dentistry", parts[2])
	assert.Len(t, parts[3], 64)
}

func TestKey_String_SanitizesSegments(t *testing.T) {
	key := Key{Region: RegionContent, Discriminant: "v1:beta", Specialty: "", ContentHash: "abc"}
	parts := strings.Split(key.String(), ":")
	require.Len(t, parts, 4)
	assert.Equal(t, "v1_beta", parts[1])
	assert.Equal(t, "-", parts[2])
}

func TestContentKey_FreshNonceProducesNewKey(t *testing.T) {
	base := ContentKey("v1", "dentistry", "same text", "")
	fresh := ContentKey("v1", "dentistry", "same text", "1700000000-abc")

	assert.NotEqual(t, base.String(), fresh.String())
	// The nonce lives in the hash, not as an extra segment.
	assert.Len(t, strings.Split(fresh.String(), ":"), 4)
}

func TestContentKey_NormalizesText(t *testing.T) {
	base := ContentKey("v1", "dentistry", "teeth and dentistry practice", "")

	tests := []struct {
		name string
		text string
	}{
		{name: "surrounding whitespace", text: "  teeth and dentistry practice  "},
		{name: "different case", text: "Teeth And Dentistry Practice"},
		{name: "both", text: "  TEETH AND DENTISTRY PRACTICE\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, base.String(), ContentKey("v1", "dentistry", tt.text, "").String())
		})
	}

	// Interior differences still produce distinct keys.
	assert.NotEqual(t, base.String(),
		ContentKey("v1", "dentistry", "teeth  and dentistry practice", "").String())
}

func TestClassificationKey_RegionAndDeterminism(t *testing.T) {
	a := ClassificationKey("family dentist in springfield")
	b := ClassificationKey("family dentist in springfield")

	assert.Equal(t, RegionClassification, a.Region)
	assert.Equal(t, a.String(), b.String())
}

func TestTemplateKey_SameSourceSharesKey(t *testing.T) {
	a := TemplateKey("<h1>{{title}}</h1>")
	b := TemplateKey("<h1>{{title}}</h1>")
	c := TemplateKey("<h2>{{title}}</h2>")

	assert.Equal(t, RegionTemplates, a.Region)
	assert.Equal(t, a.String(), b.String())
	assert.NotEqual(t, a.String(), c.String())
}

func TestKeys_RegionPrefixesDiffer(t *testing.T) {
	classification := ClassificationKey("text").String()
	content := ContentKey("v1", "dentistry", "text", "").String()
	template := TemplateKey("text").String()

	assert.True(t, strings.HasPrefix(classification, "classification:"))
	assert.True(t, strings.HasPrefix(content, "content:"))
	assert.True(t, strings.HasPrefix(template, "templates:"))
}
