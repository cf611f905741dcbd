package generator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medsite-generator/internal/ai"
	"medsite-generator/internal/common/config"
	stderrors "medsite-generator/internal/common/errors"
	"medsite-generator/internal/common/logger"
)

type fakeCompletionClient struct {
	response string
	err      error
	prompt   string
}

func (f *fakeCompletionClient) Complete(_ context.Context, req ai.CompletionRequest) (ai.CompletionResponse, error) {
	f.prompt = req.Prompt
	if f.err != nil {
		return ai.CompletionResponse{}, f.err
	}
	return ai.CompletionResponse{Text: f.response}, nil
}

const validOutput = `{
	"title": "Springfield Dental Care",
	"tagline": "Bright smiles for the whole family",
	"services": [
		{"name": "Cleanings", "description": "Routine dental cleanings", "icon": "sparkle"},
		{"name": "Whitening", "description": "Professional whitening", "icon": "star"}
	]
}`

func createTestGenerator(t *testing.T, client ai.CompletionClient) *Generator {
	t.Helper()
	g, err := New(client, config.AIConfig{MaxTokens: 2048, Temperature: 0.7}, logger.NewTestLogger(t))
	require.NoError(t, err)
	return g
}

func TestGenerate_ParsesValidOutput(t *testing.T) {
	client := &fakeCompletionClient{response: validOutput}
	g := createTestGenerator(t, client)

	raw, err := g.Generate(context.Background(), "a dental practice in springfield", "dentistry")
	require.NoError(t, err)

	assert.Equal(t, "Springfield Dental Care", raw.Title)
	require.Len(t, raw.Services, 2)
	assert.Equal(t, "Cleanings", raw.Services[0].Name)
}

func TestGenerate_StripsMarkdownFences(t *testing.T) {
	client := &fakeCompletionClient{response: "```json\n" + validOutput + "\n```"}
	g := createTestGenerator(t, client)

	raw, err := g.Generate(context.Background(), "a dental practice", "dentistry")
	require.NoError(t, err)
	assert.Equal(t, "Springfield Dental Care", raw.Title)
}

func TestGenerate_SurroundingProseIsTolerated(t *testing.T) {
	client := &fakeCompletionClient{response: "Here is the content you asked for:\n" + validOutput + "\nLet me know if you need changes."}
	g := createTestGenerator(t, client)

	raw, err := g.Generate(context.Background(), "a dental practice", "dentistry")
	require.NoError(t, err)
	assert.Equal(t, "Springfield Dental Care", raw.Title)
}

func TestGenerate_MalformedOutput(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{name: "no JSON at all", response: "I cannot help with that."},
		{name: "truncated JSON", response: `{"title": "Spring`},
		{name: "missing required services", response: `{"title": "Springfield Dental Care"}`},
		{name: "service without a name", response: `{"title": "Springfield Dental Care", "services": [{"description": "x"}]}`},
		{name: "wrong type for title", response: `{"title": 42, "services": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeCompletionClient{response: tt.response}
			g := createTestGenerator(t, client)

			_, err := g.Generate(context.Background(), "a dental practice", "dentistry")
			require.Error(t, err)
			assert.Equal(t, stderrors.ErrCodeMalformedOutput, stderrors.CodeOf(err))
		})
	}
}

func TestGenerate_BackendErrorPassesThrough(t *testing.T) {
	client := &fakeCompletionClient{err: stderrors.NewAIRateLimitedError("slow down")}
	g := createTestGenerator(t, client)

	_, err := g.Generate(context.Background(), "a dental practice", "dentistry")
	require.Error(t, err)
	assert.Equal(t, stderrors.ErrCodeAIRateLimited, stderrors.CodeOf(err))
}

func TestBuildPrompt_EmbedsDescriptionAndSpecialty(t *testing.T) {
	client := &fakeCompletionClient{response: validOutput}
	g := createTestGenerator(t, client)

	_, err := g.Generate(context.Background(), "a cozy clinic near the park", "cardiology")
	require.NoError(t, err)

	assert.Contains(t, client.prompt, "a cozy clinic near the park")
	assert.Contains(t, client.prompt, "Cardiology")
	assert.Contains(t, client.prompt, "JSON")
}
