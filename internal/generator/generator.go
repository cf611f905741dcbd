// Package generator turns a practice description plus a resolved specialty
// into raw structured website content via the completion backend. Partial or
// invalid backend output never leaves this package as if it were valid.
package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"medsite-generator/internal/ai"
	"medsite-generator/internal/common/config"
	"medsite-generator/internal/common/errors"
	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/content"
)

// rawContentSchema is the shape contract applied to the backend's JSON
// before it is unmarshalled. Field-level repair happens later in the
// validator; this only rejects structurally wrong output.
const rawContentSchema = `{
  "type": "object",
  "required": ["title", "services"],
  "properties": {
    "title": {"type": "string"},
    "tagline": {"type": "string"},
    "hero": {"type": "object"},
    "about": {"type": "object"},
    "services": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["name"],
        "properties": {
          "name": {"type": "string"},
          "description": {"type": "string"},
          "icon": {"type": "string"}
        }
      }
    },
    "contact": {"type": "object"},
    "seo": {"type": "object"}
  }
}`

// Generator builds specialty-aware prompts and parses backend responses.
type Generator struct {
	client ai.CompletionClient
	config config.AIConfig
	schema *gojsonschema.Schema
	logger logger.Logger
}

func New(client ai.CompletionClient, cfg config.AIConfig, log logger.Logger) (*Generator, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(rawContentSchema))
	if err != nil {
		return nil, fmt.Errorf("compile content schema: %w", err)
	}
	return &Generator{
		client: client,
		config: cfg,
		schema: schema,
		logger: log.WithFields(map[string]interface{}{"component": "generator"}),
	}, nil
}

// Generate invokes the completion backend and parses the structured output.
// Every error is a *errors.StandardError carrying one of the generation
// codes; the fallback engine recovers from all of them.
func (g *Generator) Generate(ctx context.Context, rawText, specialty string) (*content.RawContent, error) {
	prompt := buildPrompt(rawText, specialty)

	resp, err := g.client.Complete(ctx, ai.CompletionRequest{
		Prompt:      prompt,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return nil, err
	}

	raw, err := g.parseResponse(resp.Text)
	if err != nil {
		g.logger.Warn("backend output failed structured parsing", map[string]interface{}{
			"specialty": specialty,
			"error":     err.Error(),
		})
		return nil, errors.NewMalformedOutputError(err)
	}

	g.logger.Info("content generated", map[string]interface{}{
		"specialty": specialty,
		"services":  len(raw.Services),
	})
	return raw, nil
}

func (g *Generator) parseResponse(text string) (*content.RawContent, error) {
	payload, err := extractJSON(text)
	if err != nil {
		return nil, err
	}

	result, err := g.schema.Validate(gojsonschema.NewBytesLoader(payload))
	if err != nil {
		return nil, fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		descs := make([]string, len(result.Errors()))
		for i, d := range result.Errors() {
			descs[i] = d.String()
		}
		return nil, fmt.Errorf("output violates content schema: %v", descs)
	}

	var raw content.RawContent
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, fmt.Errorf("decode content JSON: %w", err)
	}
	return &raw, nil
}

// extractJSON strips markdown code fences and locates the outermost JSON
// object in the backend's reply.
func extractJSON(text string) ([]byte, error) {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object found in completion output")
	}
	return []byte(cleaned[start : end+1]), nil
}
