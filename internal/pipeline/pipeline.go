// Package pipeline runs the full description-to-website flow: classify,
// generate, validate, fall back when generation fails, and render. The
// pipeline absorbs every failure except rendering; callers always get a
// complete site or a render error, never partial content.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"medsite-generator/internal/cache"
	"medsite-generator/internal/classifier"
	"medsite-generator/internal/common/config"
	"medsite-generator/internal/common/errors"
	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/common/metrics"
	"medsite-generator/internal/content"
	"medsite-generator/internal/render"
)

type Classifier interface {
	Classify(ctx context.Context, text string) classifier.Result
}

type Generator interface {
	Generate(ctx context.Context, rawText, specialty string) (*content.RawContent, error)
}

type Validator interface {
	Validate(raw *content.RawContent, specialty string) *content.WebsiteContent
}

type FallbackEngine interface {
	Fallback(rawText, specialty string) *content.WebsiteContent
	EmergencyFallback(specialty string) *content.WebsiteContent
}

type Renderer interface {
	RenderPage(ctx context.Context, name string, data map[string]interface{}) (string, error)
}

// Options wires the pipeline's collaborators. Validator defaults to the
// standard content validator when nil; Caches may be nil to disable reuse.
type Options struct {
	Classifier Classifier
	Generator  Generator
	Validator  Validator
	Fallback   FallbackEngine
	Renderer   Renderer
	Caches     *cache.Regions
	Logger     logger.Logger
	Config     config.GeneratorConfig
}

// Request describes one website generation. Specialty, when set, overrides
// classification. Customizations overlay the template data: a "style" map
// adjusts the page shell's colors and fonts, any other key is merged at
// the top level. Fresh defeats content reuse for this request.
type Request struct {
	RawText        string
	Specialty      string
	Customizations map[string]interface{}
	Fresh          bool
}

// Result carries the finished site plus provenance: how the specialty was
// decided, whether fallback content was used, and the per-request nonce.
type Result struct {
	Content        *content.WebsiteContent
	HTML           string
	Classification classifier.Result
	QualityScore   float64
	FallbackUsed   bool
	RequestNonce   string
}

type Pipeline struct {
	classifier Classifier
	generator  Generator
	validator  Validator
	fallback   FallbackEngine
	renderer   Renderer
	caches     *cache.Regions
	config     config.GeneratorConfig
	logger     logger.Logger
}

func New(opts Options) *Pipeline {
	validator := opts.Validator
	if validator == nil {
		validator = content.NewValidator()
	}
	return &Pipeline{
		classifier: opts.Classifier,
		generator:  opts.Generator,
		validator:  validator,
		fallback:   opts.Fallback,
		renderer:   opts.Renderer,
		caches:     opts.Caches,
		config:     opts.Config,
		logger:     opts.Logger.WithFields(map[string]interface{}{"component": "pipeline"}),
	}
}

// Generate runs the full flow for one request. Only render errors are
// returned; classification and generation failures degrade through the
// fallback tiers instead.
func (p *Pipeline) Generate(ctx context.Context, req Request) (*Result, error) {
	nonce := newNonce()

	cls := p.classify(ctx, req)
	websiteContent := p.resolveContent(ctx, req, cls.Specialty, nonce)

	data := p.templateData(websiteContent, req.Customizations)
	renderStart := time.Now()
	html, err := p.renderer.RenderPage(ctx, render.PageSite, data)
	metrics.StageDuration.WithLabelValues("render").Observe(time.Since(renderStart).Seconds())
	if err != nil {
		metrics.StageFailures.WithLabelValues("render", string(errors.CodeOf(err))).Inc()
		return nil, err
	}

	p.logger.Info("website generated", map[string]interface{}{
		"specialty":     cls.Specialty,
		"method":        string(cls.Method),
		"quality_score": websiteContent.QualityScore,
		"fallback_used": websiteContent.FallbackUsed,
	})
	return &Result{
		Content:        websiteContent,
		HTML:           html,
		Classification: cls,
		QualityScore:   websiteContent.QualityScore,
		FallbackUsed:   websiteContent.FallbackUsed,
		RequestNonce:   nonce,
	}, nil
}

func (p *Pipeline) classify(ctx context.Context, req Request) classifier.Result {
	if req.Specialty != "" {
		return classifier.Result{
			Specialty:  req.Specialty,
			Confidence: 1,
			Method:     classifier.MethodKeyword,
		}
	}
	start := time.Now()
	cls := p.classifier.Classify(ctx, req.RawText)
	metrics.StageDuration.WithLabelValues("classify").Observe(time.Since(start).Seconds())
	return cls
}

// resolveContent returns validated content for the request, reusing the
// content cache region when possible. The nonce enters the key only for
// fresh requests, which guarantees a miss and a new entry.
func (p *Pipeline) resolveContent(ctx context.Context, req Request, specialty, nonce string) *content.WebsiteContent {
	store := p.contentStore()
	if store == nil {
		return p.generateValidated(ctx, req.RawText, specialty)
	}

	freshness := ""
	if req.Fresh {
		freshness = nonce
	}
	key := cache.ContentKey(p.config.TemplateVersion, specialty, req.RawText, freshness).String()

	if cached, found, err := store.Get(ctx, key); err != nil {
		p.logger.Warn("content cache lookup failed", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
	} else if found {
		var out content.WebsiteContent
		if err := json.Unmarshal(cached, &out); err == nil {
			metrics.CacheHits.WithLabelValues(string(cache.RegionContent)).Inc()
			return &out
		}
		p.logger.Warn("content cache entry is corrupt, regenerating", map[string]interface{}{
			"key": key,
		})
	}
	metrics.CacheMisses.WithLabelValues(string(cache.RegionContent)).Inc()

	out := p.generateValidated(ctx, req.RawText, specialty)
	if out.FallbackUsed {
		// Don't pin degraded content for the whole TTL; the next request
		// should retry generation.
		return out
	}
	if encoded, err := json.Marshal(out); err == nil {
		if err := store.Set(ctx, key, encoded); err != nil {
			p.logger.Warn("content cache write failed", map[string]interface{}{
				"key":   key,
				"error": err.Error(),
			})
		}
	}
	return out
}

// generateValidated runs generate then validate, degrading to the template
// tier on any generation error and to the emergency tier when the template
// tier cannot produce usable content.
func (p *Pipeline) generateValidated(ctx context.Context, rawText, specialty string) *content.WebsiteContent {
	start := time.Now()
	raw, err := p.generator.Generate(ctx, rawText, specialty)
	metrics.StageDuration.WithLabelValues("generate").Observe(time.Since(start).Seconds())
	if err == nil {
		return p.validator.Validate(raw, specialty)
	}

	code := errors.CodeOf(err)
	metrics.StageFailures.WithLabelValues("generate", string(code)).Inc()
	p.logger.Warn("generation failed, engaging fallback", map[string]interface{}{
		"specialty":  specialty,
		"error_code": string(code),
		"error":      err.Error(),
	})

	fb := p.fallback.Fallback(rawText, specialty)
	if fb == nil || len(fb.Services) == 0 {
		p.logger.Error("template fallback produced no usable content", map[string]interface{}{
			"specialty": specialty,
		})
		return p.fallback.EmergencyFallback(specialty)
	}
	return fb
}

func (p *Pipeline) templateData(c *content.WebsiteContent, customizations map[string]interface{}) map[string]interface{} {
	data := c.TemplateData()
	style := render.DefaultStyle()
	for key, value := range customizations {
		if key == "style" {
			if overrides, ok := value.(map[string]interface{}); ok {
				for k, v := range overrides {
					style[k] = v
				}
			}
			continue
		}
		data[key] = value
	}
	data["style"] = style
	return data
}

func (p *Pipeline) contentStore() cache.Store {
	if p.caches == nil {
		return nil
	}
	return p.caches.Content
}

func newNonce() string {
	return fmt.Sprintf("%d-%s", time.Now().UTC().UnixNano(), uuid.NewString())
}
