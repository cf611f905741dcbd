// Package classifier resolves a medical specialty from free-text practice
// descriptions. Keyword scoring against the lexicon runs first; the AI
// escalation is only consulted when the lexicon is not decisive.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"medsite-generator/internal/ai"
	"medsite-generator/internal/cache"
	"medsite-generator/internal/common/config"
	"medsite-generator/internal/common/logger"
	"medsite-generator/internal/common/metrics"
)

const aiFallbackConfidence = 0.2

type compiledSpecialty struct {
	specialty string
	patterns  []*regexp.Regexp
	total     int
}

// Classifier scores text against the lexicon and escalates to the AI
// backend when keyword confidence is low. Classify never fails.
type Classifier struct {
	lexicon  Lexicon
	compiled []compiledSpecialty
	client   ai.CompletionClient
	store    cache.Store
	config   config.ClassifierConfig
	logger   logger.Logger
}

// New compiles the lexicon into word-boundary matchers. Substring matching
// is deliberately avoided: "heart" must not match inside "heartless".
func New(lexicon Lexicon, client ai.CompletionClient, store cache.Store, cfg config.ClassifierConfig, log logger.Logger) *Classifier {
	compiled := make([]compiledSpecialty, 0, len(lexicon))
	for _, sk := range lexicon {
		patterns := make([]*regexp.Regexp, 0, len(sk.Keywords))
		for _, kw := range sk.Keywords {
			patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(strings.ToLower(kw))+`\b`))
		}
		compiled = append(compiled, compiledSpecialty{
			specialty: sk.Specialty,
			patterns:  patterns,
			total:     len(sk.Keywords),
		})
	}
	return &Classifier{
		lexicon:  lexicon,
		compiled: compiled,
		client:   client,
		store:    store,
		config:   cfg,
		logger:   log.WithFields(map[string]interface{}{"component": "classifier"}),
	}
}

// Classify resolves text to a specialty. On any internal failure it returns
// the general-practice default with low confidence instead of an error.
func (c *Classifier) Classify(ctx context.Context, text string) Result {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return Result{Specialty: DefaultSpecialty, Confidence: aiFallbackConfidence, Method: MethodFallback}
	}

	key := cache.ClassificationKey(normalized).String()
	if cached, ok := c.lookup(ctx, key); ok {
		metrics.CacheHits.WithLabelValues(string(cache.RegionClassification)).Inc()
		return cached
	}
	metrics.CacheMisses.WithLabelValues(string(cache.RegionClassification)).Inc()

	result := c.classify(ctx, normalized)
	// A fallback result reflects a transient backend outage, not the
	// text; caching it would pin the degraded decision for the TTL.
	if result.Method != MethodFallback {
		c.save(ctx, key, result)
	}
	return result
}

func (c *Classifier) classify(ctx context.Context, normalized string) Result {
	keyword := c.scoreKeywords(normalized)

	// The lexicon is decisive; skip the AI call entirely.
	if keyword.Confidence >= c.config.ConfidenceThreshold {
		return Result{
			Specialty:  keyword.Specialty,
			Confidence: keyword.Confidence,
			Method:     MethodKeyword,
			Keyword:    keyword,
		}
	}

	aiEvidence := c.classifyWithAI(ctx, normalized)
	if aiEvidence == nil {
		if keyword.Confidence > 0 {
			return Result{
				Specialty:  keyword.Specialty,
				Confidence: keyword.Confidence,
				Method:     MethodKeyword,
				Keyword:    keyword,
			}
		}
		return Result{
			Specialty:  DefaultSpecialty,
			Confidence: aiFallbackConfidence,
			Method:     MethodFallback,
			Keyword:    keyword,
		}
	}

	// Blend: the stronger signal wins the confidence, the AI picks the
	// specialty unless the keyword side was both present and stronger.
	result := Result{
		Specialty:  aiEvidence.Specialty,
		Confidence: aiEvidence.Confidence,
		Method:     MethodAI,
		Keyword:    keyword,
		AI:         aiEvidence,
	}
	if keyword.Confidence > 0 {
		result.Method = MethodHybrid
		if keyword.Confidence > aiEvidence.Confidence {
			result.Specialty = keyword.Specialty
			result.Confidence = keyword.Confidence
		}
	}
	return result
}

// scoreKeywords combines a length-normalized occurrence frequency (dominant
// signal) with the fraction of the specialty's keyword set that matched at
// least once (breadth, secondary signal).
func (c *Classifier) scoreKeywords(normalized string) *KeywordEvidence {
	wordCount := len(strings.Fields(normalized))
	if wordCount == 0 {
		wordCount = 1
	}

	best := &KeywordEvidence{Specialty: DefaultSpecialty}
	for _, cs := range c.compiled {
		occurrences := 0
		matchedKeywords := 0
		for _, p := range cs.patterns {
			n := len(p.FindAllStringIndex(normalized, -1))
			if n > 0 {
				matchedKeywords++
				occurrences += n
			}
		}
		if occurrences == 0 {
			continue
		}

		frequency := float64(occurrences) * 100.0 / float64(wordCount)
		if frequency > 10 {
			frequency = 10
		}
		breadth := float64(matchedKeywords) / float64(cs.total)
		score := 0.7*(frequency/10.0) + 0.3*breadth

		// Strictly-greater keeps lexicon order as the tie-break.
		if score > best.Score {
			best = &KeywordEvidence{
				Specialty:       cs.specialty,
				Score:           score,
				MatchedKeywords: matchedKeywords,
				Occurrences:     occurrences,
			}
		}
	}

	confidence := best.Score * c.config.ScalingConstant
	if confidence > 1.0 {
		confidence = 1.0
	}
	best.Confidence = confidence
	return best
}

func (c *Classifier) classifyWithAI(ctx context.Context, normalized string) *AIEvidence {
	prompt := c.buildPrompt(normalized)
	resp, err := c.client.Complete(ctx, ai.CompletionRequest{Prompt: prompt, MaxTokens: 256, Temperature: 0.1})
	if err != nil {
		c.logger.Warn("AI classification failed, degrading to keyword result", map[string]interface{}{
			"error": err.Error(),
		})
		return nil
	}

	evidence, err := c.parseAIResponse(resp.Text)
	if err != nil {
		c.logger.Warn("AI classification output unparseable", map[string]interface{}{
			"error": err.Error(),
		})
		return c.extractSpecialtyToken(resp.Text)
	}
	return evidence
}

func (c *Classifier) buildPrompt(normalized string) string {
	var b strings.Builder
	b.WriteString("Classify the following medical practice description into exactly one of these specialties: ")
	b.WriteString(strings.Join(c.lexicon.Specialties(), ", "))
	b.WriteString(".\n\nDescription:\n")
	b.WriteString(normalized)
	b.WriteString("\n\nRespond with only a JSON object: {\"specialty\": \"<one of the listed values>\", \"confidence\": <0..1>, \"rationale\": \"<short reason>\"}")
	return b.String()
}

func (c *Classifier) parseAIResponse(text string) (*AIEvidence, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed struct {
		Specialty  string  `json:"specialty"`
		Confidence float64 `json:"confidence"`
		Rationale  string  `json:"rationale"`
	}
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("decode classification JSON: %w", err)
	}

	parsed.Specialty = strings.ToLower(strings.TrimSpace(parsed.Specialty))
	if !c.lexicon.Contains(parsed.Specialty) {
		return nil, fmt.Errorf("specialty %q not in supported set", parsed.Specialty)
	}
	if parsed.Confidence < 0 || parsed.Confidence > 1 {
		parsed.Confidence = 0.5
	}
	return &AIEvidence{
		Specialty:  parsed.Specialty,
		Confidence: parsed.Confidence,
		Rationale:  parsed.Rationale,
	}, nil
}

// extractSpecialtyToken is the regex rescue path: scan the raw response for
// any supported specialty identifier.
func (c *Classifier) extractSpecialtyToken(text string) *AIEvidence {
	lowered := strings.ToLower(text)
	for _, specialty := range c.lexicon.Specialties() {
		matched, _ := regexp.MatchString(`\b`+regexp.QuoteMeta(specialty)+`\b`, lowered)
		if matched {
			return &AIEvidence{
				Specialty:  specialty,
				Confidence: aiFallbackConfidence,
				Rationale:  "token extraction",
			}
		}
	}
	return nil
}

func (c *Classifier) lookup(ctx context.Context, key string) (Result, bool) {
	if c.store == nil {
		return Result{}, false
	}
	raw, ok, err := c.store.Get(ctx, key)
	if err != nil || !ok {
		return Result{}, false
	}
	var result Result
	if err := json.Unmarshal(raw, &result); err != nil {
		return Result{}, false
	}
	return result, true
}

func (c *Classifier) save(ctx context.Context, key string, result Result) {
	if c.store == nil {
		return
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return
	}
	if err := c.store.Set(ctx, key, raw); err != nil {
		c.logger.Warn("failed to cache classification result", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
