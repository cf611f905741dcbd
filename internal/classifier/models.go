package classifier

// Method names the provenance of the final classification decision.
type Method string

const (
	MethodKeyword  Method = "keyword"
	MethodAI       Method = "ai"
	MethodHybrid   Method = "hybrid"
	MethodFallback Method = "fallback"
)

// DefaultSpecialty is the decision of last resort.
const DefaultSpecialty = "general-practice"

// KeywordEvidence records what the lexicon scoring contributed.
type KeywordEvidence struct {
	Specialty       string  `json:"specialty"`
	Score           float64 `json:"score"`
	Confidence      float64 `json:"confidence"`
	MatchedKeywords int     `json:"matchedKeywords"`
	Occurrences     int     `json:"occurrences"`
}

// AIEvidence records what the AI escalation contributed.
type AIEvidence struct {
	Specialty  string  `json:"specialty"`
	Confidence float64 `json:"confidence"`
	Rationale  string  `json:"rationale,omitempty"`
}

// Result is the classification decision. Specialty, Confidence and Method
// are derived from the per-source evidence, which is kept explicit so the
// blend is auditable rather than overloaded into a single field.
type Result struct {
	Specialty  string           `json:"specialty"`
	Confidence float64          `json:"confidence"`
	Method     Method           `json:"method"`
	Keyword    *KeywordEvidence `json:"keyword,omitempty"`
	AI         *AIEvidence      `json:"ai,omitempty"`
}
