package engine

// Category is one of the four fixed Thinkerbell content categories.
// The set is closed: it never grows or shrinks at runtime, and the anchor
// catalog and keyword fallback must be redeployed together to change it.
type Category string

const (
	// CategoryHunch holds intuitive ideas and speculation. It is also the
	// default catch-all for sentences nothing else claims.
	CategoryHunch Category = "Hunch"

	// CategoryWisdom holds insights backed by data, research, or experience.
	CategoryWisdom Category = "Wisdom"

	// CategoryNudge holds recommended actions and behavioral suggestions.
	CategoryNudge Category = "Nudge"

	// CategorySpell holds creative flourishes and surprising executions.
	CategorySpell Category = "Spell"
)

// Categories lists every category in enumeration order. Aggregation and
// anchor scoring iterate this slice, never a map, so tie-breaks are stable.
var Categories = []Category{CategoryHunch, CategoryWisdom, CategoryNudge, CategorySpell}

// Method tags identifying which classifier produced a sentence.
const (
	MethodSimilarity = "semantic_similarity"
	MethodKeyword    = "keyword_fallback"
)

// ClassifiedSentence is one sentence after classification. Instances live for
// a single request and are discarded once analytics are computed.
type ClassifiedSentence struct {
	// Text is the trimmed sentence as it appeared in the input.
	Text string `json:"text"`

	// Category is the assigned category. It is implied by the routing map
	// key on the wire, so it is not serialized on the item itself.
	Category Category `json:"-"`

	// Confidence is the similarity or heuristic score in [0, 1].
	Confidence float64 `json:"confidence"`

	// Method identifies the classifier that produced this sentence.
	Method string `json:"processing_method"`
}

// CategoryDistribution is the share of one category within a batch.
type CategoryDistribution struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ConfidenceStats summarizes the confidence values of one category.
// All zero when the category received no sentences.
type ConfidenceStats struct {
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

// AnalyticsReport is derived entirely from one batch of classified
// sentences. It is recomputed per request and holds no cross-request state.
type AnalyticsReport struct {
	// Distribution and ConfidenceStats carry all four categories, including
	// those with zero sentences. Both are omitted entirely for an empty
	// batch, which reports only the marker and a zero total.
	Distribution    map[Category]CategoryDistribution `json:"distribution,omitempty"`
	ConfidenceStats map[Category]ConfidenceStats      `json:"confidence_stats,omitempty"`

	// DominantCategory is the category with the highest count; ties resolve
	// to the earliest category in enumeration order.
	DominantCategory Category `json:"dominant_category,omitempty"`

	TotalSentences int `json:"total_sentences"`

	// HighConfidenceItems counts sentences with confidence strictly above 0.7.
	HighConfidenceItems int `json:"high_confidence_items"`

	// Method is the classifier tag of the batch, empty for an empty batch.
	Method string `json:"processing_method,omitempty"`

	// Error carries the "No content to analyze" marker for empty input.
	// Empty input is not an error condition; this mirrors the wire format
	// consumers already parse.
	Error string `json:"error,omitempty"`
}

// Result is the outcome of classifying one text.
type Result struct {
	// RoutedContent groups the classified sentences by category, each list
	// sorted by descending confidence.
	RoutedContent map[Category][]ClassifiedSentence `json:"routed_content"`

	// Analytics is the aggregate view of the same batch.
	Analytics *AnalyticsReport `json:"analytics"`

	// ProcessingTimeMS is the wall-clock duration of the whole operation.
	ProcessingTimeMS float64 `json:"processing_time_ms"`
}

// State is the pipeline lifecycle state. It transitions exactly once, at
// initialization, and never reverts.
type State int

const (
	// StateUninitialized means Initialize has not completed yet.
	StateUninitialized State = iota

	// StateSimilarity means an embedding provider loaded and the anchor
	// catalog was built; sentences are scored by cosine similarity.
	StateSimilarity

	// StateFallback means no embedding provider is available; sentences are
	// scored by the keyword heuristic.
	StateFallback
)

// String returns a human-readable state name for logs.
func (s State) String() string {
	switch s {
	case StateSimilarity:
		return "ready_with_similarity"
	case StateFallback:
		return "ready_with_fallback"
	default:
		return "uninitialized"
	}
}

// Status describes the pipeline to callers such as health endpoints.
type Status struct {
	// SimilarityModeActive reports whether the similarity classifier is the
	// active strategy.
	SimilarityModeActive bool `json:"similarity_mode_active"`

	// ModelID identifies the embedding model in use, empty in fallback mode.
	ModelID string `json:"model_identifier,omitempty"`
}
