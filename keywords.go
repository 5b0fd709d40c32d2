package engine

import "strings"

// keywordDefaultConfidence is assigned when no keyword set matches.
const keywordDefaultConfidence = 0.4

// keywordRules are the degraded-mode classification rules, checked in
// priority order. A sentence matching both Wisdom and Nudge vocabulary is
// always Wisdom. Matching is plain substring containment on the lowercased
// sentence. The rule table is fixed; it is a stopgap classifier, not a
// tunable model.
var keywordRules = []struct {
	category   Category
	confidence float64
	keywords   []string
}{
	{CategoryWisdom, 0.7, []string{"data", "research", "study", "evidence", "statistics", "shows", "analysis"}},
	{CategoryNudge, 0.6, []string{"should", "recommend", "suggest", "implement", "action", "do", "try"}},
	{CategorySpell, 0.6, []string{"imagine", "creative", "innovative", "magical", "surprising", "extraordinary"}},
}

// keywordClassifier classifies sentences by keyword membership alone. It is
// the active strategy whenever no embedding provider is available. Stateless
// and deterministic.
type keywordClassifier struct{}

// Classify returns the first matching rule's category and its fixed
// confidence, or (CategoryHunch, keywordDefaultConfidence) when nothing
// matches.
func (keywordClassifier) Classify(sentence string) (Category, float64) {
	lower := strings.ToLower(sentence)
	for _, rule := range keywordRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.category, rule.confidence
			}
		}
	}
	return CategoryHunch, keywordDefaultConfidence
}
