package engine

import "math"

// NoContentMarker is placed in AnalyticsReport.Error when a batch is empty.
// Downstream consumers key off this exact string.
const NoContentMarker = "No content to analyze"

// highConfidenceFloor is the exclusive lower bound for a sentence to count
// as a high-confidence item.
const highConfidenceFloor = 0.7

// Aggregate reduces one batch of classified sentences into an
// AnalyticsReport. It is a pure function of the batch: it has no knowledge
// of which classifier produced the input beyond the method tags the
// sentences carry. An empty batch yields a zero-total report with the
// NoContentMarker set, not an error.
func Aggregate(sentences []ClassifiedSentence) *AnalyticsReport {
	if len(sentences) == 0 {
		return &AnalyticsReport{
			TotalSentences: 0,
			Error:          NoContentMarker,
		}
	}

	total := len(sentences)
	byCategory := make(map[Category][]float64, len(Categories))
	for _, s := range sentences {
		byCategory[s.Category] = append(byCategory[s.Category], s.Confidence)
	}

	report := &AnalyticsReport{
		Distribution:     make(map[Category]CategoryDistribution, len(Categories)),
		ConfidenceStats:  make(map[Category]ConfidenceStats, len(Categories)),
		DominantCategory: CategoryHunch,
		TotalSentences:   total,
		Method:           sentences[0].Method,
	}

	dominantCount := -1
	for _, cat := range Categories {
		confidences := byCategory[cat]
		count := len(confidences)

		report.Distribution[cat] = CategoryDistribution{
			Count:      count,
			Percentage: round1(float64(count) / float64(total) * 100),
		}
		report.ConfidenceStats[cat] = summarize(confidences)

		// Strict comparison: on ties the earliest category in enumeration
		// order keeps the title.
		if count > dominantCount {
			report.DominantCategory = cat
			dominantCount = count
		}
	}

	for _, s := range sentences {
		if s.Confidence > highConfidenceFloor {
			report.HighConfidenceItems++
		}
	}

	return report
}

func summarize(confidences []float64) ConfidenceStats {
	if len(confidences) == 0 {
		return ConfidenceStats{}
	}
	sum := 0.0
	max := confidences[0]
	min := confidences[0]
	for _, c := range confidences {
		sum += c
		if c > max {
			max = c
		}
		if c < min {
			min = c
		}
	}
	return ConfidenceStats{
		Average: round3(sum / float64(len(confidences))),
		Max:     round3(max),
		Min:     round3(min),
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
