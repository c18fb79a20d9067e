// internal/analysis/headline.go
package analysis

import "github.com/mwiater/eduqual/internal/results"

// Recommendation thresholds for the executive summary.
const (
	wellQuality         = 0.8
	wellAccuracyPct     = 90.0
	optimizeQuality     = 0.7
	optimizeAccuracyPct = 80.0
)

// Canned recommendation messages.
const (
	RecommendationWell      = "System is performing well. Continue monitoring."
	RecommendationOptimize  = "Good performance with room for optimization."
	RecommendationAttention = "System needs attention. Review low-performing cases and recalibrate evaluators."
)

// Headline holds the executive-summary metrics for a results table.
type Headline struct {
	Total          int     `json:"total"`
	MeanQuality    float64 `json:"meanQuality"`
	AccuracyPct    float64 `json:"accuracyPct"`
	HasAccuracy    bool    `json:"hasAccuracy"`
	SuccessPct     float64 `json:"successPct"`
	AttentionPct   float64 `json:"attentionPct"`
	Recommendation string  `json:"recommendation"`
}

// BuildHeadline computes the headline metrics: total count, mean quality,
// evaluator accuracy, success rate (Excellent+Good), attention rate
// (Needs Review+Poor), and the recommendation message.
func BuildHeadline(table results.Table, summary Summary) Headline {
	h := Headline{
		Total:       summary.Total,
		HasAccuracy: summary.HasAccuracy,
	}
	if h.Total == 0 {
		h.Recommendation = RecommendationAttention
		return h
	}

	qualitySum := 0.0
	matches := 0
	success := 0
	attention := 0
	for _, rec := range table.Records {
		qualitySum += rec.EducationalQuality
		if rec.MatchesExpected {
			matches++
		}
		switch rec.OverallRating {
		case results.RatingExcellent, results.RatingGood:
			success++
		case results.RatingNeedsReview, results.RatingPoor:
			attention++
		}
	}

	h.MeanQuality = qualitySum / float64(h.Total)
	if h.HasAccuracy {
		h.AccuracyPct = float64(matches) / float64(h.Total) * 100
	}
	h.SuccessPct = float64(success) / float64(h.Total) * 100
	h.AttentionPct = float64(attention) / float64(h.Total) * 100
	h.Recommendation = recommend(h.MeanQuality, h.AccuracyPct, h.HasAccuracy)
	return h
}

// recommend selects one of the three canned recommendation messages. When
// accuracy data is unavailable the quality thresholds alone decide.
func recommend(meanQuality, accuracyPct float64, hasAccuracy bool) string {
	accuracyWell := !hasAccuracy || accuracyPct >= wellAccuracyPct
	accuracyOptimize := !hasAccuracy || accuracyPct >= optimizeAccuracyPct

	switch {
	case meanQuality >= wellQuality && accuracyWell:
		return RecommendationWell
	case meanQuality >= optimizeQuality && accuracyOptimize:
		return RecommendationOptimize
	default:
		return RecommendationAttention
	}
}
