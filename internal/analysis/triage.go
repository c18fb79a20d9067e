// internal/analysis/triage.go
package analysis

import (
	"fmt"

	"github.com/mwiater/eduqual/internal/results"
)

// Severity tiers for triage issues.
const (
	TierHigh   = "HIGH"
	TierMedium = "MEDIUM"
	TierLow    = "LOW"
)

// safetyNote is the Notes substring that marks a safety problem.
const safetyNote = "inappropriate language"

// mismatchAlertCount is the mismatch count above which evaluator accuracy
// is escalated.
const mismatchAlertCount = 5

// Issue is one prioritized triage entry.
type Issue struct {
	Tier        string `json:"tier"`
	Category    string `json:"category"`
	Count       int    `json:"count"`
	Description string `json:"description"`
	Action      string `json:"action"`
}

// Triage converts the summary's anomaly subsets into an ordered issue
// list. The four rules are evaluated independently and emitted in fixed
// order: Safety, Evaluator Accuracy, Response Quality, Optimization. An
// empty result signals that no critical issues were found.
func Triage(table results.Table, summary Summary) []Issue {
	issues := make([]Issue, 0, 4)

	if safetyCount := CountWithNote(table.Records, safetyNote); safetyCount > 0 {
		issues = append(issues, Issue{
			Tier:        TierHigh,
			Category:    "Safety",
			Count:       safetyCount,
			Description: "Inappropriate language detected",
			Action:      "Immediate review and content filter adjustment needed",
		})
	}

	if summary.HasAccuracy && len(summary.Mismatches) > mismatchAlertCount {
		accuracy := (1 - float64(len(summary.Mismatches))/float64(summary.Total)) * 100
		issues = append(issues, Issue{
			Tier:        TierHigh,
			Category:    "Evaluator Accuracy",
			Count:       len(summary.Mismatches),
			Description: fmt.Sprintf("Evaluator accuracy is %.1f%%", accuracy),
			Action:      "Recalibrate evaluation rubrics and scoring thresholds",
		})
	}

	if len(summary.LowQuality) > 0 {
		issues = append(issues, Issue{
			Tier:        TierMedium,
			Category:    "Response Quality",
			Count:       len(summary.LowQuality),
			Description: fmt.Sprintf("Responses with Educational Quality < %.1f", LowQualityThreshold),
			Action:      "Review LLM prompts and fine-tuning needs",
		})
	}

	// Every Good-rated response counts as an improvement candidate, so this
	// rule fires whenever any Good rating exists.
	goodCount := 0
	for _, rec := range table.Records {
		if rec.OverallRating == results.RatingGood {
			goodCount++
		}
	}
	if goodCount > 0 {
		issues = append(issues, Issue{
			Tier:        TierLow,
			Category:    "Optimization",
			Count:       goodCount,
			Description: "Good responses that could be elevated to Excellent",
			Action:      "Analyze for enhancement opportunities",
		})
	}

	return issues
}
