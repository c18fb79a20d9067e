// internal/analysis/analyze.go
// Package analysis computes distribution statistics, anomaly subsets,
// triage priorities, and executive headline metrics over a results table.
package analysis

import (
	"time"

	"github.com/mwiater/eduqual/internal/results"
)

// Analysis is the root document produced by Analyze and consumed by the
// console report, the dashboard, and the JSON export.
type Analysis struct {
	GeneratedAt time.Time `json:"generatedAt"`
	Source      string    `json:"source"`
	Summary     Summary   `json:"summary"`
	Issues      []Issue   `json:"issues"`
	Headline    Headline  `json:"headline"`
}

// Analyze runs the full pipeline over a loaded table: summarize, triage,
// and headline metrics.
func Analyze(table results.Table) Analysis {
	summary := Summarize(table)
	return Analysis{
		GeneratedAt: time.Now().UTC(),
		Source:      table.Name,
		Summary:     summary,
		Issues:      Triage(table, summary),
		Headline:    BuildHeadline(table, summary),
	}
}
