// internal/report/report.go
// Package report renders the pattern-analysis console report: quality
// distribution, common issues, grade performance, triage priorities, and
// the executive summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mwiater/eduqual/internal/analysis"
	"github.com/mwiater/eduqual/internal/results"
	"github.com/mwiater/eduqual/internal/util"
)

const rule = "======================================================================"

// topListLimit caps the example rows printed per anomaly section.
const topListLimit = 5

// Render writes the full console report for an analysis document.
func Render(w io.Writer, table results.Table, a analysis.Analysis) {
	renderPatterns(w, table, a.Summary)
	renderTriage(w, a.Issues)
	renderSummary(w, table, a.Headline)
}

// renderPatterns prints the distribution and anomaly sections.
func renderPatterns(w io.Writer, table results.Table, s analysis.Summary) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	warn := color.New(color.FgYellow).SprintFunc()

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, heading("PATTERN ANALYSIS: QUALITY ISSUES"))
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nQuality Distribution:\n")
	for _, rc := range s.Distribution {
		fmt.Fprintf(w, "  %s: %d (%.1f%%)\n", rc.Rating, rc.Count, rc.Percent)
	}

	if issues := s.MostCommonIssues(topListLimit); len(issues) > 0 {
		fmt.Fprintf(w, "\nCommon Issues Identified:\n")
		for _, tc := range issues {
			fmt.Fprintf(w, "  - %s: %d occurrences\n", tc.Tag, tc.Count)
		}
	}

	if len(s.GradeStats) > 0 {
		fmt.Fprintf(w, "\nGrade Level Performance:\n")
		fmt.Fprint(w, gradeTable(s.GradeStats))
	}

	if len(s.LowQuality) > 0 {
		fmt.Fprintf(w, "\n%s\n", warn(fmt.Sprintf("Low Quality Responses (%d found):", len(s.LowQuality))))
		for _, rec := range head(s.LowQuality, topListLimit) {
			fmt.Fprintf(w, "  Test #%s: %s (Score: %.2f)\n", rec.TestID, util.TruncateRunes(rec.Prompt, 50), rec.EducationalQuality)
		}
	}

	if len(s.Mismatches) > 0 {
		fmt.Fprintf(w, "\n%s\n", warn(fmt.Sprintf("Evaluator Mismatches (%d found):", len(s.Mismatches))))
		for _, rec := range head(s.Mismatches, topListLimit) {
			fmt.Fprintf(w, "  Test #%s: Expected %q but got %q\n", rec.TestID, rec.ExpectedQuality, rec.OverallRating)
			fmt.Fprintf(w, "    Prompt: %s\n", util.TruncateRunes(rec.Prompt, 60))
		}
	}
}

// renderTriage prints the prioritized action items.
func renderTriage(w io.Writer, issues []analysis.Issue) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, heading("ISSUE PRIORITIZATION & TRIAGE"))
	fmt.Fprintln(w, rule)

	if len(issues) == 0 {
		fmt.Fprintf(w, "\n%s\n", green("No critical issues identified! System performing well."))
		return
	}

	fmt.Fprintf(w, "\nPrioritized Action Items:\n\n")
	for i, issue := range issues {
		fmt.Fprintf(w, "%d. [%s] %s\n", i+1, tierLabel(issue.Tier), issue.Category)
		fmt.Fprintf(w, "   Issue: %s (%d cases)\n", issue.Description, issue.Count)
		fmt.Fprintf(w, "   Action: %s\n\n", issue.Action)
	}
}

// renderSummary prints the executive summary block.
func renderSummary(w io.Writer, table results.Table, h analysis.Headline) {
	heading := color.New(color.FgCyan, color.Bold).SprintFunc()

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, heading("EXECUTIVE SUMMARY"))
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\nAnalysis of: %s\n", table.Name)
	fmt.Fprintf(w, "Total Responses: %d\n", h.Total)
	fmt.Fprintf(w, "Average Educational Quality: %.2f/1.0\n", h.MeanQuality)
	if h.HasAccuracy {
		fmt.Fprintf(w, "Evaluator Accuracy: %.1f%%\n", h.AccuracyPct)
	}
	fmt.Fprintf(w, "\nSuccess Rate: %.1f%% (Excellent + Good)\n", h.SuccessPct)
	fmt.Fprintf(w, "Attention Needed: %.1f%% (Needs Review + Poor)\n", h.AttentionPct)

	fmt.Fprintf(w, "\nRecommendation:\n")
	fmt.Fprintf(w, "   %s\n", recommendationColor(h)(h.Recommendation))
	fmt.Fprintln(w, rule)
}

// tierLabel colorizes a severity tier.
func tierLabel(tier string) string {
	switch tier {
	case analysis.TierHigh:
		return color.New(color.FgRed, color.Bold).Sprint(tier)
	case analysis.TierMedium:
		return color.New(color.FgYellow).Sprint(tier)
	default:
		return color.New(color.FgHiBlack).Sprint(tier)
	}
}

// recommendationColor picks a color matching the recommendation tier.
func recommendationColor(h analysis.Headline) func(a ...interface{}) string {
	switch h.Recommendation {
	case analysis.RecommendationWell:
		return color.New(color.FgGreen).SprintFunc()
	case analysis.RecommendationOptimize:
		return color.New(color.FgYellow).SprintFunc()
	default:
		return color.New(color.FgRed).SprintFunc()
	}
}

// head returns at most n leading records.
func head(records []results.Record, n int) []results.Record {
	if n > len(records) {
		n = len(records)
	}
	return records[:n]
}

// gradeTable renders the per-grade statistics as a markdown-style table.
func gradeTable(stats []analysis.GradeStat) string {
	var buf strings.Builder
	table := createStandardTable([]string{"Grade Level", "Avg", "Min", "Max", "N"}, &buf)
	for _, gs := range stats {
		_ = table.Append([]string{
			gs.Grade,
			fmt.Sprintf("%.2f", gs.Mean),
			fmt.Sprintf("%.2f", gs.Min),
			fmt.Sprintf("%.2f", gs.Max),
			fmt.Sprintf("%d", gs.Count),
		})
	}
	_ = table.Render()
	return buf.String()
}
