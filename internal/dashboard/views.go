// internal/dashboard/views.go
package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwiater/eduqual/internal/analysis"
	"github.com/mwiater/eduqual/internal/results"
	"github.com/mwiater/eduqual/internal/util"
)

var (
	titleStyle     = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("230")).Padding(0, 1).Bold(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1)
	cardStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1).MarginRight(1)
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1)
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	helpStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// ratingColors maps each rating category to its bar color.
var ratingColors = map[results.Rating]lipgloss.Color{
	results.RatingExcellent:   lipgloss.Color("42"),
	results.RatingGood:        lipgloss.Color("39"),
	results.RatingNeedsReview: lipgloss.Color("220"),
	results.RatingPoor:        lipgloss.Color("196"),
}

// tabLabels maps tab identifiers to their display names.
var tabLabels = map[tabID]string{
	tabOverview:  "Overview",
	tabQuality:   "Quality",
	tabEvaluator: "Evaluator",
	tabDetails:   "Details",
}

// View renders the application's UI based on the current state of the model.
func (m *model) View() string {
	if m.width == 0 {
		return "Initializing..."
	}

	switch m.state {
	case viewFilePicker:
		var header string
		if m.err != nil {
			header = errorStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n"
		}
		return header + lipgloss.NewStyle().Margin(1, 2).Render(m.fileList.View())

	case viewLoading:
		return "\n  Loading results..."

	case viewDashboard:
		return m.dashboardView()

	default:
		return "Unknown state"
	}
}

// dashboardView renders the tab bar, the active tab body, and the footer.
func (m *model) dashboardView() string {
	var builder strings.Builder

	builder.WriteString(titleStyle.Render("LLM Quality Dashboard"))
	builder.WriteString(" ")
	builder.WriteString(cardLabelStyle.Render(m.table.Name))
	builder.WriteString("\n\n")
	builder.WriteString(m.tabBar())
	builder.WriteString("\n\n")

	switch m.tab {
	case tabOverview:
		builder.WriteString(m.overviewView())
	case tabQuality:
		builder.WriteString(m.qualityView())
	case tabEvaluator:
		builder.WriteString(m.evaluatorView())
	case tabDetails:
		builder.WriteString(m.detailsView())
	}

	builder.WriteString("\n")
	builder.WriteString(helpStyle.Render("tab/←→ switch view · q back · ctrl+c quit"))
	return builder.String()
}

// tabBar renders the visible tabs with the active one highlighted.
func (m *model) tabBar() string {
	var parts []string
	for _, t := range m.visibleTabs() {
		if t == m.tab {
			parts = append(parts, activeTabStyle.Render(tabLabels[t]))
		} else {
			parts = append(parts, tabStyle.Render(tabLabels[t]))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// overviewView renders the headline metric cards and the rating
// distribution chart.
func (m *model) overviewView() string {
	h := m.analysis.Headline

	cards := []string{
		metricCard("Total Responses", fmt.Sprintf("%d", h.Total)),
		metricCard("Avg Quality", fmt.Sprintf("%.2f", h.MeanQuality)),
	}
	if h.HasAccuracy {
		cards = append(cards, metricCard("Evaluator Accuracy", fmt.Sprintf("%.1f%%", h.AccuracyPct)))
	}
	cards = append(cards,
		metricCard("Success Rate", fmt.Sprintf("%.1f%%", h.SuccessPct)),
		metricCard("Attention Needed", fmt.Sprintf("%.1f%%", h.AttentionPct)),
	)

	var builder strings.Builder
	builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	builder.WriteString("\n\nQuality Distribution\n")
	builder.WriteString(distributionChart(m.analysis.Summary.Distribution, m.chartWidth()))
	builder.WriteString("\nRecommendation: ")
	builder.WriteString(h.Recommendation)
	builder.WriteString("\n")
	return builder.String()
}

// qualityView renders the score histogram, per-grade statistics, and the
// low-quality subset.
func (m *model) qualityView() string {
	var builder strings.Builder
	s := m.analysis.Summary

	builder.WriteString("Quality Score Distribution\n")
	builder.WriteString(histogram(m.table.Records, m.chartWidth()))

	builder.WriteString("\nGrade Level Performance\n")
	for _, gs := range s.GradeStats {
		builder.WriteString(fmt.Sprintf("  %-16s avg=%.2f min=%.2f max=%.2f (n=%d)\n", gs.Grade, gs.Mean, gs.Min, gs.Max, gs.Count))
	}

	builder.WriteString(fmt.Sprintf("\nLow Quality Responses (score < %.1f)\n", analysis.LowQualityThreshold))
	if len(s.LowQuality) == 0 {
		builder.WriteString(successStyle.Render("  No low quality responses found!"))
		builder.WriteString("\n")
		return builder.String()
	}
	for _, rec := range s.LowQuality {
		builder.WriteString(warnStyle.Render(fmt.Sprintf("  Test #%s", rec.TestID)))
		builder.WriteString(fmt.Sprintf("  %.2f  %s  %s\n", rec.EducationalQuality, rec.OverallRating, util.TruncateRunes(rec.Prompt, 48)))
	}
	return builder.String()
}

// evaluatorView renders match statistics and the mismatch listing.
func (m *model) evaluatorView() string {
	var builder strings.Builder
	s := m.analysis.Summary

	if !m.table.HasMatches {
		builder.WriteString("This results file has no Matches_Expected column.\n")
		return builder.String()
	}

	matches := s.Total - len(s.Mismatches)
	rate := 0.0
	if s.Total > 0 {
		rate = float64(matches) / float64(s.Total) * 100
	}

	cards := []string{
		metricCard("Exact Matches", fmt.Sprintf("%d / %d", matches, s.Total)),
		metricCard("Match Rate", fmt.Sprintf("%.1f%%", rate)),
		metricCard("Mismatches", fmt.Sprintf("%d", len(s.Mismatches))),
	}
	builder.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))

	builder.WriteString("\n\nEvaluator Mismatches\n")
	if len(s.Mismatches) == 0 {
		builder.WriteString(successStyle.Render("  Perfect evaluator accuracy!"))
		builder.WriteString("\n")
		return builder.String()
	}
	for _, rec := range s.Mismatches {
		builder.WriteString(warnStyle.Render(fmt.Sprintf("  Test #%s", rec.TestID)))
		builder.WriteString(fmt.Sprintf("  expected %q got %q  %s\n", rec.ExpectedQuality, rec.OverallRating, util.TruncateRunes(rec.Prompt, 40)))
	}
	return builder.String()
}

// detailsView renders the filter panel, the filtered aggregate recap, and
// the record table.
func (m *model) detailsView() string {
	var builder strings.Builder

	builder.WriteString(m.filterPanel())
	builder.WriteString(fmt.Sprintf("\nFiltered Results: %d of %d\n", len(m.filtered), len(m.table.Records)))

	if len(m.filtered) > 0 {
		var recap []string
		for _, rc := range m.subSummary.Distribution {
			if rc.Count > 0 {
				recap = append(recap, fmt.Sprintf("%s %d (%.1f%%)", rc.Rating, rc.Count, rc.Percent))
			}
		}
		builder.WriteString(cardLabelStyle.Render("  " + strings.Join(recap, " · ")))
		builder.WriteString("\n")
	}

	builder.WriteString("\n")
	builder.WriteString(m.detailTable.View())
	builder.WriteString("\n")
	if m.statusMsg != "" {
		builder.WriteString(statusStyle.Render(m.statusMsg))
		builder.WriteString("\n")
	}
	builder.WriteString(helpStyle.Render("↑↓ move · space toggle filter · +/- min quality · a reset · e export CSV"))
	builder.WriteString("\n")
	return builder.String()
}

// filterPanel renders the rating and grade toggles and the threshold.
func (m *model) filterPanel() string {
	var builder strings.Builder

	builder.WriteString("Filters\n")
	for i, rating := range results.Ratings {
		builder.WriteString(filterLine(m.filters.cursor == i, m.filters.ratings[rating], string(rating)))
	}
	for i, grade := range m.filters.grades {
		idx := len(results.Ratings) + i
		builder.WriteString(filterLine(m.filters.cursor == idx, m.filters.gradeSel[grade], grade))
	}
	builder.WriteString(fmt.Sprintf("  Min Quality Score: %.1f\n", m.filters.threshold))
	return builder.String()
}

// filterLine renders one toggleable filter row.
func filterLine(cursor, selected bool, label string) string {
	marker := " "
	if cursor {
		marker = ">"
	}
	check := "[ ]"
	if selected {
		check = "[x]"
	}
	return fmt.Sprintf("%s %s %s\n", marker, check, label)
}

// metricCard renders one bordered headline metric.
func metricCard(label, value string) string {
	content := cardLabelStyle.Render(label) + "\n" + lipgloss.NewStyle().Bold(true).Render(value)
	return cardStyle.Render(content)
}

// distributionChart renders a horizontal bar per rating category.
func distributionChart(dist []analysis.RatingCount, width int) string {
	maxCount := 0
	for _, rc := range dist {
		if rc.Count > maxCount {
			maxCount = rc.Count
		}
	}
	if maxCount == 0 {
		return "  (no records)\n"
	}

	var builder strings.Builder
	for _, rc := range dist {
		barWidth := rc.Count * width / maxCount
		bar := lipgloss.NewStyle().Foreground(ratingColors[rc.Rating]).Render(strings.Repeat("█", barWidth))
		builder.WriteString(fmt.Sprintf("  %-14s %s %d (%.1f%%)\n", rc.Rating, bar, rc.Count, rc.Percent))
	}
	return builder.String()
}

// histogram renders ten 0.1-wide quality score bins.
func histogram(records []results.Record, width int) string {
	bins := make([]int, 10)
	for _, rec := range records {
		bin := int(rec.EducationalQuality * 10)
		if bin > 9 {
			bin = 9
		}
		if bin < 0 {
			bin = 0
		}
		bins[bin]++
	}

	maxCount := 0
	for _, count := range bins {
		if count > maxCount {
			maxCount = count
		}
	}
	if maxCount == 0 {
		return "  (no records)\n"
	}

	var builder strings.Builder
	for i, count := range bins {
		barWidth := count * width / maxCount
		builder.WriteString(fmt.Sprintf("  %.1f–%.1f %s %d\n", float64(i)/10, float64(i+1)/10, strings.Repeat("▇", barWidth), count))
	}
	return builder.String()
}

// chartWidth bounds bar widths to the current terminal size.
func (m *model) chartWidth() int {
	return util.Max(util.Min(m.width-36, 48), 10)
}
