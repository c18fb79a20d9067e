// internal/dashboard/dashboard_test.go
package dashboard

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/eduqual/internal/appconfig"
	"github.com/mwiater/eduqual/internal/results"
)

func loadedModel(t *testing.T, table results.Table) *model {
	t.Helper()
	m := initialModel(&appconfig.Config{}, []results.File{{Name: "results_1.csv", Run: 1}})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.Update(tableLoadedMsg{table: table})
	return m
}

func dashboardTable(withMatches bool) results.Table {
	return results.Table{
		Name:       "results_1.csv",
		HasMatches: withMatches,
		Records: []results.Record{
			{TestID: "1", Prompt: "a", GradeLevel: "Elementary", OverallRating: results.RatingExcellent, EducationalQuality: 0.9, MatchesExpected: true},
			{TestID: "2", Prompt: "b", GradeLevel: "Middle School", OverallRating: results.RatingGood, EducationalQuality: 0.7, MatchesExpected: false},
			{TestID: "3", Prompt: "c", GradeLevel: "Elementary", OverallRating: results.RatingPoor, EducationalQuality: 0.3, MatchesExpected: false},
		},
	}
}

// TestTableLoaded verifies the transition into the dashboard view with
// analysis and filters in place.
func TestTableLoaded(t *testing.T) {
	m := loadedModel(t, dashboardTable(true))

	if m.state != viewDashboard || m.tab != tabOverview {
		t.Errorf("state/tab = %v/%v, want dashboard/overview", m.state, m.tab)
	}
	if m.analysis.Summary.Total != 3 {
		t.Errorf("analysis total = %d, want 3", m.analysis.Summary.Total)
	}
	if len(m.filtered) != 3 {
		t.Errorf("filtered = %d records, want all 3", len(m.filtered))
	}
}

// TestTabCycling checks wraparound and the evaluator tab's conditional
// presence.
func TestTabCycling(t *testing.T) {
	m := loadedModel(t, dashboardTable(true))
	want := []tabID{tabQuality, tabEvaluator, tabDetails, tabOverview}
	for _, next := range want {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.tab != next {
			t.Fatalf("tab = %v, want %v", m.tab, next)
		}
	}

	// Without the evaluator columns the tab disappears from the cycle.
	m = loadedModel(t, dashboardTable(false))
	want = []tabID{tabQuality, tabDetails, tabOverview}
	for _, next := range want {
		m.Update(tea.KeyMsg{Type: tea.KeyTab})
		if m.tab != next {
			t.Fatalf("tab = %v, want %v (no evaluator data)", m.tab, next)
		}
	}
}

// TestFilterKeys drives the Details tab controls through Update.
func TestFilterKeys(t *testing.T) {
	m := loadedModel(t, dashboardTable(true))
	m.tab = tabDetails

	// Raise the quality threshold to 0.5: keeps records 1 and 2.
	for i := 0; i < 5; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'+'}})
	}
	if len(m.filtered) != 2 {
		t.Errorf("filtered = %d records, want 2", len(m.filtered))
	}
	if m.subSummary.Total != 2 {
		t.Errorf("subSummary total = %d, want 2", m.subSummary.Total)
	}

	// Deselect the rating under the cursor (Excellent).
	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if len(m.filtered) != 1 || m.filtered[0].TestID != "2" {
		t.Errorf("filtered = %v, want record 2 only", m.filtered)
	}

	// Reset restores everything.
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	if len(m.filtered) != 3 {
		t.Errorf("after reset filtered = %d records, want 3", len(m.filtered))
	}
}

// TestViewSections smoke-tests rendering of each tab.
func TestViewSections(t *testing.T) {
	m := loadedModel(t, dashboardTable(true))

	if out := m.View(); !strings.Contains(out, "Quality Distribution") {
		t.Errorf("overview missing distribution:\n%s", out)
	}

	m.tab = tabQuality
	if out := m.View(); !strings.Contains(out, "Grade Level Performance") {
		t.Errorf("quality tab missing grade stats:\n%s", out)
	}

	m.tab = tabEvaluator
	if out := m.View(); !strings.Contains(out, "Evaluator Mismatches") {
		t.Errorf("evaluator tab missing mismatches:\n%s", out)
	}

	m.tab = tabDetails
	if out := m.View(); !strings.Contains(out, "Filtered Results: 3 of 3") {
		t.Errorf("details tab missing record count:\n%s", out)
	}
}
