// internal/dashboard/filters_test.go
package dashboard

import (
	"math"
	"testing"

	"github.com/mwiater/eduqual/internal/results"
)

func filterTable() results.Table {
	return results.Table{Records: []results.Record{
		{TestID: "1", GradeLevel: "Elementary", OverallRating: results.RatingExcellent, EducationalQuality: 0.9},
		{TestID: "2", GradeLevel: "Middle School", OverallRating: results.RatingGood, EducationalQuality: 0.7},
		{TestID: "3", GradeLevel: "Elementary", OverallRating: results.RatingPoor, EducationalQuality: 0.3},
	}}
}

// TestNewFilterState verifies the all-selected starting point passes
// every record through.
func TestNewFilterState(t *testing.T) {
	table := filterTable()
	f := newFilterState(table)

	if f.itemCount() != len(results.Ratings)+2 {
		t.Errorf("itemCount = %d, want %d", f.itemCount(), len(results.Ratings)+2)
	}
	if got := table.Filtered(f.filter()); len(got) != 3 {
		t.Errorf("initial filter kept %d records, want 3", len(got))
	}
}

// TestToggleCursor flips a rating and then a grade selection.
func TestToggleCursor(t *testing.T) {
	table := filterTable()
	f := newFilterState(table)

	// Cursor 3 is the last rating, Poor.
	f.cursor = 3
	f.toggleCursor()
	if f.ratings[results.RatingPoor] {
		t.Error("Poor should be deselected")
	}
	if got := table.Filtered(f.filter()); len(got) != 2 {
		t.Errorf("filter kept %d records, want 2", len(got))
	}

	// First grade row: Elementary (grades are sorted).
	f.cursor = len(results.Ratings)
	f.toggleCursor()
	if f.gradeSel["Elementary"] {
		t.Error("Elementary should be deselected")
	}
	if got := table.Filtered(f.filter()); len(got) != 1 || got[0].TestID != "2" {
		t.Errorf("filter kept %v, want record 2 only", got)
	}

	f.reset(table)
	if got := table.Filtered(f.filter()); len(got) != 3 {
		t.Errorf("reset filter kept %d records, want 3", len(got))
	}
}

// TestAdjustThreshold verifies clamping at both ends.
func TestAdjustThreshold(t *testing.T) {
	f := newFilterState(filterTable())

	for i := 0; i < 15; i++ {
		f.adjustThreshold(0.1)
	}
	if f.threshold != 1 {
		t.Errorf("threshold = %v, want clamped to 1", f.threshold)
	}

	for i := 0; i < 30; i++ {
		f.adjustThreshold(-0.1)
	}
	if f.threshold != 0 {
		t.Errorf("threshold = %v, want clamped to 0", f.threshold)
	}

	f.adjustThreshold(0.1)
	f.adjustThreshold(0.1)
	if math.Abs(f.threshold-0.2) > 1e-9 {
		t.Errorf("threshold = %v, want 0.2", f.threshold)
	}
}
