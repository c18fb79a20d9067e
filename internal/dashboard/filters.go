// internal/dashboard/filters.go
package dashboard

import "github.com/mwiater/eduqual/internal/results"

// filterState tracks the Details tab's filter controls: a rating
// multi-select, a grade multi-select, and a minimum-quality threshold.
type filterState struct {
	ratings   map[results.Rating]bool
	grades    []string
	gradeSel  map[string]bool
	threshold float64
	cursor    int
}

// newFilterState starts with every rating and grade selected and no
// quality threshold.
func newFilterState(table results.Table) filterState {
	f := filterState{
		ratings:  make(map[results.Rating]bool, len(results.Ratings)),
		grades:   table.Grades(),
		gradeSel: make(map[string]bool),
	}
	for _, r := range results.Ratings {
		f.ratings[r] = true
	}
	for _, g := range f.grades {
		f.gradeSel[g] = true
	}
	return f
}

// reset restores the all-selected, zero-threshold state.
func (f *filterState) reset(table results.Table) {
	*f = newFilterState(table)
}

// itemCount is the number of toggleable filter rows.
func (f *filterState) itemCount() int {
	return len(results.Ratings) + len(f.grades)
}

// toggleCursor flips the selection under the cursor.
func (f *filterState) toggleCursor() {
	if f.cursor < len(results.Ratings) {
		rating := results.Ratings[f.cursor]
		f.ratings[rating] = !f.ratings[rating]
		return
	}
	idx := f.cursor - len(results.Ratings)
	if idx < len(f.grades) {
		grade := f.grades[idx]
		f.gradeSel[grade] = !f.gradeSel[grade]
	}
}

// adjustThreshold moves the minimum-quality threshold by delta, clamped
// to [0, 1].
func (f *filterState) adjustThreshold(delta float64) {
	f.threshold += delta
	if f.threshold < 0 {
		f.threshold = 0
	}
	if f.threshold > 1 {
		f.threshold = 1
	}
}

// filter materializes the current state as a results.Filter.
func (f *filterState) filter() results.Filter {
	ratings := make(map[results.Rating]bool, len(f.ratings))
	for r, on := range f.ratings {
		if on {
			ratings[r] = true
		}
	}
	grades := make(map[string]bool, len(f.gradeSel))
	for g, on := range f.gradeSel {
		if on {
			grades[g] = true
		}
	}
	return results.Filter{
		Ratings:    ratings,
		Grades:     grades,
		MinQuality: f.threshold,
	}
}
