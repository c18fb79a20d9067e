// internal/results/types.go
// Package results defines the evaluation record model and handles loading
// results tables from CSV files produced by the evaluation pipeline.
package results

import (
	"sort"
	"strings"
)

// Rating is the four-valued quality verdict assigned to a response.
type Rating string

const (
	RatingExcellent   Rating = "Excellent"
	RatingGood        Rating = "Good"
	RatingNeedsReview Rating = "Needs Review"
	RatingPoor        Rating = "Poor"
)

// Ratings lists the rating categories in canonical order, best first.
var Ratings = []Rating{RatingExcellent, RatingGood, RatingNeedsReview, RatingPoor}

// Record is a single row of a results table: one evaluated prompt/response
// pair. Records are immutable once loaded.
type Record struct {
	TestID             string  `json:"testId"`
	Prompt             string  `json:"prompt"`
	GradeLevel         string  `json:"gradeLevel"`
	EducationalQuality float64 `json:"educationalQuality"`
	OverallRating      Rating  `json:"overallRating"`
	ExpectedQuality    Rating  `json:"expectedQuality,omitempty"`
	MatchesExpected    bool    `json:"matchesExpected"`
	Notes              string  `json:"notes,omitempty"`
}

// Tags splits the record's Notes field on its delimiter, trimming
// surrounding whitespace from each tag. Empty values produce no tags.
func (r Record) Tags() []string {
	if strings.TrimSpace(r.Notes) == "" {
		return nil
	}
	parts := strings.Split(r.Notes, ";")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		if tag := strings.TrimSpace(p); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// Table is a fully loaded results table plus the capability flags computed
// once at load time from the CSV header.
type Table struct {
	Path               string   `json:"path"`
	Name               string   `json:"name"`
	Run                int      `json:"run"`
	Records            []Record `json:"records"`
	HasExpectedQuality bool     `json:"hasExpectedQuality"`
	HasMatches         bool     `json:"hasMatches"`
}

// Filter selects a subset of a table's records. A nil Ratings or Grades
// set means "no restriction" on that dimension.
type Filter struct {
	Ratings    map[Rating]bool
	Grades     map[string]bool
	MinQuality float64
}

// Match reports whether the record passes the filter.
func (f Filter) Match(r Record) bool {
	if f.Ratings != nil && !f.Ratings[r.OverallRating] {
		return false
	}
	if f.Grades != nil && !f.Grades[r.GradeLevel] {
		return false
	}
	return r.EducationalQuality >= f.MinQuality
}

// Filtered returns the records matching the filter, preserving order.
func (t Table) Filtered(f Filter) []Record {
	out := make([]Record, 0, len(t.Records))
	for _, r := range t.Records {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}

// Grades returns the distinct grade levels present in the table, sorted.
func (t Table) Grades() []string {
	seen := make(map[string]bool)
	var grades []string
	for _, r := range t.Records {
		if !seen[r.GradeLevel] {
			seen[r.GradeLevel] = true
			grades = append(grades, r.GradeLevel)
		}
	}
	sort.Strings(grades)
	return grades
}
