// internal/analysis/summarize.go
package analysis

import (
	"sort"
	"strings"

	"github.com/mwiater/eduqual/internal/results"
)

// LowQualityThreshold is the score below which a response is flagged as
// low quality. The boundary value itself is not flagged.
const LowQualityThreshold = 0.7

// RatingCount holds the count and percentage for one rating category.
type RatingCount struct {
	Rating  results.Rating `json:"rating"`
	Count   int            `json:"count"`
	Percent float64        `json:"percent"`
}

// TagCount holds the occurrence count for one issue tag from Notes.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// GradeStat aggregates EducationalQuality per grade level.
type GradeStat struct {
	Grade string  `json:"grade"`
	Mean  float64 `json:"mean"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// Summary is the distribution and anomaly breakdown of a results table.
// It is a pure function of the input records; an empty table yields empty
// aggregates.
type Summary struct {
	Total        int              `json:"total"`
	Distribution []RatingCount    `json:"distribution"`
	CommonIssues []TagCount       `json:"commonIssues"`
	GradeStats   []GradeStat      `json:"gradeStats"`
	LowQuality   []results.Record `json:"lowQuality"`
	Mismatches   []results.Record `json:"mismatches"`
	HasAccuracy  bool             `json:"hasAccuracy"`
}

// Summarize computes the rating distribution, issue-tag frequencies,
// per-grade statistics, and the low-quality and mismatch subsets. The
// mismatch subset is only populated when the table carries the optional
// Matches_Expected column.
func Summarize(table results.Table) Summary {
	summary := Summary{
		Total:        len(table.Records),
		Distribution: []RatingCount{},
		CommonIssues: []TagCount{},
		GradeStats:   []GradeStat{},
		LowQuality:   []results.Record{},
		Mismatches:   []results.Record{},
		HasAccuracy:  table.HasMatches,
	}
	if summary.Total == 0 {
		return summary
	}

	counts := make(map[results.Rating]int)
	tagCounts := make(map[string]int)
	gradeTotals := make(map[string]*GradeStat)

	for _, rec := range table.Records {
		counts[rec.OverallRating]++

		for _, tag := range rec.Tags() {
			tagCounts[tag]++
		}

		stat, ok := gradeTotals[rec.GradeLevel]
		if !ok {
			stat = &GradeStat{
				Grade: rec.GradeLevel,
				Min:   rec.EducationalQuality,
				Max:   rec.EducationalQuality,
			}
			gradeTotals[rec.GradeLevel] = stat
		}
		stat.Count++
		stat.Mean += rec.EducationalQuality
		if rec.EducationalQuality < stat.Min {
			stat.Min = rec.EducationalQuality
		}
		if rec.EducationalQuality > stat.Max {
			stat.Max = rec.EducationalQuality
		}

		if rec.EducationalQuality < LowQualityThreshold {
			summary.LowQuality = append(summary.LowQuality, rec)
		}
		if table.HasMatches && !rec.MatchesExpected {
			summary.Mismatches = append(summary.Mismatches, rec)
		}
	}

	for _, rating := range results.Ratings {
		count := counts[rating]
		summary.Distribution = append(summary.Distribution, RatingCount{
			Rating:  rating,
			Count:   count,
			Percent: float64(count) / float64(summary.Total) * 100,
		})
	}

	for tag, count := range tagCounts {
		summary.CommonIssues = append(summary.CommonIssues, TagCount{Tag: tag, Count: count})
	}
	sort.Slice(summary.CommonIssues, func(i, j int) bool {
		if summary.CommonIssues[i].Count != summary.CommonIssues[j].Count {
			return summary.CommonIssues[i].Count > summary.CommonIssues[j].Count
		}
		return summary.CommonIssues[i].Tag < summary.CommonIssues[j].Tag
	})

	grades := make([]string, 0, len(gradeTotals))
	for grade := range gradeTotals {
		grades = append(grades, grade)
	}
	sort.Strings(grades)
	for _, grade := range grades {
		stat := gradeTotals[grade]
		stat.Mean /= float64(stat.Count)
		summary.GradeStats = append(summary.GradeStats, *stat)
	}

	return summary
}

// MostCommonIssues returns the n most frequent issue tags.
func (s Summary) MostCommonIssues(n int) []TagCount {
	if n > len(s.CommonIssues) {
		n = len(s.CommonIssues)
	}
	return s.CommonIssues[:n]
}

// CountWithNote returns how many records carry the given case-insensitive
// substring in their Notes field.
func CountWithNote(records []results.Record, substring string) int {
	needle := strings.ToLower(substring)
	count := 0
	for _, rec := range records {
		if strings.Contains(strings.ToLower(rec.Notes), needle) {
			count++
		}
	}
	return count
}
