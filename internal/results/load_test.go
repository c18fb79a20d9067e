// internal/results/load_test.go
package results

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fullCSV = `Test_ID,Prompt,Grade_Level,Educational_Quality,Overall_Rating,Expected_Quality,Matches_Expected,Notes
1,Explain photosynthesis,Elementary,0.92,Excellent,Excellent,True,
2,Describe the water cycle,Middle School,0.65,Needs Review,Good,False,too complex; missing examples
3,What is gravity,High School,0.45,Poor,Poor,True,inappropriate language
`

const minimalCSV = `Test_ID,Prompt,Grade_Level,Educational_Quality,Overall_Rating,Notes
1,Explain photosynthesis,Elementary,0.92,Excellent,
2,Describe the water cycle,Middle School,0.65,Needs Review,too complex
`

// TestLoadFile verifies parsing, capability detection, and run-number
// extraction for a well-formed results CSV.
func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results_7.csv")
	if err := os.WriteFile(path, []byte(fullCSV), 0o644); err != nil {
		t.Fatal(err)
	}

	table, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile returned error: %v", err)
	}

	if table.Name != "results_7.csv" {
		t.Errorf("Name = %q, want results_7.csv", table.Name)
	}
	if table.Run != 7 {
		t.Errorf("Run = %d, want 7", table.Run)
	}
	if !table.HasExpectedQuality || !table.HasMatches {
		t.Errorf("capability flags = (%v, %v), want both true", table.HasExpectedQuality, table.HasMatches)
	}
	if len(table.Records) != 3 {
		t.Fatalf("got %d records, want 3", len(table.Records))
	}

	rec := table.Records[1]
	if rec.TestID != "2" || rec.GradeLevel != "Middle School" {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.EducationalQuality != 0.65 {
		t.Errorf("EducationalQuality = %v, want 0.65", rec.EducationalQuality)
	}
	if rec.OverallRating != RatingNeedsReview {
		t.Errorf("OverallRating = %q, want %q", rec.OverallRating, RatingNeedsReview)
	}
	if rec.MatchesExpected {
		t.Error("MatchesExpected = true, want false")
	}
	if got := rec.Tags(); len(got) != 2 || got[0] != "too complex" || got[1] != "missing examples" {
		t.Errorf("Tags = %v, want [too complex, missing examples]", got)
	}
}

// TestLoadFileMinimal verifies that the optional evaluator columns are
// reported absent when the header omits them.
func TestLoadFileMinimal(t *testing.T) {
	table, err := parseCSV(strings.NewReader(minimalCSV))
	if err != nil {
		t.Fatalf("parseCSV returned error: %v", err)
	}
	if table.HasExpectedQuality || table.HasMatches {
		t.Errorf("capability flags = (%v, %v), want both false", table.HasExpectedQuality, table.HasMatches)
	}
	if len(table.Records) != 2 {
		t.Fatalf("got %d records, want 2", len(table.Records))
	}
	if table.Records[0].ExpectedQuality != "" {
		t.Errorf("ExpectedQuality = %q, want empty", table.Records[0].ExpectedQuality)
	}
}

// TestParseCSVErrors covers malformed inputs: empty file, missing required
// columns, and unparseable field values.
func TestParseCSVErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"empty file", ""},
		{"missing column", "Test_ID,Prompt,Grade_Level,Overall_Rating,Notes\n1,p,Elementary,Good,\n"},
		{"bad quality", "Test_ID,Prompt,Grade_Level,Educational_Quality,Overall_Rating,Notes\n1,p,Elementary,high,Good,\n"},
		{"bad matches", "Test_ID,Prompt,Grade_Level,Educational_Quality,Overall_Rating,Matches_Expected,Notes\n1,p,Elementary,0.5,Good,maybe,\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := parseCSV(strings.NewReader(tc.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// TestLoadFileMissing ensures a nonexistent path reports the file name.
func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "results_1.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "unable to open results file") {
		t.Errorf("unexpected error: %v", err)
	}
}

// TestWriteCSV verifies that exported CSV mirrors the source table's
// column layout, including optional columns.
func TestWriteCSV(t *testing.T) {
	table, err := parseCSV(strings.NewReader(fullCSV))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, table, table.Records[:2]); err != nil {
		t.Fatalf("WriteCSV returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3", len(lines))
	}
	wantHeader := "Test_ID,Prompt,Grade_Level,Educational_Quality,Overall_Rating,Expected_Quality,Matches_Expected,Notes"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if !strings.Contains(lines[2], "Needs Review") {
		t.Errorf("row 2 missing rating: %q", lines[2])
	}

	// Without the optional columns the header shrinks to the base set.
	minimal, err := parseCSV(strings.NewReader(minimalCSV))
	if err != nil {
		t.Fatal(err)
	}
	buf.Reset()
	if err := WriteCSV(&buf, minimal, minimal.Records); err != nil {
		t.Fatal(err)
	}
	gotHeader := strings.SplitN(buf.String(), "\n", 2)[0]
	if gotHeader != "Test_ID,Prompt,Grade_Level,Educational_Quality,Overall_Rating,Notes" {
		t.Errorf("minimal header = %q", gotHeader)
	}
}
