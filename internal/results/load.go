// internal/results/load.go
package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Required CSV columns. Expected_Quality and Matches_Expected are optional;
// their presence enables evaluator-accuracy reporting.
const (
	colTestID          = "Test_ID"
	colPrompt          = "Prompt"
	colGradeLevel      = "Grade_Level"
	colQuality         = "Educational_Quality"
	colOverallRating   = "Overall_Rating"
	colNotes           = "Notes"
	colExpectedQuality = "Expected_Quality"
	colMatchesExpected = "Matches_Expected"
)

var requiredColumns = []string{colTestID, colPrompt, colGradeLevel, colQuality, colOverallRating, colNotes}

// LoadFile reads a results CSV from path and returns the parsed table with
// its capability flags. The run number is derived from the file name when
// it follows the results_<N>.csv convention.
func LoadFile(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("unable to open results file %s: %w", path, err)
	}
	defer file.Close()

	table, err := parseCSV(file)
	if err != nil {
		return Table{}, fmt.Errorf("unable to parse results file %s: %w", path, err)
	}

	table.Path = path
	table.Name = baseName(path)
	if run, ok := parseRunNumber(table.Name); ok {
		table.Run = run
	}
	return table, nil
}

// parseCSV decodes a results table from r. The header row determines column
// positions and which optional columns are present.
func parseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return Table{}, fmt.Errorf("results file is empty")
		}
		return Table{}, fmt.Errorf("unable to read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return Table{}, fmt.Errorf("missing required column %q", name)
		}
	}

	table := Table{Records: []Record{}}
	_, table.HasExpectedQuality = index[colExpectedQuality]
	_, table.HasMatches = index[colMatchesExpected]

	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("row %d: %w", line+1, err)
		}
		line++

		field := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(row) {
				return ""
			}
			return strings.TrimSpace(row[i])
		}

		quality, err := strconv.ParseFloat(field(colQuality), 64)
		if err != nil {
			return Table{}, fmt.Errorf("row %d: invalid %s value %q", line, colQuality, field(colQuality))
		}

		rec := Record{
			TestID:             field(colTestID),
			Prompt:             field(colPrompt),
			GradeLevel:         field(colGradeLevel),
			EducationalQuality: quality,
			OverallRating:      Rating(field(colOverallRating)),
			Notes:              field(colNotes),
		}

		if table.HasExpectedQuality {
			rec.ExpectedQuality = Rating(field(colExpectedQuality))
		}
		if table.HasMatches {
			matches, err := strconv.ParseBool(field(colMatchesExpected))
			if err != nil {
				return Table{}, fmt.Errorf("row %d: invalid %s value %q", line, colMatchesExpected, field(colMatchesExpected))
			}
			rec.MatchesExpected = matches
		}

		table.Records = append(table.Records, rec)
	}

	return table, nil
}

// WriteCSV serializes records to w using the same column layout they were
// loaded with. Optional columns are emitted only when the source table
// carried them.
func WriteCSV(w io.Writer, t Table, records []Record) error {
	writer := csv.NewWriter(w)

	header := []string{colTestID, colPrompt, colGradeLevel, colQuality, colOverallRating}
	if t.HasExpectedQuality {
		header = append(header, colExpectedQuality)
	}
	if t.HasMatches {
		header = append(header, colMatchesExpected)
	}
	header = append(header, colNotes)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("unable to write CSV header: %w", err)
	}

	for _, rec := range records {
		row := []string{
			rec.TestID,
			rec.Prompt,
			rec.GradeLevel,
			strconv.FormatFloat(rec.EducationalQuality, 'f', -1, 64),
			string(rec.OverallRating),
		}
		if t.HasExpectedQuality {
			row = append(row, string(rec.ExpectedQuality))
		}
		if t.HasMatches {
			row = append(row, strconv.FormatBool(rec.MatchesExpected))
		}
		row = append(row, rec.Notes)
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("unable to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
