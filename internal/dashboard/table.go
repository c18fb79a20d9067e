// internal/dashboard/table.go
package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/mwiater/eduqual/internal/results"
	"github.com/mwiater/eduqual/internal/util"
)

// newDetailTable builds the Details tab table. Optional columns appear
// only when the loaded file carries them.
func newDetailTable(hasExpected, hasMatches bool) table.Model {
	columns := []table.Column{
		{Title: "Test ID", Width: 8},
		{Title: "Prompt", Width: 44},
		{Title: "Rating", Width: 14},
		{Title: "Quality", Width: 8},
		{Title: "Grade", Width: 14},
	}
	if hasExpected {
		columns = append(columns, table.Column{Title: "Expected", Width: 14})
	}
	if hasMatches {
		columns = append(columns, table.Column{Title: "Match", Width: 6})
	}

	return table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
}

// detailRows converts records to table rows matching newDetailTable's
// column layout.
func detailRows(t results.Table, records []results.Record) []table.Row {
	rows := make([]table.Row, 0, len(records))
	for _, rec := range records {
		row := table.Row{
			rec.TestID,
			util.TruncateRunes(rec.Prompt, 42),
			string(rec.OverallRating),
			fmt.Sprintf("%.2f", rec.EducationalQuality),
			rec.GradeLevel,
		}
		if t.HasExpectedQuality {
			row = append(row, string(rec.ExpectedQuality))
		}
		if t.HasMatches {
			if rec.MatchesExpected {
				row = append(row, "yes")
			} else {
				row = append(row, "no")
			}
		}
		rows = append(rows, row)
	}
	return rows
}
