// internal/dashboard/export.go
package dashboard

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/eduqual/internal/results"
)

// exportCmd writes the current filtered view next to the source file as
// filtered_<name>.
func (m *model) exportCmd() tea.Cmd {
	table := m.table
	records := append([]results.Record(nil), m.filtered...)
	return func() tea.Msg {
		dest := filepath.Join(filepath.Dir(table.Path), "filtered_"+table.Name)
		file, err := os.Create(dest)
		if err != nil {
			return exportErr{error: fmt.Errorf("unable to create export file %s: %w", dest, err)}
		}
		defer file.Close()

		if err := results.WriteCSV(file, table, records); err != nil {
			return exportErr{error: fmt.Errorf("unable to export filtered view: %w", err)}
		}
		return exportDoneMsg{path: dest}
	}
}
