// internal/dashboard/dashboard.go
// Package dashboard implements the interactive terminal dashboard over a
// results table: file selection, tabbed statistics views, record filters,
// and CSV export of the filtered view.
package dashboard

import (
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mwiater/eduqual/internal/analysis"
	"github.com/mwiater/eduqual/internal/appconfig"
	"github.com/mwiater/eduqual/internal/logging"
	"github.com/mwiater/eduqual/internal/results"
	"github.com/mwiater/eduqual/internal/util"
)

// viewState represents the current view or screen of the application.
type viewState int

const (
	// viewFilePicker is the state where the user selects a results file.
	viewFilePicker viewState = iota
	// viewLoading is the state while a results file is being parsed.
	viewLoading
	// viewDashboard is the tabbed statistics view.
	viewDashboard
)

// tabID identifies one dashboard tab.
type tabID int

const (
	tabOverview tabID = iota
	tabQuality
	tabEvaluator
	tabDetails
)

// model is the main application model for the Bubble Tea UI.
type model struct {
	config *appconfig.Config

	state viewState
	tab   tabID
	err   error

	files    []results.File
	fileList list.Model

	table    results.Table
	analysis analysis.Analysis

	filters     filterState
	filtered    []results.Record
	subSummary  analysis.Summary
	detailTable table.Model

	statusMsg     string
	width, height int
}

// item represents a selectable results file in the picker list.
type item struct {
	file results.File
}

// Title returns the file name shown in the picker.
func (i item) Title() string { return i.file.Name }

// Description describes the run the file belongs to.
func (i item) Description() string { return fmt.Sprintf("Run %d", i.file.Run) }

// FilterValue returns the file name, used for list filtering.
func (i item) FilterValue() string { return i.file.Name }

// tableLoadedMsg is sent when a results file has been parsed.
type tableLoadedMsg struct{ table results.Table }

// tableLoadErr is sent when parsing a results file fails.
type tableLoadErr struct{ error }

// exportDoneMsg is sent when the filtered view has been written to disk.
type exportDoneMsg struct{ path string }

// exportErr is sent when the CSV export fails.
type exportErr struct{ error }

// initialModel creates the dashboard model with the picker populated from
// the discovered results files. The selector defaults to the latest run.
func initialModel(cfg *appconfig.Config, files []results.File) *model {
	items := make([]list.Item, len(files))
	for i, f := range files {
		items[i] = item{file: f}
	}
	fileList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	fileList.Title = "Select a Results File"
	if len(files) > 0 {
		fileList.Select(len(files) - 1)
	}

	return &model{
		config:      cfg,
		state:       viewFilePicker,
		files:       files,
		fileList:    fileList,
		detailTable: newDetailTable(false, false),
	}
}

// loadTableCmd parses a results file off the UI loop.
func loadTableCmd(path string) tea.Cmd {
	return func() tea.Msg {
		table, err := results.LoadFile(path)
		if err != nil {
			return tableLoadErr{error: err}
		}
		return tableLoadedMsg{table: table}
	}
}

// Init implements tea.Model.
func (m *model) Init() tea.Cmd {
	return nil
}

// Update is the central update function for the Bubble Tea model.
func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.state != viewFilePicker {
				m.state = viewFilePicker
				m.statusMsg = ""
				return m, nil
			}
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.fileList.SetSize(msg.Width-2, msg.Height-4)
		m.detailTable.SetWidth(msg.Width - 4)
		m.detailTable.SetHeight(util.Max(msg.Height-16, 4))

	case tableLoadedMsg:
		m.table = msg.table
		m.analysis = analysis.Analyze(m.table)
		m.filters = newFilterState(m.table)
		m.detailTable = newDetailTable(m.table.HasExpectedQuality, m.table.HasMatches)
		m.detailTable.SetWidth(util.Max(m.width-4, 40))
		m.detailTable.SetHeight(util.Max(m.height-16, 4))
		m.applyFilters()
		m.state = viewDashboard
		m.tab = tabOverview
		m.err = nil
		m.statusMsg = ""
		logging.LogEvent("dashboard loaded %s (%d records)", m.table.Name, len(m.table.Records))
		return m, nil

	case tableLoadErr:
		m.err = msg.error
		m.state = viewFilePicker
		return m, nil

	case exportDoneMsg:
		m.statusMsg = fmt.Sprintf("Exported filtered view to %s", msg.path)
		return m, nil

	case exportErr:
		m.err = msg.error
		return m, nil
	}

	switch m.state {
	case viewFilePicker:
		m.fileList, cmd = m.fileList.Update(msg)
		cmds = append(cmds, cmd)
		if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "enter" {
			if selected, ok := m.fileList.SelectedItem().(item); ok {
				m.state = viewLoading
				cmds = append(cmds, loadTableCmd(selected.file.Path))
			}
		}

	case viewDashboard:
		cmds = append(cmds, m.updateDashboard(msg))
	}

	return m, tea.Batch(cmds...)
}

// updateDashboard handles key events inside the tabbed view.
func (m *model) updateDashboard(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch keyMsg.String() {
	case "tab", "right", "l":
		m.tab = m.nextTab(1)
		return nil
	case "shift+tab", "left", "h":
		m.tab = m.nextTab(-1)
		return nil
	}

	if m.tab != tabDetails {
		return nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.filters.cursor > 0 {
			m.filters.cursor--
		}
		return nil
	case "down", "j":
		if m.filters.cursor < m.filters.itemCount()-1 {
			m.filters.cursor++
		}
		return nil
	case " ":
		m.filters.toggleCursor()
		m.applyFilters()
		return nil
	case "+", "=":
		m.filters.adjustThreshold(0.1)
		m.applyFilters()
		return nil
	case "-":
		m.filters.adjustThreshold(-0.1)
		m.applyFilters()
		return nil
	case "a":
		m.filters.reset(m.table)
		m.applyFilters()
		return nil
	case "e":
		return m.exportCmd()
	}

	var cmd tea.Cmd
	m.detailTable, cmd = m.detailTable.Update(msg)
	return cmd
}

// nextTab cycles through the visible tabs in the given direction. The
// Evaluator tab is skipped when the table lacks the optional columns.
func (m *model) nextTab(dir int) tabID {
	tabs := m.visibleTabs()
	current := 0
	for i, t := range tabs {
		if t == m.tab {
			current = i
			break
		}
	}
	next := (current + dir + len(tabs)) % len(tabs)
	return tabs[next]
}

// visibleTabs lists the tabs available for the loaded table.
func (m *model) visibleTabs() []tabID {
	tabs := []tabID{tabOverview, tabQuality}
	if m.table.HasExpectedQuality || m.table.HasMatches {
		tabs = append(tabs, tabEvaluator)
	}
	return append(tabs, tabDetails)
}

// applyFilters recomputes the filtered subset and its aggregates. The
// recomputation is a full pass over the in-memory table.
func (m *model) applyFilters() {
	m.filtered = m.table.Filtered(m.filters.filter())
	m.subSummary = analysis.Summarize(results.Table{
		Records:            m.filtered,
		HasExpectedQuality: m.table.HasExpectedQuality,
		HasMatches:         m.table.HasMatches,
	})
	m.detailTable.SetRows(detailRows(m.table, m.filtered))
	m.statusMsg = ""
}

// Start runs the dashboard over the results files in dir. It returns an
// error when the directory holds no results files.
func Start(cfg *appconfig.Config, dir string) error {
	files, err := results.List(dir)
	if err != nil {
		return err
	}

	m := initialModel(cfg, files)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
	return nil
}

