package app

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/rvale/lazygrid/internal/config"
	"github.com/rvale/lazygrid/internal/export"
	"github.com/rvale/lazygrid/internal/models"
	"github.com/rvale/lazygrid/internal/query"
	"github.com/rvale/lazygrid/internal/scenario"
	"github.com/rvale/lazygrid/internal/summary"
	"github.com/rvale/lazygrid/internal/tagexpr"
	"github.com/rvale/lazygrid/internal/ui/components"
	"github.com/rvale/lazygrid/internal/ui/theme"
)

// inputMode identifies which input widget owns the keyboard
type inputMode int

const (
	modeBrowse inputMode = iota
	modeFilter
	modeTags
)

// App is the main application model. It owns the interactive state
// (filters, selections, tag expression) and re-derives the query text,
// scenario estimate and column summary through the pure core on every
// change.
type App struct {
	config *config.Config
	theme  theme.Theme

	table     *models.Table
	scenarios []models.Scenario

	filters    *models.FilterSet
	selections []models.CellSelection
	tagExpr    string
	grep       string

	grid         *components.GridView
	filterEditor *components.FilterEditor
	tagInput     *components.TagInput
	preview      *components.QueryPreview
	summaryBar   *components.SummaryBar

	mode      inputMode
	statusMsg string
	width     int
	height    int
}

// clearStatusMsg removes a transient status message
type clearStatusMsg struct{}

// New creates the application model over an already-loaded table snapshot
// and scenario list. The app performs no storage I/O of its own besides
// exports.
func New(cfg *config.Config, table *models.Table, scenarios []models.Scenario) *App {
	themeName := "default"
	if cfg != nil && cfg.UI.Theme != "" {
		themeName = cfg.UI.Theme
	}
	th := theme.GetTheme(themeName)

	a := &App{
		config:       cfg,
		theme:        th,
		table:        table,
		scenarios:    scenarios,
		filters:      models.NewFilterSet(),
		grid:         components.NewGridView(th),
		filterEditor: components.NewFilterEditor(th),
		tagInput:     components.NewTagInput(th),
		preview:      components.NewQueryPreview(th),
		summaryBar:   components.NewSummaryBar(th),
	}
	if cfg != nil && cfg.Data.MaxCellDisplayLength > 0 {
		a.grid.MaxCellWidth = cfg.Data.MaxCellDisplayLength
	}
	a.grid.SetTable(table)
	a.recompute()
	return a
}

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// recompute re-derives everything the UI displays from the current
// interactive state. All of this is pure and cheap, so it runs on every
// relevant state change.
func (a *App) recompute() {
	if len(a.selections) > 0 {
		a.preview.SetQuery(query.Synthesize(a.selections, a.table.Name))
	} else {
		a.preview.SetQuery(query.Compile(a.table.Name, a.filters, a.table.Columns))
	}

	criteria := tagexpr.Analyze(a.tagExpr)
	if count, ok := scenario.EstimateCount(a.scenarios, criteria, a.grep); ok {
		a.tagInput.SetStatus(fmt.Sprintf("≈ %d of %d scenarios", count, len(a.scenarios)), true)
	} else {
		a.tagInput.SetStatus("expression not supported", false)
	}

	a.grid.SetSelections(a.selections)
	a.updateSummary()
}

// updateSummary surfaces statistics for the last-selected cell's column,
// or the cursor column when nothing is selected
func (a *App) updateSummary() {
	var column models.Column
	switch {
	case len(a.selections) > 0:
		column = a.selections[len(a.selections)-1].Column
	case len(a.table.Columns) > 0:
		column = a.table.Columns[a.grid.CursorCol]
	default:
		a.summaryBar.Clear()
		return
	}
	a.summaryBar.SetSummary(summary.Summarize(column.Name, column.Type, a.table.Rows))
}

// toggleSelection adds the cell to the selection sequence, or removes it
// when already selected. Order of first selection is preserved.
func (a *App) toggleSelection(sel models.CellSelection) {
	for i, existing := range a.selections {
		if existing.RowIndex == sel.RowIndex && existing.Column.Name == sel.Column.Name {
			a.selections = append(a.selections[:i], a.selections[i+1:]...)
			return
		}
	}
	a.selections = append(a.selections, sel)
}

func (a *App) setStatus(msg string) tea.Cmd {
	a.statusMsg = msg
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.layout()
		return a, nil

	case clearStatusMsg:
		a.statusMsg = ""
		return a, nil

	case components.ApplyFilterMsg:
		a.filters.Set(msg.Column, msg.Condition)
		a.mode = modeBrowse
		a.recompute()
		return a, nil

	case components.ClearFilterMsg:
		a.filters.Delete(msg.Column)
		a.mode = modeBrowse
		a.recompute()
		return a, nil

	case components.CloseFilterMsg:
		a.mode = modeBrowse
		return a, nil

	case components.TagInputChangedMsg:
		a.tagExpr = msg.Expression
		a.grep = msg.Grep
		a.recompute()
		return a, nil

	case components.CloseTagInputMsg:
		a.mode = modeBrowse
		a.tagInput.Visible = false
		return a, nil

	case tea.MouseMsg:
		if a.mode == modeBrowse {
			if row, col, ok := a.grid.HandleMouseClick(msg); ok {
				a.grid.CursorRow = row
				a.grid.CursorCol = col
				if sel, ok := a.grid.CursorSelection(); ok {
					a.toggleSelection(sel)
					a.recompute()
				}
			}
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	switch a.mode {
	case modeFilter:
		var cmd tea.Cmd
		a.filterEditor, cmd = a.filterEditor.Update(msg)
		return a, cmd
	case modeTags:
		var cmd tea.Cmd
		a.tagInput, cmd = a.tagInput.Update(msg)
		return a, cmd
	}

	switch msg.String() {
	case "q":
		return a, tea.Quit

	case "up", "k":
		a.grid.MoveCursor(-1, 0)
		a.updateSummary()
	case "down", "j":
		a.grid.MoveCursor(1, 0)
		a.updateSummary()
	case "left", "h":
		a.grid.MoveCursor(0, -1)
		a.updateSummary()
	case "right", "l":
		a.grid.MoveCursor(0, 1)
		a.updateSummary()

	case " ", "space", "enter":
		if sel, ok := a.grid.CursorSelection(); ok {
			a.toggleSelection(sel)
			a.recompute()
		}

	case "x":
		a.selections = nil
		a.recompute()

	case "X":
		a.filters = models.NewFilterSet()
		a.recompute()

	case "f":
		if len(a.table.Columns) > 0 {
			column := a.table.Columns[a.grid.CursorCol]
			existing, _ := a.filters.Get(column.Name)
			a.filterEditor.Open(column, existing)
			a.mode = modeFilter
		}

	case "t":
		a.tagInput.Visible = true
		a.mode = modeTags

	case "y", "c":
		if err := a.preview.Copy(); err != nil {
			return a, a.setStatus("copy failed: " + err.Error())
		}
		return a, a.setStatus("query copied to clipboard")

	case "e":
		path := fmt.Sprintf("%s.csv", query.NormalizeTableName(a.table.Name))
		if err := export.ExportToCSV(a.table, path); err != nil {
			return a, a.setStatus("export failed: " + err.Error())
		}
		return a, a.setStatus("exported " + path)

	case "E":
		path := fmt.Sprintf("%s.json", query.NormalizeTableName(a.table.Name))
		if err := export.ExportToJSON(a.table, path); err != nil {
			return a, a.setStatus("export failed: " + err.Error())
		}
		return a, a.setStatus("exported " + path)
	}

	return a, nil
}

func (a *App) layout() {
	a.grid.Width = a.width
	a.grid.Height = a.height - 12
	if a.grid.Height < 5 {
		a.grid.Height = 5
	}
	a.filterEditor.Width = a.width - 2
	a.tagInput.Width = a.width - 2
	a.preview.Width = a.width - 2
	a.summaryBar.Width = a.width
}

// View implements tea.Model
func (a *App) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(a.theme.TableHeader)
	statusStyle := lipgloss.NewStyle().Foreground(a.theme.Success)
	helpStyle := lipgloss.NewStyle().Foreground(a.theme.StatLabel).Italic(true)

	sections := []string{
		titleStyle.Render("lazygrid — " + a.table.Name),
		a.grid.View(),
		a.summaryBar.View(),
		a.preview.View(),
	}

	if a.mode == modeFilter {
		sections = append(sections, a.filterEditor.View())
	}
	if a.mode == modeTags {
		sections = append(sections, a.tagInput.View())
	}

	if a.statusMsg != "" {
		sections = append(sections, statusStyle.Render(a.statusMsg))
	} else {
		sections = append(sections, helpStyle.Render(
			"↑↓←→: move │ Space: select cell │ f: filter │ t: tags │ y: copy query │ e/E: export │ x/X: clear │ q: quit"))
	}

	var out []string
	for _, s := range sections {
		if s != "" {
			out = append(out, s)
		}
	}
	return zone.Scan(strings.Join(out, "\n"))
}
