package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-runewidth"

	"github.com/rvale/lazygrid/internal/models"
	"github.com/rvale/lazygrid/internal/ui/theme"
)

// ZoneCellPrefix namespaces the mouse zones marked per visible cell
const ZoneCellPrefix = "grid_cell_"

// GridView displays a data table with a cell cursor and cell selection
type GridView struct {
	Table  *models.Table
	Theme  theme.Theme
	Width  int
	Height int

	// Cursor and scroll state
	CursorRow int
	CursorCol int
	TopRow    int

	// MaxCellWidth caps column widths for display
	MaxCellWidth int

	columnWidths []int
	selected     map[string]bool
}

// NewGridView creates a new grid view
func NewGridView(th theme.Theme) *GridView {
	return &GridView{
		Theme:        th,
		MaxCellWidth: 30,
		selected:     map[string]bool{},
	}
}

// SetTable swaps the displayed table and resets the cursor
func (g *GridView) SetTable(table *models.Table) {
	g.Table = table
	g.CursorRow = 0
	g.CursorCol = 0
	g.TopRow = 0
	g.calculateColumnWidths()
}

// SetSelections marks which cells display as selected
func (g *GridView) SetSelections(selections []models.CellSelection) {
	g.selected = make(map[string]bool, len(selections))
	for _, sel := range selections {
		g.selected[cellKey(sel.RowIndex, sel.Column.Name)] = true
	}
}

func cellKey(row int, column string) string {
	return strconv.Itoa(row) + ":" + column
}

// CellValue returns the value under a (row, column-index) position
func (g *GridView) CellValue(row, col int) any {
	if g.Table == nil || row < 0 || row >= len(g.Table.Rows) || col < 0 || col >= len(g.Table.Columns) {
		return nil
	}
	return g.Table.Rows[row].Data[g.Table.Columns[col].Name]
}

// CursorSelection builds a cell selection for the cursor position
func (g *GridView) CursorSelection() (models.CellSelection, bool) {
	if g.Table == nil || len(g.Table.Rows) == 0 || len(g.Table.Columns) == 0 {
		return models.CellSelection{}, false
	}
	return models.CellSelection{
		RowIndex: g.CursorRow,
		Column:   g.Table.Columns[g.CursorCol],
		Value:    g.CellValue(g.CursorRow, g.CursorCol),
	}, true
}

// MoveCursor moves the cell cursor, clamping to the table and keeping the
// cursor row visible
func (g *GridView) MoveCursor(dRow, dCol int) {
	if g.Table == nil {
		return
	}
	g.CursorRow = clamp(g.CursorRow+dRow, 0, len(g.Table.Rows)-1)
	g.CursorCol = clamp(g.CursorCol+dCol, 0, len(g.Table.Columns)-1)

	visible := g.visibleRows()
	if g.CursorRow < g.TopRow {
		g.TopRow = g.CursorRow
	}
	if visible > 0 && g.CursorRow >= g.TopRow+visible {
		g.TopRow = g.CursorRow - visible + 1
	}
}

// HandleMouseClick resolves a left click to a cell position via its zone
func (g *GridView) HandleMouseClick(msg tea.MouseMsg) (row, col int, ok bool) {
	if msg.Button != tea.MouseButtonLeft || msg.Action != tea.MouseActionPress {
		return 0, 0, false
	}
	if g.Table == nil {
		return 0, 0, false
	}

	end := g.TopRow + g.visibleRows()
	if end > len(g.Table.Rows) {
		end = len(g.Table.Rows)
	}
	for r := g.TopRow; r < end; r++ {
		for c := range g.Table.Columns {
			if zone.Get(zoneID(r, c)).InBounds(msg) {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func zoneID(row, col int) string {
	return fmt.Sprintf("%s%d_%d", ZoneCellPrefix, row, col)
}

func (g *GridView) visibleRows() int {
	// Header, separator and status line
	rows := g.Height - 3
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (g *GridView) calculateColumnWidths() {
	if g.Table == nil {
		g.columnWidths = nil
		return
	}

	g.columnWidths = make([]int, len(g.Table.Columns))
	for i, col := range g.Table.Columns {
		g.columnWidths[i] = runewidth.StringWidth(col.Name)
	}
	for _, row := range g.Table.Rows {
		for i, col := range g.Table.Columns {
			if w := runewidth.StringWidth(displayValue(row.Data[col.Name])); w > g.columnWidths[i] {
				g.columnWidths[i] = w
			}
		}
	}
	for i := range g.columnWidths {
		if g.columnWidths[i] > g.MaxCellWidth {
			g.columnWidths[i] = g.MaxCellWidth
		}
		if g.columnWidths[i] < 4 {
			g.columnWidths[i] = 4
		}
	}
}

func displayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func (g *GridView) pad(text string, width int) string {
	truncated := runewidth.Truncate(text, width, "…")
	return truncated + strings.Repeat(" ", width-runewidth.StringWidth(truncated))
}

// View renders the grid
func (g *GridView) View() string {
	if g.Table == nil || len(g.Table.Columns) == 0 {
		return lipgloss.NewStyle().Foreground(g.Theme.StatLabel).Render("No table loaded")
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(g.Theme.TableHeader)
	cursorStyle := lipgloss.NewStyle().Reverse(true)
	selectedStyle := lipgloss.NewStyle().Foreground(g.Theme.CellSelected).Bold(true)

	var b strings.Builder

	headerParts := make([]string, len(g.Table.Columns))
	for i, col := range g.Table.Columns {
		headerParts[i] = headerStyle.Render(g.pad(col.Name, g.columnWidths[i]))
	}
	b.WriteString(strings.Join(headerParts, " │ "))
	b.WriteString("\n")

	sepParts := make([]string, len(g.columnWidths))
	for i, w := range g.columnWidths {
		sepParts[i] = strings.Repeat("─", w)
	}
	b.WriteString(strings.Join(sepParts, "─┼─"))
	b.WriteString("\n")

	end := g.TopRow + g.visibleRows()
	if end > len(g.Table.Rows) {
		end = len(g.Table.Rows)
	}
	for r := g.TopRow; r < end; r++ {
		row := g.Table.Rows[r]
		parts := make([]string, len(g.Table.Columns))
		for c, col := range g.Table.Columns {
			text := g.pad(displayValue(row.Data[col.Name]), g.columnWidths[c])
			switch {
			case r == g.CursorRow && c == g.CursorCol:
				text = cursorStyle.Render(text)
			case g.selected[cellKey(r, col.Name)]:
				text = selectedStyle.Render(text)
			}
			parts[c] = zone.Mark(zoneID(r, c), text)
		}
		b.WriteString(strings.Join(parts, " │ "))
		if r < end-1 {
			b.WriteString("\n")
		}
	}

	statusStyle := lipgloss.NewStyle().Foreground(g.Theme.StatLabel)
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("row %d/%d  col %s  selected %d",
		g.CursorRow+1, len(g.Table.Rows), g.Table.Columns[g.CursorCol].Name, len(g.selected))))

	return b.String()
}

func clamp(v, low, high int) int {
	if high < low {
		return low
	}
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
