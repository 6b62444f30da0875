package components

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rvale/lazygrid/internal/models"
	"github.com/rvale/lazygrid/internal/summary"
	"github.com/rvale/lazygrid/internal/ui/theme"
)

// SummaryBar renders one column's statistics as a single stats line
type SummaryBar struct {
	Theme theme.Theme
	Width int

	stats   summary.ColumnSummary
	hasData bool
}

// NewSummaryBar creates a summary bar
func NewSummaryBar(th theme.Theme) *SummaryBar {
	return &SummaryBar{Theme: th}
}

// SetSummary replaces the displayed statistics
func (sb *SummaryBar) SetSummary(stats summary.ColumnSummary) {
	sb.stats = stats
	sb.hasData = true
}

// Clear hides the bar until the next SetSummary
func (sb *SummaryBar) Clear() {
	sb.hasData = false
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// View renders the stats line
func (sb *SummaryBar) View() string {
	if !sb.hasData {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(sb.Theme.StatLabel)
	valueStyle := lipgloss.NewStyle().Foreground(sb.Theme.StatValue).Bold(true)
	nameStyle := lipgloss.NewStyle().Foreground(sb.Theme.Info).Bold(true)

	stat := func(label, value string) string {
		return labelStyle.Render(label+" ") + valueStyle.Render(value)
	}

	s := sb.stats
	parts := []string{
		nameStyle.Render(s.ColumnName),
		stat("count", strconv.Itoa(s.Count)),
		stat("non-empty", strconv.Itoa(s.NonEmpty)),
		stat("empty", strconv.Itoa(s.Empty)),
		stat("distinct", strconv.Itoa(s.Distinct)),
	}

	switch s.ColumnType {
	case models.TypeNumber:
		if s.Sum != nil {
			parts = append(parts,
				stat("sum", formatFloat(*s.Sum)),
				stat("avg", formatFloat(*s.Avg)),
				stat("min", formatFloat(*s.Min)),
				stat("max", formatFloat(*s.Max)),
			)
		}
	case models.TypeText, models.TypeDate:
		if s.MinText != "" || s.MaxText != "" {
			parts = append(parts,
				stat("first", s.MinText),
				stat("last", s.MaxText),
			)
		}
	}

	return lipgloss.NewStyle().Width(sb.Width).Render(strings.Join(parts, labelStyle.Render("  │  ")))
}
