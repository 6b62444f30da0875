package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvale/lazygrid/internal/models"
	"github.com/rvale/lazygrid/internal/ui/theme"
)

// ApplyFilterMsg is sent when the user confirms a condition
type ApplyFilterMsg struct {
	Column    string
	Condition models.Condition
}

// ClearFilterMsg is sent when the user removes a column's condition
type ClearFilterMsg struct {
	Column string
}

// CloseFilterMsg is sent when the editor should be closed
type CloseFilterMsg struct{}

const (
	focusOperator = iota
	focusValue
	focusValueTo
	focusOperator2
	focusValue2
	focusFieldCount
)

// FilterEditor edits one column's filter condition: a single operator plus
// operand, optionally combined with a second clause via AND/OR.
type FilterEditor struct {
	Theme   theme.Theme
	Width   int
	Visible bool

	column    models.Column
	kind      models.FilterKind
	operators []models.Operator

	opIndex  int
	value    textinput.Model
	valueTo  textinput.Model
	combined bool
	comb     models.Combinator
	opIndex2 int
	value2   textinput.Model

	focus int
}

// NewFilterEditor creates a filter editor
func NewFilterEditor(th theme.Theme) *FilterEditor {
	newInput := func(placeholder string) textinput.Model {
		ti := textinput.New()
		ti.Placeholder = placeholder
		ti.CharLimit = 128
		ti.Width = 16
		return ti
	}
	return &FilterEditor{
		Theme:   th,
		value:   newInput("value"),
		valueTo: newInput("to"),
		value2:  newInput("value"),
		comb:    models.CombineAnd,
	}
}

// Open prepares the editor for a column, pre-filling an existing condition
func (f *FilterEditor) Open(column models.Column, existing models.Condition) {
	f.column = column
	f.kind = models.KindText
	if column.Type == models.TypeNumber {
		f.kind = models.KindNumber
	}
	f.operators = models.OperatorsForKind(f.kind)

	f.opIndex = 0
	f.value.SetValue("")
	f.valueTo.SetValue("")
	f.combined = false
	f.comb = models.CombineAnd
	f.opIndex2 = 0
	f.value2.SetValue("")

	switch cond := existing.(type) {
	case models.SimpleCondition:
		f.loadSimple(cond, &f.opIndex, &f.value)
		f.valueTo.SetValue(cond.OperandTo)
	case models.CombinedCondition:
		f.loadSimple(cond.First, &f.opIndex, &f.value)
		f.valueTo.SetValue(cond.First.OperandTo)
		f.combined = true
		f.comb = cond.Combinator
		f.loadSimple(cond.Second, &f.opIndex2, &f.value2)
	}

	f.focus = focusOperator
	f.Visible = true
	f.syncFocus()
}

func (f *FilterEditor) loadSimple(cond models.SimpleCondition, opIndex *int, input *textinput.Model) {
	for i, op := range f.operators {
		if op == cond.Operator {
			*opIndex = i
			break
		}
	}
	input.SetValue(cond.Operand)
}

// Condition assembles the edited condition. The second return is false
// when nothing usable was entered.
func (f *FilterEditor) Condition() (models.Condition, bool) {
	first := models.SimpleCondition{
		Kind:     f.kind,
		Operator: f.operators[f.opIndex],
		Operand:  f.value.Value(),
	}
	if first.Operator == models.OpInRange {
		first.OperandTo = f.valueTo.Value()
	}

	usable := func(c models.SimpleCondition) bool {
		return !c.Operator.NeedsOperand() || c.Operand != ""
	}

	if !f.combined {
		if !usable(first) {
			return nil, false
		}
		return first, true
	}

	second := models.SimpleCondition{
		Kind:     f.kind,
		Operator: f.operators[f.opIndex2],
		Operand:  f.value2.Value(),
	}
	if !usable(first) && !usable(second) {
		return nil, false
	}
	return models.CombinedCondition{
		Kind:       f.kind,
		Combinator: f.comb,
		First:      first,
		Second:     second,
	}, true
}

// Update handles messages while the editor is visible
func (f *FilterEditor) Update(msg tea.Msg) (*FilterEditor, tea.Cmd) {
	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey {
		switch keyMsg.String() {
		case "esc":
			f.Visible = false
			return f, func() tea.Msg { return CloseFilterMsg{} }
		case "enter":
			cond, ok := f.Condition()
			f.Visible = false
			column := f.column.Name
			if !ok {
				return f, func() tea.Msg { return ClearFilterMsg{Column: column} }
			}
			return f, func() tea.Msg { return ApplyFilterMsg{Column: column, Condition: cond} }
		case "ctrl+d":
			f.Visible = false
			column := f.column.Name
			return f, func() tea.Msg { return ClearFilterMsg{Column: column} }
		case "tab":
			f.nextFocus(1)
			return f, nil
		case "shift+tab":
			f.nextFocus(-1)
			return f, nil
		case "ctrl+o":
			f.combined = !f.combined
			if !f.combined && f.focus > focusValueTo {
				f.focus = focusOperator
				f.syncFocus()
			}
			return f, nil
		case "ctrl+a":
			if f.comb == models.CombineAnd {
				f.comb = models.CombineOr
			} else {
				f.comb = models.CombineAnd
			}
			return f, nil
		case "left", "right":
			if f.focus == focusOperator || f.focus == focusOperator2 {
				delta := 1
				if keyMsg.String() == "left" {
					delta = -1
				}
				f.cycleOperator(delta)
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case focusValue:
		f.value, cmd = f.value.Update(msg)
	case focusValueTo:
		f.valueTo, cmd = f.valueTo.Update(msg)
	case focusValue2:
		f.value2, cmd = f.value2.Update(msg)
	}
	return f, cmd
}

func (f *FilterEditor) cycleOperator(delta int) {
	idx := &f.opIndex
	if f.focus == focusOperator2 {
		idx = &f.opIndex2
	}
	*idx = (*idx + delta + len(f.operators)) % len(f.operators)
}

func (f *FilterEditor) nextFocus(delta int) {
	limit := focusFieldCount
	if !f.combined {
		limit = focusOperator2
	}
	for {
		f.focus = (f.focus + delta + limit) % limit
		// Skip the range field unless inRange is selected
		if f.focus == focusValueTo && f.operators[f.opIndex] != models.OpInRange {
			continue
		}
		break
	}
	f.syncFocus()
}

func (f *FilterEditor) syncFocus() {
	f.value.Blur()
	f.valueTo.Blur()
	f.value2.Blur()
	switch f.focus {
	case focusValue:
		f.value.Focus()
	case focusValueTo:
		f.valueTo.Focus()
	case focusValue2:
		f.value2.Focus()
	}
}

// View renders the editor box
func (f *FilterEditor) View() string {
	if !f.Visible {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(f.Theme.StatLabel)
	opStyle := lipgloss.NewStyle().Foreground(f.Theme.Info)
	focusedOpStyle := opStyle.Reverse(true)

	renderOp := func(index int, focused bool) string {
		text := " " + string(f.operators[index]) + " "
		if focused {
			return focusedOpStyle.Render(text)
		}
		return opStyle.Render(text)
	}

	line := labelStyle.Render("filter "+f.column.Name+": ") +
		renderOp(f.opIndex, f.focus == focusOperator) + " " + f.value.View()
	if f.operators[f.opIndex] == models.OpInRange {
		line += labelStyle.Render(" to ") + f.valueTo.View()
	}
	if f.combined {
		line += " " + opStyle.Render(string(f.comb)) + " " +
			renderOp(f.opIndex2, f.focus == focusOperator2) + " " + f.value2.View()
	}

	helpStyle := lipgloss.NewStyle().Foreground(f.Theme.StatLabel).Italic(true)
	help := helpStyle.Render("←/→: operator │ Tab: field │ ^O: second clause │ ^A: AND/OR │ Enter: apply │ ^D: clear │ Esc: close")

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(f.Theme.BorderFocused).
		Padding(0, 1).
		Width(f.Width)
	return boxStyle.Render(line + "\n" + help)
}
