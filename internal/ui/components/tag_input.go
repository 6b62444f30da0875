package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvale/lazygrid/internal/ui/theme"
)

// TagInputChangedMsg is sent on every edit so the host can re-analyze
type TagInputChangedMsg struct {
	Expression string
	Grep       string
}

// CloseTagInputMsg is sent when the input should be closed
type CloseTagInputMsg struct{}

// TagInput collects the scenario selection state: a tag expression and an
// optional name grep, toggled with Tab like the teacher search box.
type TagInput struct {
	Input   textinput.Model
	Mode    string // "tags" or "grep"
	Theme   theme.Theme
	Width   int
	Visible bool

	expression string
	grep       string

	// Status set by the host after re-analyzing
	statusText string
	statusOK   bool
}

// NewTagInput creates a new tag input
func NewTagInput(th theme.Theme) *TagInput {
	ti := textinput.New()
	ti.Placeholder = "@smoke and not @flaky"
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 40

	return &TagInput{
		Input: ti,
		Mode:  "tags",
		Theme: th,
	}
}

// ToggleMode switches between tag-expression and grep editing
func (t *TagInput) ToggleMode() {
	t.stash()
	if t.Mode == "tags" {
		t.Mode = "grep"
		t.Input.Placeholder = "name contains..."
		t.Input.SetValue(t.grep)
	} else {
		t.Mode = "tags"
		t.Input.Placeholder = "@smoke and not @flaky"
		t.Input.SetValue(t.expression)
	}
}

func (t *TagInput) stash() {
	if t.Mode == "tags" {
		t.expression = t.Input.Value()
	} else {
		t.grep = t.Input.Value()
	}
}

// Expression returns the current tag expression
func (t *TagInput) Expression() string {
	t.stash()
	return t.expression
}

// Grep returns the current name grep
func (t *TagInput) Grep() string {
	t.stash()
	return t.grep
}

// SetStatus displays the host's estimate (or "not supported") line
func (t *TagInput) SetStatus(text string, ok bool) {
	t.statusText = text
	t.statusOK = ok
}

// Update handles messages
func (t *TagInput) Update(msg tea.Msg) (*TagInput, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab":
			t.ToggleMode()
			return t, t.changed()
		case "esc", "enter":
			t.stash()
			return t, func() tea.Msg { return CloseTagInputMsg{} }
		}
	}

	var cmd tea.Cmd
	t.Input, cmd = t.Input.Update(msg)
	t.stash()
	return t, tea.Batch(cmd, t.changed())
}

func (t *TagInput) changed() tea.Cmd {
	expression := t.expression
	grep := t.grep
	return func() tea.Msg {
		return TagInputChangedMsg{Expression: expression, Grep: grep}
	}
}

// View renders the input box with the estimate line
func (t *TagInput) View() string {
	if !t.Visible {
		return ""
	}

	modeIndicator := "[Tags]"
	modeColor := t.Theme.Success
	if t.Mode == "grep" {
		modeIndicator = "[Grep]"
		modeColor = t.Theme.Info
	}
	modeStyle := lipgloss.NewStyle().Foreground(modeColor).Bold(true)

	statusStyle := lipgloss.NewStyle().Foreground(t.Theme.Success)
	if !t.statusOK {
		statusStyle = lipgloss.NewStyle().Foreground(t.Theme.Warning)
	}

	helpStyle := lipgloss.NewStyle().Foreground(t.Theme.StatLabel).Italic(true)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Theme.BorderFocused).
		Padding(0, 1).
		Width(t.Width)

	content := fmt.Sprintf("%s %s", modeStyle.Render(modeIndicator), t.Input.View())
	status := statusStyle.Render(t.statusText)
	help := helpStyle.Render("Tab: tags/grep │ Enter: done │ Esc: close")

	return boxStyle.Render(content + "\n" + status + "\n" + help)
}
