package components

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"

	"github.com/rvale/lazygrid/internal/ui/theme"
)

// QueryPreview shows the derived query text with syntax highlighting and a
// copy-to-clipboard affordance. The text is displayed verbatim and never
// executed here.
type QueryPreview struct {
	Theme theme.Theme
	Width int

	query string

	chromaStyle     *chroma.Style
	chromaFormatter chroma.Formatter
}

// NewQueryPreview creates a query preview pane
func NewQueryPreview(th theme.Theme) *QueryPreview {
	qp := &QueryPreview{Theme: th}
	qp.chromaStyle = styles.Get("monokai")
	if qp.chromaStyle == nil {
		qp.chromaStyle = styles.Fallback
	}
	qp.chromaFormatter = formatters.Get("terminal256")
	if qp.chromaFormatter == nil {
		qp.chromaFormatter = formatters.Fallback
	}
	return qp
}

// SetQuery replaces the displayed query text
func (qp *QueryPreview) SetQuery(query string) {
	qp.query = query
}

// Query returns the current query text
func (qp *QueryPreview) Query() string {
	return qp.query
}

// Copy puts the raw query text on the clipboard
func (qp *QueryPreview) Copy() error {
	return clipboard.WriteAll(qp.query)
}

// highlightLine applies SQL-ish highlighting to one line; the target query
// language is close enough to SQL for keyword coloring to read well.
func (qp *QueryPreview) highlightLine(line string) string {
	if line == "" {
		return ""
	}

	lexer := lexers.Get("sql")
	if lexer == nil {
		return line
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}

	var buf bytes.Buffer
	if err := qp.chromaFormatter.Format(&buf, qp.chromaStyle, iterator); err != nil {
		return line
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// View renders the preview pane
func (qp *QueryPreview) View() string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(qp.Theme.Info)
	emptyStyle := lipgloss.NewStyle().Foreground(qp.Theme.StatLabel).Italic(true)

	var body string
	if qp.query == "" {
		body = emptyStyle.Render("no filters or selections")
	} else {
		lines := strings.Split(qp.query, "\n")
		highlighted := make([]string, len(lines))
		for i, line := range lines {
			highlighted[i] = qp.highlightLine(line)
		}
		body = strings.Join(highlighted, "\n")
	}

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(qp.Theme.Border).
		Padding(0, 1).
		Width(qp.Width)

	return boxStyle.Render(titleStyle.Render("query") + "\n" + body)
}
