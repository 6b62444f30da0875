package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rvale/lazygrid/internal/models"
)

// formatScalar renders a selected cell value using the same quoting rules
// as filter operands. The declared column type decides quoting; the value
// itself is never inspected to guess a type.
func formatScalar(value any, textLike bool) string {
	var text string
	switch v := value.(type) {
	case nil:
		text = ""
	case string:
		text = v
	case float64:
		text = strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		text = strconv.FormatBool(v)
	default:
		text = fmt.Sprint(v)
	}
	return quoteOperand(text, textLike)
}

// equality renders a column = value fragment for one selection
func equality(sel models.CellSelection) string {
	return quoteIdent(sel.Column.Name) + " = " + formatScalar(sel.Value, sel.Column.Type.TextLike())
}

// Synthesize renders the query best representing a set of selected cells.
// Shapes, in priority order: a column IN-list when every selection is in
// one column, a dual filter/direct-access form for a single cell, a
// conjunction for one row, and a disjunction of per-row conjunctions when
// selections span rows. Selection order is preserved throughout; repeated
// clicks on equal values are not deduplicated.
func Synthesize(selections []models.CellSelection, tableName string) string {
	if len(selections) == 0 {
		return ""
	}

	table := NormalizeTableName(tableName)

	if len(selections) >= 2 && sameColumn(selections) {
		col := selections[0].Column
		values := make([]string, len(selections))
		for i, sel := range selections {
			values[i] = formatScalar(sel.Value, col.Type.TextLike())
		}
		return "ROWS many FROM " + table + " WHERE " +
			quoteIdent(col.Name) + " IN (" + strings.Join(values, ", ") + ")"
	}

	if len(selections) == 1 {
		sel := selections[0]
		var b strings.Builder
		b.WriteString("// rows matching the selected value\n")
		b.WriteString("ROWS many FROM " + table + " WHERE " + equality(sel) + "\n")
		b.WriteString("\n")
		b.WriteString("// direct cell access\n")
		b.WriteString(table + "[" + strconv.Itoa(sel.RowIndex) + "]." + quoteIdent(sel.Column.Name))
		return b.String()
	}

	// Multiple columns: group by row, AND within a row, OR across rows
	rowOrder := make([]int, 0, len(selections))
	groups := make(map[int][]string)
	for _, sel := range selections {
		if _, seen := groups[sel.RowIndex]; !seen {
			rowOrder = append(rowOrder, sel.RowIndex)
		}
		groups[sel.RowIndex] = append(groups[sel.RowIndex], equality(sel))
	}

	if len(rowOrder) == 1 {
		return "ROWS many FROM " + table + " WHERE " +
			strings.Join(groups[rowOrder[0]], " AND ")
	}

	clauses := make([]string, len(rowOrder))
	for i, row := range rowOrder {
		clauses[i] = "(" + strings.Join(groups[row], " AND ") + ")"
	}
	return "ROWS many FROM " + table + " WHERE " + strings.Join(clauses, " OR ")
}

func sameColumn(selections []models.CellSelection) bool {
	name := selections[0].Column.Name
	for _, sel := range selections[1:] {
		if sel.Column.Name != name {
			return false
		}
	}
	return true
}
