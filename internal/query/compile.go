package query

import (
	"strings"
	"unicode"

	"github.com/rvale/lazygrid/internal/models"
)

// NormalizeTableName converts a display table name into the query
// language's table-reference form: non-alphanumeric characters are
// stripped, whitespace-delimited tokens are title-cased and concatenated.
// "sales_2024 report" becomes "Sales2024Report".
func NormalizeTableName(name string) string {
	var cleaned strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			cleaned.WriteRune(r)
		case unicode.IsSpace(r):
			cleaned.WriteRune(' ')
		}
	}

	var out strings.Builder
	for _, token := range strings.Fields(cleaned.String()) {
		runes := []rune(token)
		runes[0] = unicode.ToUpper(runes[0])
		out.WriteString(string(runes))
	}
	return out.String()
}

// Compile assembles a full query statement from the filter set. Fragments
// are emitted in the filter set's insertion order and always joined with
// AND at the top level; OR only ever appears parenthesized inside a single
// combined condition. Conditions that render empty are dropped.
func Compile(tableName string, filters *models.FilterSet, columns []models.Column) string {
	var fragments []string
	if filters != nil {
		filters.Each(func(column string, cond models.Condition) {
			if frag := Render(column, cond, textLikeFor(column, cond, columns)); frag != "" {
				fragments = append(fragments, frag)
			}
		})
	}

	stmt := "ROWS many FROM " + NormalizeTableName(tableName)
	if len(fragments) == 0 {
		return stmt
	}
	return stmt + " WHERE " + strings.Join(fragments, " AND ")
}
