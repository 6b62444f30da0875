// Package query turns filter conditions and cell selections into text in
// the target query language. All functions are pure: identical input
// always yields byte-identical output, since consumers diff the emitted
// text to decide whether anything changed.
package query

import (
	"github.com/rvale/lazygrid/internal/models"
)

// quoteIdent wraps an identifier in backticks when it contains characters
// outside [A-Za-z0-9_]
func quoteIdent(name string) string {
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_':
		default:
			return "`" + name + "`"
		}
	}
	return name
}

// quoteOperand renders an operand value: double-quoted for text-like
// columns, bare for numeric ones
func quoteOperand(value string, textLike bool) string {
	if textLike {
		return `"` + value + `"`
	}
	return value
}

// Render turns one condition on a column into a query fragment. It returns
// "" when the condition carries no usable operand and the operator is not
// a blank check; callers drop such conditions silently.
func Render(columnName string, cond models.Condition, textLike bool) string {
	switch c := cond.(type) {
	case models.SimpleCondition:
		return renderSimple(columnName, c, textLike)
	case models.CombinedCondition:
		return renderCombined(columnName, c, textLike)
	default:
		return ""
	}
}

func renderSimple(columnName string, c models.SimpleCondition, textLike bool) string {
	ident := quoteIdent(columnName)

	switch c.Operator {
	case models.OpBlank:
		return ident + " IS EMPTY"
	case models.OpNotBlank:
		return ident + " IS NOT EMPTY"
	}

	if c.Operand == "" {
		return ""
	}
	value := quoteOperand(c.Operand, textLike)

	switch c.Operator {
	case models.OpNotEqual:
		return ident + " != " + value
	case models.OpContains:
		return ident + " CONTAINS " + value
	case models.OpNotContains:
		return "NOT (" + ident + " CONTAINS " + value + ")"
	case models.OpStartsWith:
		return ident + " STARTS WITH " + value
	case models.OpEndsWith:
		return ident + " ENDS WITH " + value
	case models.OpGreaterThan:
		return ident + " > " + value
	case models.OpGreaterThanOrEqual:
		return ident + " >= " + value
	case models.OpLessThan:
		return ident + " < " + value
	case models.OpLessThanOrEqual:
		return ident + " <= " + value
	case models.OpInRange:
		// A missing upper bound degrades to a lower-bound-only comparison
		if c.OperandTo == "" {
			return ident + " >= " + value
		}
		return ident + " >= " + value + " AND " + ident + " <= " + quoteOperand(c.OperandTo, textLike)
	default:
		// Unknown operators fall back to equality
		return ident + " = " + value
	}
}

func renderCombined(columnName string, c models.CombinedCondition, textLike bool) string {
	first := renderSimple(columnName, c.First, textLike)
	second := renderSimple(columnName, c.Second, textLike)

	switch {
	case first != "" && second != "":
		combinator := string(c.Combinator)
		if combinator == "" {
			combinator = string(models.CombineAnd)
		}
		return "(" + first + " " + combinator + " " + second + ")"
	case first != "":
		return first
	case second != "":
		return second
	default:
		return ""
	}
}

// textLikeFor resolves whether a filtered column renders quoted operands.
// The declared column type wins; a column missing from the schema falls
// back to the condition's own kind.
func textLikeFor(columnName string, cond models.Condition, columns []models.Column) bool {
	for _, col := range columns {
		if col.Name == columnName {
			return col.Type.TextLike()
		}
	}
	switch c := cond.(type) {
	case models.SimpleCondition:
		return c.Kind != models.KindNumber
	case models.CombinedCondition:
		return c.Kind != models.KindNumber
	}
	return true
}
