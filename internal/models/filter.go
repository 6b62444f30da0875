package models

// FilterKind distinguishes text filters from number filters
type FilterKind string

const (
	KindText   FilterKind = "text"
	KindNumber FilterKind = "number"
)

// Operator is a filter comparison operator
type Operator string

const (
	OpEquals             Operator = "equals"
	OpNotEqual           Operator = "notEqual"
	OpContains           Operator = "contains"
	OpNotContains        Operator = "notContains"
	OpStartsWith         Operator = "startsWith"
	OpEndsWith           Operator = "endsWith"
	OpGreaterThan        Operator = "greaterThan"
	OpGreaterThanOrEqual Operator = "greaterThanOrEqual"
	OpLessThan           Operator = "lessThan"
	OpLessThanOrEqual    Operator = "lessThanOrEqual"
	OpInRange            Operator = "inRange"
	OpBlank              Operator = "blank"
	OpNotBlank           Operator = "notBlank"
)

// NeedsOperand reports whether the operator requires a value to compare
// against. Blank checks carry no operand.
func (op Operator) NeedsOperand() bool {
	return op != OpBlank && op != OpNotBlank
}

// OperatorsForKind returns the operators a filter editor offers for a kind
func OperatorsForKind(kind FilterKind) []Operator {
	if kind == KindNumber {
		return []Operator{
			OpEquals, OpNotEqual,
			OpGreaterThan, OpGreaterThanOrEqual,
			OpLessThan, OpLessThanOrEqual,
			OpInRange, OpBlank, OpNotBlank,
		}
	}
	return []Operator{
		OpEquals, OpNotEqual,
		OpContains, OpNotContains,
		OpStartsWith, OpEndsWith,
		OpBlank, OpNotBlank,
	}
}

// Combinator joins the two legs of a combined condition
type Combinator string

const (
	CombineAnd Combinator = "AND"
	CombineOr  Combinator = "OR"
)

// Condition is one column's filter criterion: either a SimpleCondition or
// a CombinedCondition
type Condition interface {
	condition()
}

// SimpleCondition is a single operator applied to one column. Operand and
// OperandTo hold the raw text typed into the filter widget; an empty
// Operand means the condition is incomplete and is dropped at render time.
// OperandTo is only meaningful for inRange and degrades to a
// lower-bound-only comparison when empty.
type SimpleCondition struct {
	Kind      FilterKind
	Operator  Operator
	Operand   string
	OperandTo string
}

func (SimpleCondition) condition() {}

// CombinedCondition joins two simple conditions on the same column
type CombinedCondition struct {
	Kind       FilterKind
	Combinator Combinator
	First      SimpleCondition
	Second     SimpleCondition
}

func (CombinedCondition) condition() {}

type filterEntry struct {
	column string
	cond   Condition
}

// FilterSet maps column names to conditions. Insertion order is preserved
// so compiled queries come out in a stable, deterministic order.
type FilterSet struct {
	entries []filterEntry
}

// NewFilterSet creates an empty filter set
func NewFilterSet() *FilterSet {
	return &FilterSet{}
}

// Set adds or replaces the condition for a column. Replacing keeps the
// column's original position.
func (fs *FilterSet) Set(column string, cond Condition) {
	for i := range fs.entries {
		if fs.entries[i].column == column {
			fs.entries[i].cond = cond
			return
		}
	}
	fs.entries = append(fs.entries, filterEntry{column: column, cond: cond})
}

// Get returns the condition for a column, if any
func (fs *FilterSet) Get(column string) (Condition, bool) {
	for i := range fs.entries {
		if fs.entries[i].column == column {
			return fs.entries[i].cond, true
		}
	}
	return nil, false
}

// Delete removes the condition for a column
func (fs *FilterSet) Delete(column string) {
	for i := range fs.entries {
		if fs.entries[i].column == column {
			fs.entries = append(fs.entries[:i], fs.entries[i+1:]...)
			return
		}
	}
}

// Len returns the number of filtered columns
func (fs *FilterSet) Len() int {
	return len(fs.entries)
}

// Each visits every (column, condition) pair in insertion order
func (fs *FilterSet) Each(fn func(column string, cond Condition)) {
	for _, e := range fs.entries {
		fn(e.column, e.cond)
	}
}
