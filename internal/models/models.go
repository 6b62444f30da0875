package models

// ColumnType is the declared type of a table column
type ColumnType string

const (
	TypeText    ColumnType = "text"
	TypeNumber  ColumnType = "number"
	TypeBoolean ColumnType = "boolean"
	TypeDate    ColumnType = "date"
)

// TextLike reports whether values of this type are quoted in emitted
// queries. Unrecognized types fall back to the quoted rendering path
// rather than failing.
func (t ColumnType) TextLike() bool {
	switch t {
	case TypeNumber, TypeBoolean:
		return false
	case TypeText, TypeDate:
		return true
	default:
		return true
	}
}

// Column describes one column of a data table
type Column struct {
	Name string
	Type ColumnType
}

// Row is one record of a data table. Data maps column name to a scalar
// value (nil, string, float64, int64 or bool). A missing key, a nil value
// and an empty string are all treated as empty cells.
type Row struct {
	ID   string
	Data map[string]any
}

// Table is a snapshot of a data table: the schema plus the loaded row window
type Table struct {
	Name    string
	Columns []Column
	Rows    []Row
}

// ColumnByName looks up a column by name
func (t *Table) ColumnByName(name string) (Column, bool) {
	for _, col := range t.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// CellSelection is one user-picked cell. RowIndex is the 0-based position
// within the currently loaded row window, not a persistent row identity.
type CellSelection struct {
	RowIndex int
	Column   Column
	Value    any
}

// Scenario is a test scenario with its tag set
type Scenario struct {
	ID   string
	Name string
	Tags []string
}
