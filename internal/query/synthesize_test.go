package query

import (
	"strings"
	"testing"

	"github.com/rvale/lazygrid/internal/models"
)

var (
	priceCol  = models.Column{Name: "price", Type: models.TypeNumber}
	nameCol   = models.Column{Name: "name", Type: models.TypeText}
	spacedCol = models.Column{Name: "unit price", Type: models.TypeNumber}
)

func TestSynthesize_NoSelections(t *testing.T) {
	if got := Synthesize(nil, "orders"); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestSynthesize_SingleColumnMembership(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 0, Column: priceCol, Value: float64(10)},
		{RowIndex: 2, Column: priceCol, Value: float64(20)},
		{RowIndex: 4, Column: priceCol, Value: float64(20)},
	}

	got := Synthesize(selections, "orders")
	expected := "ROWS many FROM Orders WHERE price IN (10, 20, 20)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSynthesize_MembershipQuotesTextValues(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 0, Column: nameCol, Value: "alpha"},
		{RowIndex: 1, Column: nameCol, Value: "beta"},
	}

	got := Synthesize(selections, "orders")
	expected := `ROWS many FROM Orders WHERE name IN ("alpha", "beta")`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSynthesize_SingleCellEmitsBothForms(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 3, Column: nameCol, Value: "alpha"},
	}

	got := Synthesize(selections, "My Table")

	if !strings.Contains(got, `ROWS many FROM MyTable WHERE name = "alpha"`) {
		t.Errorf("missing filter form in %q", got)
	}
	if !strings.Contains(got, "MyTable[3].name") {
		t.Errorf("missing direct access form in %q", got)
	}
	if !strings.Contains(got, "\n\n") {
		t.Errorf("expected blank-line separator between forms in %q", got)
	}
	if !strings.Contains(got, "//") {
		t.Errorf("expected explanatory comment lines in %q", got)
	}
}

func TestSynthesize_SingleRowConjunction(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 1, Column: nameCol, Value: "alpha"},
		{RowIndex: 1, Column: priceCol, Value: float64(9.5)},
	}

	got := Synthesize(selections, "orders")
	expected := `ROWS many FROM Orders WHERE name = "alpha" AND price = 9.5`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSynthesize_MultiRowDisjunctionOfConjunctions(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 0, Column: nameCol, Value: "alpha"},
		{RowIndex: 0, Column: priceCol, Value: float64(1)},
		{RowIndex: 2, Column: nameCol, Value: "beta"},
		{RowIndex: 2, Column: priceCol, Value: float64(2)},
	}

	got := Synthesize(selections, "orders")
	expected := `ROWS many FROM Orders WHERE (name = "alpha" AND price = 1) OR (name = "beta" AND price = 2)`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSynthesize_GroupOrderFollowsSelectionOrder(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 5, Column: nameCol, Value: "late"},
		{RowIndex: 1, Column: priceCol, Value: float64(3)},
	}

	got := Synthesize(selections, "orders")
	expected := `ROWS many FROM Orders WHERE (name = "late") OR (price = 3)`
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSynthesize_EscapedIdentifierInDirectAccess(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 0, Column: spacedCol, Value: float64(4)},
	}

	got := Synthesize(selections, "orders")
	if !strings.Contains(got, "Orders[0].`unit price`") {
		t.Errorf("expected escaped identifier in direct access, got %q", got)
	}
	if !strings.Contains(got, "`unit price` = 4") {
		t.Errorf("expected escaped identifier in filter form, got %q", got)
	}
}

func TestSynthesize_BooleanValuesRenderBare(t *testing.T) {
	boolCol := models.Column{Name: "active", Type: models.TypeBoolean}
	selections := []models.CellSelection{
		{RowIndex: 0, Column: boolCol, Value: true},
		{RowIndex: 1, Column: boolCol, Value: false},
	}

	got := Synthesize(selections, "orders")
	expected := "ROWS many FROM Orders WHERE active IN (true, false)"
	if got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestSynthesize_Deterministic(t *testing.T) {
	selections := []models.CellSelection{
		{RowIndex: 0, Column: nameCol, Value: "a"},
		{RowIndex: 1, Column: priceCol, Value: float64(2)},
	}

	first := Synthesize(selections, "orders")
	for i := 0; i < 10; i++ {
		if got := Synthesize(selections, "orders"); got != first {
			t.Fatalf("output changed between calls: %q vs %q", first, got)
		}
	}
}
