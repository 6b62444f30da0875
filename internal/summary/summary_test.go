package summary

import (
	"testing"

	"github.com/rvale/lazygrid/internal/models"
)

func numberRows(values ...any) []models.Row {
	rows := make([]models.Row, len(values))
	for i, v := range values {
		rows[i] = models.Row{Data: map[string]any{"n": v}}
	}
	return rows
}

func TestSummarize_NumericColumn(t *testing.T) {
	rows := numberRows(float64(1), float64(2), nil)

	got := Summarize("n", models.TypeNumber, rows)

	if got.Count != 3 {
		t.Errorf("expected count 3, got %d", got.Count)
	}
	if got.NonEmpty != 2 {
		t.Errorf("expected nonEmpty 2, got %d", got.NonEmpty)
	}
	if got.Empty != 1 {
		t.Errorf("expected empty 1, got %d", got.Empty)
	}
	if got.Distinct != 2 {
		t.Errorf("expected distinct 2, got %d", got.Distinct)
	}
	if got.Sum == nil || *got.Sum != 3 {
		t.Errorf("expected sum 3, got %v", got.Sum)
	}
	if got.Avg == nil || *got.Avg != 1.5 {
		t.Errorf("expected avg 1.5, got %v", got.Avg)
	}
	if got.Min == nil || *got.Min != 1 {
		t.Errorf("expected min 1, got %v", got.Min)
	}
	if got.Max == nil || *got.Max != 2 {
		t.Errorf("expected max 2, got %v", got.Max)
	}
}

func TestSummarize_EmptinessRule(t *testing.T) {
	rows := []models.Row{
		{Data: map[string]any{"n": nil}},
		{Data: map[string]any{"n": ""}},
		{Data: map[string]any{}}, // missing key
		{Data: map[string]any{"n": float64(0)}},
		{Data: map[string]any{"n": false}},
	}

	got := Summarize("n", models.TypeText, rows)

	if got.Empty != 3 {
		t.Errorf("expected 3 empty cells (nil, empty string, missing), got %d", got.Empty)
	}
	if got.NonEmpty != 2 {
		t.Errorf("expected 0 and false to count as non-empty, got %d", got.NonEmpty)
	}
}

func TestSummarize_UnparseableNumbersExcludedSilently(t *testing.T) {
	rows := numberRows("10", "oops", "20")

	got := Summarize("n", models.TypeNumber, rows)

	if got.NonEmpty != 3 {
		t.Errorf("expected unparseable value to stay non-empty, got %d", got.NonEmpty)
	}
	if got.Sum == nil || *got.Sum != 30 {
		t.Errorf("expected sum 30 over parseable values, got %v", got.Sum)
	}
	if got.Avg == nil || *got.Avg != 15 {
		t.Errorf("expected avg 15 over parseable values, got %v", got.Avg)
	}
}

func TestSummarize_NoParseableValuesOmitsNumericStats(t *testing.T) {
	rows := numberRows("x", "y")

	got := Summarize("n", models.TypeNumber, rows)

	if got.Sum != nil || got.Avg != nil || got.Min != nil || got.Max != nil {
		t.Errorf("expected all numeric stats omitted, got sum=%v avg=%v min=%v max=%v",
			got.Sum, got.Avg, got.Min, got.Max)
	}
	if got.NonEmpty != 2 {
		t.Errorf("expected nonEmpty 2, got %d", got.NonEmpty)
	}
}

func TestSummarize_TextColumnLexicographicBounds(t *testing.T) {
	rows := []models.Row{
		{Data: map[string]any{"s": "pear"}},
		{Data: map[string]any{"s": "apple"}},
		{Data: map[string]any{"s": ""}},
		{Data: map[string]any{"s": "zebra"}},
	}

	got := Summarize("s", models.TypeText, rows)

	if got.MinText != "apple" {
		t.Errorf("expected lexicographic first 'apple', got %q", got.MinText)
	}
	if got.MaxText != "zebra" {
		t.Errorf("expected lexicographic last 'zebra', got %q", got.MaxText)
	}
	if got.Sum != nil {
		t.Error("expected no numeric stats for text column")
	}
}

func TestSummarize_DateColumnUsesStringOrdering(t *testing.T) {
	rows := []models.Row{
		{Data: map[string]any{"d": "2024-06-01"}},
		{Data: map[string]any{"d": "2023-12-31"}},
		{Data: map[string]any{"d": "2024-01-15"}},
	}

	got := Summarize("d", models.TypeDate, rows)

	if got.MinText != "2023-12-31" || got.MaxText != "2024-06-01" {
		t.Errorf("expected 2023-12-31..2024-06-01, got %q..%q", got.MinText, got.MaxText)
	}
}

func TestSummarize_DistinctStringifiesValues(t *testing.T) {
	rows := numberRows(float64(1), "1", float64(2))

	got := Summarize("n", models.TypeNumber, rows)

	if got.Distinct != 2 {
		t.Errorf("expected stringified 1 and \"1\" to collapse, got distinct %d", got.Distinct)
	}
}

func TestSummarize_NoRows(t *testing.T) {
	got := Summarize("n", models.TypeNumber, nil)

	if got.Count != 0 || got.NonEmpty != 0 || got.Empty != 0 || got.Distinct != 0 {
		t.Errorf("expected zeroed counters, got %+v", got)
	}
	if got.Sum != nil {
		t.Error("expected no numeric stats for empty row set")
	}
}
