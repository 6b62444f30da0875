// Package summary computes per-column descriptive statistics over the
// currently loaded row window.
package summary

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/rvale/lazygrid/internal/models"
)

// ColumnSummary holds the statistics for one column. Sum/Avg/Min/Max are
// set only for number columns when at least one value parses as a float.
// MinText/MaxText hold the lexicographically first and last non-empty
// values for text and date columns.
type ColumnSummary struct {
	ColumnName string
	ColumnType models.ColumnType
	Count      int
	NonEmpty   int
	Empty      int
	Distinct   int
	Sum        *float64
	Avg        *float64
	Min        *float64
	Max        *float64
	MinText    string
	MaxText    string
}

// isEmpty implements the exact three-way emptiness rule: a missing key,
// nil, or the empty string. Numeric 0 and boolean false are not empty.
func isEmpty(value any, present bool) bool {
	if !present || value == nil {
		return true
	}
	if s, ok := value.(string); ok && s == "" {
		return true
	}
	return false
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprint(v)
	}
}

func parseNumeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Summarize computes statistics for one column across the loaded rows.
// Unparseable values in a number column still count toward NonEmpty but
// are silently excluded from the numeric statistics.
func Summarize(columnName string, columnType models.ColumnType, rows []models.Row) ColumnSummary {
	result := ColumnSummary{
		ColumnName: columnName,
		ColumnType: columnType,
		Count:      len(rows),
	}

	distinct := make(map[string]struct{})
	var texts []string

	var sum float64
	var min, max float64
	parsed := 0

	for _, row := range rows {
		value, present := row.Data[columnName]
		if isEmpty(value, present) {
			result.Empty++
			continue
		}
		result.NonEmpty++

		text := stringify(value)
		distinct[text] = struct{}{}

		switch columnType {
		case models.TypeNumber:
			f, ok := parseNumeric(value)
			if !ok {
				continue
			}
			if parsed == 0 || f < min {
				min = f
			}
			if parsed == 0 || f > max {
				max = f
			}
			sum += f
			parsed++
		case models.TypeText, models.TypeDate:
			texts = append(texts, text)
		}
	}

	result.Distinct = len(distinct)

	if columnType == models.TypeNumber && parsed > 0 {
		avg := sum / float64(parsed)
		result.Sum = &sum
		result.Avg = &avg
		result.Min = &min
		result.Max = &max
	}

	if len(texts) > 0 {
		sort.Strings(texts)
		result.MinText = texts[0]
		result.MaxText = texts[len(texts)-1]
	}

	return result
}
