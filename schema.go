package main

import (
	"strconv"
	"strings"

	"github.com/pivolan/csv_dashboard/domain/models"
)

type ColumnInfo struct {
	Name string
	Kind models.ColumnKind
}

// InferSchema classifies every column as numeric or categorical in header order.
// A column is numeric when at least 80% of its non-empty cells parse as float64
// and at least one cell parses; everything else is categorical, so the two
// kinds always partition the header set exactly.
func InferSchema(t *DataTable) []ColumnInfo {
	schema := make([]ColumnInfo, len(t.Headers))
	for i, name := range t.Headers {
		values := make([]string, 0, len(t.Rows))
		for _, row := range t.Rows {
			values = append(values, row[i])
		}
		kind := models.KindCategorical
		if isNumericData(values) {
			kind = models.KindNumeric
		}
		schema[i] = ColumnInfo{Name: name, Kind: kind}
	}
	return schema
}

// isNumericData проверяет, похожи ли данные на числовые значения
func isNumericData(values []string) bool {
	numericCount := 0
	nonEmpty := 0
	for _, value := range values {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		nonEmpty++
		if _, err := strconv.ParseFloat(value, 64); err == nil {
			numericCount++
		}
	}
	if nonEmpty == 0 {
		return false
	}
	return float64(numericCount)/float64(nonEmpty) >= 0.8
}

// NumericColumns returns numeric column names preserving header order.
func NumericColumns(schema []ColumnInfo) []string {
	return columnsOfKind(schema, models.KindNumeric)
}

// CategoricalColumns returns categorical column names preserving header order.
func CategoricalColumns(schema []ColumnInfo) []string {
	return columnsOfKind(schema, models.KindCategorical)
}

func columnsOfKind(schema []ColumnInfo, kind models.ColumnKind) []string {
	names := []string{}
	for _, c := range schema {
		if c.Kind == kind {
			names = append(names, c.Name)
		}
	}
	return names
}
