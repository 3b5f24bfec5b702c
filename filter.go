package main

import (
	"sort"
	"strings"
)

// FilterAll is the sentinel value meaning "no restriction".
const FilterAll = "All"

// Selection is the full widget state of one dashboard request. Every field
// arrives in query parameters; nothing persists between requests.
type Selection struct {
	Category string
	Value    string

	BarX         string
	BarY         string
	ScatterX     string
	ScatterY     string
	ScatterColor string
	Histogram    string
	Pie          string
}

// ApplyFilter restricts the table to rows whose category column equals value.
// The sentinel "All" (or an empty selection) keeps every row. Pure row
// selection: columns are never touched.
func ApplyFilter(t *DataTable, category, value string) View {
	if category == "" || value == "" || value == FilterAll {
		return FullView(t)
	}
	idx := t.ColumnIndex(category)
	if idx < 0 {
		return FullView(t)
	}
	indices := []int{}
	for i, row := range t.Rows {
		if row[idx] == value {
			indices = append(indices, i)
		}
	}
	return SelectView(t, indices)
}

// DistinctValues returns the sorted distinct non-empty values of a column,
// feeding the value selector.
func DistinctValues(t *DataTable, column string) []string {
	idx := t.ColumnIndex(column)
	if idx < 0 {
		return nil
	}
	seen := map[string]bool{}
	values := []string{}
	for _, row := range t.Rows {
		v := row[idx]
		if strings.TrimSpace(v) == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}
