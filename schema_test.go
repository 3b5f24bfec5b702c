package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pivolan/csv_dashboard/domain/models"
)

func TestInferSchemaPartition(t *testing.T) {
	table, schema := carsTable()

	numeric := NumericColumns(schema)
	categorical := CategoricalColumns(schema)

	// Numeric and categorical must exactly partition all columns.
	assert.Len(t, numeric, 2)
	assert.Len(t, categorical, 2)
	assert.Equal(t, len(table.Headers), len(numeric)+len(categorical))

	seen := map[string]bool{}
	for _, c := range append(append([]string{}, numeric...), categorical...) {
		assert.False(t, seen[c], "column %s classified twice", c)
		seen[c] = true
	}
	for _, h := range table.Headers {
		assert.True(t, seen[h], "column %s not classified", h)
	}
}

func TestInferSchemaOrderPreserved(t *testing.T) {
	table := NewDataTable([]string{"b_num", "a_cat", "c_num", "d_cat"})
	_ = table.AddRow([]string{"1", "x", "2", "y"})
	schema := InferSchema(table)

	assert.Equal(t, []string{"b_num", "c_num"}, NumericColumns(schema))
	assert.Equal(t, []string{"a_cat", "d_cat"}, CategoricalColumns(schema))
}

func TestInferSchemaThreshold(t *testing.T) {
	// 4 of 5 values parse: 80%, still numeric.
	table := NewDataTable([]string{"mostly"})
	for _, v := range []string{"1", "2", "3", "4", "oops"} {
		_ = table.AddRow([]string{v})
	}
	schema := InferSchema(table)
	assert.Equal(t, models.KindNumeric, schema[0].Kind)

	// 3 of 5: categorical.
	table2 := NewDataTable([]string{"mixed"})
	for _, v := range []string{"1", "2", "3", "x", "y"} {
		_ = table2.AddRow([]string{v})
	}
	schema2 := InferSchema(table2)
	assert.Equal(t, models.KindCategorical, schema2[0].Kind)
}

func TestInferSchemaEmptyCellsIgnored(t *testing.T) {
	table := NewDataTable([]string{"sparse"})
	for _, v := range []string{"1.5", "", "", "2.5"} {
		_ = table.AddRow([]string{v})
	}
	schema := InferSchema(table)
	assert.Equal(t, models.KindNumeric, schema[0].Kind)
}

func TestInferSchemaAllEmptyIsCategorical(t *testing.T) {
	table := NewDataTable([]string{"void"})
	_ = table.AddRow([]string{""})
	schema := InferSchema(table)
	assert.Equal(t, models.KindCategorical, schema[0].Kind)
}

func TestInferSchemaNoRows(t *testing.T) {
	table := NewDataTable([]string{"a", "b"})
	schema := InferSchema(table)
	assert.Len(t, schema, 2)
	assert.Empty(t, NumericColumns(schema))
	assert.Len(t, CategoricalColumns(schema), 2)
}
