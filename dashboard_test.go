package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// carsTable is the shared fixture: two categorical and two numeric columns.
func carsTable() (*DataTable, []ColumnInfo) {
	t := NewDataTable([]string{"manufacturer", "model", "price", "horsepower"})
	rows := [][]string{
		{"Honda", "Civic", "20000", "158"},
		{"Honda", "Accord", "22000", "192"},
		{"Toyota", "Corolla", "18000", "139"},
		{"Toyota", "Camry", "26000", "203"},
		{"Ford", "Focus", "19000", "160"},
	}
	for _, r := range rows {
		_ = t.AddRow(r)
	}
	return t, InferSchema(t)
}

func TestBuildDashboardDefaults(t *testing.T) {
	table, schema := carsTable()
	d := BuildDashboard(table, schema, Selection{})

	assert.Equal(t, []string{"manufacturer", "model"}, d.CategoricalCols)
	assert.Equal(t, []string{"price", "horsepower"}, d.NumericCols)
	assert.Empty(t, d.Warning)

	assert.Equal(t, "manufacturer", d.Selection.Category)
	assert.Equal(t, FilterAll, d.Selection.Value)
	assert.Equal(t, "manufacturer", d.Selection.BarX)
	assert.Equal(t, "price", d.Selection.BarY)
	assert.Equal(t, "price", d.Selection.ScatterX)
	assert.Equal(t, "horsepower", d.Selection.ScatterY)
	assert.Equal(t, "price", d.Selection.Histogram)
	assert.Equal(t, "manufacturer", d.Selection.Pie)

	assert.True(t, d.HasBar)
	assert.True(t, d.HasScatter)
	assert.True(t, d.HasHistogram)
	assert.True(t, d.HasPie)
	assert.Equal(t, 5, d.Filtered.Len())
}

func TestBuildDashboardFiltersAndKPIs(t *testing.T) {
	table, schema := carsTable()
	d := BuildDashboard(table, schema, Selection{Category: "manufacturer", Value: "Honda"})

	assert.Equal(t, 2, d.Filtered.Len())
	assert.Len(t, d.KPIs, 2)
	assert.Equal(t, "price", d.KPIs[0].Column)
	assert.Equal(t, "21,000.00", d.KPIs[0].Value)
	assert.Equal(t, "horsepower", d.KPIs[1].Column)
	assert.Equal(t, "175.00", d.KPIs[1].Value)
}

func TestBuildDashboardKPIsCappedAtFour(t *testing.T) {
	table := NewDataTable([]string{"cat", "n1", "n2", "n3", "n4", "n5"})
	_ = table.AddRow([]string{"a", "1", "2", "3", "4", "5"})
	_ = table.AddRow([]string{"b", "1", "2", "3", "4", "5"})
	d := BuildDashboard(table, InferSchema(table), Selection{})

	assert.Len(t, d.KPIs, maxKPIs)
	assert.Equal(t, "n1", d.KPIs[0].Column)
	assert.Equal(t, "n4", d.KPIs[3].Column)
}

func TestBuildDashboardNoCategoricalColumns(t *testing.T) {
	table := NewDataTable([]string{"a", "b"})
	_ = table.AddRow([]string{"1", "2"})
	_ = table.AddRow([]string{"3", "4"})
	d := BuildDashboard(table, InferSchema(table), Selection{Category: "a", Value: "1"})

	assert.NotEmpty(t, d.Warning)
	assert.False(t, d.HasBar)
	assert.True(t, d.HasScatter)
	assert.True(t, d.HasHistogram)
	assert.False(t, d.HasPie)
	// Filter is disabled entirely without categorical columns.
	assert.Equal(t, 2, d.Filtered.Len())
}

func TestBuildDashboardNoNumericColumns(t *testing.T) {
	table := NewDataTable([]string{"a", "b"})
	_ = table.AddRow([]string{"x", "y"})
	d := BuildDashboard(table, InferSchema(table), Selection{})

	assert.Empty(t, d.KPIs)
	assert.False(t, d.HasBar)
	assert.False(t, d.HasScatter)
	assert.False(t, d.HasHistogram)
	assert.True(t, d.HasPie)
}

func TestBuildDashboardRejectsUnknownColumns(t *testing.T) {
	table, schema := carsTable()
	d := BuildDashboard(table, schema, Selection{
		Category:     "nonsense",
		Value:        "whatever",
		BarX:         "price", // numeric, not allowed on bar X
		BarY:         "model", // categorical, not allowed on bar Y
		ScatterColor: "price",
	})

	assert.Equal(t, "manufacturer", d.Selection.Category)
	assert.Equal(t, FilterAll, d.Selection.Value)
	assert.Equal(t, "manufacturer", d.Selection.BarX)
	assert.Equal(t, "price", d.Selection.BarY)
	assert.Equal(t, "", d.Selection.ScatterColor)
	assert.Equal(t, 5, d.Filtered.Len())
}

func TestBuildDashboardZeroRowFilterResult(t *testing.T) {
	table, schema := carsTable()
	// "Tesla" is a real value nowhere in the fixture; force it past validation.
	d := BuildDashboard(table, schema, Selection{Category: "manufacturer", Value: "Tesla"})

	// Unknown value falls back to All rather than producing a dead dashboard.
	assert.Equal(t, FilterAll, d.Selection.Value)
	assert.Equal(t, 5, d.Filtered.Len())
}
