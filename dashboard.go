package main

import (
	"github.com/pivolan/go_utils"
)

const (
	maxKPIs       = 4
	barTopLimit   = 15
	pieTopLimit   = 10
	histogramBins = 25
)

type KPI struct {
	Column string
	Value  string
}

// DashboardView is everything one render of the dashboard needs, computed
// deterministically from (table, schema, selection). No mutable globals: a
// request that carries the same selection against the same table always
// produces the same view.
type DashboardView struct {
	Selection Selection
	Filtered  View

	NumericCols     []string
	CategoricalCols []string
	CategoryValues  []string
	Warning         string

	KPIs []KPI

	HasBar       bool
	HasScatter   bool
	HasHistogram bool
	HasPie       bool
}

// BuildDashboard applies the filter and computes KPI means and panel
// availability. Chart column choices arriving with the selection are validated
// against the schema; unknown or missing ones fall back to the first
// qualifying column.
func BuildDashboard(t *DataTable, schema []ColumnInfo, sel Selection) DashboardView {
	d := DashboardView{
		NumericCols:     NumericColumns(schema),
		CategoricalCols: CategoricalColumns(schema),
	}

	if len(d.CategoricalCols) == 0 {
		d.Warning = "No categorical columns found for filtering."
		sel.Category = ""
		sel.Value = ""
	} else {
		sel.Category = pickColumn(sel.Category, d.CategoricalCols, 0)
		d.CategoryValues = DistinctValues(t, sel.Category)
		if sel.Value != FilterAll && !go_utils.InArray(sel.Value, d.CategoryValues) {
			sel.Value = FilterAll
		}
	}

	d.HasBar = len(d.CategoricalCols) > 0 && len(d.NumericCols) > 0
	d.HasScatter = len(d.NumericCols) >= 2
	d.HasHistogram = len(d.NumericCols) > 0
	d.HasPie = len(d.CategoricalCols) > 0

	if d.HasBar {
		sel.BarX = pickColumn(sel.BarX, d.CategoricalCols, 0)
		sel.BarY = pickColumn(sel.BarY, d.NumericCols, 0)
	}
	if d.HasScatter {
		sel.ScatterX = pickColumn(sel.ScatterX, d.NumericCols, 0)
		sel.ScatterY = pickColumn(sel.ScatterY, d.NumericCols, 1)
		if sel.ScatterColor != "" && !go_utils.InArray(sel.ScatterColor, d.CategoricalCols) {
			sel.ScatterColor = ""
		}
	}
	if d.HasHistogram {
		sel.Histogram = pickColumn(sel.Histogram, d.NumericCols, 0)
	}
	if d.HasPie {
		sel.Pie = pickColumn(sel.Pie, d.CategoricalCols, 0)
	}

	d.Selection = sel
	d.Filtered = ApplyFilter(t, sel.Category, sel.Value)

	// KPI loop only iterates over available numeric columns, so fewer than
	// four render without placeholders.
	for i, col := range d.NumericCols {
		if i >= maxKPIs {
			break
		}
		d.KPIs = append(d.KPIs, KPI{Column: col, Value: FormatKPI(MeanOf(d.Filtered, col))})
	}

	return d
}

// pickColumn validates a requested column name against the allowed list,
// falling back to the column at fallbackIdx.
func pickColumn(requested string, allowed []string, fallbackIdx int) string {
	if go_utils.InArray(requested, allowed) {
		return requested
	}
	if fallbackIdx < len(allowed) {
		return allowed[fallbackIdx]
	}
	if len(allowed) > 0 {
		return allowed[0]
	}
	return ""
}
