package main

import (
	"fmt"
)

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// previewLimit caps the rows shown in the expandable dataset view; the export
// still contains every filtered row.
const previewLimit = 50

// GeneratePreviewTable renders the first rows of the filtered dataset as an
// HTML table for the expandable "view dataset" section.
func GeneratePreviewTable(view View) string {
	t := table.NewWriter()

	header := table.Row{}
	for _, h := range view.Table.Headers {
		header = append(header, h)
	}
	t.AppendHeader(header)

	n := view.Len()
	if n > previewLimit {
		n = previewLimit
	}
	for i := 0; i < n; i++ {
		row := table.Row{}
		for _, cell := range view.Row(i) {
			row = append(row, cell)
		}
		t.AppendRows([]table.Row{row})
	}

	t.SetStyle(table.StyleLight)
	return t.RenderHTML()
}

// GenerateStatsTable renders per-column summary statistics of the numeric
// columns over the current view.
func GenerateStatsTable(view View, numericCols []string) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Column", "Count", "Mean", "Median", "Min", "Max", "Q01", "Q99", "IQR"})

	for _, col := range numericCols {
		stats := AnalyzeColumn(parseColumnFloats(view, col))
		if stats == nil {
			t.AppendRows([]table.Row{{col, 0, "–", "–", "–", "–", "–", "–", "–"}})
			continue
		}
		t.AppendRows([]table.Row{{
			col,
			stats.Count,
			fmt.Sprintf("%.2f", stats.Mean),
			fmt.Sprintf("%.2f", stats.Median),
			fmt.Sprintf("%.2f", stats.Min),
			fmt.Sprintf("%.2f", stats.Max),
			fmt.Sprintf("%.2f", stats.Quantiles[0.01]),
			fmt.Sprintf("%.2f", stats.Quantiles[0.99]),
			fmt.Sprintf("%.2f", stats.IQR),
		}})
	}

	t.SetStyle(table.StyleLight)
	return t.RenderHTML()
}
