// echarts.go
package main

import (
	"fmt"
	"io"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Interactive chart documents. Each panel is served as a standalone HTML page
// embedded by the dashboard via iframe; all of them are stateless renders of
// the aggregates computed for the current selection.

// RenderBarChart draws mean-of-Y per category, color-scaled by value.
func RenderBarChart(w io.Writer, groups []CategoryValue, xCol, yCol string) error {
	labels := make([]string, 0, len(groups))
	data := make([]opts.BarData, 0, len(groups))
	minVal, maxVal := 0.0, 0.0
	for i, g := range groups {
		labels = append(labels, g.Label)
		data = append(data, opts.BarData{Value: roundToTwo(g.Value)})
		if i == 0 || g.Value > maxVal {
			maxVal = g.Value
		}
		if i == 0 || g.Value < minVal {
			minVal = g.Value
		}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Average %s by %s", yCol, xCol)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        float32(minVal),
			Max:        float32(maxVal),
			InRange:    &opts.VisualMapInRange{Color: []string{"#440154", "#21918c", "#fde725"}},
		}),
		charts.WithXAxisOpts(opts.XAxis{Name: xCol, AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 45}}),
		charts.WithYAxisOpts(opts.YAxis{Name: yCol}),
	)
	bar.SetXAxis(labels).AddSeries(yCol, data)
	return bar.Render(w)
}

// RenderScatterChart draws all filtered rows as points, one series per value
// of the optional color column. Hovering a point shows every column of its row.
func RenderScatterChart(w io.Writer, points []ScatterPoint, xCol, yCol, colorCol string) error {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s vs %s", xCol, yCol)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item", Formatter: "{b}"}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Name: xCol}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Name: yCol}),
	)

	series := map[string][]opts.ScatterData{}
	order := []string{}
	for _, p := range points {
		name := p.Color
		if colorCol == "" {
			name = yCol
		}
		if _, ok := series[name]; !ok {
			order = append(order, name)
		}
		series[name] = append(series[name], opts.ScatterData{
			Name:       p.Tooltip,
			Value:      []interface{}{p.X, p.Y},
			SymbolSize: 8,
		})
	}
	sort.Strings(order)
	for _, name := range order {
		scatter.AddSeries(name, series[name])
	}
	return scatter.Render(w)
}

// RenderHistogramChart draws a binned frequency distribution as bars.
func RenderHistogramChart(w io.Writer, bins []HistogramBin, column string) error {
	labels := make([]string, 0, len(bins))
	data := make([]opts.BarData, 0, len(bins))
	for _, b := range bins {
		labels = append(labels, b.Label())
		data = append(data, opts.BarData{Value: b.Count})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Distribution of %s", column)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: column, AxisLabel: &opts.AxisLabel{Show: opts.Bool(true), Rotate: 60}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Frequency"}),
	)
	bar.SetXAxis(labels).AddSeries("count", data)
	return bar.Render(w)
}

// RenderPieChart draws the top value counts of a categorical column as
// proportions.
func RenderPieChart(w io.Writer, counts []CategoryValue, column string) error {
	data := make([]opts.PieData, 0, len(counts))
	for _, c := range counts {
		data = append(data, opts.PieData{Name: c.Label, Value: c.Count})
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %s Distribution", column)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
	)
	pie.AddSeries(column, data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {d}%"}),
		charts.WithPieChartOpts(opts.PieChart{Radius: []string{"35%", "70%"}}),
	)
	return pie.Render(w)
}
