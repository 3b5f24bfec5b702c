package main

import (
	"fmt"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/pivolan/go_utils"
	"github.com/pivolan/csv_dashboard/domain/models"
	"github.com/pivolan/csv_dashboard/plot"
)

// csvPath and bot are wired in main; tests point csvPath at fixtures.
var csvPath string

type dashboardPage struct {
	View         DashboardView
	Query        template.URL
	PreviewHTML  template.HTML
	StatsHTML    template.HTML
	RowCount     int
	TotalCount   int
	ShareEnabled bool
}

func parseSelection(r *http.Request) Selection {
	q := r.URL.Query()
	return Selection{
		Category:     q.Get("cat"),
		Value:        q.Get("val"),
		BarX:         q.Get("bar_x"),
		BarY:         q.Get("bar_y"),
		ScatterX:     q.Get("scatter_x"),
		ScatterY:     q.Get("scatter_y"),
		ScatterColor: q.Get("scatter_color"),
		Histogram:    q.Get("hist"),
		Pie:          q.Get("pie"),
	}
}

// selectionQuery serializes the normalized selection back into query
// parameters, so chart iframes and the export link reproduce the exact state.
func selectionQuery(sel Selection) string {
	q := url.Values{}
	set := func(key, val string) {
		if val != "" {
			q.Set(key, val)
		}
	}
	set("cat", sel.Category)
	set("val", sel.Value)
	set("bar_x", sel.BarX)
	set("bar_y", sel.BarY)
	set("scatter_x", sel.ScatterX)
	set("scatter_y", sel.ScatterY)
	set("scatter_color", sel.ScatterColor)
	set("hist", sel.Histogram)
	set("pie", sel.Pie)
	return q.Encode()
}

// loadDashboard recomputes the full view from the current request. Loader
// failures abort the render, per contract.
func loadDashboard(r *http.Request) (DashboardView, *DataTable, error) {
	table, schema, err := LoadTable(csvPath)
	if err != nil {
		return DashboardView{}, nil, err
	}
	return BuildDashboard(table, schema, parseSelection(r)), table, nil
}

func handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	d, table, err := loadDashboard(r)
	if err != nil {
		http.Error(w, "Error loading dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}

	page := dashboardPage{
		View:         d,
		Query:        template.URL(selectionQuery(d.Selection)),
		PreviewHTML:  template.HTML(GeneratePreviewTable(d.Filtered)),
		StatsHTML:    template.HTML(GenerateStatsTable(d.Filtered, d.NumericCols)),
		RowCount:     d.Filtered.Len(),
		TotalCount:   table.NumRows(),
		ShareEnabled: bot != nil,
	}

	tmpl := template.Must(template.ParseFiles("dashboard.html"))
	if err := tmpl.Execute(w, page); err != nil {
		http.Error(w, "Error rendering dashboard", http.StatusInternalServerError)
		return
	}
}

func handleChart(w http.ResponseWriter, r *http.Request) {
	kind := strings.TrimPrefix(r.URL.Path, "/chart/")
	if !go_utils.InArray(kind, []string{
		string(models.ChartBar), string(models.ChartScatter),
		string(models.ChartHistogram), string(models.ChartPie),
	}) {
		http.NotFound(w, r)
		return
	}

	d, _, err := loadDashboard(r)
	if err != nil {
		http.Error(w, "Error loading dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}

	asPNG := r.URL.Query().Get("format") == "png"
	if asPNG {
		graph, err := renderChartPNG(d, models.ChartKind(kind))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(graph)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := renderChartHTML(w, d, models.ChartKind(kind)); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
	}
}

// Panels whose required column kinds are absent are never rendered; a direct
// request gets an error instead of an empty chart.
func renderChartHTML(w http.ResponseWriter, d DashboardView, kind models.ChartKind) error {
	sel := d.Selection
	switch kind {
	case models.ChartBar:
		if !d.HasBar {
			return fmt.Errorf("bar chart needs categorical and numeric columns")
		}
		return RenderBarChart(w, GroupMean(d.Filtered, sel.BarX, sel.BarY, barTopLimit), sel.BarX, sel.BarY)
	case models.ChartScatter:
		if !d.HasScatter {
			return fmt.Errorf("scatter plot needs two numeric columns")
		}
		return RenderScatterChart(w, ScatterPoints(d.Filtered, sel.ScatterX, sel.ScatterY, sel.ScatterColor), sel.ScatterX, sel.ScatterY, sel.ScatterColor)
	case models.ChartHistogram:
		if !d.HasHistogram {
			return fmt.Errorf("histogram needs a numeric column")
		}
		return RenderHistogramChart(w, HistogramBins(d.Filtered, sel.Histogram, histogramBins), sel.Histogram)
	case models.ChartPie:
		if !d.HasPie {
			return fmt.Errorf("pie chart needs a categorical column")
		}
		return RenderPieChart(w, ValueCounts(d.Filtered, sel.Pie, pieTopLimit), sel.Pie)
	}
	return fmt.Errorf("unknown chart kind %s", kind)
}

func renderChartPNG(d DashboardView, kind models.ChartKind) ([]byte, error) {
	sel := d.Selection
	switch kind {
	case models.ChartBar:
		if !d.HasBar {
			return nil, fmt.Errorf("bar chart needs categorical and numeric columns")
		}
		groups := GroupMean(d.Filtered, sel.BarX, sel.BarY, barTopLimit)
		labels, values := splitCategoryValues(groups)
		return plot.DrawCategoryBar(labels, values, sel.BarY, fmt.Sprintf("Average %s by %s", sel.BarY, sel.BarX))
	case models.ChartScatter:
		if !d.HasScatter {
			return nil, fmt.Errorf("scatter plot needs two numeric columns")
		}
		points := ScatterPoints(d.Filtered, sel.ScatterX, sel.ScatterY, "")
		xs := make([]float64, len(points))
		ys := make([]float64, len(points))
		for i, p := range points {
			xs[i] = p.X
			ys[i] = p.Y
		}
		return plot.DrawScatter(xs, ys, sel.ScatterX, sel.ScatterY, fmt.Sprintf("%s vs %s", sel.ScatterX, sel.ScatterY))
	case models.ChartHistogram:
		if !d.HasHistogram {
			return nil, fmt.Errorf("histogram needs a numeric column")
		}
		bins := HistogramBins(d.Filtered, sel.Histogram, histogramBins)
		labels := make([]string, len(bins))
		counts := make([]float64, len(bins))
		for i, b := range bins {
			labels[i] = b.Label()
			counts[i] = float64(b.Count)
		}
		return plot.DrawHistogram(labels, counts, sel.Histogram)
	case models.ChartPie:
		if !d.HasPie {
			return nil, fmt.Errorf("pie chart needs a categorical column")
		}
		counts := ValueCounts(d.Filtered, sel.Pie, pieTopLimit)
		labels, values := splitCategoryValues(counts)
		return plot.DrawPie(labels, values, fmt.Sprintf("Top %s Distribution", sel.Pie))
	}
	return nil, fmt.Errorf("unknown chart kind %s", kind)
}

func splitCategoryValues(groups []CategoryValue) ([]string, []float64) {
	labels := make([]string, len(groups))
	values := make([]float64, len(groups))
	for i, g := range groups {
		labels[i] = g.Label
		values[i] = g.Value
	}
	return labels, values
}

func handleExport(w http.ResponseWriter, r *http.Request) {
	d, _, err := loadDashboard(r)
	if err != nil {
		http.Error(w, "Error loading dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}
	data, err := ExportCSV(d.Filtered)
	if err != nil {
		http.Error(w, "Error exporting csv: "+err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFileName))
	w.Write(data)
}

func handleShare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if bot == nil || tgChatId == 0 {
		http.Error(w, "Telegram sharing is not configured", http.StatusServiceUnavailable)
		return
	}
	d, _, err := loadDashboard(r)
	if err != nil {
		http.Error(w, "Error loading dataset: "+err.Error(), http.StatusInternalServerError)
		return
	}

	charts := map[models.ChartKind]string{
		models.ChartBar:       d.Selection.BarY,
		models.ChartScatter:   d.Selection.ScatterY,
		models.ChartHistogram: d.Selection.Histogram,
		models.ChartPie:       d.Selection.Pie,
	}
	for kind, column := range charts {
		graph, err := renderChartPNG(d, kind)
		if err != nil {
			continue
		}
		if err := sendGraphVisualization(graph, string(kind), column, tgChatId, bot); err != nil {
			log.Printf("share failed for %s: %v", kind, err)
		}
	}

	http.Redirect(w, r, "/?"+selectionQuery(d.Selection), http.StatusSeeOther)
}
