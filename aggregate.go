package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// CategoryValue is one aggregated slice of a categorical column: its label,
// the aggregated value (mean or count) and the number of contributing rows.
type CategoryValue struct {
	Label string
	Value float64
	Count int
}

// GroupMean computes the mean of numCol per distinct value of catCol over the
// view, sorted descending by mean, truncated to limit. Rows whose numCol does
// not parse are excluded from their group's mean; groups where nothing parses
// are dropped. Ties keep first-seen (row) order: the sort is stable.
func GroupMean(view View, catCol, numCol string, limit int) []CategoryValue {
	catIdx := view.Table.ColumnIndex(catCol)
	numIdx := view.Table.ColumnIndex(numCol)
	if catIdx < 0 || numIdx < 0 {
		return nil
	}

	type acc struct {
		sum   float64
		count int
	}
	sums := map[string]*acc{}
	order := []string{}
	for i := 0; i < view.Len(); i++ {
		label := view.Cell(i, catIdx)
		if strings.TrimSpace(label) == "" {
			continue
		}
		num, err := strconv.ParseFloat(strings.TrimSpace(view.Cell(i, numIdx)), 64)
		if err != nil {
			continue
		}
		a, ok := sums[label]
		if !ok {
			a = &acc{}
			sums[label] = a
			order = append(order, label)
		}
		a.sum += num
		a.count++
	}

	groups := make([]CategoryValue, 0, len(order))
	for _, label := range order {
		a := sums[label]
		groups = append(groups, CategoryValue{Label: label, Value: a.sum / float64(a.count), Count: a.count})
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

// ValueCounts computes frequency counts of the distinct non-empty values of a
// categorical column, sorted descending by count, truncated to limit.
func ValueCounts(view View, catCol string, limit int) []CategoryValue {
	idx := view.Table.ColumnIndex(catCol)
	if idx < 0 {
		return nil
	}
	counts := map[string]int{}
	order := []string{}
	for i := 0; i < view.Len(); i++ {
		label := view.Cell(i, idx)
		if strings.TrimSpace(label) == "" {
			continue
		}
		if _, ok := counts[label]; !ok {
			order = append(order, label)
		}
		counts[label]++
	}

	groups := make([]CategoryValue, 0, len(order))
	for _, label := range order {
		groups = append(groups, CategoryValue{Label: label, Value: float64(counts[label]), Count: counts[label]})
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Count > groups[j].Count })
	if limit > 0 && len(groups) > limit {
		groups = groups[:limit]
	}
	return groups
}

type HistogramBin struct {
	Start float64
	End   float64
	Count int
}

// Label renders the bin bounds the way the bar x-axis shows them.
func (b HistogramBin) Label() string {
	return fmt.Sprintf("%.1f-%.1f", b.Start, b.End)
}

// HistogramBins distributes the parseable values of a numeric column into
// equal-width bins over [min, max]. The maximum lands in the last bin; a
// degenerate min==max column collapses into a single bin.
func HistogramBins(view View, numCol string, bins int) []HistogramBin {
	numbers := parseColumnFloats(view, numCol)
	if len(numbers) == 0 || bins <= 0 {
		return nil
	}

	min, max := numbers[0], numbers[0]
	for _, n := range numbers {
		if n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}
	if min == max {
		return []HistogramBin{{Start: min, End: max, Count: len(numbers)}}
	}

	width := (max - min) / float64(bins)
	result := make([]HistogramBin, bins)
	for i := range result {
		result[i].Start = min + float64(i)*width
		result[i].End = min + float64(i+1)*width
	}
	result[bins-1].End = max
	for _, n := range numbers {
		idx := int((n - min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		result[idx].Count++
	}
	return result
}

// ScatterPoint is one filtered row projected onto two numeric axes. Tooltip
// carries every column's value for that row.
type ScatterPoint struct {
	X       float64
	Y       float64
	Color   string
	Tooltip string
}

// ScatterPoints projects all filtered rows whose x and y cells parse as
// numbers. colorCol may be empty; then every point falls into one series.
func ScatterPoints(view View, xCol, yCol, colorCol string) []ScatterPoint {
	xIdx := view.Table.ColumnIndex(xCol)
	yIdx := view.Table.ColumnIndex(yCol)
	if xIdx < 0 || yIdx < 0 {
		return nil
	}
	colorIdx := -1
	if colorCol != "" {
		colorIdx = view.Table.ColumnIndex(colorCol)
	}

	points := []ScatterPoint{}
	for i := 0; i < view.Len(); i++ {
		x, errX := strconv.ParseFloat(strings.TrimSpace(view.Cell(i, xIdx)), 64)
		y, errY := strconv.ParseFloat(strings.TrimSpace(view.Cell(i, yIdx)), 64)
		if errX != nil || errY != nil {
			continue
		}
		p := ScatterPoint{X: x, Y: y, Tooltip: rowTooltip(view, i)}
		if colorIdx >= 0 {
			p.Color = view.Cell(i, colorIdx)
		}
		points = append(points, p)
	}
	return points
}

func rowTooltip(view View, i int) string {
	parts := make([]string, 0, len(view.Table.Headers))
	row := view.Row(i)
	for c, h := range view.Table.Headers {
		parts = append(parts, fmt.Sprintf("%s: %s", h, row[c]))
	}
	return strings.Join(parts, "<br/>")
}
