// stats.go
package main

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

type ColumnStats struct {
	Count     int
	Mean      float64
	Median    float64
	Min       float64
	Max       float64
	Quantiles map[float64]float64
	IQR       float64
}

// parseColumnFloats extracts the parseable numeric values of a column through
// a view. Cells that fail to parse are skipped, not zeroed.
func parseColumnFloats(view View, column string) []float64 {
	idx := view.Table.ColumnIndex(column)
	if idx < 0 {
		return nil
	}
	numbers := make([]float64, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		cell := strings.TrimSpace(view.Cell(i, idx))
		if cell == "" {
			continue
		}
		if num, err := strconv.ParseFloat(cell, 64); err == nil {
			numbers = append(numbers, num)
		}
	}
	return numbers
}

// MeanOf computes the arithmetic mean of a numeric column over the view.
// Returns NaN when no cell parses (empty filter result included).
func MeanOf(view View, column string) float64 {
	numbers := parseColumnFloats(view, column)
	if len(numbers) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers))
}

// AnalyzeColumn вычисляет статистические метрики для массива чисел
func AnalyzeColumn(numbers []float64) *ColumnStats {
	if len(numbers) == 0 {
		return nil
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	sum := 0.0
	for _, num := range numbers {
		sum += num
	}
	avg := sum / float64(len(numbers))

	var median float64
	if len(sorted)%2 == 0 {
		median = (sorted[len(sorted)/2-1] + sorted[len(sorted)/2]) / 2
	} else {
		median = sorted[len(sorted)/2]
	}

	quantiles := make(map[float64]float64)
	for _, p := range []float64{0.01, 0.25, 0.75, 0.99} {
		quantiles[p] = roundToTwo(calculateQuantile(sorted, p))
	}
	iqr := quantiles[0.75] - quantiles[0.25]

	return &ColumnStats{
		Count:     len(numbers),
		Mean:      roundToTwo(avg),
		Median:    roundToTwo(median),
		Min:       roundToTwo(sorted[0]),
		Max:       roundToTwo(sorted[len(sorted)-1]),
		Quantiles: quantiles,
		IQR:       roundToTwo(iqr),
	}
}

// calculateQuantile вычисляет квантиль заданного уровня
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	return lower + fraction*(upper-lower)
}

// FormatKPI renders a mean as "21,000.00"; NaN renders as a dash.
func FormatKPI(v float64) string {
	if math.IsNaN(v) {
		return "–"
	}
	return formatThousands(v)
}

func formatThousands(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}
	rounded := roundToTwo(v)
	intPart := int64(rounded)
	decPart := int64(math.Round((rounded - float64(intPart)) * 100))

	intStr := strconv.FormatInt(intPart, 10)
	if len(intStr) > 3 {
		var parts []string
		for len(intStr) > 3 {
			parts = append([]string{intStr[len(intStr)-3:]}, parts...)
			intStr = intStr[:len(intStr)-3]
		}
		parts = append([]string{intStr}, parts...)
		intStr = strings.Join(parts, ",")
	}

	result := fmt.Sprintf("%s.%02d", intStr, decPart)
	if negative {
		result = "-" + result
	}
	return result
}

// roundToTwo округляет число до двух знаков после запятой
func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}
