package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupMean(t *testing.T) {
	table, _ := carsTable()
	groups := GroupMean(FullView(table), "manufacturer", "price", barTopLimit)

	require.Len(t, groups, 3)
	assert.Equal(t, "Toyota", groups[0].Label)
	assert.InDelta(t, 22000.0, groups[0].Value, 0.001)
	assert.Equal(t, "Honda", groups[1].Label)
	assert.InDelta(t, 21000.0, groups[1].Value, 0.001)
	assert.Equal(t, "Ford", groups[2].Label)
	assert.InDelta(t, 19000.0, groups[2].Value, 0.001)
}

func TestGroupMeanLimitAndOrder(t *testing.T) {
	table := NewDataTable([]string{"cat", "val"})
	for i := 0; i < 30; i++ {
		_ = table.AddRow([]string{fmt.Sprintf("c%02d", i), fmt.Sprintf("%d", i)})
	}
	groups := GroupMean(FullView(table), "cat", "val", 15)

	assert.Len(t, groups, 15)
	for i := 1; i < len(groups); i++ {
		assert.GreaterOrEqual(t, groups[i-1].Value, groups[i].Value, "means must be sorted descending")
	}
	assert.Equal(t, "c29", groups[0].Label)
}

func TestGroupMeanStableTies(t *testing.T) {
	table := NewDataTable([]string{"cat", "val"})
	_ = table.AddRow([]string{"b", "10"})
	_ = table.AddRow([]string{"a", "10"})
	_ = table.AddRow([]string{"c", "10"})
	groups := GroupMean(FullView(table), "cat", "val", 0)

	// Equal means keep first-seen row order.
	require.Len(t, groups, 3)
	assert.Equal(t, "b", groups[0].Label)
	assert.Equal(t, "a", groups[1].Label)
	assert.Equal(t, "c", groups[2].Label)
}

func TestGroupMeanSkipsUnparseable(t *testing.T) {
	table := NewDataTable([]string{"cat", "val"})
	_ = table.AddRow([]string{"a", "10"})
	_ = table.AddRow([]string{"a", "broken"})
	_ = table.AddRow([]string{"b", "none"})
	groups := GroupMean(FullView(table), "cat", "val", 0)

	require.Len(t, groups, 1)
	assert.Equal(t, "a", groups[0].Label)
	assert.InDelta(t, 10.0, groups[0].Value, 0.001)
}

func TestValueCounts(t *testing.T) {
	table := NewDataTable([]string{"make"})
	for _, v := range []string{"Honda", "Honda", "Honda", "Toyota", "Toyota", "Ford", ""} {
		_ = table.AddRow([]string{v})
	}
	counts := ValueCounts(FullView(table), "make", pieTopLimit)

	require.Len(t, counts, 3)
	assert.Equal(t, "Honda", counts[0].Label)
	assert.Equal(t, 3, counts[0].Count)
	assert.Equal(t, "Toyota", counts[1].Label)
	assert.Equal(t, 2, counts[1].Count)

	// Sum of shown counts never exceeds the non-empty total.
	total := 0
	for _, c := range counts {
		total += c.Count
	}
	assert.LessOrEqual(t, total, 6)
}

func TestValueCountsTopTen(t *testing.T) {
	table := NewDataTable([]string{"make"})
	for i := 0; i < 25; i++ {
		for j := 0; j <= i%13; j++ {
			_ = table.AddRow([]string{fmt.Sprintf("m%02d", i)})
		}
	}
	counts := ValueCounts(FullView(table), "make", 10)
	assert.Len(t, counts, 10)
	for i := 1; i < len(counts); i++ {
		assert.GreaterOrEqual(t, counts[i-1].Count, counts[i].Count)
	}
}

func TestHistogramBins(t *testing.T) {
	table := NewDataTable([]string{"n"})
	for i := 0; i <= 100; i++ {
		_ = table.AddRow([]string{fmt.Sprintf("%d", i)})
	}
	bins := HistogramBins(FullView(table), "n", histogramBins)

	require.Len(t, bins, 25)
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	assert.Equal(t, 101, total)
	assert.InDelta(t, 0.0, bins[0].Start, 0.001)
	assert.InDelta(t, 100.0, bins[len(bins)-1].End, 0.001)
	// The maximum falls into the last bin, not a phantom 26th.
	assert.GreaterOrEqual(t, bins[len(bins)-1].Count, 1)
}

func TestHistogramBinsDegenerate(t *testing.T) {
	table := NewDataTable([]string{"n"})
	for i := 0; i < 4; i++ {
		_ = table.AddRow([]string{"7"})
	}
	bins := HistogramBins(FullView(table), "n", 25)

	require.Len(t, bins, 1)
	assert.Equal(t, 4, bins[0].Count)
}

func TestHistogramBinsEmpty(t *testing.T) {
	table := NewDataTable([]string{"n"})
	assert.Nil(t, HistogramBins(FullView(table), "n", 25))
}

func TestScatterPoints(t *testing.T) {
	table, _ := carsTable()
	points := ScatterPoints(FullView(table), "price", "horsepower", "manufacturer")

	require.Len(t, points, 5)
	assert.InDelta(t, 20000.0, points[0].X, 0.001)
	assert.InDelta(t, 158.0, points[0].Y, 0.001)
	assert.Equal(t, "Honda", points[0].Color)

	// Hover data carries every column of the row.
	for _, h := range table.Headers {
		assert.True(t, strings.Contains(points[0].Tooltip, h), "tooltip misses column %s", h)
	}
	assert.Contains(t, points[0].Tooltip, "Civic")
}

func TestScatterPointsSkipsUnparseable(t *testing.T) {
	table := NewDataTable([]string{"x", "y"})
	_ = table.AddRow([]string{"1", "2"})
	_ = table.AddRow([]string{"bad", "3"})
	_ = table.AddRow([]string{"4", ""})
	points := ScatterPoints(FullView(table), "x", "y", "")

	assert.Len(t, points, 1)
}
