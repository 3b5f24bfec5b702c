package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// dataCategoryForGraph carries one labeled series: category labels on X,
// aggregated values on Y. Feeds both the grouped bar chart and the histogram.
type dataCategoryForGraph struct {
	xValues   []string
	yValues   []float64
	nameYAxis string
	nameGraph string
}

func NewDataCategoryForGraph(xValues []string, y []float64, nameYAxis, nameGraph string) dataCategoryForGraph {
	return dataCategoryForGraph{
		xValues:   xValues,
		yValues:   y,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataCategoryForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataCategoryForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataCategoryForGraph) getYValues() []float64 {
	return d.yValues
}
func (d dataCategoryForGraph) lenXValues() int {
	return len(d.xValues)
}

func (d dataCategoryForGraph) findMaxValue() float64 {
	if len(d.yValues) == 0 {
		return 0
	}
	max := d.yValues[0]
	for _, v := range d.yValues {
		if v > max {
			max = v
		}
	}
	return max
}

func (d dataCategoryForGraph) calculateChartDimensions(minBarWidth float64) (width, height int) {
	if len(d.yValues) == 0 || d.lenXValues() <= 0 || minBarWidth <= 0 {
		return 0, 0
	}
	x := 1.1
	if d.lenXValues() < 2 {
		x = 10.0
	} else if d.lenXValues() < 10 {
		x = 3.0
	}

	const (
		paddingY     = 100 // отступ для оси Y и подписей
		spacingRatio = 0.2
		aspectRatio  = 9.0 / 16.0
	)

	barSpacing := minBarWidth * spacingRatio
	totalWidth := (minBarWidth+barSpacing)*float64(d.lenXValues()) + paddingY
	width = int(totalWidth*x) + paddingY
	height = int(float64(width) * aspectRatio)
	return width, height
}

func (d dataCategoryForGraph) generateBarValues() []chart.Value {
	var bars []chart.Value
	for i := 0; i < len(d.xValues); i++ {
		bars = append(bars, chart.Value{
			Value: d.yValues[i],
			Label: d.xValues[i],
			Style: chart.Style{
				FillColor: drawing.ColorPurple.WithAlpha(100),
			},
		})
	}
	return bars
}
