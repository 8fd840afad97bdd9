package renderer

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/sgc/portfolio"
	"github.com/wcharczuk/go-chart"
)

// ChartFormat selects the image encoding of a chart.
type ChartFormat string

const (
	PNG ChartFormat = "png"
	SVG ChartFormat = "svg"
)

// ParseChartFormat returns the format for s, PNG when s is empty.
func ParseChartFormat(s string) (ChartFormat, error) {
	switch ChartFormat(s) {
	case "", PNG:
		return PNG, nil
	case SVG:
		return SVG, nil
	}
	return "", fmt.Errorf("unknown chart format %q, want png or svg", s)
}

// ContentType is the MIME type of the format.
func (f ChartFormat) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f ChartFormat) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

// ErrNotEnoughPoints is returned when a series is too short to be drawn.
var ErrNotEnoughPoints = errors.New("at least two points are needed to draw a chart")

// ValueChart draws the portfolio value series.
func ValueChart(w io.Writer, value portfolio.Series, format ChartFormat) error {
	if value.Len() < 2 {
		return ErrNotEnoughPoints
	}
	graph := newChart(timeSeries("Portfolio", value))
	return render(graph, w, format)
}

// ComparisonChart draws the rebased portfolio and benchmark series.
func ComparisonChart(w io.Writer, c portfolio.Comparison, format ChartFormat) error {
	if c.Portfolio.Len() < 2 {
		return ErrNotEnoughPoints
	}
	bench := timeSeries(c.Benchmark, c.BenchmarkSeries)
	bench.Style = chart.Style{
		Show:            true,
		StrokeDashArray: []float64{3.0, 3.0},
	}
	graph := newChart(timeSeries("Portfolio", c.Portfolio), bench)
	return render(graph, w, format)
}

func newChart(series ...chart.Series) chart.Chart {
	grid := chart.Style{
		Show:        true,
		StrokeColor: chart.ColorLightGray,
		StrokeWidth: 1.0,
	}
	graph := chart.Chart{
		Width:  1200,
		Height: 500,
		XAxis: chart.XAxis{
			Style:          chart.StyleShow(),
			TickPosition:   chart.TickPositionUnderTick,
			ValueFormatter: chart.TimeValueFormatterWithFormat("Jan 2 '06"),
			GridMajorStyle: grid,
		},
		YAxis: chart.YAxis{
			Style:          chart.StyleShow(),
			GridMajorStyle: grid,
		},
		Series: series,
	}
	graph.Elements = []chart.Renderable{
		chart.Legend(&graph),
	}
	return graph
}

func timeSeries(name string, s portfolio.Series) chart.TimeSeries {
	xv := make([]time.Time, 0, len(s))
	yv := make([]float64, 0, len(s))
	for _, p := range s {
		y, _ := p.Value.Float64()
		xv = append(xv, p.Date.Time())
		yv = append(yv, y)
	}
	return chart.TimeSeries{
		Name:    name,
		XValues: xv,
		YValues: yv,
	}
}

func render(graph chart.Chart, w io.Writer, format ChartFormat) error {
	if err := graph.Render(format.provider(), w); err != nil {
		return fmt.Errorf("rendering %s chart: %w", format, err)
	}
	return nil
}
