package chart

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// ErrTooFewPoints is returned when a raster chart is requested for fewer than two samples.
var ErrTooFewPoints = errors.New("need at least 2 data points")

// seriesStyles gives the well-known keys their house colours; other keys cycle the palette.
var seriesStyles = map[string]chart.Style{
	models.SeriesFund: {
		StrokeColor: drawing.ColorFromHex("2563eb"), // blue-600
		StrokeWidth: 2.5,
		FillColor:   drawing.ColorFromHex("2563eb").WithAlpha(32),
	},
	models.SeriesBenchmark: {
		StrokeColor:     drawing.ColorFromHex("9ca3af"), // gray-400
		StrokeWidth:     1.5,
		StrokeDashArray: []float64{5.0, 3.0},
	},
}

var palette = []string{"16a34a", "f59e0b", "dc2626", "7c3aed"}

// RenderPNG rasterises a windowed series with the same domain and ticks as
// BuildRenderModel, for hosts that want an image instead of paths.
func RenderPNG(series models.TimeSeries, keys []string, token models.RangeToken, title string, width, height int) ([]byte, error) {
	if len(series) < 2 {
		return nil, fmt.Errorf("%w, got %d", ErrTooFewPoints, len(series))
	}
	if len(keys) == 0 {
		keys = series.Keys()
	}

	domain := ComputeDomain(series, keys)
	if domain.Span() == 0 {
		domain.Max = domain.Min + 1
	}
	proj := NewProjector(domain, len(series))

	xValues := make([]float64, len(series))
	for i := range series {
		xValues[i] = float64(i)
	}

	chartSeries := make([]chart.Series, 0, len(keys))
	for i, k := range keys {
		style, ok := seriesStyles[k]
		if !ok {
			style = chart.Style{
				StrokeColor: drawing.ColorFromHex(palette[i%len(palette)]),
				StrokeWidth: 2,
			}
		}
		chartSeries = append(chartSeries, chart.ContinuousSeries{
			Name:    k,
			Style:   style,
			XValues: xValues,
			YValues: series.Values(k),
		})
	}

	var xTicks []chart.Tick
	for _, t := range XTicks(proj, series.Periods(), token) {
		xTicks = append(xTicks, chart.Tick{Value: float64(t.Index), Label: t.Label})
	}

	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Left: 10, Right: 20, Bottom: 10},
		},
		XAxis: chart.XAxis{
			Ticks: xTicks,
		},
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: domain.Min, Max: domain.Max},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return strconv.FormatFloat(f, 'f', 1, 64) + "%"
				}
				return ""
			},
		},
		Series: chartSeries,
	}

	graph.Elements = []chart.Renderable{
		chart.LegendLeft(&graph),
	}

	var buf bytes.Buffer
	if err := graph.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart render failed: %w", err)
	}

	return buf.Bytes(), nil
}
