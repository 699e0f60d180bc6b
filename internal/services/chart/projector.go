// Package chart projects time series into a renderer-agnostic chart model:
// normalised coordinates, smoothed SVG-style paths, axis ticks and hover lookup.
package chart

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// Extent is the size of normalised chart space on both axes.
const Extent = 100.0

// ComputeDomain returns the value range of the given keys over the window.
// The minimum is pulled down to zero when the data does not go below it, so
// the chart always shows a zero baseline. Non-finite values are ignored.
func ComputeDomain(series models.TimeSeries, keys []string) models.ChartDomain {
	values := make([]float64, 0, len(series)*len(keys))
	for _, p := range series {
		for _, k := range keys {
			v, ok := p.Values[k]
			if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			values = append(values, v)
		}
	}
	return DomainOf(values)
}

// DomainOf returns the zero-anchored domain of a flat list of values.
func DomainOf(values []float64) models.ChartDomain {
	if len(values) == 0 {
		return models.ChartDomain{}
	}
	return models.ChartDomain{
		Min: math.Min(floats.Min(values), 0),
		Max: floats.Max(values),
	}
}

// Projector maps series indices and values into normalised chart space.
type Projector struct {
	domain models.ChartDomain
	n      int
}

// NewProjector creates a projector for n samples over domain.
func NewProjector(domain models.ChartDomain, n int) *Projector {
	return &Projector{domain: domain, n: n}
}

// Domain returns the projector's value domain.
func (p *Projector) Domain() models.ChartDomain {
	return p.domain
}

// XFor returns the horizontal position of sample i.
func (p *Projector) XFor(i int) float64 {
	last := p.n - 1
	if last < 1 {
		last = 1
	}
	return float64(i) / float64(last) * Extent
}

// YFor returns the vertical position of value v; larger values sit higher (smaller y).
// A zero-width domain maps every value to the vertical centre.
func (p *Projector) YFor(v float64) float64 {
	span := p.domain.Span()
	if span == 0 || math.IsNaN(span) || math.IsInf(span, 0) {
		return Extent / 2
	}
	return Extent - (v-p.domain.Min)/span*Extent
}

// Project converts a value slice into chart points.
func (p *Projector) Project(values []float64) []models.ChartPoint {
	pts := make([]models.ChartPoint, len(values))
	for i, v := range values {
		pts[i] = models.ChartPoint{X: p.XFor(i), Y: p.YFor(v)}
	}
	return pts
}

// SmoothPath returns a cubic Bézier path through points. Each segment's
// control points sit at the horizontal midpoint of the segment, at the
// start and end y respectively. Fewer than two points give an empty path.
func SmoothPath(points []models.ChartPoint) string {
	if len(points) < 2 {
		return ""
	}

	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, points[0].X, points[0].Y)
	for i := 1; i < len(points); i++ {
		p0, p1 := points[i-1], points[i]
		cx := p0.X + (p1.X-p0.X)/2
		b.WriteString(" C ")
		writePoint(&b, cx, p0.Y)
		b.WriteByte(' ')
		writePoint(&b, cx, p1.Y)
		b.WriteByte(' ')
		writePoint(&b, p1.X, p1.Y)
	}
	return b.String()
}

// AreaPath closes the smoothed outline down to the chart baseline for filled areas.
func AreaPath(points []models.ChartPoint) string {
	outline := SmoothPath(points)
	if outline == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(outline)
	b.WriteString(" L ")
	writePoint(&b, points[len(points)-1].X, Extent)
	b.WriteString(" L ")
	writePoint(&b, points[0].X, Extent)
	b.WriteString(" Z")
	return b.String()
}

func writePoint(b *strings.Builder, x, y float64) {
	b.WriteString(formatCoord(x))
	b.WriteByte(',')
	b.WriteString(formatCoord(y))
}

// formatCoord rounds to two decimals and drops trailing zeros.
func formatCoord(v float64) string {
	r := math.Round(v*100) / 100
	if r == 0 {
		r = 0 // normalise -0
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
