package chart

import (
	"math"
	"sort"
	"strconv"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

var yTickFractions = []float64{1, 0.8, 0.6, 0.4, 0.2}

// xTickTargets is the number of period labels shown per range.
var xTickTargets = map[models.RangeToken]int{
	models.Range1M:  3,
	models.Range3M:  4,
	models.Range6M:  6,
	models.RangeYTD: 6,
	models.Range1Y:  8,
}

const (
	minXTicks = 2
	maxXTicks = 8
)

// YTicks returns value ticks ceil(max*f) for the standard fractions plus a
// base tick (zero, or floor(min) when the domain goes negative), deduplicated
// and sorted descending.
func YTicks(p *Projector) []models.AxisTick {
	d := p.Domain()

	seen := make(map[float64]bool)
	values := make([]float64, 0, len(yTickFractions)+1)
	add := func(v float64) {
		if v == 0 {
			v = 0 // normalise -0
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || seen[v] {
			return
		}
		seen[v] = true
		values = append(values, v)
	}

	for _, f := range yTickFractions {
		add(math.Ceil(d.Max * f))
	}
	if d.Min < 0 {
		add(math.Floor(d.Min))
	} else {
		add(0)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(values)))

	ticks := make([]models.AxisTick, len(values))
	for i, v := range values {
		ticks[i] = models.AxisTick{
			Value: v,
			Label: strconv.FormatFloat(v, 'f', -1, 64) + "%",
			Pos:   clamp(p.YFor(v), 0, Extent),
		}
	}
	return ticks
}

// XTicks picks evenly spaced, strictly increasing sample indices to label,
// always including the first and last sample.
func XTicks(p *Projector, periods []string, token models.RangeToken) []models.AxisTick {
	n := len(periods)
	if n == 0 {
		return nil
	}
	if n == 1 {
		return []models.AxisTick{{Index: 0, Label: periods[0], Pos: p.XFor(0)}}
	}

	count, ok := xTickTargets[token]
	if !ok {
		count = maxXTicks
	}
	count = int(clamp(float64(count), minXTicks, maxXTicks))
	if count > n {
		count = n
	}

	ticks := make([]models.AxisTick, 0, count)
	last := -1
	for k := 0; k < count; k++ {
		idx := int(math.Round(float64(k) * float64(n-1) / float64(count-1)))
		if idx <= last {
			continue
		}
		last = idx
		ticks = append(ticks, models.AxisTick{Index: idx, Label: periods[idx], Pos: p.XFor(idx)})
	}
	return ticks
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
