package drawdown

import (
	"math"
)

// DefaultSyntheticPoints is the curve length used when callers pass no count.
const DefaultSyntheticPoints = 36

// phase anchors as (position in [0,1], fraction of target).
// mild dip → partial recovery → sharp decline to target → partial recovery → stabilisation
var syntheticAnchors = [][2]float64{
	{0.00, 0.00},
	{0.15, 0.25},
	{0.30, 0.10},
	{0.50, 1.00},
	{0.75, 0.40},
	{1.00, 0.35},
}

// troughPosition must match the anchor whose fraction is 1.
const troughPosition = 0.50

// wobble is the amplitude (as a fraction of target) of the deterministic ripple.
const wobble = 0.03

// SyntheticTroughIndex is the index at which Synthetic reaches the target exactly.
func SyntheticTroughIndex(points int) int {
	if points <= 0 {
		points = DefaultSyntheticPoints
	}
	return int(math.Round(troughPosition * float64(points-1)))
}

// Synthetic produces an illustrative drawdown curve for panels that only know
// the target magnitude. The curve is deterministic, every value lies in
// [target, 0], and the value at SyntheticTroughIndex is exactly target.
// A positive target is treated as its negative.
func Synthetic(target float64, points int) []float64 {
	if points <= 0 {
		points = DefaultSyntheticPoints
	}
	target = -math.Abs(target)

	out := make([]float64, points)
	if points == 1 {
		out[0] = target
		return out
	}

	trough := SyntheticTroughIndex(points)
	for i := range out {
		pos := float64(i) / float64(points-1)
		frac := interpolate(pos)
		if i != 0 && i != points-1 {
			frac += wobble * math.Sin(float64(i)*1.7)
		}
		out[i] = clampRange(target*frac, target, 0)
	}
	out[trough] = target

	return out
}

// interpolate returns the anchor fraction at pos by linear interpolation.
func interpolate(pos float64) float64 {
	for k := 1; k < len(syntheticAnchors); k++ {
		a, b := syntheticAnchors[k-1], syntheticAnchors[k]
		if pos <= b[0] {
			t := (pos - a[0]) / (b[0] - a[0])
			return a[1] + t*(b[1]-a[1])
		}
	}
	return syntheticAnchors[len(syntheticAnchors)-1][1]
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
