// Package drawdown computes peak-to-trough statistics over value series.
//
// Two definitions coexist on purpose: RunningPeak is the standard
// backward-looking absolute drawdown used for performance charts, while
// PairwisePercent compares every earlier/later pair as a percentage of the
// earlier value and backs the percentage-based comparison panels.
package drawdown

import (
	"math"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// RunningPeak scans values once, tracking the highest value seen so far, and
// returns the largest absolute drop (peak - current) with the peak and trough
// indices that produced it. RecoveryIndex is filled in.
func RunningPeak(values []float64) models.DrawdownResult {
	res := models.DrawdownResult{RecoveryIndex: -1}
	if len(values) == 0 {
		return res
	}

	peak := values[0]
	peakIdx := 0
	for i, v := range values {
		if v > peak {
			peak = v
			peakIdx = i
		}
		if dd := peak - v; dd > res.MaxDrawdown {
			res.MaxDrawdown = dd
			res.PeakIndex = peakIdx
			res.TroughIndex = i
		}
	}

	res.RecoveryIndex = RecoveryIndex(values, res)
	return res
}

// Analyze is RunningPeak under the name the chart layer uses.
func Analyze(values []float64) models.DrawdownResult {
	return RunningPeak(values)
}

// PairwisePercent returns the largest (v[i]-v[j])/v[i]*100 over all i < j.
// Pairs starting at zero are skipped. A series that never declines reports 0.
func PairwisePercent(values []float64) models.DrawdownResult {
	res := models.DrawdownResult{RecoveryIndex: -1}
	for i := 0; i < len(values); i++ {
		if values[i] == 0 {
			continue
		}
		for j := i + 1; j < len(values); j++ {
			pct := (values[i] - values[j]) / values[i] * 100
			if pct > res.MaxDrawdown {
				res.MaxDrawdown = pct
				res.PeakIndex = i
				res.TroughIndex = j
			}
		}
	}
	if res.MaxDrawdown > 0 {
		res.RecoveryIndex = RecoveryIndex(values, res)
	}
	return res
}

// RecoveryIndex returns the first index after the trough whose value regains
// the peak value, or -1 if the series never recovers.
func RecoveryIndex(values []float64, res models.DrawdownResult) int {
	if res.MaxDrawdown <= 0 || res.PeakIndex < 0 || res.PeakIndex >= len(values) {
		return -1
	}
	peak := values[res.PeakIndex]
	for i := res.TroughIndex + 1; i < len(values); i++ {
		if values[i] >= peak {
			return i
		}
	}
	return -1
}

// Underwater returns, per index, the distance below the running peak (<= 0).
func Underwater(values []float64) []float64 {
	out := make([]float64, len(values))
	peak := math.Inf(-1)
	for i, v := range values {
		peak = math.Max(peak, v)
		out[i] = v - peak
	}
	return out
}
