package drawdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

func TestRunningPeak(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		wantDD   float64
		wantPeak int
		wantLow  int
		wantRec  int
	}{
		{"reference example", []float64{100, 120, 90, 95}, 30, 1, 2, -1},
		{"recovers", []float64{100, 120, 90, 125}, 30, 1, 2, 3},
		{"recovers exactly at peak", []float64{10, 5, 10}, 5, 0, 1, 2},
		{"monotone up", []float64{1, 2, 3, 4}, 0, 0, 0, -1},
		{"monotone down", []float64{4, 3, 2, 1}, 3, 0, 3, -1},
		{"later deeper drawdown from new peak", []float64{100, 90, 150, 100, 140}, 50, 2, 3, -1},
		{"single point", []float64{42}, 0, 0, 0, -1},
		{"negative returns", []float64{-1, -5, -2, -8}, 7, 0, 3, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := RunningPeak(tt.values)
			assert.InDelta(t, tt.wantDD, res.MaxDrawdown, 1e-9)
			assert.Equal(t, tt.wantPeak, res.PeakIndex)
			assert.Equal(t, tt.wantLow, res.TroughIndex)
			assert.Equal(t, tt.wantRec, res.RecoveryIndex)
		})
	}
}

func TestRunningPeak_Empty(t *testing.T) {
	res := RunningPeak(nil)
	assert.Equal(t, models.DrawdownResult{RecoveryIndex: -1}, res)
}

func TestRunningPeak_OnlyLooksBackward(t *testing.T) {
	// The 200 at the end must not be treated as a peak for the earlier 50.
	res := RunningPeak([]float64{100, 50, 200})
	assert.InDelta(t, 50, res.MaxDrawdown, 1e-9)
	assert.Equal(t, 0, res.PeakIndex)
	assert.Equal(t, 1, res.TroughIndex)
	assert.Equal(t, 2, res.RecoveryIndex)
}

func TestPairwisePercent(t *testing.T) {
	res := PairwisePercent([]float64{100, 120, 90, 95})
	assert.InDelta(t, 25, res.MaxDrawdown, 1e-9) // (120-90)/120
	assert.Equal(t, 1, res.PeakIndex)
	assert.Equal(t, 2, res.TroughIndex)
}

func TestPairwisePercent_DiffersFromRunningPeak(t *testing.T) {
	// Absolute drop is larger from 200→150, percentage drop larger from 20→10.
	values := []float64{20, 10, 200, 150}

	abs := RunningPeak(values)
	assert.InDelta(t, 50, abs.MaxDrawdown, 1e-9)
	assert.Equal(t, 2, abs.PeakIndex)

	pct := PairwisePercent(values)
	assert.InDelta(t, 50, pct.MaxDrawdown, 1e-9)
	assert.Equal(t, 0, pct.PeakIndex)
	assert.Equal(t, 1, pct.TroughIndex)
	assert.Equal(t, 2, pct.RecoveryIndex)
}

func TestPairwisePercent_SkipsZeroBase(t *testing.T) {
	res := PairwisePercent([]float64{0, 10, 5})
	assert.InDelta(t, 50, res.MaxDrawdown, 1e-9)
	assert.Equal(t, 1, res.PeakIndex)
	assert.Equal(t, 2, res.TroughIndex)
}

func TestPairwisePercent_NoDecline(t *testing.T) {
	res := PairwisePercent([]float64{1, 2, 3})
	assert.Equal(t, 0.0, res.MaxDrawdown)
	assert.Equal(t, -1, res.RecoveryIndex)
}

func TestUnderwater(t *testing.T) {
	got := Underwater([]float64{100, 120, 90, 130})
	assert.Equal(t, []float64{0, 0, -30, 0}, got)
	assert.Empty(t, Underwater(nil))
}
