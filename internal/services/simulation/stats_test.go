package simulation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

func TestCumulativeReturn(t *testing.T) {
	assert.InDelta(t, 25, CumulativeReturn([]float64{100, 110, 125}), 1e-9)
	assert.InDelta(t, -10, CumulativeReturn([]float64{100, 90}), 1e-9)
	assert.Equal(t, 0.0, CumulativeReturn(nil))
}

func TestAnnualizedReturn(t *testing.T) {
	// 36 months, ending at 133.1 → 10% a year
	values := []float64{100, 133.1}
	assert.InDelta(t, 10, AnnualizedReturn(values, 36), 1e-9)

	// 12 months: annualised equals cumulative
	assert.InDelta(t, 7, AnnualizedReturn([]float64{100, 107}, 12), 1e-9)

	assert.Equal(t, 0.0, AnnualizedReturn(nil, 36))
	assert.InDelta(t, 7, AnnualizedReturn([]float64{100, 107}, 0), 1e-9)
	assert.Equal(t, -100.0, AnnualizedReturn([]float64{100, 0}, 36))
}

func TestSharpeRatio_FixedDivisor(t *testing.T) {
	assert.InDelta(t, 0.6, SharpeRatio(9), 1e-12)
}

func TestStats(t *testing.T) {
	s := models.SimulatedSeries{
		Portfolio: []float64{100, 120, 90, 121},
		Benchmark: []float64{100, 125, 110, 130},
	}
	st := Stats(s)

	assert.InDelta(t, 21, st.PortfolioCumulative, 1e-9)
	assert.InDelta(t, 30, st.BenchmarkCumulative, 1e-9)
	assert.InDelta(t, -9, st.ExcessReturn, 1e-9)

	wantAnn := (math.Pow(1.21, 1/(4.0/12)) - 1) * 100
	assert.InDelta(t, wantAnn, st.PortfolioAnnualized, 1e-9)
	assert.InDelta(t, wantAnn/15, st.SharpeRatio, 1e-9)

	assert.InDelta(t, 30, st.MaxDrawdown.MaxDrawdown, 1e-9)
	assert.Equal(t, 1, st.MaxDrawdown.PeakIndex)
	assert.Equal(t, 2, st.MaxDrawdown.TroughIndex)
	assert.Equal(t, 3, st.MaxDrawdown.RecoveryIndex)
}

func TestStats_FromSimulation(t *testing.T) {
	s := Simulate(8, testParams())
	st := Stats(s)
	assert.InDelta(t, st.PortfolioCumulative-st.BenchmarkCumulative, st.ExcessReturn, 1e-12)
	assert.LessOrEqual(t, st.ExcessReturn, 0.0, "benchmark dominates at the last sample")
}

func TestMonthlyReturns(t *testing.T) {
	r := MonthlyReturns([]float64{100, 110, 99})
	require.Len(t, r, 2)
	assert.InDelta(t, 0.1, r[0], 1e-12)
	assert.InDelta(t, -0.1, r[1], 1e-12)

	assert.Nil(t, MonthlyReturns([]float64{100}))
	assert.Len(t, MonthlyReturns([]float64{0, 5, 10}), 1)
}

func TestVolatility(t *testing.T) {
	assert.InDelta(t, math.Sqrt(0.02)*math.Sqrt(12)*100, Volatility([]float64{100, 110, 99}), 1e-6)
	assert.InDelta(t, 0, Volatility([]float64{100, 101, 102.01, 103.0301}), 1e-9)
	assert.Equal(t, 0.0, Volatility([]float64{100, 101}))

	p := testParams()
	p.Volatility = 0
	assert.InDelta(t, 0, Stats(Simulate(9, p)).Volatility, 1e-9)
	assert.Greater(t, Stats(Simulate(9, testParams())).Volatility, 0.0)
}
