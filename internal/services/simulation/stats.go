package simulation

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/drawdown"
)

// sharpeDivisor is the fixed volatility placeholder used by the displayed Sharpe ratio.
const sharpeDivisor = 15.0

// CumulativeReturn returns (last/100 - 1) * 100.
func CumulativeReturn(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return (values[len(values)-1]/startValue - 1) * 100
}

// AnnualizedReturn returns (pow(last/100, 1/(months/12)) - 1) * 100.
func AnnualizedReturn(values []float64, months int) float64 {
	if len(values) == 0 {
		return 0
	}
	if months <= 0 {
		return CumulativeReturn(values)
	}
	years := float64(months) / 12
	ratio := values[len(values)-1] / startValue
	if ratio <= 0 {
		return -100
	}
	return (math.Pow(ratio, 1/years) - 1) * 100
}

// SharpeRatio is annualised return over a fixed divisor, not a measured volatility.
func SharpeRatio(annualized float64) float64 {
	return annualized / sharpeDivisor
}

// MonthlyReturns returns the step returns v[i]/v[i-1]-1. Steps from zero are skipped.
func MonthlyReturns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		out = append(out, values[i]/values[i-1]-1)
	}
	return out
}

// Volatility is the annualised sample standard deviation of monthly returns, in percent.
// Fewer than two returns give zero.
func Volatility(values []float64) float64 {
	returns := MonthlyReturns(values)
	if len(returns) < 2 {
		return 0
	}
	return stat.StdDev(returns, nil) * math.Sqrt(12) * 100
}

// Stats derives the results-screen figures from a simulated series.
func Stats(s models.SimulatedSeries) models.SimulationStats {
	months := s.Len()
	pCum := CumulativeReturn(s.Portfolio)
	bCum := CumulativeReturn(s.Benchmark)
	pAnn := AnnualizedReturn(s.Portfolio, months)

	return models.SimulationStats{
		PortfolioCumulative: pCum,
		BenchmarkCumulative: bCum,
		PortfolioAnnualized: pAnn,
		BenchmarkAnnualized: AnnualizedReturn(s.Benchmark, months),
		ExcessReturn:        pCum - bCum,
		SharpeRatio:         SharpeRatio(pAnn),
		Volatility:          Volatility(s.Portfolio),
		MaxDrawdown:         drawdown.RunningPeak(s.Portfolio),
	}
}
