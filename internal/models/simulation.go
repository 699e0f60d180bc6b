package models

// SimulatedSeries is a paired monthly value path indexed to 100.
// Portfolio and Benchmark always have equal length and Benchmark[i] >= Portfolio[i].
type SimulatedSeries struct {
	ExpectedAnnualReturn float64   `json:"expected_annual_return"`
	Portfolio            []float64 `json:"portfolio"`
	Benchmark            []float64 `json:"benchmark"`
}

// Len returns the number of samples.
func (s SimulatedSeries) Len() int {
	return len(s.Portfolio)
}

// SimulationStats are the figures shown on the simulator results screen.
type SimulationStats struct {
	PortfolioCumulative float64        `json:"portfolio_cumulative"`
	BenchmarkCumulative float64        `json:"benchmark_cumulative"`
	PortfolioAnnualized float64        `json:"portfolio_annualized"`
	BenchmarkAnnualized float64        `json:"benchmark_annualized"`
	ExcessReturn        float64        `json:"excess_return"`
	SharpeRatio         float64        `json:"sharpe_ratio"`
	Volatility          float64        `json:"volatility"`
	MaxDrawdown         DrawdownResult `json:"max_drawdown"`
}
