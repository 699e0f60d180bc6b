// Package simulation synthesises a paired portfolio/benchmark value path from
// an allocation's expected return and derives the results-screen statistics.
package simulation

import (
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/bobmcallan/vire-wealth/internal/common"
	"github.com/bobmcallan/vire-wealth/internal/models"
)

// Series keys used when a simulation is handed to the chart layer.
const (
	KeyPortfolio = "portfolio"
	KeyBenchmark = models.SeriesBenchmark
)

const (
	startValue = 100.0
	// benchmarkNoiseShare is the fraction of the portfolio's monthly noise the benchmark shares.
	benchmarkNoiseShare = 0.3
	// dominanceMargin lifts a benchmark sample that fell below the portfolio.
	dominanceMargin = 1.02
)

// Params are the fixed inputs of the generator besides the expected return.
type Params struct {
	Months        int
	Volatility    float64
	BenchmarkRate float64
	Seed          uint64
}

// ParamsFromConfig builds generator parameters from the [simulation] config section.
func ParamsFromConfig(cfg common.SimulationConfig) Params {
	return Params{
		Months:        cfg.Months,
		Volatility:    cfg.Volatility,
		BenchmarkRate: cfg.BenchmarkRate,
		Seed:          cfg.Seed,
	}
}

// Simulate generates the paired series for an expected annual return (in
// percent). The result depends only on its arguments: the monthly noise comes
// from a PCG source seeded with p.Seed.
func Simulate(expectedAnnualReturn float64, p Params) models.SimulatedSeries {
	months := p.Months
	if months < 1 {
		months = 36
	}
	if math.IsNaN(expectedAnnualReturn) || math.IsInf(expectedAnnualReturn, 0) {
		expectedAnnualReturn = 0
	}

	noise := distuv.Uniform{
		Min: -p.Volatility,
		Max: p.Volatility,
		Src: rand.NewPCG(p.Seed, p.Seed^0x9e3779b97f4a7c15),
	}

	portfolio := make([]float64, months)
	benchmark := make([]float64, months)
	portfolio[0] = startValue
	benchmark[0] = startValue

	portfolioBase := expectedAnnualReturn / 100 / 12
	benchmarkBase := p.BenchmarkRate / 12
	for i := 1; i < months; i++ {
		vol := 0.0
		if p.Volatility > 0 {
			vol = noise.Rand()
		}
		portfolio[i] = portfolio[i-1] * (1 + portfolioBase + vol)
		benchmark[i] = benchmark[i-1] * (1 + benchmarkBase + benchmarkNoiseShare*vol)
	}

	enforceDominance(portfolio, benchmark)

	return models.SimulatedSeries{
		ExpectedAnnualReturn: expectedAnnualReturn,
		Portfolio:            portfolio,
		Benchmark:            benchmark,
	}
}

// enforceDominance lifts every benchmark sample below the portfolio to 2% above it.
func enforceDominance(portfolio, benchmark []float64) {
	for i := range benchmark {
		if benchmark[i] < portfolio[i] {
			benchmark[i] = portfolio[i] * dominanceMargin
		}
	}
}

// AsTimeSeries labels the monthly samples with periods starting at start so the
// chart layer can render them like any other series.
func AsTimeSeries(s models.SimulatedSeries, start time.Time) models.TimeSeries {
	ts := make(models.TimeSeries, s.Len())
	for i := range ts {
		ts[i] = models.TimeSeriesPoint{
			Period: start.AddDate(0, i, 0).Format("2006-01"),
			Values: map[string]float64{
				KeyPortfolio: s.Portfolio[i],
				KeyBenchmark: s.Benchmark[i],
			},
		}
	}
	return ts
}

// Engine memoises Simulate on the expected annual return. Only a different
// expected return regenerates the series; every other caller (hover, tab
// switches, re-renders) gets the cached value.
type Engine struct {
	params Params
	logger *common.Logger

	mu          sync.Mutex
	cached      *models.SimulatedSeries
	generations int
}

// NewEngine creates a memoising engine.
func NewEngine(params Params, logger *common.Logger) *Engine {
	return &Engine{params: params, logger: logger}
}

// Series returns the simulated series for expectedAnnualReturn, regenerating
// only when it differs from the cached key. Callers must not modify the slices.
func (e *Engine) Series(expectedAnnualReturn float64) models.SimulatedSeries {
	if math.IsNaN(expectedAnnualReturn) || math.IsInf(expectedAnnualReturn, 0) {
		expectedAnnualReturn = 0
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.cached != nil && e.cached.ExpectedAnnualReturn == expectedAnnualReturn {
		e.logger.Debug().Float64("expected_return", expectedAnnualReturn).Msg("Simulation cache hit")
		return *e.cached
	}

	start := time.Now()
	s := Simulate(expectedAnnualReturn, e.params)
	e.cached = &s
	e.generations++

	e.logger.Info().
		Float64("expected_return", expectedAnnualReturn).
		Int("months", s.Len()).
		Int("generation", e.generations).
		Dur("elapsed", time.Since(start)).
		Msg("Simulation regenerated")

	return s
}

// Generations returns how many times the series has been regenerated.
func (e *Engine) Generations() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.generations
}

// Months returns the configured series length.
func (e *Engine) Months() int {
	if e.params.Months < 1 {
		return 36
	}
	return e.params.Months
}

// Stats derives the headline statistics of a simulated series.
func (e *Engine) Stats(s models.SimulatedSeries) models.SimulationStats {
	return Stats(s)
}
