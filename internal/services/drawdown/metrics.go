package drawdown

import (
	"fmt"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// PeriodMetrics are the precomputed risk figures shown for one drawdown period.
type PeriodMetrics struct {
	MaxDrawdown    float64 `json:"max_drawdown"`
	RecoveryMonths int     `json:"recovery_months"`
	Volatility     float64 `json:"volatility"`
	PeakPeriod     string  `json:"peak_period,omitempty"`
	TroughPeriod   string  `json:"trough_period,omitempty"`
}

// MetricTable maps drawdown periods to precomputed metrics.
// Selecting a period is a lookup; it never re-runs the analyzer.
type MetricTable map[models.DrawdownPeriod]PeriodMetrics

// Lookup returns the metrics for a period.
func (t MetricTable) Lookup(period models.DrawdownPeriod) (PeriodMetrics, error) {
	m, ok := t[period]
	if !ok {
		return PeriodMetrics{}, fmt.Errorf("no drawdown metrics for period %q", period)
	}
	return m, nil
}

// Curve returns the illustrative curve for a period's magnitude.
func (t MetricTable) Curve(period models.DrawdownPeriod, points int) ([]float64, error) {
	m, err := t.Lookup(period)
	if err != nil {
		return nil, err
	}
	return Synthetic(m.MaxDrawdown, points), nil
}
