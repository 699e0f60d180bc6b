package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func point(period string, fund, bench float64) TimeSeriesPoint {
	return TimeSeriesPoint{Period: period, Values: map[string]float64{SeriesFund: fund, SeriesBenchmark: bench}}
}

func TestTimeSeries_KeysAndValues(t *testing.T) {
	ts := TimeSeries{point("2025-01", 1, 2), point("2025-02", 3, 4)}

	assert.Equal(t, []string{SeriesBenchmark, SeriesFund}, ts.Keys())
	assert.Equal(t, []float64{1, 3}, ts.Values(SeriesFund))
	assert.Equal(t, []float64{2, 4}, ts.Values(SeriesBenchmark))
	assert.Equal(t, []string{"2025-01", "2025-02"}, ts.Periods())
}

func TestTimeSeries_EmptyKeys(t *testing.T) {
	var ts TimeSeries
	assert.Nil(t, ts.Keys())
	assert.Empty(t, ts.Values(SeriesFund))
	assert.NoError(t, ts.Validate())
}

func TestTimeSeries_Validate(t *testing.T) {
	tests := []struct {
		name    string
		series  TimeSeries
		wantErr bool
	}{
		{"consistent", TimeSeries{point("2025-01", 1, 2), point("2025-01", 2, 3)}, false},
		{"missing key", TimeSeries{
			point("2025-01", 1, 2),
			{Period: "2025-02", Values: map[string]float64{SeriesFund: 1}},
		}, true},
		{"renamed key", TimeSeries{
			point("2025-01", 1, 2),
			{Period: "2025-02", Values: map[string]float64{SeriesFund: 1, "index": 2}},
		}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.series.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrInconsistentSeries))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestParseRangeToken(t *testing.T) {
	for _, in := range []string{"1m", "3M", " 6m ", "1y", "ytd"} {
		_, err := ParseRangeToken(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseRangeToken("5Y")
	assert.True(t, errors.Is(err, ErrUnknownRange))
}

func TestParseDrawdownPeriod(t *testing.T) {
	p, err := ParseDrawdownPeriod("more")
	require.NoError(t, err)
	assert.Equal(t, DrawdownMore, p)

	_, err = ParseDrawdownPeriod("1M")
	assert.True(t, errors.Is(err, ErrUnknownRange))
}

func TestBreakdownTable_LookupAndResidual(t *testing.T) {
	table := BreakdownTable{
		BreakdownSector: {
			{Label: "Technology", Percentage: 41.2},
			{Label: "Financials", Percentage: 18.5},
		},
	}

	it, ok := table.Lookup(BreakdownSector, "Financials")
	require.True(t, ok)
	assert.Equal(t, 18.5, it.Percentage)

	_, ok = table.Lookup(BreakdownRegion, "Financials")
	assert.False(t, ok)

	assert.Equal(t, 41.2, table.Weight(BreakdownSector, "Technology"))
	assert.Equal(t, 0.0, table.Weight(BreakdownSector, "Energy"))
	assert.InDelta(t, 40.3, table.Residual(BreakdownSector), 1e-9)
	assert.Equal(t, 100.0, table.Residual(BreakdownRegion))
}
