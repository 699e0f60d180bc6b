// Package models defines data structures for vire-wealth
package models

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInconsistentSeries is returned when points of one series carry different key sets.
var ErrInconsistentSeries = errors.New("inconsistent series keys")

// Well-known series keys used by the fixtures and the simulator.
const (
	SeriesFund      = "fund"
	SeriesBenchmark = "benchmark"
)

// TimeSeriesPoint is one sample of one or more named return series.
// Period is a coarse, string-sortable label such as "2025-01"; several
// points may share a period (intra-month samples).
type TimeSeriesPoint struct {
	Period string             `json:"period"`
	Values map[string]float64 `json:"values"`
}

// TimeSeries is an ordered, immutable sequence of points.
// Operations return new slices (or sub-slices) instead of mutating points.
type TimeSeries []TimeSeriesPoint

// Keys returns the sorted series keys of the first point.
func (ts TimeSeries) Keys() []string {
	if len(ts) == 0 {
		return nil
	}
	keys := make([]string, 0, len(ts[0].Values))
	for k := range ts[0].Values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Values extracts one named series. Missing values read as zero.
func (ts TimeSeries) Values(key string) []float64 {
	out := make([]float64, len(ts))
	for i, p := range ts {
		out[i] = p.Values[key]
	}
	return out
}

// Periods returns the period label of every point.
func (ts TimeSeries) Periods() []string {
	out := make([]string, len(ts))
	for i, p := range ts {
		out[i] = p.Period
	}
	return out
}

// Validate checks that every point carries the same set of keys.
func (ts TimeSeries) Validate() error {
	if len(ts) == 0 {
		return nil
	}
	want := ts[0].Values
	for i, p := range ts[1:] {
		if len(p.Values) != len(want) {
			return fmt.Errorf("point %d (%s): %w", i+1, p.Period, ErrInconsistentSeries)
		}
		for k := range want {
			if _, ok := p.Values[k]; !ok {
				return fmt.Errorf("point %d (%s) missing %q: %w", i+1, p.Period, k, ErrInconsistentSeries)
			}
		}
	}
	return nil
}

// ChartDomain is the value range of the visible window.
// Invariant: Max >= Min, and Min <= 0 whenever the data does not start below zero.
type ChartDomain struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Span returns Max - Min.
func (d ChartDomain) Span() float64 {
	return d.Max - d.Min
}
