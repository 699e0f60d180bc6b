// Package window selects the visible suffix of a time series for a range token.
package window

import (
	"strings"
	"time"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// Fixed-count fallbacks used when the calendar lookup finds no match.
const (
	oneMonthSamples    = 3
	threeMonthFallback = 12
	sixMonthFallback   = 18
)

// Lookback returns the month offset from the latest period used by the
// calendar-aware tokens (3M, 6M). Other tokens report false.
func Lookback(token models.RangeToken) (int, bool) {
	switch token {
	case models.Range3M:
		return 2, true
	case models.Range6M:
		return 5, true
	}
	return 0, false
}

// Window returns the suffix of series selected by token. The result is always
// a sub-slice of the input, never reordered. now only matters for YTD.
//
// YTD is anchored on January of now's year: the window starts at the first
// period beginning with "<year>-01", and the whole series is returned when no
// such period exists.
func Window(series models.TimeSeries, token models.RangeToken, now time.Time) models.TimeSeries {
	if len(series) == 0 {
		return series[:0:0]
	}

	switch token {
	case models.Range1M:
		return lastN(series, oneMonthSamples)
	case models.Range3M:
		return sinceMonths(series, mustLookback(models.Range3M), threeMonthFallback)
	case models.Range6M:
		return sinceMonths(series, mustLookback(models.Range6M), sixMonthFallback)
	case models.RangeYTD:
		prefix := now.Format("2006") + "-01"
		for i, p := range series {
			if strings.HasPrefix(p.Period, prefix) {
				return series[i:]
			}
		}
		return series
	default:
		// 1Y and anything unrecognised show the whole series
		return series
	}
}

func mustLookback(token models.RangeToken) int {
	m, _ := Lookback(token)
	return m
}

// sinceMonths returns the suffix starting at the first period >= latest-months,
// or the last fallback samples when no period qualifies.
func sinceMonths(series models.TimeSeries, months, fallback int) models.TimeSeries {
	latest := series[len(series)-1].Period
	cutoff, ok := shiftMonths(latest, -months)
	if ok {
		for i, p := range series {
			if p.Period >= cutoff {
				return series[i:]
			}
		}
	}
	return lastN(series, fallback)
}

// shiftMonths moves a period label's YYYY-MM prefix by delta months.
func shiftMonths(period string, delta int) (string, bool) {
	if len(period) < 7 {
		return "", false
	}
	t, err := time.Parse("2006-01", period[:7])
	if err != nil {
		return "", false
	}
	return t.AddDate(0, delta, 0).Format("2006-01"), true
}

func lastN(series models.TimeSeries, n int) models.TimeSeries {
	if len(series) <= n {
		return series
	}
	return series[len(series)-n:]
}
