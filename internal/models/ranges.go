package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownRange is returned when a range or period token is not recognised.
var ErrUnknownRange = errors.New("unknown range token")

// RangeToken selects a series window.
type RangeToken string

const (
	Range1M  RangeToken = "1M"
	Range3M  RangeToken = "3M"
	Range6M  RangeToken = "6M"
	Range1Y  RangeToken = "1Y"
	RangeYTD RangeToken = "YTD"
)

// RangeTokens lists the tokens in display order.
var RangeTokens = []RangeToken{Range1M, Range3M, Range6M, Range1Y, RangeYTD}

// ParseRangeToken parses a case-insensitive range token.
func ParseRangeToken(s string) (RangeToken, error) {
	t := RangeToken(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range RangeTokens {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownRange)
}

// DrawdownPeriod selects a precomputed drawdown metric table. It never re-runs the analyzer.
type DrawdownPeriod string

const (
	Drawdown3M   DrawdownPeriod = "3M"
	Drawdown6M   DrawdownPeriod = "6M"
	Drawdown1Y   DrawdownPeriod = "1Y"
	Drawdown3Y   DrawdownPeriod = "3Y"
	DrawdownMore DrawdownPeriod = "More"
)

// DrawdownPeriods lists the periods in display order.
var DrawdownPeriods = []DrawdownPeriod{Drawdown3M, Drawdown6M, Drawdown1Y, Drawdown3Y, DrawdownMore}

// ParseDrawdownPeriod parses a case-insensitive drawdown period.
func ParseDrawdownPeriod(s string) (DrawdownPeriod, error) {
	for _, known := range DrawdownPeriods {
		if strings.EqualFold(strings.TrimSpace(s), string(known)) {
			return known, nil
		}
	}
	return "", fmt.Errorf("%q: %w", s, ErrUnknownRange)
}
