// Package allocation tracks the instruments a user picks in the allocation
// simulator and the percentage weight assigned to each.
package allocation

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// ErrUnknownInstrument is returned when an ID is not in the ledger's catalog.
var ErrUnknownInstrument = errors.New("unknown instrument")

var hundred = decimal.NewFromInt(100)

// Assumed annual returns by category keyword.
const (
	growthRate  = 0.11
	incomeRate  = 0.05
	defaultRate = 0.08
)

// Rate returns the assumed annual return for a category. "Growth" is checked
// before "Income", so a category naming both is treated as growth.
func Rate(category string) float64 {
	switch {
	case strings.Contains(category, "Growth"):
		return growthRate
	case strings.Contains(category, "Income"):
		return incomeRate
	default:
		return defaultRate
	}
}

// Ledger holds the ordered selection and its weights. Totals are recomputed
// on every read, never cached. A Ledger is not safe for concurrent use.
type Ledger struct {
	catalog  map[string]models.Instrument
	selected []string
	weights  models.AllocationWeight
}

// NewLedger creates an empty ledger over the given instrument catalog.
func NewLedger(catalog []models.Instrument) *Ledger {
	byID := make(map[string]models.Instrument, len(catalog))
	for _, inst := range catalog {
		byID[inst.ID] = inst
	}
	return &Ledger{
		catalog: byID,
		weights: make(models.AllocationWeight),
	}
}

// Toggle adds id to the selection if absent, or removes it (and its weight)
// if present. It reports whether id is selected afterwards.
func (l *Ledger) Toggle(id string) (bool, error) {
	if _, ok := l.catalog[id]; !ok {
		return false, fmt.Errorf("toggle %q: %w", id, ErrUnknownInstrument)
	}

	for i, sel := range l.selected {
		if sel == id {
			l.selected = append(l.selected[:i:i], l.selected[i+1:]...)
			delete(l.weights, id)
			return false, nil
		}
	}

	l.selected = append(l.selected, id)
	return true, nil
}

// IsSelected reports whether id is in the selection.
func (l *Ledger) IsSelected(id string) bool {
	for _, sel := range l.selected {
		if sel == id {
			return true
		}
	}
	return false
}

// SetWeight assigns a weight clamped to [0,100]. Other weights are left as
// they are. Weights for unselected ids are ignored and reported as false.
func (l *Ledger) SetWeight(id string, value float64) bool {
	if !l.IsSelected(id) {
		return false
	}
	switch {
	case math.IsNaN(value):
		value = 0
	case value < 0:
		value = 0
	case value > 100:
		value = 100
	}
	l.weights[id] = value
	return true
}

// EqualWeight gives every selected instrument round2(100/n) and the last one
// in selection order the remainder, so the total is exactly 100.
func (l *Ledger) EqualWeight() {
	n := len(l.selected)
	if n == 0 {
		return
	}

	share := hundred.DivRound(decimal.NewFromInt(int64(n)), 2)
	last := hundred.Sub(share.Mul(decimal.NewFromInt(int64(n - 1))))

	for i, id := range l.selected {
		if i == n-1 {
			l.weights[id] = last.InexactFloat64()
			continue
		}
		l.weights[id] = share.InexactFloat64()
	}
}

// Total returns the sum of weights rounded to two decimals.
func (l *Ledger) Total() float64 {
	return l.total().InexactFloat64()
}

func (l *Ledger) total() decimal.Decimal {
	sum := decimal.Zero
	for _, id := range l.selected {
		sum = sum.Add(decimal.NewFromFloat(l.weights[id]))
	}
	return sum.Round(2)
}

// CanConfirm reports whether the allocation is complete (total exactly 100 at
// two-decimal precision). Hosts gate the simulate action on it.
func (l *Ledger) CanConfirm() bool {
	return len(l.selected) > 0 && l.total().Equal(hundred)
}

// ExpectedAnnualReturn returns Σ weight × Rate(category) in percent.
func (l *Ledger) ExpectedAnnualReturn() float64 {
	sum := decimal.Zero
	for _, id := range l.selected {
		w := decimal.NewFromFloat(l.weights[id])
		r := decimal.NewFromFloat(Rate(l.catalog[id].Category))
		sum = sum.Add(w.Mul(r))
	}
	return sum.InexactFloat64()
}

// Selected returns the selected ids in selection order.
func (l *Ledger) Selected() []string {
	out := make([]string, len(l.selected))
	copy(out, l.selected)
	return out
}

// Weights returns a copy of the weights.
func (l *Ledger) Weights() models.AllocationWeight {
	out := make(models.AllocationWeight, len(l.weights))
	for k, v := range l.weights {
		out[k] = v
	}
	return out
}

// Breakdown returns the selection as allocation items for the results screen.
func (l *Ledger) Breakdown() []models.AllocationItem {
	items := make([]models.AllocationItem, 0, len(l.selected))
	for _, id := range l.selected {
		inst := l.catalog[id]
		items = append(items, models.AllocationItem{
			Label:      inst.Name,
			Percentage: l.weights[id],
		})
	}
	return items
}
