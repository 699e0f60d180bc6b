package models

// AllocationItem is one labelled slice of a breakdown (asset class, sector, region, holding).
// Percentages are supplied independently and need not sum to 100.
type AllocationItem struct {
	Label          string   `json:"label"`
	Percentage     float64  `json:"percentage"`
	AmountValue    string   `json:"amount_value,omitempty"`
	Color          string   `json:"color,omitempty"`
	CurrencyCode   string   `json:"currency_code,omitempty"`
	DailyChangePct *float64 `json:"daily_change_pct,omitempty"`
}

// BreakdownKind names one allocation breakdown.
type BreakdownKind string

const (
	BreakdownAssetClass  BreakdownKind = "asset_class"
	BreakdownSector      BreakdownKind = "sector"
	BreakdownRegion      BreakdownKind = "region"
	BreakdownTopHoldings BreakdownKind = "top_holdings"
)

// BreakdownTable is the uniform breakdown-kind → items lookup shared by every screen.
type BreakdownTable map[BreakdownKind][]AllocationItem

// Lookup returns the item with the given label in one breakdown.
func (t BreakdownTable) Lookup(kind BreakdownKind, label string) (AllocationItem, bool) {
	for _, it := range t[kind] {
		if it.Label == label {
			return it, true
		}
	}
	return AllocationItem{}, false
}

// Weight returns the percentage of a label in one breakdown, zero when absent.
func (t BreakdownTable) Weight(kind BreakdownKind, label string) float64 {
	it, _ := t.Lookup(kind, label)
	return it.Percentage
}

// Residual returns 100 minus the summed percentages, floored at zero.
// Hosts display it as an "Others" entry.
func (t BreakdownTable) Residual(kind BreakdownKind) float64 {
	sum := 0.0
	for _, it := range t[kind] {
		sum += it.Percentage
	}
	if sum >= 100 {
		return 0
	}
	return 100 - sum
}

// Instrument is a selectable fund in the allocation simulator.
// Category drives the assumed annual return.
type Instrument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
}

// AllocationWeight maps an instrument ID to a percentage in [0,100].
type AllocationWeight map[string]float64

// SelectionState is the highlighted item of one breakdown; nil means none selected.
type SelectionState struct {
	SelectedLabel *string `json:"selected_label"`
}
