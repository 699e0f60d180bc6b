package selection

import (
	"errors"
	"fmt"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// ErrUnknownItem is returned when a label is not part of the active breakdown.
var ErrUnknownItem = errors.New("unknown breakdown item")

// Board drives one concentration view that switches between breakdown kinds
// (sector, region, ...). Switching kind auto-selects the heaviest item.
type Board struct {
	table      models.BreakdownTable
	details    map[string][]models.AllocationItem
	controller *Controller
	kind       models.BreakdownKind
}

// NewBoard creates a board over a breakdown table. details maps an item
// label to its drill-down list and may be nil.
func NewBoard(table models.BreakdownTable, details map[string][]models.AllocationItem) *Board {
	return &Board{
		table:      table,
		details:    details,
		controller: NewController(),
	}
}

// SwitchTo changes the active breakdown and re-selects its largest item.
func (b *Board) SwitchTo(kind models.BreakdownKind) (models.SelectionState, error) {
	items, ok := b.table[kind]
	if !ok {
		return models.SelectionState{}, fmt.Errorf("unknown breakdown %q", kind)
	}
	b.kind = kind
	return b.controller.Reset(items), nil
}

// Toggle applies a click on an item of the active breakdown. Labels outside
// the active breakdown leave the selection unchanged.
func (b *Board) Toggle(label string) (models.SelectionState, error) {
	for _, item := range b.table[b.kind] {
		if item.Label == label {
			return b.controller.Toggle(label), nil
		}
	}
	return b.controller.State(), fmt.Errorf("toggle %q in %s: %w", label, b.kind, ErrUnknownItem)
}

// Kind returns the active breakdown kind.
func (b *Board) Kind() models.BreakdownKind {
	return b.kind
}

// Items returns the items of the active breakdown.
func (b *Board) Items() []models.AllocationItem {
	return b.table[b.kind]
}

// State returns the selection state of the active breakdown.
func (b *Board) State() models.SelectionState {
	return b.controller.State()
}

// Details returns the drill-down list of the selected item, nil when nothing is selected.
func (b *Board) Details() []models.AllocationItem {
	label, ok := b.controller.Selected()
	if !ok {
		return nil
	}
	return b.details[label]
}
