// Package selection implements click-to-toggle highlighting of allocation
// breakdown items (pie and treemap segments) and their drill-down lists.
package selection

import (
	"sync"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// Controller is a single-select state machine with deselect-on-repeat:
// none → X on click X, X → none on click X, X → Y on click Y.
type Controller struct {
	mu       sync.Mutex
	selected string
	has      bool
}

// NewController returns a controller with nothing selected.
func NewController() *Controller {
	return &Controller{}
}

// Toggle applies a click on label and returns the resulting state.
func (c *Controller) Toggle(label string) models.SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.has && c.selected == label {
		c.has = false
		c.selected = ""
	} else {
		c.has = true
		c.selected = label
	}
	return c.stateLocked()
}

// Reset re-initialises the controller to the highest-percentage item (the
// first one on ties). An empty breakdown leaves nothing selected.
func (c *Controller) Reset(items []models.AllocationItem) models.SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.has = false
	c.selected = ""
	if label, ok := Argmax(items); ok {
		c.has = true
		c.selected = label
	}
	return c.stateLocked()
}

// Clear deselects.
func (c *Controller) Clear() {
	c.mu.Lock()
	c.has = false
	c.selected = ""
	c.mu.Unlock()
}

// Selected returns the selected label, if any.
func (c *Controller) Selected() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected, c.has
}

// State returns the current selection state.
func (c *Controller) State() models.SelectionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stateLocked()
}

func (c *Controller) stateLocked() models.SelectionState {
	if !c.has {
		return models.SelectionState{}
	}
	label := c.selected
	return models.SelectionState{SelectedLabel: &label}
}

// Argmax returns the label with the highest percentage; ties keep the first.
func Argmax(items []models.AllocationItem) (string, bool) {
	if len(items) == 0 {
		return "", false
	}
	best := 0
	for i := 1; i < len(items); i++ {
		if items[i].Percentage > items[best].Percentage {
			best = i
		}
	}
	return items[best].Label, true
}
