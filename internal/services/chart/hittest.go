package chart

import (
	"math"
	"sync"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// NearestIndex maps a pointer x-offset within a container of the given width
// to the nearest of n sample indices, clamped to [0, n-1]. It returns -1 when
// there are no samples.
func NearestIndex(pointerX, width float64, n int) int {
	if n <= 0 {
		return -1
	}
	if width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) || math.IsNaN(pointerX) {
		return 0
	}
	idx := math.Round(pointerX / width * float64(n-1))
	if math.IsNaN(idx) {
		return 0
	}
	if idx < 0 {
		return 0
	}
	if idx > float64(n-1) {
		return n - 1
	}
	return int(idx)
}

// HoverTracker holds hover state for one rendered, already-windowed series.
// It only reads the captured series; moving the pointer never recomputes it.
//
// Lookup is stateless and is what request-scoped hosts such as the REST
// handler use. Move, Leave and Current keep the active hover between pointer
// events for in-process hosts that hold one tracker per rendered chart.
type HoverTracker struct {
	mu        sync.Mutex
	series    models.TimeSeries
	projector *Projector
	current   *models.HoverResult
}

// NewHoverTracker binds a tracker to a windowed series.
func NewHoverTracker(series models.TimeSeries) *HoverTracker {
	return &HoverTracker{
		series:    series,
		projector: NewProjector(models.ChartDomain{}, len(series)),
	}
}

// Lookup returns the tooltip data for a pointer position without changing hover state.
func (h *HoverTracker) Lookup(pointerX, width float64) (models.HoverResult, bool) {
	idx := NearestIndex(pointerX, width, len(h.series))
	if idx < 0 {
		return models.HoverResult{}, false
	}
	p := h.series[idx]
	values := make(map[string]float64, len(p.Values))
	for k, v := range p.Values {
		values[k] = v
	}
	return models.HoverResult{
		Index:  idx,
		Period: p.Period,
		X:      h.projector.XFor(idx),
		Values: values,
	}, true
}

// Move updates hover state for a pointer position.
func (h *HoverTracker) Move(pointerX, width float64) (models.HoverResult, bool) {
	res, ok := h.Lookup(pointerX, width)

	h.mu.Lock()
	defer h.mu.Unlock()
	if !ok {
		h.current = nil
		return res, false
	}
	h.current = &res
	return res, true
}

// Leave clears hover state immediately.
func (h *HoverTracker) Leave() {
	h.mu.Lock()
	h.current = nil
	h.mu.Unlock()
}

// Current returns the active hover result, if any.
func (h *HoverTracker) Current() (models.HoverResult, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.current == nil {
		return models.HoverResult{}, false
	}
	return *h.current, true
}
