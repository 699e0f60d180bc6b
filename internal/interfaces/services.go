// Package interfaces defines service contracts for vire-wealth
package interfaces

import (
	"time"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

// ChartService produces chart render models from the loaded fixture series
type ChartService interface {
	// Window returns the visible suffix of the fixture series for a range
	Window(token models.RangeToken) models.TimeSeries

	// Render builds the render model for a range; empty keys render every series
	Render(token models.RangeToken, keys []string) models.RenderModel

	// Hover resolves a pointer position against the windowed series
	Hover(token models.RangeToken, pointerX, width float64) (models.HoverResult, bool)

	// PNG rasterises the windowed series
	PNG(token models.RangeToken, keys []string) ([]byte, error)
}

// SimulationService projects a confirmed allocation forward
type SimulationService interface {
	// Series returns the simulated portfolio and benchmark for an expected annual return (percent)
	Series(expectedAnnualReturn float64) models.SimulatedSeries

	// Stats derives the headline statistics of a simulated series
	Stats(series models.SimulatedSeries) models.SimulationStats

	// Months is the configured simulation length
	Months() int
}

// Clock supplies the current time for calendar-relative windows
type Clock func() time.Time
