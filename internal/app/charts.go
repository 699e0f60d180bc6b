package app

import (
	"time"

	"github.com/bobmcallan/vire-wealth/internal/common"
	"github.com/bobmcallan/vire-wealth/internal/interfaces"
	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/chart"
	"github.com/bobmcallan/vire-wealth/internal/services/window"
)

// ChartService serves render models over the fixture series.
type ChartService struct {
	series models.TimeSeries
	cfg    common.ChartConfig
	now    interfaces.Clock
}

var _ interfaces.ChartService = (*ChartService)(nil)

// NewChartService binds a chart service to a series. A nil clock uses time.Now.
func NewChartService(series models.TimeSeries, cfg common.ChartConfig, now interfaces.Clock) *ChartService {
	if now == nil {
		now = time.Now
	}
	return &ChartService{series: series, cfg: cfg, now: now}
}

// Window returns the visible suffix for a range.
func (s *ChartService) Window(token models.RangeToken) models.TimeSeries {
	return window.Window(s.series, token, s.now())
}

// Render builds the render model for a range.
func (s *ChartService) Render(token models.RangeToken, keys []string) models.RenderModel {
	return chart.BuildRenderModel(s.Window(token), keys, token)
}

// Hover resolves a pointer position against the windowed series.
func (s *ChartService) Hover(token models.RangeToken, pointerX, width float64) (models.HoverResult, bool) {
	return chart.NewHoverTracker(s.Window(token)).Lookup(pointerX, width)
}

// PNG rasterises the windowed series at the configured size.
func (s *ChartService) PNG(token models.RangeToken, keys []string) ([]byte, error) {
	title := "Performance · " + string(token)
	return chart.RenderPNG(s.Window(token), keys, token, title, s.cfg.PNGWidth, s.cfg.PNGHeight)
}
