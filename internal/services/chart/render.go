package chart

import (
	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/drawdown"
)

// BuildRenderModel composes domain, projected lines, axis ticks and the
// running-peak drawdown of the primary line for one windowed series.
// An empty keys list renders every key of the series.
func BuildRenderModel(series models.TimeSeries, keys []string, token models.RangeToken) models.RenderModel {
	if len(keys) == 0 {
		keys = series.Keys()
	}

	domain := ComputeDomain(series, keys)
	proj := NewProjector(domain, len(series))
	periods := series.Periods()

	lines := make([]models.ChartLine, 0, len(keys))
	for _, k := range keys {
		pts := proj.Project(series.Values(k))
		lines = append(lines, models.ChartLine{
			Key:      k,
			Points:   pts,
			Path:     SmoothPath(pts),
			AreaPath: AreaPath(pts),
		})
	}

	model := models.RenderModel{
		Range:   token,
		Periods: periods,
		Domain:  domain,
		Lines:   lines,
		YTicks:  YTicks(proj),
		XTicks:  XTicks(proj, periods, token),
	}

	if len(keys) > 0 && len(series) > 1 {
		dd := drawdown.Analyze(series.Values(primaryKey(keys)))
		model.Drawdown = &dd
	}

	return model
}

// primaryKey is the fund line when present, otherwise the first requested key.
func primaryKey(keys []string) string {
	for _, k := range keys {
		if k == models.SeriesFund {
			return k
		}
	}
	return keys[0]
}
