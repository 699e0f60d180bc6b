package server

import (
	"fmt"
	"net/http"

	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/drawdown"
)

// handleDrawdown handles GET /api/drawdown?range=&key=&method=
// method is "running" (absolute, default) or "pairwise" (percentage).
func (s *Server) handleDrawdown(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	token, ok := RangeParam(w, r)
	if !ok {
		return
	}

	key := r.URL.Query().Get("key")
	if key == "" {
		key = models.SeriesFund
	}
	series := s.app.Charts.Window(token)
	if len(series) > 0 {
		if _, ok := series[0].Values[key]; !ok {
			WriteErrorWithCode(w, http.StatusBadRequest, fmt.Sprintf("Unknown series %q", key), "unknown_series")
			return
		}
	}
	values := series.Values(key)

	method := r.URL.Query().Get("method")
	var result models.DrawdownResult
	switch method {
	case "", "running":
		method = "running"
		result = drawdown.RunningPeak(values)
	case "pairwise":
		result = drawdown.PairwisePercent(values)
	default:
		WriteErrorWithCode(w, http.StatusBadRequest, fmt.Sprintf("Unknown method %q", method), "invalid_parameter")
		return
	}

	resp := map[string]interface{}{
		"range":      token,
		"key":        key,
		"method":     method,
		"drawdown":   result,
		"underwater": drawdown.Underwater(values),
		"periods":    series.Periods(),
	}
	WriteJSON(w, http.StatusOK, resp)
}

// handleDrawdownSynthetic handles GET /api/drawdown/synthetic?target=&points=
func (s *Server) handleDrawdownSynthetic(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	target, ok := FloatParam(w, r, "target", 0)
	if !ok {
		return
	}
	points, ok := IntParam(w, r, "points", drawdown.DefaultSyntheticPoints)
	if !ok {
		return
	}
	if points > 1000 {
		WriteErrorWithCode(w, http.StatusBadRequest, "points must be at most 1000", "invalid_parameter")
		return
	}

	curve := drawdown.Synthetic(target, points)
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"target":       target,
		"curve":        curve,
		"trough_index": drawdown.SyntheticTroughIndex(len(curve)),
	})
}

// handleDrawdownMetrics handles GET /api/drawdown/metrics?period=
// Without a period the whole table is returned.
func (s *Server) handleDrawdownMetrics(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	table := s.app.Fixtures.DrawdownMetrics
	raw := r.URL.Query().Get("period")
	if raw == "" {
		WriteJSON(w, http.StatusOK, map[string]interface{}{
			"periods": models.DrawdownPeriods,
			"metrics": table,
		})
		return
	}

	period, err := models.ParseDrawdownPeriod(raw)
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "invalid_period")
		return
	}
	metrics, err := table.Lookup(period)
	if err != nil {
		WriteErrorWithCode(w, http.StatusNotFound, err.Error(), "no_metrics")
		return
	}
	curve, _ := table.Curve(period, drawdown.DefaultSyntheticPoints)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"period":  period,
		"metrics": metrics,
		"curve":   curve,
	})
}
