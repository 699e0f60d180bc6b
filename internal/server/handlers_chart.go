package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bobmcallan/vire-wealth/internal/services/chart"
)

// handleChart handles GET /api/chart?range=&series=
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	token, ok := RangeParam(w, r)
	if !ok {
		return
	}
	keys, ok := s.seriesKeys(w, r)
	if !ok {
		return
	}

	WriteJSON(w, http.StatusOK, s.app.Charts.Render(token, keys))
}

// handleChartPNG handles GET /api/chart.png?range=&series=
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	token, ok := RangeParam(w, r)
	if !ok {
		return
	}
	keys, ok := s.seriesKeys(w, r)
	if !ok {
		return
	}

	data, err := s.app.Charts.PNG(token, keys)
	if err != nil {
		if errors.Is(err, chart.ErrTooFewPoints) {
			WriteErrorWithCode(w, http.StatusUnprocessableEntity, err.Error(), "too_few_points")
			return
		}
		WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Chart render error: %v", err))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// handleChartHover handles GET /api/chart/hover?range=&x=&width=
func (s *Server) handleChartHover(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	token, ok := RangeParam(w, r)
	if !ok {
		return
	}
	x, ok := FloatParam(w, r, "x", 0)
	if !ok {
		return
	}
	width, ok := FloatParam(w, r, "width", chart.Extent)
	if !ok {
		return
	}

	res, found := s.app.Charts.Hover(token, x, width)
	if !found {
		WriteErrorWithCode(w, http.StatusNotFound, "No data in range", "empty_series")
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

// seriesKeys validates the optional series filter against the fixture keys.
func (s *Server) seriesKeys(w http.ResponseWriter, r *http.Request) ([]string, bool) {
	keys := ListParam(r, "series")
	if len(keys) == 0 {
		return nil, true
	}
	known := make(map[string]bool)
	for _, k := range s.app.Fixtures.Series.Keys() {
		known[k] = true
	}
	for _, k := range keys {
		if !known[k] {
			WriteErrorWithCode(w, http.StatusBadRequest, fmt.Sprintf("Unknown series %q", k), "unknown_series")
			return nil, false
		}
	}
	return keys, true
}
