package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/allocation"
	"github.com/bobmcallan/vire-wealth/internal/services/chart"
	"github.com/bobmcallan/vire-wealth/internal/services/simulation"
)

// instrumentView is a catalog entry with its assumed annual return.
type instrumentView struct {
	models.Instrument
	AssumedReturn float64 `json:"assumed_return"`
}

// handleInstruments handles GET /api/instruments
func (s *Server) handleInstruments(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	catalog := s.app.Fixtures.Instruments
	views := make([]instrumentView, len(catalog))
	for i, inst := range catalog {
		views[i] = instrumentView{Instrument: inst, AssumedReturn: allocation.Rate(inst.Category)}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"instruments": views,
	})
}

// simulateRequest is the confirmed allocation posted by the simulator screen.
type simulateRequest struct {
	Selected    []string                `json:"selected"`
	Weights     models.AllocationWeight `json:"weights"`
	EqualWeight bool                    `json:"equal_weight"`
}

// handleSimulate handles POST /api/simulate
func (s *Server) handleSimulate(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req simulateRequest
	if !DecodeJSON(w, r, &req) {
		return
	}

	ledger := s.app.NewLedger()
	for _, id := range req.Selected {
		if ledger.IsSelected(id) {
			continue
		}
		if _, err := ledger.Toggle(id); err != nil {
			if errors.Is(err, allocation.ErrUnknownInstrument) {
				WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "unknown_instrument")
				return
			}
			WriteError(w, http.StatusInternalServerError, fmt.Sprintf("Allocation error: %v", err))
			return
		}
	}

	if req.EqualWeight {
		ledger.EqualWeight()
	} else {
		for id, v := range req.Weights {
			ledger.SetWeight(id, v)
		}
	}

	if !ledger.CanConfirm() {
		WriteJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": fmt.Sprintf("Allocation totals %.2f%%, must be 100%%", ledger.Total()),
			"code":  "allocation_incomplete",
			"total": ledger.Total(),
		})
		return
	}

	rate := ledger.ExpectedAnnualReturn()
	series := s.app.Simulator.Series(rate)
	stats := s.app.Simulator.Stats(series)

	ts := simulation.AsTimeSeries(series, s.now())
	model := chart.BuildRenderModel(ts, []string{simulation.KeyPortfolio, simulation.KeyBenchmark}, models.Range1Y)

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"expected_annual_return": rate,
		"allocation":             ledger.Breakdown(),
		"weights":                ledger.Weights(),
		"series":                 series,
		"stats":                  stats,
		"chart":                  model,
	})
}

// handleBreakdowns handles GET /api/breakdowns?kind=
// The response carries the auto-selected (largest) item and its drill-down.
func (s *Server) handleBreakdowns(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	kind := models.BreakdownKind(r.URL.Query().Get("kind"))
	if kind == "" {
		kind = models.BreakdownAssetClass
	}

	board := s.app.NewBoard()
	state, err := board.SwitchTo(kind)
	if err != nil {
		WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "unknown_breakdown")
		return
	}
	if label := r.URL.Query().Get("select"); label != "" {
		state, err = board.Toggle(label)
		if err != nil {
			WriteErrorWithCode(w, http.StatusBadRequest, err.Error(), "unknown_item")
			return
		}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"kind":      kind,
		"items":     board.Items(),
		"selection": state,
		"details":   board.Details(),
		"others":    s.app.Fixtures.Breakdowns.Residual(kind),
	})
}
