package server

import (
	"net/http"
	"time"

	"github.com/bobmcallan/vire-wealth/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Performance chart
	mux.HandleFunc("/api/chart", s.handleChart)
	mux.HandleFunc("/api/chart.png", s.handleChartPNG)
	mux.HandleFunc("/api/chart/hover", s.handleChartHover)

	// Drawdown
	mux.HandleFunc("/api/drawdown", s.handleDrawdown)
	mux.HandleFunc("/api/drawdown/synthetic", s.handleDrawdownSynthetic)
	mux.HandleFunc("/api/drawdown/metrics", s.handleDrawdownMetrics)

	// Allocation simulator
	mux.HandleFunc("/api/instruments", s.handleInstruments)
	mux.HandleFunc("/api/simulate", s.handleSimulate)

	// Concentration views
	mux.HandleFunc("/api/breakdowns", s.handleBreakdowns)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
		"uptime":  time.Since(s.app.StartupTime).Round(time.Second).String(),
	})
}
