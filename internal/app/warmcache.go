package app

import (
	"os"
	"time"

	"github.com/bobmcallan/vire-wealth/internal/common"
	"github.com/bobmcallan/vire-wealth/internal/interfaces"
	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/allocation"
)

// warmCache primes the simulation memo with the equal-weighted full catalog so
// the first results screen does not pay for generation. Returns the expected
// annual return it primed, or false when skipped.
func warmCache(sim interfaces.SimulationService, catalog []models.Instrument, logger *common.Logger) (float64, bool) {
	if os.Getenv("VIRE_WEALTH_WARM_CACHE") == "off" {
		logger.Info().Msg("Warm cache: disabled via VIRE_WEALTH_WARM_CACHE=off")
		return 0, false
	}
	if len(catalog) == 0 {
		logger.Info().Msg("Warm cache: empty catalog, skipping")
		return 0, false
	}

	start := time.Now()

	ledger := allocation.NewLedger(catalog)
	for _, inst := range catalog {
		if _, err := ledger.Toggle(inst.ID); err != nil {
			logger.Warn().Err(err).Str("instrument", inst.ID).Msg("Warm cache: toggle failed")
			return 0, false
		}
	}
	ledger.EqualWeight()

	rate := ledger.ExpectedAnnualReturn()
	sim.Series(rate)

	logger.Info().
		Int("instruments", len(catalog)).
		Float64("expected_return", rate).
		Dur("elapsed", time.Since(start)).
		Msg("Warm cache: complete")

	return rate, true
}
