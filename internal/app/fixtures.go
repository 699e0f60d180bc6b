package app

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/drawdown"
)

//go:embed fixtures/*.json
var fixtureFS embed.FS

// Fixtures is the static data the analytics engine runs on. There is no live
// feed; every screen reads from these tables.
type Fixtures struct {
	Series          models.TimeSeries
	Instruments     []models.Instrument
	Breakdowns      models.BreakdownTable
	Details         map[string][]models.AllocationItem
	DrawdownMetrics drawdown.MetricTable
}

type breakdownFile struct {
	Breakdowns models.BreakdownTable              `json:"breakdowns"`
	Details    map[string][]models.AllocationItem `json:"details"`
}

// LoadFixtures reads the embedded fixtures. A non-empty seriesFile replaces
// the embedded return series.
func LoadFixtures(seriesFile string) (*Fixtures, error) {
	f := &Fixtures{}

	seriesData, err := readSeries(seriesFile)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(seriesData, &f.Series); err != nil {
		return nil, fmt.Errorf("failed to parse series: %w", err)
	}
	if err := f.Series.Validate(); err != nil {
		return nil, fmt.Errorf("invalid series: %w", err)
	}

	if err := decodeEmbedded("fixtures/instruments.json", &f.Instruments); err != nil {
		return nil, err
	}

	var bf breakdownFile
	if err := decodeEmbedded("fixtures/breakdowns.json", &bf); err != nil {
		return nil, err
	}
	f.Breakdowns = bf.Breakdowns
	f.Details = bf.Details

	if err := decodeEmbedded("fixtures/drawdown_metrics.json", &f.DrawdownMetrics); err != nil {
		return nil, err
	}

	return f, nil
}

func readSeries(path string) ([]byte, error) {
	if path == "" {
		return fixtureFS.ReadFile("fixtures/series.json")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read series file %s: %w", path, err)
	}
	return data, nil
}

func decodeEmbedded(name string, v interface{}) error {
	data, err := fixtureFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("failed to read fixture %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse fixture %s: %w", name, err)
	}
	return nil
}
