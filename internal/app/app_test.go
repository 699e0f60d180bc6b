package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-wealth/internal/common"
	"github.com/bobmcallan/vire-wealth/internal/models"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	a, err := NewAppWithConfig(common.NewDefaultConfig(), common.NewSilentLogger())
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func writeTestConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vire-wealth.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestNewApp_InitializesServices(t *testing.T) {
	path := writeTestConfig(t, `
environment = "test"

[logging]
level = "error"

[simulation]
months = 24
seed = 7
`)

	a, err := NewApp(path)
	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Config)
	assert.NotNil(t, a.Logger)
	assert.NotNil(t, a.Charts)
	assert.NotNil(t, a.Simulator)
	assert.NotNil(t, a.Carousel)
	assert.False(t, a.StartupTime.IsZero())
	assert.Equal(t, "test", a.Config.Environment)
	assert.Equal(t, 24, a.Simulator.Months())
	assert.NotEmpty(t, a.Fixtures.Series)
}

func TestNewApp_BadSeriesFile(t *testing.T) {
	cfg := common.NewDefaultConfig()
	cfg.Data.SeriesFile = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewAppWithConfig(cfg, common.NewSilentLogger())
	assert.Error(t, err)
}

func TestApp_LedgerAndBoard(t *testing.T) {
	a := newTestApp(t)

	ledger := a.NewLedger()
	_, err := ledger.Toggle("f-gge")
	require.NoError(t, err)
	assert.True(t, ledger.IsSelected("f-gge"))

	board := a.NewBoard()
	state, err := board.SwitchTo(models.BreakdownRegion)
	require.NoError(t, err)
	require.NotNil(t, state.SelectedLabel)
	assert.Equal(t, "North America", *state.SelectedLabel)
	assert.Len(t, board.Details(), 2)

	items, ok := a.Breakdown(models.BreakdownSector)
	assert.True(t, ok)
	assert.Len(t, items, 5)
}

func TestApp_CloseIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	a.StartCarousel()
	a.Close()
	a.Close()
}
