package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/bobmcallan/vire-wealth/internal/common"
	"github.com/bobmcallan/vire-wealth/internal/interfaces"
	"github.com/bobmcallan/vire-wealth/internal/models"
	"github.com/bobmcallan/vire-wealth/internal/services/allocation"
	"github.com/bobmcallan/vire-wealth/internal/services/selection"
	"github.com/bobmcallan/vire-wealth/internal/services/simulation"
)

// App holds the loaded fixtures and initialized services.
// It is the shared core behind cmd/vire-wealth and the REST server.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Fixtures    *Fixtures
	Charts      *ChartService
	Simulator   *simulation.Engine
	Carousel    *Carousel
	StartupTime time.Time

	carouselCancel context.CancelFunc
}

var _ interfaces.SimulationService = (*simulation.Engine)(nil)

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp loads configuration and fixtures and builds the services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Config: provided path, VIRE_WEALTH_CONFIG, binary dir, then the development fallback
	if configPath == "" {
		configPath = os.Getenv("VIRE_WEALTH_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "vire-wealth.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/vire-wealth.toml"
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if config.Data.SeriesFile != "" && !filepath.IsAbs(config.Data.SeriesFile) {
		if _, err := os.Stat(config.Data.SeriesFile); os.IsNotExist(err) {
			config.Data.SeriesFile = filepath.Join(binDir, config.Data.SeriesFile)
		}
	}

	logger := common.NewLoggerFromConfig(config.Logging)

	return newApp(config, logger, startupStart)
}

// NewAppWithConfig builds an App from an already-loaded config.
func NewAppWithConfig(config *common.Config, logger *common.Logger) (*App, error) {
	return newApp(config, logger, time.Now())
}

func newApp(config *common.Config, logger *common.Logger, startupStart time.Time) (*App, error) {
	fixtures, err := LoadFixtures(config.Data.SeriesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load fixtures: %w", err)
	}

	a := &App{
		Config:      config,
		Logger:      logger,
		Fixtures:    fixtures,
		Charts:      NewChartService(fixtures.Series, config.Chart, nil),
		Simulator:   simulation.NewEngine(simulation.ParamsFromConfig(config.Simulation), logger),
		StartupTime: startupStart,
	}
	a.Carousel = NewCarousel(config.Carousel, logger, func(i int) {
		logger.Trace().Int("slot", i).Msg("Carousel advanced")
	})

	logger.Info().
		Int("points", len(fixtures.Series)).
		Int("instruments", len(fixtures.Instruments)).
		Dur("startup", time.Since(startupStart)).
		Msg("App initialized")

	return a, nil
}

// NewLedger returns an empty allocation ledger over the instrument catalog.
func (a *App) NewLedger() *allocation.Ledger {
	return allocation.NewLedger(a.Fixtures.Instruments)
}

// NewBoard returns a breakdown board over the fixture breakdowns.
func (a *App) NewBoard() *selection.Board {
	return selection.NewBoard(a.Fixtures.Breakdowns, a.Fixtures.Details)
}

// Breakdown returns the items of one breakdown kind.
func (a *App) Breakdown(kind models.BreakdownKind) ([]models.AllocationItem, bool) {
	items, ok := a.Fixtures.Breakdowns[kind]
	return items, ok
}

// StartWarmCache primes the simulation memo in the background.
func (a *App) StartWarmCache() {
	go warmCache(a.Simulator, a.Fixtures.Instruments, a.Logger)
}

// StartCarousel launches the auto-advance timer.
func (a *App) StartCarousel() {
	ctx, cancel := context.WithCancel(context.Background())
	a.carouselCancel = cancel
	a.Carousel.Start(ctx)
}

// Close stops background work.
func (a *App) Close() {
	if a.carouselCancel != nil {
		a.carouselCancel()
		a.carouselCancel = nil
	}
	if a.Carousel != nil {
		a.Carousel.Stop()
	}
}
