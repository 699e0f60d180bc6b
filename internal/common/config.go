// Package common provides shared utilities for vire-wealth
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for vire-wealth
type Config struct {
	Environment string           `toml:"environment"`
	Server      ServerConfig     `toml:"server"`
	Logging     LoggingConfig    `toml:"logging"`
	Chart       ChartConfig      `toml:"chart"`
	Simulation  SimulationConfig `toml:"simulation"`
	Carousel    CarouselConfig   `toml:"carousel"`
	Data        DataConfig       `toml:"data"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

// ChartConfig holds raster output sizes for the PNG endpoint.
type ChartConfig struct {
	PNGWidth  int `toml:"png_width"`
	PNGHeight int `toml:"png_height"`
}

// SimulationConfig holds the allocation simulator parameters
type SimulationConfig struct {
	Months        int     `toml:"months"`         // Number of monthly samples, including the starting 100
	Volatility    float64 `toml:"volatility"`     // Half-width of the uniform monthly noise (0.02 = ±2%)
	BenchmarkRate float64 `toml:"benchmark_rate"` // Fixed annual benchmark return (0.085 = 8.5%)
	Seed          uint64  `toml:"seed"`
}

// CarouselConfig holds the auto-advance scheduler settings for the host UI
type CarouselConfig struct {
	Interval string `toml:"interval"`
	Length   int    `toml:"length"`
}

// GetInterval parses and returns the carousel interval
func (c *CarouselConfig) GetInterval() time.Duration {
	d, err := time.ParseDuration(c.Interval)
	if err != nil || d <= 0 {
		return 5 * time.Second
	}
	return d
}

// DataConfig points at optional fixture files. Empty paths use the embedded fixtures.
type DataConfig struct {
	SeriesFile string `toml:"series_file"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment: "development",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8090,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Chart: ChartConfig{
			PNGWidth:  900,
			PNGHeight: 400,
		},
		Simulation: SimulationConfig{
			Months:        36,
			Volatility:    0.02,
			BenchmarkRate: 0.085,
			Seed:          42,
		},
		Carousel: CarouselConfig{
			Interval: "5s",
			Length:   3,
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Later files override earlier ones
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	normalize(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("VIRE_WEALTH_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("VIRE_WEALTH_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("VIRE_WEALTH_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("VIRE_WEALTH_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if seed := os.Getenv("VIRE_WEALTH_SIM_SEED"); seed != "" {
		if s, err := strconv.ParseUint(seed, 10, 64); err == nil {
			config.Simulation.Seed = s
		}
	}

	if path := os.Getenv("VIRE_WEALTH_SERIES_FILE"); path != "" {
		config.Data.SeriesFile = path
	}
}

// normalize replaces unusable values with defaults rather than failing startup.
func normalize(config *Config) {
	defaults := NewDefaultConfig()

	if config.Simulation.Months <= 1 {
		config.Simulation.Months = defaults.Simulation.Months
	}
	if config.Simulation.Volatility <= 0 {
		config.Simulation.Volatility = defaults.Simulation.Volatility
	}
	if config.Simulation.BenchmarkRate <= 0 {
		config.Simulation.BenchmarkRate = defaults.Simulation.BenchmarkRate
	}
	if config.Chart.PNGWidth <= 0 {
		config.Chart.PNGWidth = defaults.Chart.PNGWidth
	}
	if config.Chart.PNGHeight <= 0 {
		config.Chart.PNGHeight = defaults.Chart.PNGHeight
	}
	if config.Carousel.Length <= 0 {
		config.Carousel.Length = defaults.Carousel.Length
	}
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}
