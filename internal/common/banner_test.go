package common

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := NewDefaultConfig()
	cfg.Server.Port = 9191

	PrintBanner(&out, cfg, NewLoggerWithOutput("info", &logs))

	assert.Contains(t, out.String(), "VIRE WEALTH")
	assert.Contains(t, out.String(), "http://0.0.0.0:9191")
	assert.Contains(t, logs.String(), "Application started")
	assert.Contains(t, logs.String(), `"sim_seed":42`)
}

func TestPrintShutdownBanner(t *testing.T) {
	var out, logs bytes.Buffer
	PrintShutdownBanner(&out, NewLoggerWithOutput("info", &logs))

	assert.Contains(t, out.String(), "SHUTTING DOWN")
	assert.Contains(t, logs.String(), "Application shutting down")
}
