package chart

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/vire-wealth/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestRenderPNG(t *testing.T) {
	data, err := RenderPNG(renderSeries(), nil, models.Range1Y, "Fund vs Benchmark", 600, 300)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderPNG_FlatSeries(t *testing.T) {
	flat := models.TimeSeries{pt("2025-01", 0, 0), pt("2025-02", 0, 0)}
	data, err := RenderPNG(flat, []string{models.SeriesFund}, models.Range1M, "", 400, 200)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))
}

func TestRenderPNG_TooFewPoints(t *testing.T) {
	_, err := RenderPNG(renderSeries()[:1], nil, models.Range1M, "", 400, 200)
	assert.ErrorIs(t, err, ErrTooFewPoints)
}
