package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bobmcallan/vire-wealth/internal/common"
)

func TestCarousel_AdvanceWraps(t *testing.T) {
	var seen []int
	c := NewCarousel(common.CarouselConfig{Interval: "1h", Length: 3}, common.NewSilentLogger(), func(i int) {
		seen = append(seen, i)
	})

	for i := 0; i < 4; i++ {
		assert.True(t, c.Advance())
	}
	assert.Equal(t, []int{1, 2, 0, 1}, seen)
	assert.Equal(t, 1, c.Index())
}

func TestCarousel_PauseResume(t *testing.T) {
	c := NewCarousel(common.CarouselConfig{Interval: "1h", Length: 3}, common.NewSilentLogger(), nil)

	c.Pause()
	assert.False(t, c.Advance())
	assert.Equal(t, 0, c.Index())

	c.Resume()
	assert.True(t, c.Advance())
	assert.Equal(t, 1, c.Index())
}

func TestCarousel_Select(t *testing.T) {
	c := NewCarousel(common.CarouselConfig{Length: 3}, common.NewSilentLogger(), nil)
	c.Select(5)
	assert.Equal(t, 2, c.Index())
	c.Select(-1)
	assert.Equal(t, 2, c.Index())
}

func TestCarousel_ZeroLength(t *testing.T) {
	c := NewCarousel(common.CarouselConfig{}, common.NewSilentLogger(), nil)
	assert.True(t, c.Advance())
	assert.Equal(t, 0, c.Index())
}

func TestCarousel_TicksUntilStopped(t *testing.T) {
	var ticks atomic.Int32
	c := NewCarousel(common.CarouselConfig{Interval: "5ms", Length: 4}, common.NewSilentLogger(), func(int) {
		ticks.Add(1)
	})

	c.Start(context.Background())
	c.Start(context.Background())

	assert.Eventually(t, func() bool { return ticks.Load() >= 3 }, time.Second, 5*time.Millisecond)

	c.Stop()
	after := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, ticks.Load())

	c.Stop()
}

func TestCarousel_StopsWithContext(t *testing.T) {
	c := NewCarousel(common.CarouselConfig{Interval: "5ms", Length: 2}, common.NewSilentLogger(), nil)
	ctx, cancel := context.WithCancel(context.Background())
	c.Start(ctx)
	cancel()
	c.Stop()
}
