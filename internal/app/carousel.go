package app

import (
	"context"
	"sync"
	"time"

	"github.com/bobmcallan/vire-wealth/internal/common"
)

// Carousel is the host-owned auto-advance timer for rotating panels. It
// advances an index modulo length on a fixed interval until stopped.
type Carousel struct {
	mu        sync.Mutex
	index     int
	length    int
	paused    bool
	interval  time.Duration
	cancel    context.CancelFunc
	done      chan struct{}
	onAdvance func(int)
	logger    *common.Logger
}

// NewCarousel creates a stopped carousel. onAdvance may be nil.
func NewCarousel(cfg common.CarouselConfig, logger *common.Logger, onAdvance func(int)) *Carousel {
	length := cfg.Length
	if length <= 0 {
		length = 1
	}
	return &Carousel{
		length:    length,
		interval:  cfg.GetInterval(),
		onAdvance: onAdvance,
		logger:    logger,
	}
}

// Start launches the ticker loop. Calling Start on a running carousel is a no-op.
func (c *Carousel) Start(ctx context.Context) {
	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})
	done := c.done
	c.mu.Unlock()

	go c.run(ctx, done)
}

func (c *Carousel) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			c.logger.Debug().Msg("Carousel: stopped")
			return
		case <-ticker.C:
			c.Advance()
		}
	}
}

// Advance moves to the next slot unless paused and reports whether it moved.
func (c *Carousel) Advance() bool {
	c.mu.Lock()
	if c.paused {
		c.mu.Unlock()
		return false
	}
	c.index = (c.index + 1) % c.length
	idx := c.index
	fn := c.onAdvance
	c.mu.Unlock()

	if fn != nil {
		fn(idx)
	}
	return true
}

// Pause holds the current slot; ticks are ignored until Resume.
func (c *Carousel) Pause() {
	c.mu.Lock()
	c.paused = true
	c.mu.Unlock()
}

// Resume continues advancing.
func (c *Carousel) Resume() {
	c.mu.Lock()
	c.paused = false
	c.mu.Unlock()
}

// Select jumps to slot i (modulo length).
func (c *Carousel) Select(i int) {
	c.mu.Lock()
	c.index = ((i % c.length) + c.length) % c.length
	c.mu.Unlock()
}

// Index returns the current slot.
func (c *Carousel) Index() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.index
}

// Stop cancels the loop and waits for it to exit.
func (c *Carousel) Stop() {
	c.mu.Lock()
	cancel, done := c.cancel, c.done
	c.cancel = nil
	c.done = nil
	c.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
