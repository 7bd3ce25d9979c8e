package world

import (
	"context"
	"log/slog"
	"time"
)

// Ticker drives per-player updates at a fixed interval.
//
// Phase 4.1: World Tick.
type Ticker struct {
	world    *World
	interval time.Duration
}

// NewTicker creates a ticker for the world.
func NewTicker(w *World, interval time.Duration) *Ticker {
	return &Ticker{world: w, interval: interval}
}

// Start runs the tick loop until ctx is cancelled.
func (t *Ticker) Start(ctx context.Context) error {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	slog.Info("world ticker started", "interval", t.interval)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			slog.Info("world ticker stopping")
			return nil
		case now := <-ticker.C:
			delta := now.Sub(last)
			last = now
			t.tick(delta)
		}
	}
}

// tick advances every online player by delta.
func (t *Ticker) tick(delta time.Duration) {
	t.world.forEachPlayer(func(e *entry) {
		e.player.Tick(delta)
	})
}
