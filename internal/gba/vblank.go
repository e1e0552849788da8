package gba

import (
	"context"
	"time"
)

// VBlank paces the host like the vertical-blank interrupt paces the console.
type VBlank struct {
	ticker *time.Ticker
	frames uint64
}

// NewVBlank creates a frame clock running at fps frames per second.
func NewVBlank(fps int) *VBlank {
	if fps <= 0 {
		fps = 60
	}
	return &VBlank{
		ticker: time.NewTicker(time.Second / time.Duration(fps)),
	}
}

// Wait blocks until the next frame boundary or until ctx is done.
func (v *VBlank) Wait(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-v.ticker.C:
		v.frames++
		return nil
	}
}

// Frames returns the number of frame boundaries observed.
func (v *VBlank) Frames() uint64 {
	return v.frames
}

// Stop releases the underlying ticker.
func (v *VBlank) Stop() {
	v.ticker.Stop()
}
