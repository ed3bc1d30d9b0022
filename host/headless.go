package host

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"cube/cube"
)

// HeadlessConfig controls the no-window runner.
type HeadlessConfig struct {
	Width  int
	Height int
	Hz     int
	// Ticks stops the run after this many ticks; 0 runs until ctx is done.
	Ticks uint64
	// Hold lists directions kept pressed for the whole run.
	Hold []cube.Direction
}

// HeadlessResult summarises a finished headless run.
type HeadlessResult struct {
	Ticks  uint64
	Frames int
	AngleX float32
	AngleY float32
	Lit    int
}

// RunHeadless ticks the renderer at cfg.Hz and paints every requested frame
// into an offscreen Raster.
func RunHeadless(ctx context.Context, rc cube.Config, cfg HeadlessConfig, log *slog.Logger) (HeadlessResult, error) {
	if cfg.Hz <= 0 {
		return HeadlessResult{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return HeadlessResult{}, fmt.Errorf("invalid headless size: %dx%d", cfg.Width, cfg.Height)
	}

	dirty := true
	r := NewRenderer(rc, func() { dirty = true })
	for _, d := range cfg.Hold {
		r.SetDirection(d, true)
	}
	surface := NewRaster(cfg.Width, cfg.Height, r.Style().Background)

	result := func(ticks uint64) HeadlessResult {
		ax, ay := r.Angles()
		return HeadlessResult{
			Ticks:  ticks,
			Frames: surface.Frames(),
			AngleX: ax,
			AngleY: ay,
			Lit:    surface.Lit(),
		}
	}

	log.Info("headless run", "hz", cfg.Hz, "ticks", cfg.Ticks, "variant", r.Variant().String(),
		"width", cfg.Width, "height", cfg.Height)

	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return HeadlessResult{}, fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}
	t := time.NewTicker(d)
	defer t.Stop()

	var tick uint64
	for {
		select {
		case <-ctx.Done():
			return result(tick), ctx.Err()
		case <-t.C:
			r.Tick()
			tick++
			if dirty {
				dirty = false
				r.Render(surface, cfg.Width, cfg.Height)
			}
			if tick%uint64(cfg.Hz) == 0 {
				ax, ay := r.Angles()
				log.Debug("headless progress", "tick", tick, "angle_x", ax, "angle_y", ay)
			}
			if cfg.Ticks > 0 && tick >= cfg.Ticks {
				return result(tick), nil
			}
		}
	}
}
