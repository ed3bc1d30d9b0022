// Package host runs a cube.Renderer under a terminal or a headless ticker
// painting into memory. The desktop window lives in host/window.
//
// Every host delivers ticks, key transitions and paints from one goroutine.
package host

import "cube/cube"

// NewRenderer builds a renderer whose redraw requests reach the host loop.
func NewRenderer(cfg cube.Config, redraw func()) *cube.Renderer {
	cfg.Redraw = redraw
	return cube.New(cfg)
}
