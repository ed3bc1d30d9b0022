package host

import (
	"image/color"
	"math"
	"testing"

	"cube/cube"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var black = color.RGBA{A: 0xFF}

func TestRasterPaintsCubeAtRest(t *testing.T) {
	surface := NewRaster(400, 400, black)
	cube.New(cube.Config{}).Render(surface, 400, 400)
	img := surface.Image()

	assert.Equal(t, 1, surface.Frames())
	assert.Greater(t, surface.Lit(), 0)

	// (1,1,1) lands on (333.3, 333.3) and carries a red marker.
	marker := img.RGBAAt(333, 333)
	assert.Greater(t, marker.R, uint8(200), "marker %v", marker)
	assert.Less(t, marker.G, uint8(60), "marker %v", marker)

	// The back top edge runs along y=120 from x=120 to x=280.
	edge := img.RGBAAt(200, 120)
	assert.Greater(t, edge.G, uint8(200), "edge %v", edge)
	assert.Greater(t, edge.B, uint8(200), "edge %v", edge)

	assert.Equal(t, black, img.RGBAAt(200, 200), "centre stays empty")
}

func TestRasterBeginFrameClears(t *testing.T) {
	surface := NewRaster(64, 64, black)
	surface.FillCircle(cube.Point{X: 32, Y: 32}, 5, color.RGBA{R: 0xFF, A: 0xFF})
	require.Greater(t, surface.Lit(), 0)

	surface.BeginFrame()
	assert.Zero(t, surface.Lit())
}

func TestRasterSkipsNonFinite(t *testing.T) {
	surface := NewRaster(64, 64, black)
	inf := float32(math.Inf(1))
	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	surface.DrawLine(cube.Point{X: 1, Y: 1}, cube.Point{X: inf, Y: 3}, white, 2)
	surface.FillCircle(cube.Point{X: float32(math.NaN()), Y: 3}, 3, white)
	assert.Zero(t, surface.Lit())
}

func TestRasterDegenerateLineIsADot(t *testing.T) {
	surface := NewRaster(32, 32, black)
	p := cube.Point{X: 16, Y: 16}
	surface.DrawLine(p, p, color.RGBA{G: 0xFF, A: 0xFF}, 4)
	assert.Greater(t, surface.Image().RGBAAt(16, 16).G, uint8(100))
}
