// =======================
// cube/surface.go
// =======================

package cube

import "image/color"

// Surface is the drawing capability a host hands to Render.
type Surface interface {
	DrawLine(p1, p2 Point, c color.RGBA, width float32)
	FillCircle(center Point, radius float32, c color.RGBA)
}

// FrameSurface is a Surface holding per-frame drawing state. Render calls
// BeginFrame before drawing and always calls EndFrame afterwards.
type FrameSurface interface {
	Surface
	BeginFrame()
	EndFrame()
}

// Style controls how the wireframe is painted.
type Style struct {
	Background   color.RGBA
	Edge         color.RGBA
	Vertex       color.RGBA
	EdgeWidth    float32
	VertexRadius float32
}

// DefaultStyle is white 2px edges with red 3px markers on black.
func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{A: 0xFF},
		Edge:         color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		Vertex:       color.RGBA{R: 0xFF, A: 0xFF},
		EdgeWidth:    2,
		VertexRadius: 3,
	}
}
