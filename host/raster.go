package host

import (
	"image"
	"image/color"
	"image/draw"

	"cube/cube"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four arcs approximate a circle.
const kappa = 0.5522847498

// Raster is an in-memory anti-aliased Surface.
type Raster struct {
	img *image.RGBA
	bg  color.RGBA
	z   *vector.Rasterizer

	frames int
}

func NewRaster(width, height int, bg color.RGBA) *Raster {
	r := &Raster{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		bg:  bg,
		z:   vector.NewRasterizer(width, height),
	}
	r.clear()
	return r
}

func (r *Raster) Image() *image.RGBA { return r.img }
func (r *Raster) Frames() int        { return r.frames }

func (r *Raster) BeginFrame() { r.clear() }
func (r *Raster) EndFrame()   { r.frames++ }

func (r *Raster) clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.bg), image.Point{}, draw.Src)
}

// DrawLine fills the width-wide quad around the segment.
func (r *Raster) DrawLine(p1, p2 cube.Point, c color.RGBA, width float32) {
	if !finite(p1) || !finite(p2) {
		return
	}
	dx, dy := p2.X-p1.X, p2.Y-p1.Y
	l := math32.Hypot(dx, dy)
	if l == 0 {
		r.FillCircle(p1, width/2, c)
		return
	}
	nx, ny := -dy/l*width/2, dx/l*width/2

	r.begin()
	r.z.MoveTo(p1.X+nx, p1.Y+ny)
	r.z.LineTo(p2.X+nx, p2.Y+ny)
	r.z.LineTo(p2.X-nx, p2.Y-ny)
	r.z.LineTo(p1.X-nx, p1.Y-ny)
	r.z.ClosePath()
	r.fill(c)
}

func (r *Raster) FillCircle(center cube.Point, radius float32, c color.RGBA) {
	if !finite(center) || radius <= 0 {
		return
	}
	cx, cy, k := center.X, center.Y, radius*kappa

	r.begin()
	r.z.MoveTo(cx+radius, cy)
	r.z.CubeTo(cx+radius, cy+k, cx+k, cy+radius, cx, cy+radius)
	r.z.CubeTo(cx-k, cy+radius, cx-radius, cy+k, cx-radius, cy)
	r.z.CubeTo(cx-radius, cy-k, cx-k, cy-radius, cx, cy-radius)
	r.z.CubeTo(cx+k, cy-radius, cx+radius, cy-k, cx+radius, cy)
	r.z.ClosePath()
	r.fill(c)
}

func (r *Raster) begin() {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over
}

func (r *Raster) fill(c color.RGBA) {
	r.z.Draw(r.img, r.img.Bounds(), image.NewUniform(c), image.Point{})
}

// Lit counts pixels that differ from the background.
func (r *Raster) Lit() int {
	n := 0
	b := r.img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if r.img.RGBAAt(x, y) != r.bg {
				n++
			}
		}
	}
	return n
}

func finite(p cube.Point) bool {
	return !math32.IsInf(p.X, 0) && !math32.IsInf(p.Y, 0) && !math32.IsNaN(p.X) && !math32.IsNaN(p.Y)
}
