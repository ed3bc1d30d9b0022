// =======================
// cube/geometry.go
// =======================

// Package cube holds the rotating wireframe cube: its fixed geometry, the
// rotation state advanced by a host timer, and the projection used to paint
// it onto any Surface.
package cube

import "github.com/chewxy/math32"

// Vertex3D holds a 3D coordinate.
type Vertex3D struct{ X, Y, Z float32 }

// Edge connects two vertices by index.
type Edge struct{ A, B int }

var vertices = [8]Vertex3D{
	{-1, -1, -1}, // 0
	{1, -1, -1},  // 1
	{1, 1, -1},   // 2
	{-1, 1, -1},  // 3
	{-1, -1, 1},  // 4
	{1, -1, 1},   // 5
	{1, 1, 1},    // 6
	{-1, 1, 1},   // 7
}

var edges = [12]Edge{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // front face
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // back face
	{0, 4}, {1, 5}, {2, 6}, {3, 7}, // connecting edges
}

// Vertices returns the cube corners: edge length 2, centred at the origin.
func Vertices() [8]Vertex3D { return vertices }

// Edges returns the 12 wireframe edges.
func Edges() [12]Edge { return edges }

// RotateY rotates around the Y axis.
func (v Vertex3D) RotateY(a float32) Vertex3D {
	sin, cos := math32.Sincos(a)
	return Vertex3D{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// RotateX rotates around the X axis.
func (v Vertex3D) RotateX(a float32) Vertex3D {
	sin, cos := math32.Sincos(a)
	return Vertex3D{
		X: v.X,
		Y: v.Y*cos - v.Z*sin,
		Z: v.Y*sin + v.Z*cos,
	}
}

// Rotate applies ay around Y first, then ax around X. The order matters.
func (v Vertex3D) Rotate(ax, ay float32) Vertex3D {
	return v.RotateY(ay).RotateX(ax)
}
