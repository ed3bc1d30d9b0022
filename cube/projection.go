package cube

const (
	// CameraDistance is the eye distance used by the perspective divide.
	CameraDistance float32 = 4
	// Scale maps model units to pixels.
	Scale float32 = 100
)

// Point is a projected screen position.
type Point struct{ X, Y float32 }

// Perspective projects v around center. A depth equal to CameraDistance is
// not guarded and yields whatever the float divide produces.
func Perspective(v Vertex3D, center Point) Point {
	factor := CameraDistance / (CameraDistance - v.Z)
	return Point{
		X: v.X*factor*Scale + center.X,
		Y: v.Y*factor*Scale + center.Y,
	}
}
