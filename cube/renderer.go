package cube

// DefaultStep is the per-tick angle increment in radians.
const DefaultStep float32 = 0.05

// Variant selects how the cube rotates.
type Variant uint8

const (
	// Spin turns around the Y axis on every tick.
	Spin Variant = iota
	// Steer turns around Y and X while direction keys are held.
	Steer
)

func (v Variant) String() string {
	switch v {
	case Spin:
		return "spin"
	case Steer:
		return "steer"
	default:
		return "unknown"
	}
}

// Direction is one of the four steering flags.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Key is a host-neutral key identifier. Hosts translate their own key codes.
type Key uint8

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// InputState holds the held steering directions.
type InputState struct {
	Left, Right, Up, Down bool
}

// Config selects the variant and presentation of a Renderer. Zero fields
// take defaults.
type Config struct {
	Variant Variant
	// Step is the per-tick increment; 0 means DefaultStep.
	Step  float32
	Style *Style
	// NaturalVertical maps the Up key to the up flag and Down to down. By
	// default the two are swapped, so pressing Up tilts the cube with a
	// decreasing X angle.
	NaturalVertical bool
	// Redraw is called by Tick to ask the host for a repaint.
	Redraw func()
}

// Renderer owns the rotation state of the cube and paints it.
//
// It is not safe for concurrent use: hosts deliver Tick, HandleKey and Render
// from a single loop.
type Renderer struct {
	variant Variant
	step    float32
	style   Style

	angleX, angleY float32
	input          InputState

	naturalVertical bool
	redraw          func()
}

// New returns a renderer at angle zero.
func New(cfg Config) *Renderer {
	r := &Renderer{
		variant:         cfg.Variant,
		step:            cfg.Step,
		style:           DefaultStyle(),
		naturalVertical: cfg.NaturalVertical,
		redraw:          cfg.Redraw,
	}
	if r.step <= 0 {
		r.step = DefaultStep
	}
	if cfg.Style != nil {
		r.style = *cfg.Style
	}
	return r
}

func (r *Renderer) Variant() Variant  { return r.variant }
func (r *Renderer) Style() Style      { return r.style }
func (r *Renderer) Step() float32     { return r.step }
func (r *Renderer) Input() InputState { return r.input }

// Angles returns the current X and Y rotation in radians.
func (r *Renderer) Angles() (x, y float32) { return r.angleX, r.angleY }

// Tick advances one step and requests a redraw.
func (r *Renderer) Tick() {
	r.Advance(1)
	if r.redraw != nil {
		r.redraw()
	}
}

// Advance applies n fixed steps without touching the host.
func (r *Renderer) Advance(n int) {
	for i := 0; i < n; i++ {
		r.advance()
	}
}

func (r *Renderer) advance() {
	if r.variant == Spin {
		r.angleY += r.step
		return
	}
	if r.input.Left {
		r.angleY -= r.step
	}
	if r.input.Right {
		r.angleY += r.step
	}
	if r.input.Up {
		r.angleX += r.step
	}
	if r.input.Down {
		r.angleX -= r.step
	}
}

// SetDirection sets or clears a steering flag. Spin renderers ignore it.
func (r *Renderer) SetDirection(d Direction, active bool) {
	if r.variant != Steer {
		return
	}
	switch d {
	case DirLeft:
		r.input.Left = active
	case DirRight:
		r.input.Right = active
	case DirUp:
		r.input.Up = active
	case DirDown:
		r.input.Down = active
	}
}

// HandleKey applies a key-down or key-up and reports whether the key steers.
func (r *Renderer) HandleKey(k Key, down bool) bool {
	d, ok := r.direction(k)
	if !ok {
		return false
	}
	r.SetDirection(d, down)
	return true
}

func (r *Renderer) direction(k Key) (Direction, bool) {
	switch k {
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	case KeyUp:
		if r.naturalVertical {
			return DirUp, true
		}
		return DirDown, true
	case KeyDown:
		if r.naturalVertical {
			return DirDown, true
		}
		return DirUp, true
	default:
		return 0, false
	}
}

// Project rotates and projects every vertex for a width x height surface.
func (r *Renderer) Project(width, height int) [8]Point {
	center := Point{X: float32(width) / 2, Y: float32(height) / 2}

	var out [8]Point
	for i, v := range vertices {
		var rot Vertex3D
		if r.variant == Spin {
			rot = v.RotateY(r.angleY)
		} else {
			rot = v.Rotate(r.angleX, r.angleY)
		}
		out[i] = Perspective(rot, center)
	}
	return out
}

// Render paints the 12 edges and then the 8 vertex markers.
func (r *Renderer) Render(s Surface, width, height int) {
	if s == nil {
		return
	}
	if fs, ok := s.(FrameSurface); ok {
		fs.BeginFrame()
		defer fs.EndFrame()
	}

	projected := r.Project(width, height)
	for _, e := range edges {
		s.DrawLine(projected[e.A], projected[e.B], r.style.Edge, r.style.EdgeWidth)
	}
	for _, p := range projected {
		s.FillCircle(p, r.style.VertexRadius, r.style.Vertex)
	}
}
