package cube

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type line struct {
	p1, p2 Point
	c      color.RGBA
	width  float32
}

type disc struct {
	center Point
	radius float32
	c      color.RGBA
}

type recordSurface struct {
	lines  []line
	discs  []disc
	order  []string
	begins int
	ends   int
}

func (s *recordSurface) DrawLine(p1, p2 Point, c color.RGBA, width float32) {
	s.lines = append(s.lines, line{p1, p2, c, width})
	s.order = append(s.order, "line")
}

func (s *recordSurface) FillCircle(center Point, radius float32, c color.RGBA) {
	s.discs = append(s.discs, disc{center, radius, c})
	s.order = append(s.order, "disc")
}

type frameSurface struct {
	recordSurface
}

func (s *frameSurface) BeginFrame() { s.begins++ }
func (s *frameSurface) EndFrame()   { s.ends++ }

func TestSpinAdvancesEveryTick(t *testing.T) {
	r := New(Config{})
	s := &recordSurface{}
	for i := 1; i <= 40; i++ {
		r.Tick()
		if i%3 == 0 {
			r.Render(s, 400, 400)
		}
		_, ay := r.Angles()
		require.InDelta(t, float64(i)*0.05, ay, 1e-4, "tick %d", i)
	}
	ax, _ := r.Angles()
	assert.Zero(t, ax)
}

func TestSpinIgnoresDirections(t *testing.T) {
	r := New(Config{Variant: Spin})
	assert.True(t, r.HandleKey(KeyLeft, true))
	r.Advance(2)
	ax, ay := r.Angles()
	assert.Zero(t, ax)
	assert.InDelta(t, 0.1, ay, 1e-6)
	assert.Equal(t, InputState{}, r.Input())
}

func TestAdvanceN(t *testing.T) {
	r := New(Config{})
	r.Advance(0)
	r.Advance(-3)
	_, ay := r.Angles()
	assert.Zero(t, ay)

	r.Advance(10)
	_, ay = r.Angles()
	assert.InDelta(t, 0.5, ay, 1e-5)
}

func TestTickRequestsRedraw(t *testing.T) {
	calls := 0
	r := New(Config{Redraw: func() { calls++ }})
	r.Tick()
	r.Tick()
	assert.Equal(t, 2, calls)

	r.Advance(5)
	assert.Equal(t, 2, calls, "Advance must not touch the host")
}

func TestConfigStep(t *testing.T) {
	r := New(Config{Step: 0.1})
	assert.Equal(t, float32(0.1), r.Step())
	r.Tick()
	_, ay := r.Angles()
	assert.InDelta(t, 0.1, ay, 1e-6)

	assert.Equal(t, DefaultStep, New(Config{Step: -1}).Step())
}

func TestConfigStyle(t *testing.T) {
	assert.Equal(t, DefaultStyle(), New(Config{}).Style())

	s := DefaultStyle()
	s.EdgeWidth = 5
	assert.Equal(t, s, New(Config{Style: &s}).Style())
}

func TestSteerFlags(t *testing.T) {
	tests := []struct {
		name   string
		dirs   []Direction
		wantAX float32
		wantAY float32
	}{
		{"none", nil, 0, 0},
		{"left", []Direction{DirLeft}, 0, -0.25},
		{"right", []Direction{DirRight}, 0, 0.25},
		{"up", []Direction{DirUp}, 0.25, 0},
		{"down", []Direction{DirDown}, -0.25, 0},
		{"diagonal", []Direction{DirRight, DirUp}, 0.25, 0.25},
		{"opposed", []Direction{DirLeft, DirRight}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Config{Variant: Steer})
			for _, d := range tt.dirs {
				r.SetDirection(d, true)
			}
			r.Advance(5)
			ax, ay := r.Angles()
			assert.InDelta(t, tt.wantAX, ax, 1e-5)
			assert.InDelta(t, tt.wantAY, ay, 1e-5)
		})
	}
}

func TestSteerReleaseFreezes(t *testing.T) {
	r := New(Config{Variant: Steer})
	r.SetDirection(DirRight, true)
	r.SetDirection(DirDown, true)
	r.Advance(7)
	r.SetDirection(DirRight, false)
	r.SetDirection(DirDown, false)

	ax, ay := r.Angles()
	for i := 0; i < 20; i++ {
		r.Tick()
	}
	ax2, ay2 := r.Angles()
	assert.Equal(t, ax, ax2)
	assert.Equal(t, ay, ay2)
}

func TestSetDirectionIdempotent(t *testing.T) {
	r := New(Config{Variant: Steer})
	r.SetDirection(DirLeft, true)
	r.SetDirection(DirLeft, true)
	assert.Equal(t, InputState{Left: true}, r.Input())
	r.SetDirection(DirLeft, false)
	r.SetDirection(DirLeft, false)
	assert.Equal(t, InputState{}, r.Input())
}

func TestHandleKeyMapping(t *testing.T) {
	tests := []struct {
		name    string
		natural bool
		key     Key
		want    InputState
	}{
		{"left", false, KeyLeft, InputState{Left: true}},
		{"right", false, KeyRight, InputState{Right: true}},
		{"up is swapped", false, KeyUp, InputState{Down: true}},
		{"down is swapped", false, KeyDown, InputState{Up: true}},
		{"natural up", true, KeyUp, InputState{Up: true}},
		{"natural down", true, KeyDown, InputState{Down: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(Config{Variant: Steer, NaturalVertical: tt.natural})
			require.True(t, r.HandleKey(tt.key, true))
			assert.Equal(t, tt.want, r.Input())
			require.True(t, r.HandleKey(tt.key, false))
			assert.Equal(t, InputState{}, r.Input())
		})
	}
}

func TestHandleKeyIgnoresOthers(t *testing.T) {
	r := New(Config{Variant: Steer})
	assert.False(t, r.HandleKey(KeyUnknown, true))
	assert.Equal(t, InputState{}, r.Input())
}

func TestUpKeyDecrementsX(t *testing.T) {
	r := New(Config{Variant: Steer})
	r.HandleKey(KeyUp, true)
	r.Advance(4)
	ax, _ := r.Angles()
	assert.InDelta(t, -0.2, ax, 1e-5)
}

func TestProjectAtRest(t *testing.T) {
	for _, v := range []Variant{Spin, Steer} {
		t.Run(v.String(), func(t *testing.T) {
			p := New(Config{Variant: v}).Project(400, 400)
			assert.InDelta(t, 333.333, p[6].X, 1e-2)
			assert.InDelta(t, 333.333, p[6].Y, 1e-2)
		})
	}
}

func TestProjectIsPure(t *testing.T) {
	r := New(Config{Variant: Steer})
	r.SetDirection(DirRight, true)
	r.SetDirection(DirUp, true)
	r.Advance(13)

	first := r.Project(400, 400)
	second := r.Project(400, 400)
	assert.Equal(t, first, second)

	s1, s2 := &recordSurface{}, &recordSurface{}
	r.Render(s1, 400, 400)
	r.Render(s2, 400, 400)
	assert.Equal(t, s1.lines, s2.lines)
	assert.Equal(t, s1.discs, s2.discs)
}

func TestRenderDrawCounts(t *testing.T) {
	r := New(Config{Variant: Steer})
	r.SetDirection(DirLeft, true)
	r.SetDirection(DirDown, true)
	for i := 0; i < 50; i++ {
		s := &recordSurface{}
		r.Render(s, 400, 400)
		require.Len(t, s.lines, 12)
		require.Len(t, s.discs, 8)
		r.Tick()
	}
}

func TestRenderOrderAndStyle(t *testing.T) {
	r := New(Config{})
	s := &recordSurface{}
	r.Render(s, 400, 400)

	for i, kind := range s.order {
		if i < 12 {
			assert.Equal(t, "line", kind)
		} else {
			assert.Equal(t, "disc", kind)
		}
	}

	style := DefaultStyle()
	projected := r.Project(400, 400)
	for i, l := range s.lines {
		e := Edges()[i]
		assert.Equal(t, projected[e.A], l.p1)
		assert.Equal(t, projected[e.B], l.p2)
		assert.Equal(t, style.Edge, l.c)
		assert.Equal(t, float32(2), l.width)
	}
	for i, d := range s.discs {
		assert.Equal(t, projected[i], d.center)
		assert.Equal(t, style.Vertex, d.c)
		assert.Equal(t, float32(3), d.radius)
	}
}

func TestRenderFramesSurface(t *testing.T) {
	s := &frameSurface{}
	New(Config{}).Render(s, 400, 400)
	assert.Equal(t, 1, s.begins)
	assert.Equal(t, 1, s.ends)
	assert.Len(t, s.lines, 12)
}

func TestRenderNilSurface(t *testing.T) {
	assert.NotPanics(t, func() { New(Config{}).Render(nil, 400, 400) })
}

func TestSteerScenarioLeftThenRelease(t *testing.T) {
	r := New(Config{Variant: Steer})
	r.HandleKey(KeyLeft, true)
	for i := 0; i < 10; i++ {
		r.Tick()
	}
	r.HandleKey(KeyLeft, false)
	r.Tick()

	ax, ay := r.Angles()
	assert.Zero(t, ax)
	assert.InDelta(t, -0.5, ay, 1e-5)

	center := Point{200, 200}
	got := r.Project(400, 400)
	for i, v := range Vertices() {
		want := Perspective(v.RotateY(ay), center)
		assert.InDelta(t, want.X, got[i].X, 1e-3, "vertex %d x", i)
		assert.InDelta(t, want.Y, got[i].Y, 1e-3, "vertex %d y", i)
	}
}
