package host

import (
	"context"
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"cube/cube"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
)

// TerminalConfig controls the tcell runner.
type TerminalConfig struct {
	// Width and Height are the logical canvas fitted into the terminal.
	Width  int
	Height int
	// TickInterval is the redraw timer period.
	TickInterval time.Duration
	// KeyHold releases a direction once its key repeat has been silent this
	// long. Terminals never report key-up.
	KeyHold time.Duration
}

// RunTerminal draws the cube on the controlling terminal until q, Esc,
// Ctrl-C or ctx cancellation.
func RunTerminal(ctx context.Context, rc cube.Config, cfg TerminalConfig, log *slog.Logger) error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("screen init failed: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("screen start failed: %w", err)
	}

	t := newTerminal(s, rc, cfg)
	err = func() error {
		defer s.Fini()
		return t.run(ctx)
	}()
	ax, ay := t.r.Angles()
	log.Info("terminal closed", "ticks", t.ticks, "angle_x", ax, "angle_y", ay)
	return err
}

type terminal struct {
	s   tcell.Screen
	r   *cube.Renderer
	cfg TerminalConfig

	held  map[cube.Key]time.Time
	dirty bool
	ticks uint64
}

func newTerminal(s tcell.Screen, rc cube.Config, cfg TerminalConfig) *terminal {
	t := &terminal{
		s:     s,
		cfg:   cfg,
		held:  make(map[cube.Key]time.Time),
		dirty: true,
	}
	t.r = NewRenderer(rc, func() { t.dirty = true })
	return t
}

func (t *terminal) run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	// Input handler. Only this loop touches the renderer.
	go func() {
		for {
			ev := t.s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(t.cfg.TickInterval)
	defer ticker.Stop()

	t.paint()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if t.handleEvent(ev, time.Now()) {
				return nil
			}
		case now := <-ticker.C:
			t.tick(now)
		}
	}
}

// handleEvent reports true when the event asks to quit.
func (t *terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return true
			}
		}
		if k := terminalKey(ev.Key()); t.r.HandleKey(k, true) {
			t.held[k] = now
		}
	case *tcell.EventResize:
		t.s.Sync()
		t.dirty = true
	}
	return false
}

func (t *terminal) tick(now time.Time) {
	t.release(now)
	t.r.Tick()
	t.ticks++
	if t.dirty {
		t.paint()
	}
}

func (t *terminal) release(now time.Time) {
	for k, at := range t.held {
		if now.Sub(at) >= t.cfg.KeyHold {
			t.r.HandleKey(k, false)
			delete(t.held, k)
		}
	}
}

func (t *terminal) paint() {
	t.dirty = false
	t.r.Render(newTerminalSurface(t.s, t.cfg.Width, t.cfg.Height, t.r), t.cfg.Width, t.cfg.Height)
}

func terminalKey(k tcell.Key) cube.Key {
	switch k {
	case tcell.KeyUp:
		return cube.KeyUp
	case tcell.KeyDown:
		return cube.KeyDown
	case tcell.KeyLeft:
		return cube.KeyLeft
	case tcell.KeyRight:
		return cube.KeyRight
	default:
		return cube.KeyUnknown
	}
}

const (
	edgeRune   = '▒'
	vertexRune = '●'
)

// terminalSurface fits a logical pixel canvas into the cell grid. Cells are
// about twice as tall as they are wide, so rows get half the horizontal scale.
type terminalSurface struct {
	s      tcell.Screen
	r      *cube.Renderer
	bg     tcell.Style
	scale  float32
	ox, oy float32
	cols   int
	rows   int
}

func newTerminalSurface(s tcell.Screen, width, height int, r *cube.Renderer) *terminalSurface {
	cols, rows := s.Size()
	bg := tcell.StyleDefault.Background(cellColor(r.Style().Background))
	ts := &terminalSurface{s: s, r: r, bg: bg, cols: cols, rows: rows}
	if width <= 0 || height <= 0 || cols <= 0 || rows <= 0 {
		return ts
	}
	ts.scale = math32.Min(float32(cols)/float32(width), 2*float32(rows)/float32(height))
	ts.ox = (float32(cols) - float32(width)*ts.scale) / 2
	ts.oy = (float32(rows) - float32(height)*ts.scale/2) / 2
	return ts
}

func (ts *terminalSurface) BeginFrame() {
	ts.s.SetStyle(ts.bg)
	ts.s.Clear()
}

func (ts *terminalSurface) EndFrame() {
	ax, ay := ts.r.Angles()
	info := fmt.Sprintf("Rotating Cube | %s | x=%.2f y=%.2f | Arrows:steer Q:quit", ts.r.Variant(), ax, ay)
	ts.drawText(0, ts.rows-1, ts.bg.Foreground(tcell.ColorGray), info)
	ts.s.Show()
}

func (ts *terminalSurface) cell(p cube.Point) (int, int, bool) {
	if !finite(p) {
		return 0, 0, false
	}
	x := p.X*ts.scale + ts.ox
	y := p.Y*ts.scale/2 + ts.oy
	// Far off-screen points would make Bresenham walk for a long time.
	limit := float32(4 * (ts.cols + ts.rows))
	if math32.Abs(x) > limit || math32.Abs(y) > limit {
		return 0, 0, false
	}
	return int(math32.Floor(x)), int(math32.Floor(y)), true
}

func (ts *terminalSurface) DrawLine(p1, p2 cube.Point, c color.RGBA, width float32) {
	x0, y0, ok0 := ts.cell(p1)
	x1, y1, ok1 := ts.cell(p2)
	if !ok0 || !ok1 {
		return
	}
	style := ts.bg.Foreground(cellColor(c))

	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	e := dx + dy
	for {
		ts.s.SetContent(x0, y0, edgeRune, nil, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

func (ts *terminalSurface) FillCircle(center cube.Point, radius float32, c color.RGBA) {
	x, y, ok := ts.cell(center)
	if !ok {
		return
	}
	ts.s.SetContent(x, y, vertexRune, nil, ts.bg.Foreground(cellColor(c)))
}

func (ts *terminalSurface) drawText(x, y int, style tcell.Style, str string) {
	for i, r := range []rune(str) {
		ts.s.SetContent(x+i, y, r, nil, style)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func cellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
