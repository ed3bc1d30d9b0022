// Package window hosts the cube in an ebiten desktop window.
package window

import (
	"image/color"
	"log/slog"

	"cube/cube"
	"cube/host"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Config is the fixed desktop window setup.
type Config struct {
	Title  string
	Width  int
	Height int
	TPS    int
}

// Run opens a non-resizable window and blocks until it is closed.
// Update delivers ticks and key transitions; Draw paints the cube.
func Run(cfg Config, rc cube.Config, log *slog.Logger) error {
	g := newWindowGame(cfg, rc)

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(cfg.TPS)
	// Frames are only repainted after a tick asked for it.
	ebiten.SetScreenClearedEveryFrame(false)

	log.Info("window opened", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height,
		"tps", cfg.TPS, "variant", g.r.Variant().String())
	err := ebiten.RunGame(g)
	ax, ay := g.r.Angles()
	log.Info("window closed", "ticks", g.ticks, "frames", g.frames, "angle_x", ax, "angle_y", ay)
	return err
}

type windowGame struct {
	r      *cube.Renderer
	width  int
	height int

	dirty  bool
	ticks  uint64
	frames uint64
}

func newWindowGame(cfg Config, rc cube.Config) *windowGame {
	g := &windowGame{width: cfg.Width, height: cfg.Height, dirty: true}
	g.r = host.NewRenderer(rc, g.invalidate)
	return g
}

func (g *windowGame) invalidate() { g.dirty = true }

var windowKeys = []struct {
	key  ebiten.Key
	code cube.Key
}{
	{ebiten.KeyArrowUp, cube.KeyUp},
	{ebiten.KeyArrowDown, cube.KeyDown},
	{ebiten.KeyArrowLeft, cube.KeyLeft},
	{ebiten.KeyArrowRight, cube.KeyRight},
}

func (g *windowGame) Update() error {
	for _, k := range windowKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.r.HandleKey(k.code, true)
		}
		if inpututil.IsKeyJustReleased(k.key) {
			g.r.HandleKey(k.code, false)
		}
	}
	g.r.Tick()
	g.ticks++
	return nil
}

func (g *windowGame) Draw(screen *ebiten.Image) {
	if !g.dirty {
		return
	}
	g.dirty = false
	g.frames++
	g.r.Render(&windowSurface{dst: screen, bg: g.r.Style().Background}, g.width, g.height)
}

func (g *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// windowSurface strokes onto an ebiten image with anti-aliasing.
type windowSurface struct {
	dst *ebiten.Image
	bg  color.RGBA
}

func (s *windowSurface) BeginFrame() { s.dst.Fill(s.bg) }
func (s *windowSurface) EndFrame()   {}

func (s *windowSurface) DrawLine(p1, p2 cube.Point, c color.RGBA, width float32) {
	vector.StrokeLine(s.dst, p1.X, p1.Y, p2.X, p2.Y, width, c, true)
}

func (s *windowSurface) FillCircle(center cube.Point, radius float32, c color.RGBA) {
	vector.DrawFilledCircle(s.dst, center.X, center.Y, radius, c, true)
}
