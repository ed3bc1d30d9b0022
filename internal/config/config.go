// Package config loads run settings from YAML on top of built-in defaults.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"cube/cube"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

const (
	ModeWindow   = "window"
	ModeTerminal = "terminal"
	ModeHeadless = "headless"
)

type Config struct {
	Mode      string          `yaml:"mode"`
	Window    WindowConfig    `yaml:"window"`
	Animation AnimationConfig `yaml:"animation"`
	Style     StyleConfig     `yaml:"style"`
	Terminal  TerminalConfig  `yaml:"terminal"`
	Headless  HeadlessConfig  `yaml:"headless"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"`
}

type AnimationConfig struct {
	Variant         string  `yaml:"variant"`
	Step            float32 `yaml:"step"`
	NaturalVertical bool    `yaml:"natural_vertical"`
}

type StyleConfig struct {
	Background   string  `yaml:"background"`
	Edge         string  `yaml:"edge"`
	Vertex       string  `yaml:"vertex"`
	EdgeWidth    float32 `yaml:"edge_width"`
	VertexRadius float32 `yaml:"vertex_radius"`
}

type TerminalConfig struct {
	TickInterval time.Duration `yaml:"tick_interval"`
	// KeyHold is how long a direction stays held after its last key repeat.
	KeyHold time.Duration `yaml:"key_hold"`
}

type HeadlessConfig struct {
	Hz    int    `yaml:"hz"`
	Ticks uint64 `yaml:"ticks"`
	Hold  string `yaml:"hold"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log lines instead of stderr. Useful in terminal mode,
	// where stderr shares the screen.
	File string `yaml:"file"`
}

// Default matches the classic demo: a 400x400 window at ~60 ticks a second.
func Default() *Config {
	return &Config{
		Mode: ModeWindow,
		Window: WindowConfig{
			Title:  "Rotating Cube",
			Width:  400,
			Height: 400,
			TPS:    60,
		},
		Animation: AnimationConfig{
			Variant: cube.Spin.String(),
			Step:    cube.DefaultStep,
		},
		Style: StyleConfig{
			Background:   "#000000",
			Edge:         "#ffffff",
			Vertex:       "#ff0000",
			EdgeWidth:    2,
			VertexRadius: 3,
		},
		Terminal: TerminalConfig{
			TickInterval: 16 * time.Millisecond,
			KeyHold:      150 * time.Millisecond,
		},
		Headless: HeadlessConfig{
			Hz: 60,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads path and overlays it on Default. Keys missing from the file keep
// their default values.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot drive a run.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModeWindow, ModeTerminal, ModeHeadless:
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Window.TPS <= 0 {
		return fmt.Errorf("window tps must be positive, got %d", c.Window.TPS)
	}
	if _, err := ParseVariant(c.Animation.Variant); err != nil {
		return err
	}
	if c.Animation.Step <= 0 {
		return fmt.Errorf("animation step must be positive, got %v", c.Animation.Step)
	}
	if _, err := c.Style.Parse(); err != nil {
		return err
	}
	if c.Terminal.TickInterval <= 0 {
		return fmt.Errorf("terminal tick_interval must be positive, got %v", c.Terminal.TickInterval)
	}
	if c.Terminal.KeyHold <= 0 {
		return fmt.Errorf("terminal key_hold must be positive, got %v", c.Terminal.KeyHold)
	}
	if c.Headless.Hz <= 0 {
		return fmt.Errorf("headless hz must be positive, got %d", c.Headless.Hz)
	}
	if c.Headless.Hold != "" {
		if _, err := ParseDirection(c.Headless.Hold); err != nil {
			return err
		}
	}
	return nil
}

// Renderer turns the animation and style sections into a cube.Config.
func (c *Config) Renderer() (cube.Config, error) {
	v, err := ParseVariant(c.Animation.Variant)
	if err != nil {
		return cube.Config{}, err
	}
	style, err := c.Style.Parse()
	if err != nil {
		return cube.Config{}, err
	}
	return cube.Config{
		Variant:         v,
		Step:            c.Animation.Step,
		Style:           &style,
		NaturalVertical: c.Animation.NaturalVertical,
	}, nil
}

// Parse converts the colour strings into a cube.Style.
func (s StyleConfig) Parse() (cube.Style, error) {
	var (
		out cube.Style
		err error
	)
	if out.Background, err = ParseColor(s.Background); err != nil {
		return cube.Style{}, fmt.Errorf("style background: %w", err)
	}
	if out.Edge, err = ParseColor(s.Edge); err != nil {
		return cube.Style{}, fmt.Errorf("style edge: %w", err)
	}
	if out.Vertex, err = ParseColor(s.Vertex); err != nil {
		return cube.Style{}, fmt.Errorf("style vertex: %w", err)
	}
	if s.EdgeWidth <= 0 || s.VertexRadius <= 0 {
		return cube.Style{}, errors.New("style edge_width and vertex_radius must be positive")
	}
	out.EdgeWidth = s.EdgeWidth
	out.VertexRadius = s.VertexRadius
	return out, nil
}

// ParseColor accepts "#rrggbb", "#rgb" or the same without the leading '#'.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

func ParseVariant(s string) (cube.Variant, error) {
	switch strings.ToLower(s) {
	case "spin", "a":
		return cube.Spin, nil
	case "steer", "b":
		return cube.Steer, nil
	default:
		return 0, fmt.Errorf("unknown variant %q (want spin or steer)", s)
	}
}

func ParseDirection(s string) (cube.Direction, error) {
	switch strings.ToLower(s) {
	case "left":
		return cube.DirLeft, nil
	case "right":
		return cube.DirRight, nil
	case "up":
		return cube.DirUp, nil
	case "down":
		return cube.DirDown, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}
