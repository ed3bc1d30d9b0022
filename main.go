// main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cube/cube"
	"cube/host"
	"cube/host/window"
	"cube/internal/buildinfo"
	"cube/internal/config"
	"cube/internal/logger"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (optional)")
	mode := flag.String("mode", "", "Host: window, terminal or headless")
	variant := flag.String("variant", "", "Rotation: spin (constant Y turn) or steer (arrow keys)")
	hz := flag.Int("hz", 0, "Tick rate in headless mode")
	ticks := flag.Uint64("ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted)")
	hold := flag.String("hold", "", "Direction held for the whole headless run: left, right, up or down")
	natural := flag.Bool("natural-vertical", false, "Map the Up key to upward rotation instead of the classic swapped mapping")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn or error")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flags win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "variant":
			cfg.Animation.Variant = *variant
		case "hz":
			cfg.Headless.Hz = *hz
		case "ticks":
			cfg.Headless.Ticks = *ticks
		case "hold":
			cfg.Headless.Hold = *hold
		case "natural-vertical":
			cfg.Animation.NaturalVertical = *natural
		case "log-level":
			cfg.Logging.Level = *logLevel
		}
	})

	logCfg := logger.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format}
	if cfg.Logging.File != "" {
		f, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logCfg.Output = f
	}
	log := logger.Init(logCfg)

	if err := cfg.Validate(); err != nil {
		log.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	if err := run(cfg, log); err != nil {
		log.Error("Run failed", "mode", cfg.Mode, "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	rc, err := cfg.Renderer()
	if err != nil {
		return err
	}
	log = log.With("build", buildinfo.Short())

	switch cfg.Mode {
	case config.ModeWindow:
		return window.Run(window.Config{
			Title:  cfg.Window.Title + " (" + buildinfo.Short() + ")",
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			TPS:    cfg.Window.TPS,
		}, rc, log)

	case config.ModeTerminal:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		err := host.RunTerminal(ctx, rc, host.TerminalConfig{
			Width:        cfg.Window.Width,
			Height:       cfg.Window.Height,
			TickInterval: cfg.Terminal.TickInterval,
			KeyHold:      cfg.Terminal.KeyHold,
		}, log)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	case config.ModeHeadless:
		var holds []cube.Direction
		if cfg.Headless.Hold != "" {
			d, err := config.ParseDirection(cfg.Headless.Hold)
			if err != nil {
				return err
			}
			holds = append(holds, d)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		res, err := host.RunHeadless(ctx, rc, host.HeadlessConfig{
			Width:  cfg.Window.Width,
			Height: cfg.Window.Height,
			Hz:     cfg.Headless.Hz,
			Ticks:  cfg.Headless.Ticks,
			Hold:   holds,
		}, log)
		log.Info("headless done", "ticks", res.Ticks, "frames", res.Frames,
			"angle_x", res.AngleX, "angle_y", res.AngleY, "lit_pixels", res.Lit)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err

	default:
		return fmt.Errorf("unknown mode %q", cfg.Mode)
	}
}
