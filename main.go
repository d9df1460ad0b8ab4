package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/camera"
	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/game"
	"github.com/pthm-cable/orbitals/session"
	"github.com/pthm-cable/orbitals/telemetry"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Render the animation to a GIF instead of opening a window")
	gifPath := flag.String("gif", "orbitals.gif", "GIF path written in headless mode")
	frames := flag.Int("frames", 0, "Frames written in headless mode (0 = use config)")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	logStats := flag.Bool("log-stats", false, "Output perf stats via slog")
	maxTicks := flag.Int("max-ticks", 0, "Close the window after N animation ticks (0 = unlimited)")

	flag.Parse()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	output, err := telemetry.NewOutputManager(*outputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
		os.Exit(1)
	}
	defer output.Close()

	s, err := session.New(cfg, session.Options{Output: output, LogStats: *logStats})
	if err != nil {
		slog.Error("failed to build session", "error", err)
		os.Exit(1)
	}
	if err := s.WriteOutputs(); err != nil {
		slog.Error("failed to write outputs", "error", err)
		os.Exit(1)
	}

	if *headless {
		n := *frames
		if n <= 0 {
			n = cfg.Animation.Frames
		}
		cam := camera.New(
			float32(cfg.Camera.Distance),
			float32(cfg.Camera.YawDeg),
			float32(cfg.Camera.PitchDeg),
			float32(cfg.Camera.FovyDeg),
			cfg.Derived.ScreenW32,
			cfg.Derived.ScreenH32,
		)

		slog.Info("starting headless export", "gif", *gifPath, "frames", n)
		if err := s.ExportGIF(*gifPath, n, cam); err != nil {
			slog.Error("gif export failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagMsaa4xHint | rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), cfg.Screen.Title)
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	g := game.NewGame(s, game.Options{LogStats: *logStats})
	defer g.Unload()

	for !rl.WindowShouldClose() {
		g.Update()
		g.Draw()

		if *maxTicks > 0 && g.Frame() >= *maxTicks {
			slog.Info("max ticks reached", "tick", g.Frame())
			break
		}
	}
}
