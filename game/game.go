// Package game runs the interactive raylib viewer on top of a session.
package game

import (
	"fmt"
	"log/slog"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/camera"
	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/renderer"
	"github.com/pthm-cable/orbitals/session"
	"github.com/pthm-cable/orbitals/telemetry"
	"github.com/pthm-cable/orbitals/ui"
)

// Options configures the viewer.
type Options struct {
	LogStats bool // Show the frame timing panel
}

// Game is the interactive viewer. Requires an open raylib window.
type Game struct {
	session *session.Session
	cfg     *config.Config
	camera  *camera.Camera

	// Renderers
	background *renderer.BackgroundRenderer
	clouds     *renderer.CloudRenderer
	orbits     *renderer.OrbitRenderer
	axes       []renderer.Axis

	// UI
	hud       *ui.HUD
	slider    *ui.AlphaSlider
	perfPanel *ui.PerfPanel
	layerInfo []ui.LayerInfo
	electrons []ui.ElectronInfo

	screenWidth, screenHeight float32
	tickAccum                 float32
	dragging                  bool
	showPerf                  bool
}

// NewGame builds the renderers for an existing session.
func NewGame(s *session.Session, opts Options) *Game {
	cfg := s.Config()
	w, h := cfg.Derived.ScreenW32, cfg.Derived.ScreenH32

	cam := camera.New(
		float32(cfg.Camera.Distance),
		float32(cfg.Camera.YawDeg),
		float32(cfg.Camera.PitchDeg),
		float32(cfg.Camera.FovyDeg),
		w, h,
	)
	cam.SetLimits(float32(cfg.Camera.MinDistance), float32(cfg.Camera.MaxDistance))

	colors := make([]rl.Color, len(cfg.Orbits.Electrons))
	electrons := make([]ui.ElectronInfo, len(cfg.Orbits.Electrons))
	for i, e := range cfg.Orbits.Electrons {
		colors[i] = rl.NewColor(e.Color[0], e.Color[1], e.Color[2], 255)
		electrons[i] = ui.ElectronInfo{
			Label: shellLabel(e.Shell, i),
			Color: colors[i],
		}
	}

	g := &Game{
		session:      s,
		cfg:          cfg,
		camera:       cam,
		background:   renderer.NewBackgroundRenderer(int32(w), int32(h), cfg.Render.Background),
		clouds:       renderer.NewCloudRenderer(s.Layers(), cfg.Render.PointScale),
		orbits:       renderer.NewOrbitRenderer(s.Paths(), colors, cfg.Render.PointScale),
		axes:         renderer.Axes(cfg.Grid.HalfExtent),
		hud:          ui.NewHUD(),
		slider:       ui.NewAlphaSlider(int32(w), int32(h)),
		perfPanel:    ui.NewPerfPanel(int32(w)-210, 70),
		electrons:    electrons,
		screenWidth:  w,
		screenHeight: h,
		showPerf:     opts.LogStats,
	}
	g.background.Init()
	g.refreshLayers()

	slog.Info("viewer ready",
		"splats", g.clouds.Len(),
		"electrons", len(electrons),
		"alpha", s.Alpha().Value(),
	)
	return g
}

// Update processes input and advances the animation on its tick interval.
func (g *Game) Update() {
	g.session.BeginFrame()

	g.session.Phase(telemetry.PhaseInput)
	g.handleInput()

	g.session.Phase(telemetry.PhaseStep)
	dt := rl.GetFrameTime()
	g.tickAccum += dt
	tick := g.cfg.Derived.TickSeconds
	for tick > 0 && g.tickAccum >= tick {
		g.session.Step()
		g.tickAccum -= tick
	}
	if g.cfg.Camera.AutoRotate != 0 && !g.dragging {
		g.camera.Rotate(float32(g.cfg.Camera.AutoRotate*math.Pi/180)*dt, 0)
	}

	if g.session.TakeDirty() {
		g.refreshLayers()
	}
}

// refreshLayers pushes the current layer opacity to the splats and legend.
func (g *Game) refreshLayers() {
	layers := g.session.Layers()
	g.clouds.SetAlpha(layers)
	g.background.SetGlow(g.session.Alpha().Value())

	g.layerInfo = g.layerInfo[:0]
	for _, l := range layers {
		info := ui.LayerInfo{
			Label:     l.Label,
			Swatch:    l.Colormap.At(1),
			Threshold: l.Threshold,
			Alpha:     l.Alpha,
		}
		info.Points = l.Cloud.Len()
		g.layerInfo = append(g.layerInfo, info)
	}
}

// Frame returns the number of animation ticks taken.
func (g *Game) Frame() int {
	return g.session.Frame()
}

// Unload frees GPU resources.
func (g *Game) Unload() {
	g.background.Unload()
}

func shellLabel(shell, index int) string {
	return fmt.Sprintf("electron %d (%ds)", index+1, shell)
}
