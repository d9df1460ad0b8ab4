package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/renderer"
	"github.com/pthm-cable/orbitals/telemetry"
	"github.com/pthm-cable/orbitals/ui"
)

const controlsText = "Drag: orbit | Wheel/+/-: zoom | R: reset view | F11: fullscreen"

// Draw renders the scene and the HUD, then closes the frame timing.
func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	g.background.Draw()

	cam3d := renderer.Camera3D(g.camera)

	g.session.Phase(telemetry.PhaseDrawOrbits)
	rl.BeginMode3D(cam3d)
	renderer.DrawAxes(g.axes)
	g.orbits.DrawPaths()
	g.orbits.DrawMarkers(g.session.Markers())

	g.session.Phase(telemetry.PhaseDrawClouds)
	g.clouds.Draw(cam3d.Position)
	rl.EndMode3D()

	g.session.Phase(telemetry.PhaseDrawHUD)
	renderer.DrawAxisLabels(g.axes, cam3d)
	ui.DrawWorldLabels(g.energyLabels(), cam3d)

	g.hud.Draw(ui.HUDData{
		Title:        g.cfg.Screen.Title,
		Subtitle:     g.cfg.Screen.Subtitle,
		Footer:       g.cfg.Screen.Footer,
		Layers:       g.layerInfo,
		Electrons:    g.electrons,
		Frame:        g.session.Frame(),
		FPS:          rl.GetFPS(),
		ScreenWidth:  int32(g.screenWidth),
		ScreenHeight: int32(g.screenHeight),
	})
	g.hud.DrawControls(int32(g.screenHeight)-18, controlsText)

	// The slider stores into the session alpha; opacity is re-applied next Update
	g.slider.Draw(g.session.Alpha())

	if g.showPerf {
		g.perfPanel.Draw(g.session.Perf().Stats(), telemetry.Phases())
		g.drawFieldStats()
	}

	rl.EndDrawing()
	g.session.EndFrame()
}

// energyLabels maps the shell energies into world space.
func (g *Game) energyLabels() []ui.WorldLabel {
	labels := g.session.EnergyLabels()
	out := make([]ui.WorldLabel, len(labels))
	for i, l := range labels {
		out[i] = ui.WorldLabel{
			Pos:   renderer.World(l.Pos),
			Text:  l.Text,
			Color: l.Color,
		}
	}
	return out
}

// drawFieldStats shows the per-orbital summaries under the timing panel.
func (g *Game) drawFieldStats() {
	stats := g.session.FieldStats()
	titles := make([]string, len(stats))
	items := make([]interface{}, len(stats))
	for i := range stats {
		titles[i] = stats[i].Kind
		items[i] = &stats[i]
	}
	panel := ui.StatsPanel{X: int32(g.screenWidth) - 290, Y: 260, Width: 280}
	panel.Draw("Field statistics", titles, items)
}
