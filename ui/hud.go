package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/telemetry"
)

// LayerInfo describes one orbital in the legend.
type LayerInfo struct {
	Label     string
	Swatch    rl.Color
	Points    int
	Threshold float64
	Alpha     float64
}

// ElectronInfo describes one orbit in the legend.
type ElectronInfo struct {
	Label string
	Color rl.Color
}

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Subtitle     string
	Footer       string
	Layers       []LayerInfo
	Electrons    []ElectronInfo
	Frame        int
	FPS          int32
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the titles, footer and legend.
func (h *HUD) Draw(data HUDData) {
	r := h.renderer
	theme := r.Theme
	cx := data.ScreenWidth / 2

	y := r.DrawCentered(cx, 12, data.Title, theme.TitleFontSize, theme.TitleColor)
	r.DrawCentered(cx, y+2, data.Subtitle, theme.FontSize, theme.LabelColor)
	r.DrawCentered(cx, data.ScreenHeight-22, data.Footer, theme.FontSize, theme.FooterColor)

	h.drawLegend(data)
}

// drawLegend draws the orbital and orbit legend in the top-left corner.
func (h *HUD) drawLegend(data HUDData) {
	r := h.renderer
	theme := r.Theme

	lines := int32(len(data.Layers)*2 + len(data.Electrons) + 4)
	width := int32(230)
	height := lines*theme.LineHeight + theme.Padding*2
	x, y := Anchor(AnchorTopLeft, width, height, data.ScreenWidth, data.ScreenHeight, 10)
	y += 60

	r.DrawPanel(x, y, width, height)
	x += theme.Padding
	y += theme.Padding

	y = r.DrawSectionHeader(x, y, "Orbitals")
	for _, l := range data.Layers {
		if l.Points == 0 {
			y = r.DrawColorSwatch(x, y, l.Label+" (empty)", rl.Fade(l.Swatch, 0.3))
		} else {
			y = r.DrawColorSwatch(x, y, l.Label, rl.Fade(l.Swatch, float32(l.Alpha)))
		}
		r.DrawLabel(x+16, y, fmt.Sprintf("%d pts  > %.1e  a=%.2f", l.Points, l.Threshold, l.Alpha))
		y += theme.LineHeight
	}

	y = r.DrawSectionHeader(x, y, "Electrons")
	for _, e := range data.Electrons {
		y = r.DrawColorSwatch(x, y, e.Label, e.Color)
	}

	r.DrawLabelValue(x, y, "Frame", fmt.Sprintf("%d  (%d fps)", data.Frame, data.FPS))
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-22, 12, rl.DarkGray)
}

// WorldLabel is text pinned to a point in the 3D view.
type WorldLabel struct {
	Pos   rl.Vector3
	Text  string
	Color rl.Color
}

// DrawWorldLabels projects each label and draws it beside its anchor. Call after EndMode3D.
func DrawWorldLabels(labels []WorldLabel, cam rl.Camera3D) {
	for _, l := range labels {
		sp := rl.GetWorldToScreen(l.Pos, cam)
		rl.DrawText(l.Text, int32(sp.X), int32(sp.Y)-6, 14, l.Color)
	}
}

// PerfPanel renders frame phase timings.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats, phases []string) {
	r := p.renderer
	height := int32(len(phases)+2)*r.Theme.LineHeight + r.Theme.Padding*2
	r.DrawPanel(p.x, p.y, 200, height)

	x := p.x + r.Theme.Padding
	y := p.y + r.Theme.Padding
	y = r.DrawSectionHeader(x, y, "Frame timing")
	y = r.DrawLabelValue(x, y, "Avg", fmt.Sprintf("%d us", stats.AvgTickDuration.Microseconds()))

	for _, phase := range phases {
		pct := stats.PhasePct[phase]
		color := r.Theme.LabelColor
		if pct > 50 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}
		rl.DrawText(fmt.Sprintf("%-12s %5.1f%%", phase, pct), x, y, r.Theme.FontSize, color)
		y += r.Theme.LineHeight
	}
}
