package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/inspector"
)

// Inspector widget colors
var (
	ColorBarBg   = rl.Color{R: 40, G: 40, B: 40, A: 255}
	ColorBarFill = rl.Color{R: 100, G: 180, B: 100, A: 255}
	ColorBarLow  = rl.Color{R: 180, G: 80, B: 80, A: 255}
	ColorText    = rl.Color{R: 220, G: 220, B: 220, A: 255}
	ColorTextDim = rl.Color{R: 150, G: 150, B: 150, A: 255}
	ColorPanelBg = rl.Color{R: 20, G: 20, B: 30, A: 220}
)

// DrawInspectLabel renders a text value.
func DrawInspectLabel(x, y int32, name string, value interface{}, options map[string]string) int32 {
	text := inspector.FormatValue(value, options["fmt"])
	rl.DrawText(fmt.Sprintf("%s: %s", name, text), x, y, 14, ColorText)
	return 18
}

// DrawInspectBar renders a horizontal fill bar.
func DrawInspectBar(x, y int32, name string, value float32, options map[string]string) int32 {
	ratio := inspector.Ratio(value, options)

	barWidth := int32(100)
	barHeight := int32(12)

	rl.DrawText(name, x, y, 14, ColorTextDim)

	barX := x + 90
	rl.DrawRectangle(barX, y+1, barWidth, barHeight, ColorBarBg)

	fillColor := lerpColor(ColorBarLow, ColorBarFill, ratio)
	rl.DrawRectangle(barX, y+1, int32(float32(barWidth)*ratio), barHeight, fillColor)

	rl.DrawText(inspector.FormatValue(value, options["fmt"]), barX+barWidth+5, y, 14, ColorTextDim)
	return 18
}

// DrawInspectField renders a field using its widget type.
func DrawInspectField(x, y int32, field inspector.Field) int32 {
	if field.Widget == inspector.WidgetBar {
		if v, ok := inspector.GetFloatValue(field.Value); ok {
			return DrawInspectBar(x, y, field.Name, v, field.Options)
		}
	}
	return DrawInspectLabel(x, y, field.Name, field.Value, field.Options)
}

// StatsPanel draws a titled stack of structs using their inspect tags.
type StatsPanel struct {
	X, Y, Width int32
}

// Draw renders one section per item and returns the panel height.
func (p StatsPanel) Draw(title string, titles []string, items []interface{}) int32 {
	height := int32(28)
	sections := make([][]inspector.Field, len(items))
	for i, item := range items {
		sections[i] = inspector.ExtractFields(item)
		height += 20 + int32(len(sections[i]))*18
	}

	rl.DrawRectangle(p.X, p.Y, p.Width, height, ColorPanelBg)
	rl.DrawText(title, p.X+8, p.Y+6, 16, ColorText)

	y := p.Y + 28
	for i, fields := range sections {
		if i < len(titles) {
			rl.DrawText(titles[i], p.X+8, y, 14, ColorBarFill)
		}
		y += 20
		for _, f := range fields {
			y += DrawInspectField(p.X+16, y, f)
		}
	}
	return height
}

// lerpColor interpolates between two colors.
func lerpColor(a, b rl.Color, t float32) rl.Color {
	return rl.Color{
		R: uint8(float32(a.R) + (float32(b.R)-float32(a.R))*t),
		G: uint8(float32(a.G) + (float32(b.G)-float32(a.G))*t),
		B: uint8(float32(a.B) + (float32(b.B)-float32(a.B))*t),
		A: 255,
	}
}
