package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// AlphaValue is the state behind the slider.
type AlphaValue interface {
	Value() float32
	Set(v float32) bool
}

// AlphaSlider is the single cloud opacity control.
type AlphaSlider struct {
	Bounds   rl.Rectangle
	Label    string
	renderer *Renderer
}

// NewAlphaSlider places the slider across the middle half of the screen,
// just above the footer.
func NewAlphaSlider(screenW, screenH int32) *AlphaSlider {
	w := float32(screenW) * 0.5
	return &AlphaSlider{
		Bounds: rl.Rectangle{
			X:      float32(screenW) * 0.25,
			Y:      float32(screenH) - 58,
			Width:  w,
			Height: 18,
		},
		Label:    "Cloud Alpha",
		renderer: NewRenderer(),
	}
}

// Contains reports whether p is over the slider, so camera drags can ignore it.
func (s *AlphaSlider) Contains(p rl.Vector2) bool {
	return rl.CheckCollisionPointRec(p, s.Bounds)
}

// Draw renders the slider and stores any change into v.
// Returns true when the value changed this frame.
func (s *AlphaSlider) Draw(v AlphaValue) bool {
	theme := s.renderer.Theme
	x := int32(s.Bounds.X)
	y := int32(s.Bounds.Y)

	labelW := rl.MeasureText(s.Label, theme.FontSize)
	rl.DrawText(s.Label, x-labelW-34, y+3, theme.FontSize, theme.LabelColor)

	next := gui.SliderBar(s.Bounds, "0.0", "1.0", v.Value(), 0, 1)
	changed := v.Set(next)

	rl.DrawText(fmt.Sprintf("%.2f", v.Value()), x+int32(s.Bounds.Width)+34, y+3, theme.FontSize, theme.ValueColor)
	return changed
}
