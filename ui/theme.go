// Package ui draws the viewer's overlay: titles, legend, energy labels and
// the cloud alpha slider.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	TitleColor     rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	FooterColor    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 220},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		TitleColor:     rl.White,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		FooterColor:    rl.Gray,
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     70,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  24,
	}
}

// PanelAnchor specifies where a panel is anchored on screen.
type PanelAnchor int

const (
	AnchorTopLeft PanelAnchor = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
)

// Anchor returns the top-left corner of a w by h panel placed at anchor
// with margin from the screen edges.
func Anchor(anchor PanelAnchor, w, h, screenW, screenH, margin int32) (int32, int32) {
	switch anchor {
	case AnchorTopRight:
		return screenW - w - margin, margin
	case AnchorBottomLeft:
		return margin, screenH - h - margin
	case AnchorBottomRight:
		return screenW - w - margin, screenH - h - margin
	}
	return margin, margin
}
