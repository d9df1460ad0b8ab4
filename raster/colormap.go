// Package raster draws the orbital scene into software images and encodes
// animated GIFs for headless runs.
package raster

import (
	"fmt"
	"image/color"
	"math"
)

// Colormap maps a scalar in [0, 1] onto a colour by linear interpolation
// between evenly spaced stops.
type Colormap struct {
	Name  string
	stops []color.RGBA
}

// Stops sampled from matplotlib's perceptually uniform maps at 1/8 steps.
var (
	viridisStops = []color.RGBA{
		{68, 1, 84, 255},
		{71, 45, 123, 255},
		{59, 82, 139, 255},
		{44, 114, 142, 255},
		{33, 145, 140, 255},
		{40, 174, 128, 255},
		{94, 201, 98, 255},
		{173, 220, 48, 255},
		{253, 231, 37, 255},
	}
	plasmaStops = []color.RGBA{
		{13, 8, 135, 255},
		{76, 2, 161, 255},
		{126, 3, 168, 255},
		{169, 35, 149, 255},
		{204, 71, 120, 255},
		{230, 108, 92, 255},
		{248, 149, 64, 255},
		{253, 197, 39, 255},
		{240, 249, 33, 255},
	}
)

// Viridis returns the blue-green-yellow map used for the 1s cloud.
func Viridis() Colormap {
	return Colormap{Name: "viridis", stops: viridisStops}
}

// Plasma returns the purple-orange-yellow map used for the 2s cloud.
func Plasma() Colormap {
	return Colormap{Name: "plasma", stops: plasmaStops}
}

// LookupColormap returns the colormap with the given name.
func LookupColormap(name string) (Colormap, error) {
	switch name {
	case "viridis":
		return Viridis(), nil
	case "plasma":
		return Plasma(), nil
	}
	return Colormap{}, fmt.Errorf("unknown colormap %q", name)
}

// At returns the colour for t, clamped to [0, 1].
func (m Colormap) At(t float64) color.RGBA {
	n := len(m.stops)
	if n == 0 {
		return color.RGBA{A: 255}
	}
	if math.IsNaN(t) || t <= 0 {
		return m.stops[0]
	}
	if t >= 1 {
		return m.stops[n-1]
	}

	pos := t * float64(n-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := m.stops[i], m.stops[i+1]
	return color.RGBA{
		R: lerp8(a.R, b.R, frac),
		G: lerp8(a.G, b.G, frac),
		B: lerp8(a.B, b.B, frac),
		A: 255,
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
