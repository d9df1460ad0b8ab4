package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/orbit"
)

// Axis is one labelled coordinate axis.
type Axis struct {
	Label    string
	From, To orbit.Vec3
}

// Axes returns the X, Y and Z axes spanning the sampling grid.
func Axes(halfExtent float64) []Axis {
	h := halfExtent
	return []Axis{
		{Label: "X (a.u.)", From: orbit.Vec3{X: -h}, To: orbit.Vec3{X: h}},
		{Label: "Y (a.u.)", From: orbit.Vec3{Y: -h}, To: orbit.Vec3{Y: h}},
		{Label: "Z (a.u.)", From: orbit.Vec3{Z: -h}, To: orbit.Vec3{Z: h}},
	}
}

var axisColor = rl.Color{R: 90, G: 95, B: 110, A: 160}

// DrawAxes draws the axis lines. Must be called inside BeginMode3D.
func DrawAxes(axes []Axis) {
	for _, a := range axes {
		rl.DrawLine3D(World(a.From), World(a.To), axisColor)
	}
}

// DrawAxisLabels draws each label past the positive end of its axis. Call after EndMode3D.
func DrawAxisLabels(axes []Axis, cam rl.Camera3D) {
	for _, a := range axes {
		end := World(a.To)
		sp := rl.GetWorldToScreen(end, cam)
		rl.DrawText(a.Label, int32(sp.X)+4, int32(sp.Y)-6, 12, rl.Gray)
	}
}
