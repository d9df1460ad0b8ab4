package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/orbit"
	"github.com/pthm-cable/orbitals/session"
)

// OrbitRenderer draws the electron paths and markers.
type OrbitRenderer struct {
	paths      [][]rl.Vector3
	colors     []rl.Color
	pointScale float64
}

// NewOrbitRenderer converts the paths to world space once.
func NewOrbitRenderer(paths []orbit.Path, colors []rl.Color, pointScale float64) *OrbitRenderer {
	r := &OrbitRenderer{colors: colors, pointScale: pointScale}
	for _, p := range paths {
		pts := make([]rl.Vector3, p.Len())
		for i, s := range p.Samples {
			pts[i] = World(s)
		}
		r.paths = append(r.paths, pts)
	}
	return r
}

// DrawPaths draws each path as a closed polyline. Must be called inside BeginMode3D.
func (r *OrbitRenderer) DrawPaths() {
	for i, pts := range r.paths {
		col := rl.White
		if i < len(r.colors) {
			col = r.colors[i]
		}
		n := len(pts)
		for j := 0; j < n; j++ {
			rl.DrawLine3D(pts[j], pts[(j+1)%n], col)
		}
	}
}

// DrawMarkers draws the electrons at their current samples. Must be called inside BeginMode3D.
func (r *OrbitRenderer) DrawMarkers(markers []session.Marker) {
	for _, m := range markers {
		rl.DrawSphere(World(m.Pos), SplatRadius(r.pointScale, m.Size), m.Color)
	}
}
