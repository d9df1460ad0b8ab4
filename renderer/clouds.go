package renderer

import (
	"math"
	"sort"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/orbit"
	"github.com/pthm-cable/orbitals/session"
)

// Sphere tessellation for cloud splats.
const (
	splatRings  = 4
	splatSlices = 6
)

// cloudPoint is one splat ready to draw.
type cloudPoint struct {
	pos    rl.Vector3
	radius float32
	base   rl.Color
	color  rl.Color
	layer  int
	depth  float32
}

// CloudRenderer draws every non-empty layer as alpha-blended spheres.
type CloudRenderer struct {
	points []cloudPoint
	order  []int
}

// NewCloudRenderer builds the splat list from the session layers.
// Layers with an empty selection contribute nothing.
func NewCloudRenderer(layers []*session.Layer, pointScale float64) *CloudRenderer {
	r := &CloudRenderer{}
	for li, l := range layers {
		if l.Cloud == nil {
			continue
		}
		for _, p := range l.Cloud.Points {
			r.points = append(r.points, cloudPoint{
				pos:    World(orbit.Vec3{X: p.X, Y: p.Y, Z: p.Z}),
				radius: SplatRadius(pointScale, p.Size),
				base:   l.Colormap.At(p.Shade),
				layer:  li,
			})
		}
	}
	r.order = make([]int, len(r.points))
	for i := range r.order {
		r.order[i] = i
	}
	r.SetAlpha(layers)
	return r
}

// Len returns the number of splats.
func (r *CloudRenderer) Len() int {
	return len(r.points)
}

// SetAlpha re-tints every splat with its layer's current opacity.
func (r *CloudRenderer) SetAlpha(layers []*session.Layer) {
	for i := range r.points {
		p := &r.points[i]
		a := layers[p.layer].Alpha
		p.color = p.base
		p.color.A = uint8(math.Round(clamp01(a) * 255))
	}
}

// Draw renders the splats back to front as seen from eye. Must be called inside BeginMode3D.
func (r *CloudRenderer) Draw(eye rl.Vector3) {
	for i := range r.points {
		p := &r.points[i]
		dx, dy, dz := p.pos.X-eye.X, p.pos.Y-eye.Y, p.pos.Z-eye.Z
		p.depth = dx*dx + dy*dy + dz*dz
	}
	sort.Slice(r.order, func(a, b int) bool {
		return r.points[r.order[a]].depth > r.points[r.order[b]].depth
	})

	for _, idx := range r.order {
		p := &r.points[idx]
		if p.color.A == 0 {
			continue
		}
		rl.DrawSphereEx(p.pos, p.radius, splatRings, splatSlices, p.color)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
