package raster

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/pthm-cable/orbitals/camera"
	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/orbit"
)

// CloudLayer is one orbital's point cloud with its colormap and opacity.
// A nil Cloud is an empty selection and is skipped.
type CloudLayer struct {
	Cloud    *cloud.Cloud
	Colormap Colormap
	Alpha    float64
}

// PathStroke is a closed orbit polyline.
type PathStroke struct {
	Path  orbit.Path
	Color color.RGBA
	Alpha float64
}

// Dot is an electron marker.
type Dot struct {
	Pos   orbit.Vec3
	Color color.RGBA
	Size  float64
}

// Label is text anchored to a world position.
type Label struct {
	Pos   orbit.Vec3
	Text  string
	Color color.RGBA
}

// Scene is everything drawn in one frame. Positions are z-up physics coordinates.
type Scene struct {
	Background color.RGBA
	PointScale float64 // World radius = PointScale * sqrt(size)

	Clouds    []CloudLayer
	Paths     []PathStroke
	Electrons []Dot
	Labels    []Label

	Title    string
	Subtitle string
	Footer   string
	Caption  string
}

// splat is a projected cloud point awaiting depth-sorted drawing.
type splat struct {
	x, y, r, depth float64
	col            color.RGBA
	alpha          float64
}

var textColor = color.RGBA{230, 230, 235, 255}

// Render draws s onto c as seen from cam.
func Render(c *Canvas, cam *camera.Camera, s Scene) {
	c.Clear(s.Background)
	focal := float64(cam.Focal())

	project := func(p orbit.Vec3) (x, y, depth float64, ok bool) {
		wx, wy, wz := camera.YUp(p.X, p.Y, p.Z)
		sx, sy, d, ok := cam.Project(wx, wy, wz)
		return float64(sx), float64(sy), float64(d), ok
	}
	radius := func(size, depth float64) float64 {
		return s.PointScale * math.Sqrt(size) * focal / depth
	}

	// Clouds, painter's order across all layers
	var splats []splat
	for _, layer := range s.Clouds {
		if layer.Cloud == nil || layer.Alpha <= 0 {
			continue
		}
		for _, p := range layer.Cloud.Points {
			x, y, d, ok := project(orbit.Vec3{X: p.X, Y: p.Y, Z: p.Z})
			if !ok {
				continue
			}
			splats = append(splats, splat{
				x: x, y: y, depth: d,
				r:     radius(p.Size, d),
				col:   layer.Colormap.At(p.Shade),
				alpha: layer.Alpha,
			})
		}
	}
	sort.Slice(splats, func(i, j int) bool { return splats[i].depth > splats[j].depth })
	for _, sp := range splats {
		c.Disc(sp.x, sp.y, sp.r, sp.col, sp.alpha)
	}

	for _, stroke := range s.Paths {
		n := stroke.Path.Len()
		for i := 0; i < n; i++ {
			x0, y0, _, ok0 := project(stroke.Path.At(i))
			x1, y1, _, ok1 := project(stroke.Path.At(i + 1))
			if ok0 && ok1 {
				c.Line(x0, y0, x1, y1, stroke.Color, stroke.Alpha)
			}
		}
	}

	for _, e := range s.Electrons {
		x, y, d, ok := project(e.Pos)
		if !ok {
			continue
		}
		c.Disc(x, y, radius(e.Size, d), e.Color, 1)
	}

	for _, l := range s.Labels {
		x, y, _, ok := project(l.Pos)
		if !ok {
			continue
		}
		c.Text(int(x)+6, int(y), l.Text, l.Color)
	}

	if s.Title != "" {
		c.TextCentered(c.W/2, 22, s.Title, textColor)
	}
	if s.Subtitle != "" {
		c.TextCentered(c.W/2, 40, s.Subtitle, textColor)
	}
	if s.Footer != "" {
		c.TextCentered(c.W/2, c.H-12, s.Footer, textColor)
	}
	if s.Caption != "" {
		c.Text(12, c.H-34, s.Caption, textColor)
	}
}

// AlphaCaption formats the slider value the way the window shows it.
func AlphaCaption(alpha float32) string {
	return fmt.Sprintf("Alpha %.2f", alpha)
}
