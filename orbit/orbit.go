// Package orbit builds the decorative circular electron paths and steps
// markers along them.
package orbit

import (
	"fmt"
	"math"
)

// Vec3 is a point on a path.
type Vec3 struct {
	X, Y, Z float64
}

// Path is a closed loop of equally spaced samples on a circle in the z = 0 plane.
type Path struct {
	Radius  float64
	Phase   float64
	Samples []Vec3
}

// NewPath samples n angles theta_i = 2*pi*i/n and places
// (radius*cos(theta+phase), radius*sin(theta+phase), 0).
func NewPath(radius, phase float64, n int) (Path, error) {
	if n < 1 {
		return Path{}, fmt.Errorf("orbit path needs at least one sample, got %d", n)
	}

	samples := make([]Vec3, n)
	for i := range samples {
		theta := 2 * math.Pi * float64(i) / float64(n)
		samples[i] = Vec3{
			X: radius * math.Cos(theta+phase),
			Y: radius * math.Sin(theta+phase),
		}
	}

	return Path{Radius: radius, Phase: phase, Samples: samples}, nil
}

// Len returns the number of samples.
func (p Path) Len() int {
	return len(p.Samples)
}

// Wrap maps any frame counter onto a sample index.
func (p Path) Wrap(k int) int {
	n := len(p.Samples)
	i := k % n
	if i < 0 {
		i += n
	}
	return i
}

// At returns path[k mod n].
func (p Path) At(k int) Vec3 {
	return p.Samples[p.Wrap(k)]
}

// Electron is the animation state of one marker.
type Electron struct {
	Path  Path
	Index int
}

// NewElectron places a marker on the first sample of its path.
func NewElectron(path Path) Electron {
	return Electron{Path: path}
}

// Position returns the current marker position.
func (e Electron) Position() Vec3 {
	return e.Path.Samples[e.Index]
}

// Step returns the state for the given frame counter. It is pure: the
// result depends only on the path and frame, never on the previous index.
func Step(e Electron, frame int) Electron {
	e.Index = e.Path.Wrap(frame)
	return e
}
