// Package orbital evaluates hydrogen-like s-orbital densities on a 3D sampling grid.
package orbital

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid is a cubic meshgrid of G*G*G sample points spanning
// [-HalfExtent, +HalfExtent] on every axis.
//
// Samples are stored flattened at (i*G+j)*G+k with meshgrid "xy" ordering:
// X follows j, Y follows i, Z follows k.
type Grid struct {
	Size       int
	HalfExtent float64
	Axis       []float64 // The G coordinates shared by all three axes

	X, Y, Z []float64
	r       []float64
}

// NewGrid builds the coordinate arrays for a grid of the given resolution.
func NewGrid(resolution int, halfExtent float64) (*Grid, error) {
	if resolution < 1 {
		return nil, fmt.Errorf("grid resolution must be >= 1, got %d", resolution)
	}
	if halfExtent <= 0 || math.IsNaN(halfExtent) || math.IsInf(halfExtent, 0) {
		return nil, fmt.Errorf("grid half extent must be positive and finite, got %g", halfExtent)
	}

	axis := make([]float64, resolution)
	if resolution == 1 {
		// Single sample sits at the start of the span, like linspace(lo, hi, 1)
		axis[0] = -halfExtent
	} else {
		floats.Span(axis, -halfExtent, halfExtent)
	}

	n := resolution * resolution * resolution
	g := &Grid{
		Size:       resolution,
		HalfExtent: halfExtent,
		Axis:       axis,
		X:          make([]float64, n),
		Y:          make([]float64, n),
		Z:          make([]float64, n),
		r:          make([]float64, n),
	}

	for i := 0; i < resolution; i++ {
		for j := 0; j < resolution; j++ {
			for k := 0; k < resolution; k++ {
				idx := g.Index(i, j, k)
				x, y, z := axis[j], axis[i], axis[k]
				g.X[idx] = x
				g.Y[idx] = y
				g.Z[idx] = z
				g.r[idx] = math.Sqrt(x*x + y*y + z*z)
			}
		}
	}

	return g, nil
}

// Index returns the flat offset of sample (i, j, k).
func (g *Grid) Index(i, j, k int) int {
	return (i*g.Size+j)*g.Size + k
}

// Len returns the number of samples.
func (g *Grid) Len() int {
	return len(g.X)
}

// Radial returns the distance of every sample from the origin.
// The slice is shared; callers must not modify it.
func (g *Grid) Radial() []float64 {
	return g.r
}

// Spacing returns the distance between neighbouring samples on an axis.
// A single-sample grid has no spacing and reports 0.
func (g *Grid) Spacing() float64 {
	if g.Size < 2 {
		return 0
	}
	return g.Axis[1] - g.Axis[0]
}

// CellVolume returns the volume represented by one sample.
func (g *Grid) CellVolume() float64 {
	h := g.Spacing()
	return h * h * h
}
