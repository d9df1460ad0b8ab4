// Package cloud reduces a dense density field to a sparse, size-weighted point cloud.
package cloud

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/orbitals/orbital"
)

// SizeRange maps normalised density onto marker sizes: Min + Span*norm.
type SizeRange struct {
	Min  float64
	Span float64
}

// DefaultSizeRange returns the [2, 22] display range.
func DefaultSizeRange() SizeRange {
	return SizeRange{Min: 2, Span: 20}
}

// Size returns the marker size for a normalised density in [0, 1].
func (s SizeRange) Size(norm float64) float64 {
	return s.Min + s.Span*norm
}

// Point is one selected grid sample.
type Point struct {
	X, Y, Z float64
	Density float64
	Norm    float64 // Density / max selected density, in (0, 1]
	Shade   float64 // Colormap coordinate: (Density-min)/(max-min)
	Size    float64
}

// Cloud is the render-ready selection of one orbital.
type Cloud struct {
	Kind       orbital.Kind
	Threshold  float64
	Points     []Point
	MinDensity float64
	MaxDensity float64
}

// Mask returns the elementwise predicate density > threshold.
func Mask(density []float64, threshold float64) []bool {
	mask := make([]bool, len(density))
	for i, d := range density {
		mask[i] = d > threshold
	}
	return mask
}

// Count returns the number of true entries in mask.
func Count(mask []bool) int {
	n := 0
	for _, m := range mask {
		if m {
			n++
		}
	}
	return n
}

// Select thresholds the field and sizes the surviving samples.
// It returns nil when no sample exceeds the threshold; the caller skips the orbital.
func Select(field *orbital.Field, threshold float64, sizes SizeRange) *Cloud {
	mask := Mask(field.Density, threshold)
	n := Count(mask)
	if n == 0 {
		return nil
	}

	selected := make([]float64, 0, n)
	for i, m := range mask {
		if m {
			selected = append(selected, field.Density[i])
		}
	}

	maxD := floats.Max(selected)
	minD := floats.Min(selected)
	shadeSpan := maxD - minD

	g := field.Grid
	points := make([]Point, 0, n)
	for i, m := range mask {
		if !m {
			continue
		}
		d := field.Density[i]
		norm := d / maxD
		shade := 0.0
		if shadeSpan > 0 {
			shade = (d - minD) / shadeSpan
		}
		points = append(points, Point{
			X:       g.X[i],
			Y:       g.Y[i],
			Z:       g.Z[i],
			Density: d,
			Norm:    norm,
			Shade:   shade,
			Size:    sizes.Size(norm),
		})
	}

	return &Cloud{
		Kind:       field.Kind,
		Threshold:  threshold,
		Points:     points,
		MinDensity: minD,
		MaxDensity: maxD,
	}
}

// Len returns the number of points; zero for a nil cloud.
func (c *Cloud) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Points)
}

// Stats summarises the selected densities.
type Stats struct {
	Kind    string
	Count   int
	Min     float64
	Max     float64
	Mean    float64
	StdDev  float64
	MaxSize float64
}

// Stats computes summary statistics over the cloud's densities.
func (c *Cloud) Stats() Stats {
	if c.Len() == 0 {
		return Stats{}
	}

	densities := make([]float64, len(c.Points))
	sizes := make([]float64, len(c.Points))
	for i, p := range c.Points {
		densities[i] = p.Density
		sizes[i] = p.Size
	}

	s := Stats{
		Kind:    c.Kind.String(),
		Count:   len(c.Points),
		Min:     c.MinDensity,
		Max:     c.MaxDensity,
		MaxSize: floats.Max(sizes),
	}
	if len(densities) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(densities, nil)
	} else {
		s.Mean = densities[0]
	}
	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s Stats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", s.Kind),
		slog.Int("points", s.Count),
		slog.Float64("min_density", s.Min),
		slog.Float64("max_density", s.Max),
		slog.Float64("mean_density", s.Mean),
		slog.Float64("std_density", s.StdDev),
		slog.Float64("max_size", s.MaxSize),
	)
}
