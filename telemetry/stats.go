package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/orbital"
)

// FieldStats summarises one evaluated orbital and its selection.
type FieldStats struct {
	Kind       string  `csv:"kind" inspect:"skip"`
	Threshold  float64 `csv:"threshold" inspect:"label,fmt:%.2e"`
	GridPoints int     `csv:"grid_points" inspect:"skip"`
	Selected   int     `csv:"selected"`
	Fraction   float64 `csv:"selected_fraction" inspect:"bar,max:0.05"`

	// Probability captured by the grid (sum of density * cell volume)
	GridTotal float64 `csv:"grid_total" inspect:"bar,max:1"`

	// Whole-field density
	FieldMax  float64 `csv:"field_max" inspect:"label,fmt:%.3e"`
	FieldMean float64 `csv:"field_mean" inspect:"skip"`

	// Selected density distribution
	SelectedMean float64 `csv:"selected_mean" inspect:"label,fmt:%.3e"`
	SelectedStd  float64 `csv:"selected_std" inspect:"skip"`
	SelectedP10  float64 `csv:"selected_p10" inspect:"skip"`
	SelectedP50  float64 `csv:"selected_p50" inspect:"label,fmt:%.3e"`
	SelectedP90  float64 `csv:"selected_p90" inspect:"skip"`

	// Energy label for the orbital's shell, eV
	EnergyEV float64 `csv:"energy_ev" inspect:"label,fmt:%.1f eV"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeDensityStats calculates mean, std, and percentiles from density values.
func ComputeDensityStats(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}
	if n == 1 {
		return values[0], 0, values[0], values[0], values[0]
	}

	mean, std = stat.PopMeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)

	return mean, std, p10, p50, p90
}

// ComputeFieldStats builds the summary for a field and its (possibly nil) cloud.
func ComputeFieldStats(field *orbital.Field, c *cloud.Cloud, threshold float64, atomicNumber int) FieldStats {
	s := FieldStats{
		Kind:       field.Kind.String(),
		Threshold:  threshold,
		GridPoints: len(field.Density),
		Selected:   c.Len(),
		GridTotal:  field.Total(),
		EnergyEV:   orbital.EnergyLevel(field.Kind.PrincipalNumber(), atomicNumber),
	}

	if s.GridPoints > 0 {
		s.Fraction = float64(s.Selected) / float64(s.GridPoints)
		s.FieldMean = stat.Mean(field.Density, nil)
		for _, d := range field.Density {
			if d > s.FieldMax {
				s.FieldMax = d
			}
		}
	}

	if c.Len() > 0 {
		selected := make([]float64, len(c.Points))
		for i, p := range c.Points {
			selected[i] = p.Density
		}
		s.SelectedMean, s.SelectedStd, s.SelectedP10, s.SelectedP50, s.SelectedP90 = ComputeDensityStats(selected)
	}

	return s
}

// LogValue implements slog.LogValuer for structured logging.
func (s FieldStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("kind", s.Kind),
		slog.Float64("threshold", s.Threshold),
		slog.Int("grid_points", s.GridPoints),
		slog.Int("selected", s.Selected),
		slog.Float64("selected_fraction", s.Fraction),
		slog.Float64("grid_total", s.GridTotal),
		slog.Float64("field_max", s.FieldMax),
		slog.Float64("field_mean", s.FieldMean),
		slog.Float64("selected_mean", s.SelectedMean),
		slog.Float64("selected_std", s.SelectedStd),
		slog.Float64("selected_p10", s.SelectedP10),
		slog.Float64("selected_p50", s.SelectedP50),
		slog.Float64("selected_p90", s.SelectedP90),
		slog.Float64("energy_ev", s.EnergyEV),
	)
}

// LogStats logs the field stats using slog.
func (s FieldStats) LogStats() {
	slog.Info("field", "stats", s)
}
