package telemetry

import (
	"math"
	"testing"

	"github.com/pthm-cable/orbitals/cloud"
	"github.com/pthm-cable/orbitals/orbital"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      float64
		want   float64
	}{
		{"empty slice", []float64{}, 0.5, 0},
		{"single element", []float64{5.0}, 0.5, 5.0},
		{"p0", []float64{1, 2, 3, 4, 5}, 0.0, 1.0},
		{"p100", []float64{1, 2, 3, 4, 5}, 1.0, 5.0},
		{"p50 odd", []float64{1, 2, 3, 4, 5}, 0.5, 3.0},
		{"p50 even", []float64{1, 2, 3, 4}, 0.5, 2.5},
		{"p10", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.1, 1.9},
		{"p90", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 0.9, 9.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Percentile(tt.sorted, tt.p)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("Percentile(%v, %v) = %v, want %v", tt.sorted, tt.p, got, tt.want)
			}
		})
	}
}

func TestComputeDensityStats(t *testing.T) {
	values := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0}
	mean, std, p10, p50, p90 := ComputeDensityStats(values)

	if math.Abs(mean-0.55) > 0.001 {
		t.Errorf("mean = %v, want 0.55", mean)
	}

	// Population std of 0.1..1.0 is sqrt(0.0825)
	if math.Abs(std-math.Sqrt(0.0825)) > 0.001 {
		t.Errorf("std = %v, want ~0.287", std)
	}

	if math.Abs(p10-0.19) > 0.01 {
		t.Errorf("p10 = %v, want ~0.19", p10)
	}
	if math.Abs(p50-0.55) > 0.01 {
		t.Errorf("p50 = %v, want ~0.55", p50)
	}
	if math.Abs(p90-0.91) > 0.01 {
		t.Errorf("p90 = %v, want ~0.91", p90)
	}
}

func TestComputeDensityStatsEmpty(t *testing.T) {
	mean, std, p10, p50, p90 := ComputeDensityStats([]float64{})

	if mean != 0 || std != 0 || p10 != 0 || p50 != 0 || p90 != 0 {
		t.Error("empty slice should return all zeros")
	}
}

func TestComputeFieldStats(t *testing.T) {
	g, err := orbital.NewGrid(31, 20)
	if err != nil {
		t.Fatal(err)
	}
	f, err := orbital.Evaluate(g, orbital.Kind1s, orbital.Params{BohrRadius: 5, AtomicNumber: 3})
	if err != nil {
		t.Fatal(err)
	}
	c := cloud.Select(f, 0.0005, cloud.DefaultSizeRange())

	s := ComputeFieldStats(f, c, 0.0005, 3)

	if s.Kind != "1s" {
		t.Errorf("kind = %q, want 1s", s.Kind)
	}
	if s.GridPoints != 31*31*31 {
		t.Errorf("grid points = %d, want %d", s.GridPoints, 31*31*31)
	}
	if s.Selected != c.Len() || s.Selected == 0 {
		t.Errorf("selected = %d, cloud has %d", s.Selected, c.Len())
	}
	if s.SelectedP10 > s.SelectedP50 || s.SelectedP50 > s.SelectedP90 {
		t.Errorf("percentiles out of order: %v %v %v", s.SelectedP10, s.SelectedP50, s.SelectedP90)
	}
	if s.SelectedMean <= 0.0005 {
		t.Errorf("selected mean %v should exceed the threshold", s.SelectedMean)
	}
	if math.Abs(s.EnergyEV-(-122.4)) > 1e-9 {
		t.Errorf("energy = %v, want -122.4", s.EnergyEV)
	}
	if math.Abs(s.FieldMax-1/(math.Pi*125)) > 1e-12 {
		t.Errorf("field max = %v, want density at the nucleus", s.FieldMax)
	}
}

func TestComputeFieldStatsEmptySelection(t *testing.T) {
	g, _ := orbital.NewGrid(10, 20)
	f, _ := orbital.Evaluate(g, orbital.Kind2s, orbital.Params{BohrRadius: 5, AtomicNumber: 3})

	s := ComputeFieldStats(f, nil, 1, 3)
	if s.Selected != 0 || s.Fraction != 0 || s.SelectedMean != 0 {
		t.Errorf("empty selection should zero the selected stats, got %+v", s)
	}
	if math.Abs(s.EnergyEV-(-30.6)) > 1e-9 {
		t.Errorf("energy = %v, want -30.6", s.EnergyEV)
	}
}
