package cloud

import (
	"math"
	"testing"

	"github.com/pthm-cable/orbitals/orbital"
)

func TestCaptured(t *testing.T) {
	density := []float64{4, 3, 2, 1}
	tests := []struct {
		threshold float64
		want      float64
	}{
		{0, 1},
		{1, 0.9},
		{2.5, 0.7},
		{4, 0},
	}
	for _, tt := range tests {
		if got := Captured(density, tt.threshold); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Captured(%v) = %v, want %v", tt.threshold, got, tt.want)
		}
	}

	if got := Captured([]float64{0, 0}, -1); got != 0 {
		t.Errorf("zero field should capture 0, got %v", got)
	}
}

func TestThresholdForCapture(t *testing.T) {
	density := []float64{1, 4, 2, 3}
	tests := []struct {
		name     string
		fraction float64
		want     float64
	}{
		{"nothing", 0, 4},
		{"largest only", 0.4, 3},
		{"half", 0.5, 2},
		{"ninety percent", 0.9, 1},
		{"everything", 1, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThresholdForCapture(density, tt.fraction)
			if got != tt.want {
				t.Errorf("ThresholdForCapture(%v) = %v, want %v", tt.fraction, got, tt.want)
			}
			if tt.fraction > 0 && Captured(density, got) < tt.fraction-1e-12 {
				t.Errorf("threshold %v captures %v, below %v", got, Captured(density, got), tt.fraction)
			}
		})
	}
}

func TestThresholdForCaptureTies(t *testing.T) {
	// Equal densities are selected together
	got := ThresholdForCapture([]float64{2, 2, 1}, 0.3)
	if got != 1 {
		t.Errorf("got %v, want 1", got)
	}
}

func TestThresholdForCaptureField(t *testing.T) {
	f := field(t, orbital.Kind1s, 31)
	th := ThresholdForCapture(f.Density, 0.9)
	c := Select(f, th, DefaultSizeRange())
	if c == nil {
		t.Fatal("expected a cloud")
	}
	if got := Captured(f.Density, th); got < 0.9-1e-9 {
		t.Errorf("captured %v, want >= 0.9", got)
	}

	// A higher target never needs a higher threshold
	if th95 := ThresholdForCapture(f.Density, 0.95); th95 > th {
		t.Errorf("threshold for 0.95 (%v) above threshold for 0.9 (%v)", th95, th)
	}
}
