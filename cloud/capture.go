package cloud

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Captured returns the share of the summed density held by samples above
// threshold. Zero when the field sums to zero.
func Captured(density []float64, threshold float64) float64 {
	total := floats.Sum(density)
	if total <= 0 {
		return 0
	}
	var above float64
	for _, d := range density {
		if d > threshold {
			above += d
		}
	}
	return above / total
}

// ThresholdForCapture returns a threshold whose selection holds at least
// fraction of the summed density with as few samples as possible.
// fraction <= 0 returns the field maximum, which selects nothing.
func ThresholdForCapture(density []float64, fraction float64) float64 {
	if len(density) == 0 {
		return 0
	}
	sorted := make([]float64, len(density))
	copy(sorted, density)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	if fraction <= 0 {
		return sorted[0]
	}
	total := floats.Sum(sorted)
	if total <= 0 {
		return 0
	}

	target := fraction * total
	var acc float64
	for i, d := range sorted {
		acc += d
		if acc < target && i < len(sorted)-1 {
			continue
		}
		// Everything >= d must pass, so step down to the next distinct value
		for _, next := range sorted[i+1:] {
			if next < d {
				return next
			}
		}
		return 0
	}
	return 0
}
