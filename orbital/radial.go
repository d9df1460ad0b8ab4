package orbital

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/integrate/quad"
	"gonum.org/v1/gonum/optimize"
)

// radialQuadPoints is the Gauss-Legendre order used for normalisation.
const radialQuadPoints = 256

// RadialProbability returns 4 pi r^2 |psi(r)|^2, the probability per unit radius.
func RadialProbability(kind Kind, r, a float64) float64 {
	return 4 * math.Pi * r * r * Density(kind, r, a)
}

// Normalization integrates the radial probability over [0, rMax].
// It approaches 1 as rMax grows past a few length scales.
func Normalization(kind Kind, a, rMax float64) float64 {
	if rMax <= 0 {
		return 0
	}
	f := func(r float64) float64 { return RadialProbability(kind, r, a) }
	return quad.Fixed(f, 0, rMax, radialQuadPoints, nil, 0)
}

// NodeRadius returns the radius of the spherical density node, if the orbital has one.
func NodeRadius(kind Kind, a float64) (float64, bool) {
	if kind == Kind2s {
		return 2 * a, true
	}
	return 0, false
}

// MostProbableRadius finds the radius maximising the radial probability.
// For 2s the search starts on the outer lobe, which holds the global maximum.
func MostProbableRadius(kind Kind, a float64) (float64, error) {
	start := a
	if kind == Kind2s {
		start = 5 * a
	}

	problem := optimize.Problem{
		Func: func(x []float64) float64 {
			return -RadialProbability(kind, math.Abs(x[0]), a)
		},
	}

	result, err := optimize.Minimize(problem, []float64{start}, nil, &optimize.NelderMead{})
	if err != nil {
		return 0, fmt.Errorf("maximising radial probability for %v: %w", kind, err)
	}
	return math.Abs(result.X[0]), nil
}

// ProfileSample is one row of a radial profile.
type ProfileSample struct {
	R            float64
	Psi1s, Psi2s float64
	Density1s    float64
	Density2s    float64
	RadialProb1s float64
	RadialProb2s float64
}

// Profile samples both orbitals at n evenly spaced radii in [0, rMax].
func Profile(a, rMax float64, n int) []ProfileSample {
	if n < 1 {
		return nil
	}
	out := make([]ProfileSample, n)
	for i := range out {
		r := 0.0
		if n > 1 {
			r = rMax * float64(i) / float64(n-1)
		}
		out[i] = ProfileSample{
			R:            r,
			Psi1s:        Wavefunction(Kind1s, r, a),
			Psi2s:        Wavefunction(Kind2s, r, a),
			Density1s:    Density(Kind1s, r, a),
			Density2s:    Density(Kind2s, r, a),
			RadialProb1s: RadialProbability(Kind1s, r, a),
			RadialProb2s: RadialProbability(Kind2s, r, a),
		}
	}
	return out
}
