package orbital

import (
	"fmt"
	"math"
)

// RydbergEV is the hydrogen ground-state binding energy in electron volts.
const RydbergEV = 13.6

// Kind identifies an s orbital.
type Kind uint8

const (
	Kind1s Kind = iota + 1
	Kind2s
)

// ParseKind converts "1s" / "2s" into a Kind.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "1s":
		return Kind1s, nil
	case "2s":
		return Kind2s, nil
	}
	return 0, fmt.Errorf("unknown orbital %q", s)
}

func (k Kind) String() string {
	switch k {
	case Kind1s:
		return "1s"
	case Kind2s:
		return "2s"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// PrincipalNumber returns n for the orbital.
func (k Kind) PrincipalNumber() int {
	switch k {
	case Kind1s:
		return 1
	case Kind2s:
		return 2
	}
	return 0
}

// Params holds the physical constants of the atom.
type Params struct {
	BohrRadius   float64 // Length scale a
	AtomicNumber int     // Z, used for energy levels
}

// Validate rejects parameters the formulas cannot be evaluated with.
func (p Params) Validate() error {
	if !(p.BohrRadius > 0) || math.IsInf(p.BohrRadius, 0) {
		return fmt.Errorf("bohr radius must be positive and finite, got %g", p.BohrRadius)
	}
	return nil
}

// Wavefunction evaluates psi(r) for the orbital with length scale a.
//
//	1s: sqrt(1/(pi a^3)) * exp(-r/a)
//	2s: 1/(4 sqrt(2 pi a^3)) * (2 - r/a) * exp(-r/(2a))
//
// The 2s factor (2 - r/a) is exactly zero at r = 2a.
func Wavefunction(kind Kind, r, a float64) float64 {
	a3 := a * a * a
	switch kind {
	case Kind1s:
		return math.Sqrt(1/(math.Pi*a3)) * math.Exp(-r/a)
	case Kind2s:
		return 1 / (4 * math.Sqrt(2*math.Pi*a3)) * (2 - r/a) * math.Exp(-r/(2*a))
	}
	return 0
}

// Density returns |psi(r)|^2.
func Density(kind Kind, r, a float64) float64 {
	psi := Wavefunction(kind, r, a)
	return psi * psi
}

// EnergyLevel returns the Bohr-model level -13.6 Z^2 / n^2 in eV.
func EnergyLevel(n, z int) float64 {
	if n <= 0 {
		return 0
	}
	return -RydbergEV * float64(z*z) / float64(n*n)
}

// Field is a density array evaluated on a Grid.
type Field struct {
	Kind    Kind
	Grid    *Grid
	Density []float64
}

// Evaluate computes the density of kind at every grid sample.
func Evaluate(grid *Grid, kind Kind, params Params) (*Field, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if kind.PrincipalNumber() == 0 {
		return nil, fmt.Errorf("cannot evaluate %v", kind)
	}

	r := grid.Radial()
	density := make([]float64, len(r))
	for i, ri := range r {
		density[i] = Density(kind, ri, params.BohrRadius)
	}

	return &Field{Kind: kind, Grid: grid, Density: density}, nil
}

// Total returns the sum of density times cell volume, the probability
// captured by the grid. Zero for a single-sample grid.
func (f *Field) Total() float64 {
	var sum float64
	for _, d := range f.Density {
		sum += d
	}
	return sum * f.Grid.CellVolume()
}
