// Package components defines ECS components for the electron markers.
package components

import (
	"image/color"

	"github.com/pthm-cable/orbitals/orbit"
)

// Electron holds the animation state of one orbiting marker.
type Electron struct {
	ID    int            // Position in the configured electron list
	Shell int            // Principal quantum number the orbit decorates
	State orbit.Electron // Path and current sample index
}

// Marker holds how an electron is drawn.
type Marker struct {
	Color color.RGBA
	Size  float32 // Same units as cloud marker sizes
}

// Position returns the electron's current sample.
func (e *Electron) Position() orbit.Vec3 {
	return e.State.Position()
}

// Advance moves the electron to the sample for frame.
func (e *Electron) Advance(frame int) {
	e.State = orbit.Step(e.State, frame)
}
