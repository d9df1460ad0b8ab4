// Package renderer draws the orbital scene with raylib.
package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/camera"
	"github.com/pthm-cable/orbitals/orbit"
)

// Camera3D converts the orbit camera into a raylib perspective camera.
func Camera3D(cam *camera.Camera) rl.Camera3D {
	x, y, z := cam.Eye()
	return rl.Camera3D{
		Position:   rl.Vector3{X: x, Y: y, Z: z},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       cam.Fovy,
		Projection: rl.CameraPerspective,
	}
}

// World converts a z-up physics point into raylib's Y-up world.
func World(p orbit.Vec3) rl.Vector3 {
	x, y, z := camera.YUp(p.X, p.Y, p.Z)
	return rl.Vector3{X: x, Y: y, Z: z}
}

// SplatRadius returns the world radius of a marker of the given size.
func SplatRadius(pointScale, size float64) float32 {
	if size <= 0 {
		return 0
	}
	return float32(pointScale * math.Sqrt(size))
}
