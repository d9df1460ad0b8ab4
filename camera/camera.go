// Package camera provides an orbit camera around the nucleus.
package camera

import "math"

// maxPitch keeps the view direction away from the up axis.
const maxPitch = 89 * math.Pi / 180

// nearPlane is the minimum view depth accepted by Project.
const nearPlane = 0.01

// Camera orbits the origin on a sphere. World space is Y-up.
type Camera struct {
	// Spherical position, radians
	Yaw, Pitch float32

	// Distance from the origin
	Distance float32

	// Vertical field of view in degrees
	Fovy float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinDistance, MaxDistance float32

	homeYaw, homePitch, homeDistance float32
}

// New creates a camera at the given distance and angles (degrees).
func New(distance, yawDeg, pitchDeg, fovy, viewportW, viewportH float32) *Camera {
	c := &Camera{
		Fovy:        fovy,
		ViewportW:   viewportW,
		ViewportH:   viewportH,
		MinDistance: 1,
		MaxDistance: distance * 4,
	}
	c.homeYaw = mod(yawDeg*math.Pi/180, 2*math.Pi)
	c.homePitch = clamp(pitchDeg*math.Pi/180, -maxPitch, maxPitch)
	c.homeDistance = distance
	c.Reset()
	return c
}

// SetLimits sets the zoom range and re-clamps the distance.
func (c *Camera) SetLimits(minDistance, maxDistance float32) {
	if minDistance > 0 {
		c.MinDistance = minDistance
	}
	if maxDistance > c.MinDistance {
		c.MaxDistance = maxDistance
	}
	c.Distance = clamp(c.Distance, c.MinDistance, c.MaxDistance)
}

// Eye returns the camera position in world coordinates.
func (c *Camera) Eye() (x, y, z float32) {
	cp := float32(math.Cos(float64(c.Pitch)))
	sp := float32(math.Sin(float64(c.Pitch)))
	cy := float32(math.Cos(float64(c.Yaw)))
	sy := float32(math.Sin(float64(c.Yaw)))
	return c.Distance * cp * cy, c.Distance * sp, c.Distance * cp * sy
}

// Rotate turns the camera by the given angles in radians.
// Yaw wraps around; pitch is clamped short of the poles.
func (c *Camera) Rotate(dYaw, dPitch float32) {
	c.Yaw = mod(c.Yaw+dYaw, 2*math.Pi)
	c.Pitch = clamp(c.Pitch+dPitch, -maxPitch, maxPitch)
}

// SetDistance sets the orbit distance, clamped to min/max.
func (c *Camera) SetDistance(d float32) {
	c.Distance = clamp(d, c.MinDistance, c.MaxDistance)
}

// ZoomBy divides the distance by factor (factor > 1 moves closer).
func (c *Camera) ZoomBy(factor float32) {
	if factor <= 0 {
		return
	}
	c.SetDistance(c.Distance / factor)
}

// Reset returns the camera to its initial angles and distance.
func (c *Camera) Reset() {
	c.Yaw = c.homeYaw
	c.Pitch = c.homePitch
	c.Distance = clamp(c.homeDistance, c.MinDistance, c.MaxDistance)
}

// Resize updates viewport dimensions.
func (c *Camera) Resize(viewportW, viewportH float32) {
	c.ViewportW = viewportW
	c.ViewportH = viewportH
}

// Focal returns the projection scale in pixels per world unit at depth 1.
func (c *Camera) Focal() float32 {
	half := float64(c.Fovy) * math.Pi / 360
	return c.ViewportH / 2 / float32(math.Tan(half))
}

// Project maps a world point to screen pixels. depth is the distance along
// the view direction; ok is false for points behind the near plane.
func (c *Camera) Project(x, y, z float32) (sx, sy, depth float32, ok bool) {
	ex, ey, ez := c.Eye()

	// Forward points from the eye to the origin
	fx, fy, fz := normalize(-ex, -ey, -ez)
	// Right = forward x up(0,1,0)
	rx, ry, rz := normalize(-fz, 0, fx)
	// True up = right x forward
	ux := ry*fz - rz*fy
	uy := rz*fx - rx*fz
	uz := rx*fy - ry*fx

	px, py, pz := x-ex, y-ey, z-ez
	depth = px*fx + py*fy + pz*fz
	if depth < nearPlane {
		return 0, 0, depth, false
	}

	scale := c.Focal() / depth
	sx = c.ViewportW/2 + (px*rx+py*ry+pz*rz)*scale
	sy = c.ViewportH/2 - (px*ux+py*uy+pz*uz)*scale
	return sx, sy, depth, true
}

// YUp converts z-up physics coordinates (orbits lie in z = 0) to the
// camera's Y-up world frame.
func YUp(x, y, z float64) (float32, float32, float32) {
	return float32(x), float32(z), float32(-y)
}

func normalize(x, y, z float32) (float32, float32, float32) {
	l := float32(math.Sqrt(float64(x*x + y*y + z*z)))
	if l == 0 {
		return 0, 0, 0
	}
	return x / l, y / l, z / l
}

// mod computes the positive modulo (Go's % can return negative).
func mod(x, m float32) float32 {
	r := float32(math.Mod(float64(x), float64(m)))
	if r < 0 {
		r += m
	}
	return r
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
