package camera

import (
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	cam := New(60, 0, 0, 45, 1000, 1000)

	if cam.Distance != 60 {
		t.Errorf("expected distance 60, got %f", cam.Distance)
	}

	// Yaw 0, pitch 0 puts the eye on +X
	x, y, z := cam.Eye()
	if math.Abs(float64(x-60)) > 1e-4 || math.Abs(float64(y)) > 1e-4 || math.Abs(float64(z)) > 1e-4 {
		t.Errorf("expected eye at (60, 0, 0), got (%f, %f, %f)", x, y, z)
	}
}

func TestProjectOriginCentered(t *testing.T) {
	cam := New(60, 45, 30, 45, 1280, 720)

	// The orbit target always maps to screen center
	sx, sy, depth, ok := cam.Project(0, 0, 0)
	if !ok {
		t.Fatal("origin should be in front of the camera")
	}
	if math.Abs(float64(sx-640)) > 0.01 || math.Abs(float64(sy-360)) > 0.01 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
	if math.Abs(float64(depth-60)) > 1e-3 {
		t.Errorf("expected depth 60, got %f", depth)
	}
}

func TestProjectOrientation(t *testing.T) {
	cam := New(60, 0, 0, 45, 1000, 1000)

	// World up is screen up
	_, sy, _, ok := cam.Project(0, 5, 0)
	if !ok || sy >= 500 {
		t.Errorf("point above origin should be above center, got y=%f", sy)
	}

	// Looking down -X with Y up (right-handed), +Z is to the left
	sx, _, _, ok := cam.Project(0, 0, 5)
	if !ok || sx >= 500 {
		t.Errorf("point on +Z should be left of center, got x=%f", sx)
	}

	// Closer points look bigger
	_, _, near, _ := cam.Project(10, 0, 0)
	_, _, far, _ := cam.Project(-10, 0, 0)
	if near >= far {
		t.Errorf("expected near depth %f < far depth %f", near, far)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	cam := New(60, 0, 0, 45, 1000, 1000)
	if _, _, _, ok := cam.Project(100, 0, 0); ok {
		t.Error("point behind the eye should not project")
	}
}

func TestRotateClampsPitch(t *testing.T) {
	cam := New(60, 0, 0, 45, 1000, 1000)

	cam.Rotate(0, 10)
	if cam.Pitch > maxPitch+1e-6 {
		t.Errorf("pitch %f exceeds limit %f", cam.Pitch, maxPitch)
	}

	cam.Rotate(0, -20)
	if cam.Pitch < -maxPitch-1e-6 {
		t.Errorf("pitch %f below limit %f", cam.Pitch, -maxPitch)
	}
}

func TestRotateWrapsYaw(t *testing.T) {
	cam := New(60, 0, 0, 45, 1000, 1000)

	cam.Rotate(-0.5, 0)
	if cam.Yaw < 0 || cam.Yaw >= 2*math.Pi {
		t.Errorf("expected yaw wrapped into [0, 2pi), got %f", cam.Yaw)
	}
	if math.Abs(float64(cam.Yaw)-(2*math.Pi-0.5)) > 1e-4 {
		t.Errorf("expected yaw 2pi-0.5, got %f", cam.Yaw)
	}
}

func TestZoomClamp(t *testing.T) {
	cam := New(60, 0, 0, 45, 1000, 1000)
	cam.SetLimits(15, 200)

	cam.ZoomBy(100) // Far past min distance
	if cam.Distance != 15 {
		t.Errorf("expected distance clamped to 15, got %f", cam.Distance)
	}

	cam.ZoomBy(0.001)
	if cam.Distance != 200 {
		t.Errorf("expected distance clamped to 200, got %f", cam.Distance)
	}

	cam.ZoomBy(0) // Ignored
	if cam.Distance != 200 {
		t.Errorf("zero factor should be ignored, got %f", cam.Distance)
	}
}

func TestReset(t *testing.T) {
	cam := New(60, 45, 30, 45, 1000, 1000)
	cam.Rotate(1, 0.2)
	cam.SetDistance(25)

	cam.Reset()

	if math.Abs(float64(cam.Yaw)-math.Pi/4) > 1e-5 {
		t.Errorf("expected yaw pi/4, got %f", cam.Yaw)
	}
	if math.Abs(float64(cam.Pitch)-math.Pi/6) > 1e-5 {
		t.Errorf("expected pitch pi/6, got %f", cam.Pitch)
	}
	if cam.Distance != 60 {
		t.Errorf("expected distance 60, got %f", cam.Distance)
	}
}

func TestYUp(t *testing.T) {
	// Orbits in the z = 0 plane become horizontal
	x, y, z := YUp(5, 3, 0)
	if x != 5 || y != 0 || z != -3 {
		t.Errorf("YUp(5, 3, 0) = (%f, %f, %f), want (5, 0, -3)", x, y, z)
	}
	_, y, _ = YUp(0, 0, 7)
	if y != 7 {
		t.Errorf("physics z should become world y, got %f", y)
	}
}
