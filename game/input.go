package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/ui"
)

// Camera sensitivity.
const (
	dragRadiansPerPixel = 0.006
	wheelZoomStep       = 0.1
)

// handleInput processes window, mouse and keyboard input.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	g.handleCameraInput()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == g.screenWidth && h == g.screenHeight {
		return
	}
	g.screenWidth = w
	g.screenHeight = h

	g.camera.Resize(w, h)
	g.background.Resize(w, h)
	g.slider = ui.NewAlphaSlider(int32(w), int32(h))
}

// handleCameraInput orbits with a left drag and zooms with the wheel.
// Drags that start on the slider belong to the slider.
func (g *Game) handleCameraInput() {
	mouse := rl.GetMousePosition()

	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		g.dragging = !g.slider.Contains(mouse)
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) {
		g.dragging = false
	}
	if g.dragging {
		d := rl.GetMouseDelta()
		g.camera.Rotate(-d.X*dragRadiansPerPixel, d.Y*dragRadiansPerPixel)
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*wheelZoomStep)
	}

	// Keyboard zoom with +/- (= and - keys)
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		g.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		g.camera.ZoomBy(0.8)
	}

	if rl.IsKeyPressed(rl.KeyR) || rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
