package renderer

import (
	_ "embed"

	rl "github.com/gen2brain/raylib-go/raylib"
)

//go:embed shaders/background.fs
var backgroundFS string

// BackgroundRenderer fills the screen with a vignetted backdrop.
type BackgroundRenderer struct {
	shader        rl.Shader
	resolutionLoc int32
	baseColorLoc  int32
	glowLoc       int32

	screenW, screenH float32
	baseColor        [3]float32
	glow             float32
	initialized      bool
}

// NewBackgroundRenderer creates a new background renderer.
func NewBackgroundRenderer(screenW, screenH int32, base [3]uint8) *BackgroundRenderer {
	return &BackgroundRenderer{
		screenW: float32(screenW),
		screenH: float32(screenH),
		baseColor: [3]float32{
			float32(base[0]) / 255.0,
			float32(base[1]) / 255.0,
			float32(base[2]) / 255.0,
		},
		glow: 1,
	}
}

// Init compiles the shader (must be called after raylib window is created).
func (b *BackgroundRenderer) Init() {
	if b.initialized {
		return
	}

	b.shader = rl.LoadShaderFromMemory("", backgroundFS)
	b.resolutionLoc = rl.GetShaderLocation(b.shader, "resolution")
	b.baseColorLoc = rl.GetShaderLocation(b.shader, "baseColor")
	b.glowLoc = rl.GetShaderLocation(b.shader, "glow")

	rl.SetShaderValue(b.shader, b.resolutionLoc, []float32{b.screenW, b.screenH}, rl.ShaderUniformVec2)
	rl.SetShaderValue(b.shader, b.baseColorLoc, b.baseColor[:], rl.ShaderUniformVec3)

	b.initialized = true
}

// SetGlow scales the halo behind the nucleus; the cloud alpha drives it.
func (b *BackgroundRenderer) SetGlow(glow float32) {
	b.glow = glow
}

// Resize updates the screen dimensions.
func (b *BackgroundRenderer) Resize(screenW, screenH float32) {
	b.screenW = screenW
	b.screenH = screenH
	if b.initialized {
		rl.SetShaderValue(b.shader, b.resolutionLoc, []float32{b.screenW, b.screenH}, rl.ShaderUniformVec2)
	}
}

// Draw renders the backdrop as a fullscreen quad.
func (b *BackgroundRenderer) Draw() {
	if !b.initialized {
		b.Init()
	}

	rl.BeginShaderMode(b.shader)
	rl.SetShaderValue(b.shader, b.glowLoc, []float32{b.glow}, rl.ShaderUniformFloat)
	rl.DrawRectangle(0, 0, int32(b.screenW), int32(b.screenH), rl.White)
	rl.EndShaderMode()
}

// Unload frees resources.
func (b *BackgroundRenderer) Unload() {
	if b.initialized {
		rl.UnloadShader(b.shader)
		b.initialized = false
	}
}
