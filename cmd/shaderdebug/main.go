// Shader debug tool - renders the viewer backdrop to a PNG file for inspection.
//
// Usage: go run ./cmd/shaderdebug -glow 0.7 -out debug.png
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/renderer"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	glow := flag.Float64("glow", -1, "Halo strength (negative = render.initial_alpha)")
	flag.Parse()

	if err := config.Init(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	g := float32(*glow)
	if g < 0 {
		g = float32(cfg.Render.InitialAlpha)
	}

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()

	bg := renderer.NewBackgroundRenderer(int32(*width), int32(*height), cfg.Render.Background)
	bg.Init()
	defer bg.Unload()
	bg.SetGlow(g)

	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	bg.Draw()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Backdrop rendered to: %s (%dx%d, glow %.2f)\n", *outPath, *width, *height, g)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}
