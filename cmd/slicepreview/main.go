// Orbital slice preview tool - interactive z = 0 cross-section of the 1s and
// 2s densities with sliders for the Bohr radius and cloud thresholds.
//
// Usage: go run ./cmd/slicepreview
package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/orbitals/config"
	"github.com/pthm-cable/orbitals/orbital"
	"github.com/pthm-cable/orbitals/raster"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	sliceSize    = 256
)

// SliceParams holds the tunable values.
type SliceParams struct {
	BohrRadius float32
	HalfExtent float32
	LogTh1s    float32 // log10 of the 1s threshold
	LogTh2s    float32
	Show2s     bool
}

// thresholdsYAML is the snippet copied to the clipboard.
type thresholdsYAML struct {
	Atom struct {
		BohrRadius float64 `yaml:"bohr_radius"`
	} `yaml:"atom"`
	Grid struct {
		HalfExtent float64 `yaml:"half_extent"`
	} `yaml:"grid"`
	Orbitals []orbitalYAML `yaml:"orbitals"`
}

type orbitalYAML struct {
	Kind      string  `yaml:"kind"`
	Threshold float64 `yaml:"threshold"`
}

func defaultParams() SliceParams {
	cfg := config.Cfg()
	p := SliceParams{
		BohrRadius: float32(cfg.Atom.BohrRadius),
		HalfExtent: float32(cfg.Grid.HalfExtent),
		LogTh1s:    -3.3,
		LogTh2s:    -3.5,
	}
	for _, oc := range cfg.Orbitals {
		if oc.Threshold <= 0 {
			continue
		}
		switch oc.Kind {
		case "1s":
			p.LogTh1s = float32(math.Log10(oc.Threshold))
		case "2s":
			p.LogTh2s = float32(math.Log10(oc.Threshold))
		}
	}
	return p
}

func main() {
	config.MustInit("")

	rl.InitWindow(windowWidth, windowHeight, "Orbital Slice Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()

	slice := make([]float64, sliceSize*sliceSize)
	img := rl.GenImageColor(sliceSize, sliceSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	needsRegen := true
	var selected int

	for !rl.WindowShouldClose() {
		if needsRegen {
			kind, th := params.current()
			evaluateSlice(slice, kind, params)
			selected = updateTexture(texture, slice, th, colormapFor(kind))
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: sliceSize, Height: sliceSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		kind, th := params.current()
		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("%s  threshold %.2e  selected %d / %d px", kind, th, selected, len(slice)), 15, statsY, 16, rl.DarkGray)
		if node, ok := orbital.NodeRadius(kind, float64(params.BohrRadius)); ok {
			rl.DrawText(fmt.Sprintf("Radial node at r = %.2f", node), 15, statsY+20, 16, rl.DarkGray)
		}
		rl.DrawText(fmt.Sprintf("Peak density %.3e", orbital.Density(kind, 0, float64(params.BohrRadius))), 15, statsY+40, 16, rl.DarkGray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Slice Parameters (z = 0)", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		if v, changed := slider(&panelY, panelX, "Bohr radius", "1", "10", params.BohrRadius, 1, 10, "%.2f"); changed {
			params.BohrRadius = v
			needsRegen = true
		}
		if v, changed := slider(&panelY, panelX, "Half extent", "5", "60", params.HalfExtent, 5, 60, "%.1f"); changed {
			params.HalfExtent = v
			needsRegen = true
		}
		if v, changed := slider(&panelY, panelX, "1s threshold (log10)", "-8", "-1", params.LogTh1s, -8, -1, "%.2f"); changed {
			params.LogTh1s = v
			needsRegen = true
		}
		if v, changed := slider(&panelY, panelX, "2s threshold (log10)", "-8", "-1", params.LogTh2s, -8, -1, "%.2f"); changed {
			params.LogTh2s = v
			needsRegen = true
		}

		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.Show2s, "Show 1s", "Show 2s")) {
			params.Show2s = !params.Show2s
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			needsRegen = true
		}
		panelY += 55

		snippet := params.yaml()
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.DarkGray)
		panelY += 25
		for _, line := range strings.Split(strings.TrimRight(snippet, "\n"), "\n") {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)
		if rl.IsKeyPressed(rl.KeyC) {
			rl.SetClipboardText(snippet)
		}

		rl.EndDrawing()
	}
}

// slider draws one labelled slider and advances the panel cursor.
func slider(y *float32, x float32, label, minText, maxText string, value, min, max float32, format string) (float32, bool) {
	rl.DrawText(label, int32(x), int32(*y), 14, rl.Gray)
	*y += 18
	next := gui.SliderBar(
		rl.Rectangle{X: x, Y: *y, Width: float32(panelWidth - 80), Height: 20},
		minText, maxText,
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(x+float32(panelWidth-70)), int32(*y+2), 16, rl.DarkGray)
	*y += 35
	return next, next != value
}

func (p SliceParams) current() (orbital.Kind, float64) {
	if p.Show2s {
		return orbital.Kind2s, math.Pow(10, float64(p.LogTh2s))
	}
	return orbital.Kind1s, math.Pow(10, float64(p.LogTh1s))
}

func (p SliceParams) yaml() string {
	var doc thresholdsYAML
	doc.Atom.BohrRadius = roundSig(float64(p.BohrRadius), 3)
	doc.Grid.HalfExtent = roundSig(float64(p.HalfExtent), 3)
	doc.Orbitals = []orbitalYAML{
		{Kind: "1s", Threshold: roundSig(math.Pow(10, float64(p.LogTh1s)), 3)},
		{Kind: "2s", Threshold: roundSig(math.Pow(10, float64(p.LogTh2s)), 3)},
	}
	out, err := yaml.Marshal(doc)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

func toggleText(cond bool, ifTrue, ifFalse string) string {
	if cond {
		return ifTrue
	}
	return ifFalse
}

func colormapFor(kind orbital.Kind) raster.Colormap {
	if kind == orbital.Kind2s {
		return raster.Plasma()
	}
	return raster.Viridis()
}

// evaluateSlice fills the slice with densities on the z = 0 plane.
func evaluateSlice(slice []float64, kind orbital.Kind, p SliceParams) {
	h := float64(p.HalfExtent)
	a := float64(p.BohrRadius)
	step := 2 * h / float64(sliceSize-1)
	for j := 0; j < sliceSize; j++ {
		y := h - float64(j)*step
		for i := 0; i < sliceSize; i++ {
			x := -h + float64(i)*step
			slice[j*sliceSize+i] = orbital.Density(kind, math.Hypot(x, y), a)
		}
	}
}

// updateTexture colours selected pixels by density and dims the rest.
// Returns the number of selected pixels.
func updateTexture(texture rl.Texture2D, slice []float64, threshold float64, cmap raster.Colormap) int {
	maxD := 0.0
	for _, d := range slice {
		maxD = math.Max(maxD, d)
	}

	selected := 0
	pixels := make([]color.RGBA, len(slice))
	for i, d := range slice {
		t := 0.0
		if maxD > 0 {
			t = d / maxD
		}
		c := cmap.At(t)
		if d > threshold {
			selected++
		} else {
			c.R /= 5
			c.G /= 5
			c.B /= 5
		}
		pixels[i] = c
	}
	rl.UpdateTexture(texture, pixels)
	return selected
}

// roundSig rounds v to the given number of significant digits.
func roundSig(v float64, digits int) float64 {
	if v == 0 {
		return 0
	}
	mag := math.Pow(10, float64(digits)-math.Ceil(math.Log10(math.Abs(v))))
	return math.Round(v*mag) / mag
}
