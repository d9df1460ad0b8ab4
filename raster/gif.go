package raster

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"
	"os"
)

// Animation collects quantized frames for an animated GIF.
type Animation struct {
	delay int // 100ths of a second per frame
	out   gif.GIF
}

// NewAnimation creates an endlessly looping animation.
func NewAnimation(delay, capacity int) *Animation {
	if delay < 1 {
		delay = 1
	}
	return &Animation{
		delay: delay,
		out: gif.GIF{
			Image:     make([]*image.Paletted, 0, capacity),
			Delay:     make([]int, 0, capacity),
			LoopCount: 0,
		},
	}
}

// Add quantizes img to the Plan9 palette and appends it.
func (a *Animation) Add(img image.Image) {
	pimg := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pimg, pimg.Bounds(), img, img.Bounds().Min)
	a.out.Image = append(a.out.Image, pimg)
	a.out.Delay = append(a.out.Delay, a.delay)
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.out.Image)
}

// Encode writes the animation to w.
func (a *Animation) Encode(w io.Writer) error {
	if a.Len() == 0 {
		return fmt.Errorf("animation has no frames")
	}
	return gif.EncodeAll(w, &a.out)
}

// Save writes the animation to path.
func (a *Animation) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating gif: %w", err)
	}
	if err := a.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("encoding gif: %w", err)
	}
	return f.Close()
}
