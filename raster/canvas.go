package raster

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// minRadius keeps far-away splats visible as at least a pixel.
const minRadius = 0.75

// Canvas is an RGBA frame buffer with alpha-blended primitives.
type Canvas struct {
	img  *image.RGBA
	W, H int
}

// NewCanvas allocates a w by h canvas.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, w, h)), W: w, H: h}
}

// Image returns the underlying frame.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the canvas with an opaque colour.
func (c *Canvas) Clear(col color.RGBA) {
	col.A = 255
	pix := c.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i+0] = col.R
		pix[i+1] = col.G
		pix[i+2] = col.B
		pix[i+3] = 255
	}
}

// blend mixes col into pixel (x, y) with weight alpha. Out-of-bounds pixels are ignored.
func (c *Canvas) blend(x, y int, col color.RGBA, alpha float64) {
	if x < 0 || y < 0 || x >= c.W || y >= c.H || alpha <= 0 {
		return
	}
	if alpha > 1 {
		alpha = 1
	}
	p := c.img.PixOffset(x, y)
	pix := c.img.Pix
	pix[p+0] = mix(pix[p+0], col.R, alpha)
	pix[p+1] = mix(pix[p+1], col.G, alpha)
	pix[p+2] = mix(pix[p+2], col.B, alpha)
	pix[p+3] = 255
}

func mix(dst, src uint8, a float64) uint8 {
	return uint8(math.Round(float64(dst)*(1-a) + float64(src)*a))
}

// Disc fills a circle centred at (cx, cy).
func (c *Canvas) Disc(cx, cy, r float64, col color.RGBA, alpha float64) {
	if r < minRadius {
		r = minRadius
	}
	x0 := int(math.Floor(cx - r))
	x1 := int(math.Ceil(cx + r))
	y0 := int(math.Floor(cy - r))
	y1 := int(math.Ceil(cy + r))
	if x1 < 0 || y1 < 0 || x0 >= c.W || y0 >= c.H {
		return
	}

	r2 := r * r
	for y := max(y0, 0); y <= min(y1, c.H-1); y++ {
		dy := float64(y) + 0.5 - cy
		for x := max(x0, 0); x <= min(x1, c.W-1); x++ {
			dx := float64(x) + 0.5 - cx
			if dx*dx+dy*dy <= r2 {
				c.blend(x, y, col, alpha)
			}
		}
	}
}

// Line draws a one pixel segment from (x0, y0) to (x1, y1).
func (c *Canvas) Line(x0, y0, x1, y1 float64, col color.RGBA, alpha float64) {
	dx, dy := x1-x0, y1-y0
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		c.blend(int(x0), int(y0), col, alpha)
		return
	}
	// Skip the end pixel so joined segments do not double-blend
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps)
		c.blend(int(math.Floor(x0+dx*t)), int(math.Floor(y0+dy*t)), col, alpha)
	}
}

// Text draws s with its baseline at (x, y).
func (c *Canvas) Text(x, y int, s string, col color.Color) {
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// TextCentered draws s horizontally centred on cx.
func (c *Canvas) TextCentered(cx, y int, s string, col color.Color) {
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	c.Text(cx-w/2, y, s, col)
}
