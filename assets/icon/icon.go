// Package icon draws the window icon procedurally so no image asset has to
// ship with the binary.
package icon

import (
	"image"
	"image/color"
)

var (
	darkBG    = color.RGBA{R: 0x0E, G: 0x0E, B: 0x11, A: 0xFF}
	gold      = color.RGBA{R: 0xE8, G: 0xB4, B: 0x4C, A: 0xFF}
	goldDim   = color.RGBA{R: 0x8C, G: 0x6C, B: 0x2E, A: 0xFF}
	sky       = color.RGBA{R: 0x2B, G: 0x4C, B: 0x6F, A: 0xFF}
	mountain  = color.RGBA{R: 0x3E, G: 0x7A, B: 0x5A, A: 0xFF}
	sun       = color.RGBA{R: 0xF6, G: 0xE2, B: 0xA0, A: 0xFF}
	shadowCol = color.RGBA{A: 0x80}
)

// Sizes are the edge lengths Generate renders, largest first.
var Sizes = []int{64, 32}

// Generate returns 64x64 and 32x32 icon images for use with ebiten.SetWindowIcon.
func Generate() []image.Image {
	imgs := make([]image.Image, len(Sizes))
	for i, size := range Sizes {
		imgs[i] = generate(size)
	}
	return imgs
}

func generate(size int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	s := float64(size)

	fillRect(img, 0, 0, size, size, darkBG)

	// Back frame peeking out behind the front one
	fillRoundedRect(img, s*0.22, s*0.12, s*0.66, s*0.52, s*0.05, goldDim)

	// Front frame with shadow
	fillRoundedRect(img, s*0.14, s*0.30, s*0.66, s*0.54, s*0.05, shadowCol)
	fillRoundedRect(img, s*0.10, s*0.26, s*0.66, s*0.54, s*0.05, gold)
	drawPicture(img, s*0.15, s*0.31, s*0.56, s*0.44)

	return img
}

// drawPicture paints the landscape inside the front frame's matte.
func drawPicture(img *image.RGBA, x, y, w, h float64) {
	fillRect(img, int(x), int(y), int(w), int(h), sky)
	fillCircle(img, x+w*0.75, y+h*0.28, h*0.14, sun)

	base := y + h
	fillTriangle(img, x, base, x+w*0.38, y+h*0.35, x+w*0.76, base, mountain)
	fillTriangle(img, x+w*0.42, base, x+w*0.70, y+h*0.55, x+w, base, mountain)
}

func fillRect(img *image.RGBA, x0, y0, w, h int, c color.Color) {
	bounds := img.Bounds()
	for y := max(y0, bounds.Min.Y); y < y0+h && y < bounds.Max.Y; y++ {
		for x := max(x0, bounds.Min.X); x < x0+w && x < bounds.Max.X; x++ {
			blendPixel(img, x, y, c)
		}
	}
}

func fillRoundedRect(img *image.RGBA, xf, yf, wf, hf, r float64, c color.Color) {
	bounds := img.Bounds()
	for y := max(int(yf), bounds.Min.Y); y <= int(yf+hf) && y < bounds.Max.Y; y++ {
		for x := max(int(xf), bounds.Min.X); x <= int(xf+wf) && x < bounds.Max.X; x++ {
			// Distance from the nearest corner center, zero along the edges.
			fx, fy := float64(x), float64(y)
			dx := max(xf+r-fx, fx-(xf+wf-r), 0)
			dy := max(yf+r-fy, fy-(yf+hf-r), 0)
			if dx*dx+dy*dy <= r*r {
				blendPixel(img, x, y, c)
			}
		}
	}
}

func fillCircle(img *image.RGBA, cx, cy, r float64, c color.Color) {
	bounds := img.Bounds()
	r2 := r * r
	for y := max(int(cy-r), bounds.Min.Y); y <= int(cy+r+1) && y < bounds.Max.Y; y++ {
		for x := max(int(cx-r), bounds.Min.X); x <= int(cx+r+1) && x < bounds.Max.X; x++ {
			dx := float64(x) - cx
			dy := float64(y) - cy
			if dx*dx+dy*dy <= r2 {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// fillTriangle fills the triangle (x0,y0) (x1,y1) (x2,y2) by testing pixel
// centers against its edges.
func fillTriangle(img *image.RGBA, x0, y0, x1, y1, x2, y2 float64, c color.Color) {
	edge := func(ax, ay, bx, by, px, py float64) float64 {
		return (bx-ax)*(py-ay) - (by-ay)*(px-ax)
	}
	bounds := img.Bounds()
	minX := max(int(min(x0, x1, x2)), bounds.Min.X)
	maxX := min(int(max(x0, x1, x2))+1, bounds.Max.X)
	minY := max(int(min(y0, y1, y2)), bounds.Min.Y)
	maxY := min(int(max(y0, y1, y2))+1, bounds.Max.Y)
	for y := minY; y < maxY; y++ {
		for x := minX; x < maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			e0 := edge(x0, y0, x1, y1, px, py)
			e1 := edge(x1, y1, x2, y2, px, py)
			e2 := edge(x2, y2, x0, y0, px, py)
			if (e0 >= 0 && e1 >= 0 && e2 >= 0) || (e0 <= 0 && e1 <= 0 && e2 <= 0) {
				blendPixel(img, x, y, c)
			}
		}
	}
}

// blendPixel composites premultiplied color c over the pixel at (x, y).
func blendPixel(img *image.RGBA, x, y int, c color.Color) {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return
	}
	if a == 0xFFFF {
		img.Set(x, y, c)
		return
	}
	dst := img.RGBAAt(x, y)
	inv := 0xFFFF - a
	over := func(src uint32, d uint8) uint8 {
		return uint8((src + uint32(d)*257*inv/0xFFFF) >> 8)
	}
	img.SetRGBA(x, y, color.RGBA{
		R: over(r, dst.R),
		G: over(g, dst.G),
		B: over(b, dst.B),
		A: over(a, dst.A),
	})
}
