package icon

import (
	"image"
	"image/color"
	"testing"
)

func TestGenerate(t *testing.T) {
	imgs := Generate()
	if len(imgs) != len(Sizes) {
		t.Fatalf("got %d images, want %d", len(imgs), len(Sizes))
	}
	for i, img := range imgs {
		b := img.Bounds()
		if b.Dx() != Sizes[i] || b.Dy() != Sizes[i] {
			t.Errorf("image %d is %dx%d, want %dx%d", i, b.Dx(), b.Dy(), Sizes[i], Sizes[i])
		}
	}
}

func TestGenerate_Opaque(t *testing.T) {
	img := generate(32).(*image.RGBA)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if a := img.RGBAAt(x, y).A; a != 0xFF {
				t.Fatalf("pixel (%d, %d) alpha = %d, want 255", x, y, a)
			}
		}
	}
}

func TestBlendPixel(t *testing.T) {
	tests := []struct {
		name string
		dst  color.RGBA
		src  color.Color
		want color.RGBA
	}{
		{"opaque replaces", color.RGBA{R: 10, A: 0xFF}, color.RGBA{G: 200, A: 0xFF}, color.RGBA{G: 200, A: 0xFF}},
		{"transparent keeps", color.RGBA{R: 10, A: 0xFF}, color.RGBA{}, color.RGBA{R: 10, A: 0xFF}},
		{"half black darkens", color.RGBA{R: 200, G: 200, B: 200, A: 0xFF}, color.RGBA{A: 0x80}, color.RGBA{R: 99, G: 99, B: 99, A: 0xFF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, 1, 1))
			img.SetRGBA(0, 0, tt.dst)
			blendPixel(img, 0, 0, tt.src)
			if got := img.RGBAAt(0, 0); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
