package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// drawFrameIcon draws a small picture-frame icon at (cx, cy) with given radius.
func drawFrameIcon(dst *ebiten.Image, cx, cy, r float32, clr color.Color) {
	vector.StrokeRect(dst, cx-r, cy-r*0.75, r*2, r*1.5, 1.5, clr, false)
	// Mountain and sun
	vector.StrokeLine(dst, cx-r*0.7, cy+r*0.45, cx-r*0.15, cy-r*0.2, 1.5, clr, false)
	vector.StrokeLine(dst, cx-r*0.15, cy-r*0.2, cx+r*0.7, cy+r*0.45, 1.5, clr, false)
	vector.DrawFilledCircle(dst, cx+r*0.45, cy-r*0.35, r*0.15, clr, false)
}

// drawChevron draws a chevron pointing left (dir < 0) or right (dir > 0).
func drawChevron(dst *ebiten.Image, cx, cy, r float32, dir int, clr color.Color) {
	tip := cx + r*0.5*float32(dir)
	back := cx - r*0.5*float32(dir)
	vector.StrokeLine(dst, back, cy-r, tip, cy, 2, clr, false)
	vector.StrokeLine(dst, tip, cy, back, cy+r, 2, clr, false)
}

// drawNavButton draws a styled bar button. Active buttons are filled with the
// accent color.
func drawNavButton(dst *ebiten.Image, label string, x, y, w, h float32, active bool, iconFn func(*ebiten.Image, float32, float32, float32, color.Color)) {
	textX := float64(x + w/2)
	if iconFn != nil {
		textX += 8
	}
	if active {
		vector.DrawFilledRect(dst, x, y, w, h, ColorPrimary, false)
		DrawTextCentered(dst, label, textX, float64(y+h/2), FontSizeBody, ColorBackground)
		if iconFn != nil {
			iconFn(dst, x+16, y+h/2, 7, ColorBackground)
		}
		return
	}
	vector.DrawFilledRect(dst, x, y, w, h, ColorSurfaceHover, false)
	vector.StrokeRect(dst, x, y, w, h, 1, ColorPrimary, false)
	DrawTextCentered(dst, label, textX, float64(y+h/2), FontSizeBody, ColorText)
	if iconFn != nil {
		iconFn(dst, x+16, y+h/2, 7, ColorPrimary)
	}
}
