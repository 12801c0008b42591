package ui

import "image/color"

// Colors: dark gallery theme
var (
	ColorBackground    = color.RGBA{R: 0x0E, G: 0x0E, B: 0x11, A: 0xFF}
	ColorSurface       = color.RGBA{R: 0x1A, G: 0x1A, B: 0x20, A: 0xFF}
	ColorSurfaceHover  = color.RGBA{R: 0x26, G: 0x26, B: 0x2E, A: 0xFF}
	ColorPrimary       = color.RGBA{R: 0xE8, G: 0xB4, B: 0x4C, A: 0xFF} // warm gold
	ColorText          = color.RGBA{R: 0xE8, G: 0xE6, B: 0xE1, A: 0xFF}
	ColorTextSecondary = color.RGBA{R: 0x9A, G: 0x98, B: 0x92, A: 0xFF}
	ColorTextMuted     = color.RGBA{R: 0x62, G: 0x60, B: 0x5C, A: 0xFF}
	ColorFocusBorder   = color.RGBA{R: 0xE8, G: 0xB4, B: 0x4C, A: 0xFF}
	ColorOverlay       = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xC0}
	ColorError         = color.RGBA{R: 0xE0, G: 0x40, B: 0x40, A: 0xFF}
)

// Layout constants
const (
	HeaderHeight   = 72
	SectionBarH    = 44
	SectionPadding = 40
	SectionBtnGap  = 10

	ThumbSize     = 96
	ThumbGap      = 12
	ThumbFocusPad = 4
	StripMargin   = 24

	CounterHeight = 40

	FontSizeTitle   = 28
	FontSizeHeading = 22
	FontSizeBody    = 16
	FontSizeSmall   = 13

	thumbPitch = ThumbSize + ThumbGap
)

// StripLength returns the strip's extent along its axis for n thumbnails.
func StripLength(n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(n*thumbPitch - ThumbGap)
}
