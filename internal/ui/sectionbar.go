package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SectionBar is the row of section buttons under the header.
type SectionBar struct {
	Titles []string
	Active int

	// OnSelect is called with the index of a clicked section.
	OnSelect func(index int)

	rects []ButtonRect
}

// ButtonRect is a clickable area recorded during Draw.
type ButtonRect struct {
	X, Y, W, H float64
}

// Contains reports whether (px, py) falls inside the rect.
func (r ButtonRect) Contains(px, py int) bool {
	return r.W > 0 && PointInRect(px, py, r.X, r.Y, r.W, r.H)
}

func NewSectionBar(titles []string) *SectionBar {
	return &SectionBar{Titles: titles}
}

// layout positions the buttons starting at y. Widths follow the titles.
func (sb *SectionBar) layout(y float64) {
	sb.rects = sb.rects[:0]
	x := float64(SectionPadding)
	for _, title := range sb.Titles {
		tw, _ := MeasureText(title, FontSizeBody)
		w := tw + 28 + 16
		sb.rects = append(sb.rects, ButtonRect{X: x, Y: y + 4, W: w, H: SectionBarH - 8})
		x += w + SectionBtnGap
	}
}

// HandleClick checks if (mx, my) hits a section button and selects it.
// Returns true if consumed.
func (sb *SectionBar) HandleClick(mx, my int) bool {
	for i, r := range sb.rects {
		if !r.Contains(mx, my) {
			continue
		}
		if i != sb.Active && sb.OnSelect != nil {
			sb.OnSelect(i)
		}
		return true
	}
	return false
}

// Draw renders the bar with its top edge at y and width w.
func (sb *SectionBar) Draw(dst *ebiten.Image, y, w float64) {
	vector.DrawFilledRect(dst, 0, float32(y), float32(w), SectionBarH, ColorBackground, false)
	vector.DrawFilledRect(dst, 0, float32(y+SectionBarH-1), float32(w), 1, ColorSurfaceHover, false)

	sb.layout(y)
	for i, r := range sb.rects {
		drawNavButton(dst, sb.Titles[i], float32(r.X), float32(r.Y), float32(r.W), float32(r.H), i == sb.Active, drawFrameIcon)
	}
}
