package ui

import (
	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const toastFrames = 120 // ~2 seconds at 60fps

// Toast is a short status message drawn in the bottom-right corner.
type Toast struct {
	text   string
	isErr  bool
	frames int
}

// Show displays text for a couple of seconds, replacing any current message.
func (t *Toast) Show(text string, isErr bool) {
	t.text = text
	t.isErr = isErr
	t.frames = toastFrames
}

// Update counts the message down. Call once per tick.
func (t *Toast) Update() {
	if t.frames > 0 {
		t.frames--
	}
}

func (t *Toast) Visible() bool { return t.frames > 0 }

// Draw renders the message fading out over its last half second.
func (t *Toast) Draw(dst *ebiten.Image) {
	if !t.Visible() {
		return
	}
	alpha := min(1, float64(t.frames)/30)
	tw, th := MeasureText(t.text, FontSizeSmall)
	b := dst.Bounds()
	w, h := tw+24, th+16
	x := float64(b.Dx()) - SectionPadding - w
	y := float64(b.Dy()) - SectionPadding - h

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fade(ColorSurfaceHover, alpha), false)
	clr := ColorText
	if t.isErr {
		clr = ColorError
	}
	DrawText(dst, t.text, x+12, y+8, FontSizeSmall, fade(clr, alpha))
}

// copyToClipboard writes text to the system clipboard.
func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// CopyJustPressed reports Ctrl+C (Cmd+C on macOS) this frame.
func CopyJustPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyC) &&
		(ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta))
}
