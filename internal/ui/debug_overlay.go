package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var debugOverlayVisible bool

// DebugInfo is implemented by screens that report state to the overlay.
type DebugInfo interface {
	DebugLines() []string
}

// ToggleDebugOverlay toggles the debug overlay on F12.
func ToggleDebugOverlay() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		debugOverlayVisible = !debugOverlayVisible
	}
}

// DrawDebugOverlay draws the debug overlay for the current screen if visible.
func DrawDebugOverlay(screen *ebiten.Image, sm *ScreenManager) {
	if !debugOverlayVisible {
		return
	}

	const (
		padX    = 16.0
		padY    = 12.0
		lineH   = 18.0
		marginR = 20.0
		marginT = 20.0
	)

	// Collect data
	var info []string
	name := "(none)"
	s := sm.Current()
	if s != nil {
		name = s.Name()
		if d, ok := s.(DebugInfo); ok {
			info = d.DebugLines()
		}
	}
	var pressedKeys []ebiten.Key
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			pressedKeys = append(pressedKeys, k)
		}
	}

	// Calculate overlay height
	lines := 2 // header + separator
	lines += max(len(info), 1)
	lines += 2 // blank + "Ebitengine keys:" header
	lines += max(len(pressedKeys), 1)
	panelH := float64(lines)*lineH + padY*2
	panelW := 520.0
	sw := float64(screen.Bounds().Dx())
	px := sw - panelW - marginR
	py := marginT

	vector.DrawFilledRect(screen, float32(px), float32(py), float32(panelW), float32(panelH), ColorOverlay, false)

	x := px + padX
	y := py + padY

	DrawText(screen, "Debug: "+name+" (F12 to close)", x, y, FontSizeSmall, ColorPrimary)
	y += lineH

	DrawText(screen, fmt.Sprintf("--- state (%.0f TPS, stack %d) ---", ebiten.ActualTPS(), sm.StackSize()), x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(info) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
		y += lineH
	} else {
		for _, line := range info {
			DrawText(screen, line, x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}

	y += lineH * 0.5
	DrawText(screen, "--- Ebitengine keys pressed ---", x, y, FontSizeSmall, ColorTextMuted)
	y += lineH

	if len(pressedKeys) == 0 {
		DrawText(screen, "(none)", x, y, FontSizeSmall, ColorTextSecondary)
	} else {
		for _, k := range pressedKeys {
			DrawText(screen, fmt.Sprintf("  %s (%d)", k.String(), int(k)), x, y, FontSizeSmall, ColorText)
			y += lineH
		}
	}
}
