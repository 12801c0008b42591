package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// IsModifierPressed reports whether any modifier key (Alt, Ctrl, Shift, Meta) is held.
func IsModifierPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyAlt) ||
		ebiten.IsKeyPressed(ebiten.KeyControl) ||
		ebiten.IsKeyPressed(ebiten.KeyShift) ||
		ebiten.IsKeyPressed(ebiten.KeyMeta)
}

// UpdateInputState must be called at the end of each Update() to track key state.
func UpdateInputState() {
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		if ebiten.IsKeyPressed(k) {
			keyHoldFrames[k]++
		} else {
			delete(keyHoldFrames, k)
		}
	}
}

var keyHoldFrames = make(map[ebiten.Key]int)

const (
	repeatDelay    = 18 // frames before repeat starts (~300ms at 60fps)
	repeatInterval = 6  // frames between repeats (~100ms at 60fps)
)

// KeyRepeating reports a key press on the first frame and then at the
// repeat interval while the key stays held.
func KeyRepeating(key ebiten.Key) bool {
	if !ebiten.IsKeyPressed(key) {
		return false
	}
	frames, held := keyHoldFrames[key]
	if !held || frames == 0 {
		return true
	}
	return frames >= repeatDelay && (frames-repeatDelay)%repeatInterval == 0
}

// AnyKeyRepeating is KeyRepeating over a set of bound keys.
func AnyKeyRepeating(keys []ebiten.Key) bool {
	for _, k := range keys {
		if KeyRepeating(k) {
			return true
		}
	}
	return false
}

// AnyKeyJustPressed reports whether any of keys went down this frame.
func AnyKeyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

var (
	digitKeys = [...]ebiten.Key{
		ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
		ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
		ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
	}
	numpadKeys = [...]ebiten.Key{
		ebiten.KeyNumpad1, ebiten.KeyNumpad2, ebiten.KeyNumpad3,
		ebiten.KeyNumpad4, ebiten.KeyNumpad5, ebiten.KeyNumpad6,
		ebiten.KeyNumpad7, ebiten.KeyNumpad8, ebiten.KeyNumpad9,
	}
)

// DigitJustPressed returns the digit 1-9 pressed this frame, or 0.
func DigitJustPressed() int {
	for i := range digitKeys {
		if inpututil.IsKeyJustPressed(digitKeys[i]) || inpututil.IsKeyJustPressed(numpadKeys[i]) {
			return i + 1
		}
	}
	return 0
}

// PointInRect returns true if point (px, py) is inside the rectangle (rx, ry, rw, rh).
func PointInRect(px, py int, rx, ry, rw, rh float64) bool {
	return float64(px) >= rx && float64(px) <= rx+rw &&
		float64(py) >= ry && float64(py) <= ry+rh
}

// WheelDeltaY returns this frame's vertical wheel movement in pixels with
// positive meaning scroll down. Ebitengine reports lines with positive up.
func WheelDeltaY(pixelsPerLine float64) float64 {
	_, dy := ebiten.Wheel()
	if dy == 0 {
		return 0
	}
	return -dy * pixelsPerLine
}

// PointerKind is the phase of a pointer event.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
	PointerLeave
)

// PointerEvent is one mouse or touch transition observed during a frame.
type PointerEvent struct {
	Kind  PointerKind
	X, Y  int
	Touch bool
}

// PointerInput turns ebiten's polled mouse and touch state into discrete
// down/move/up events. Only the primary touch is tracked.
type PointerInput struct {
	mouseDown   bool
	touching    bool
	touchID     ebiten.TouchID
	lastX       int
	lastY       int
	touchIDsBuf []ebiten.TouchID
}

// Poll appends the events for this frame to dst. w and h are the window's
// logical size; the mouse leaving it ends a press with PointerLeave.
func (p *PointerInput) Poll(w, h int, dst []PointerEvent) []PointerEvent {
	dst = p.pollTouch(dst)
	if p.touching {
		return dst
	}
	return p.pollMouse(w, h, dst)
}

func (p *PointerInput) pollTouch(dst []PointerEvent) []PointerEvent {
	if p.touching {
		if inpututil.IsTouchJustReleased(p.touchID) {
			p.touching = false
			return append(dst, PointerEvent{Kind: PointerUp, X: p.lastX, Y: p.lastY, Touch: true})
		}
		x, y := ebiten.TouchPosition(p.touchID)
		if x != p.lastX || y != p.lastY {
			p.lastX, p.lastY = x, y
			dst = append(dst, PointerEvent{Kind: PointerMove, X: x, Y: y, Touch: true})
		}
		return dst
	}

	p.touchIDsBuf = inpututil.AppendJustPressedTouchIDs(p.touchIDsBuf[:0])
	if len(p.touchIDsBuf) == 0 {
		return dst
	}
	p.touchID = p.touchIDsBuf[0]
	p.touching = true
	p.mouseDown = false
	p.lastX, p.lastY = ebiten.TouchPosition(p.touchID)
	return append(dst, PointerEvent{Kind: PointerDown, X: p.lastX, Y: p.lastY, Touch: true})
}

func (p *PointerInput) pollMouse(w, h int, dst []PointerEvent) []PointerEvent {
	x, y := ebiten.CursorPosition()
	inside := x >= 0 && y >= 0 && x < w && y < h

	if !p.mouseDown {
		if inside && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			p.mouseDown = true
			p.lastX, p.lastY = x, y
			dst = append(dst, PointerEvent{Kind: PointerDown, X: x, Y: y})
		}
		return dst
	}

	switch {
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.mouseDown = false
		dst = append(dst, PointerEvent{Kind: PointerUp, X: x, Y: y})
	case !inside:
		p.mouseDown = false
		dst = append(dst, PointerEvent{Kind: PointerLeave, X: x, Y: y})
	case x != p.lastX || y != p.lastY:
		p.lastX, p.lastY = x, y
		dst = append(dst, PointerEvent{Kind: PointerMove, X: x, Y: y})
	}
	return dst
}
