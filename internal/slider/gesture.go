package slider

import (
	"math"
	"time"
)

// DragPhase is the GestureTracker's drag state.
type DragPhase int

const (
	DragIdle DragPhase = iota
	DragDragging
)

// ScrollDirection is the direction of the last registered wheel step.
type ScrollDirection int

const (
	ScrollNone ScrollDirection = iota
	ScrollUp
	ScrollDown
)

func (d ScrollDirection) String() string {
	switch d {
	case ScrollUp:
		return "up"
	case ScrollDown:
		return "down"
	}
	return "none"
}

// Point is a pointer or touch position in layout units.
type Point struct {
	X, Y float64
}

// GestureTracker turns pointer drags and wheel pulses into index steps.
//
// Drags are measured against a threshold rather than tracked 1:1: every time
// the pointer travels a full threshold along the active axis the tracker
// emits round(diff/threshold) steps and re-anchors the drag origin at the
// current position, so a long drag steps continuously without skipping.
// Travel below the threshold is reported as an offset for the visual nudge.
type GestureTracker struct {
	opts Options

	phase     DragPhase
	dragStart Point
	offset    float64
	mode      LayoutMode

	burst     int
	direction ScrollDirection
	clock     time.Duration
	lastWheel time.Duration
	wheeled   bool
}

func NewGestureTracker(opts Options) *GestureTracker {
	opts = opts.withDefaults()
	return &GestureTracker{opts: opts, mode: opts.Layout()}
}

// Press starts a drag at p (pointer-down or touch-start).
func (g *GestureTracker) Press(p Point) {
	g.phase = DragDragging
	g.dragStart = p
	g.offset = 0
	g.mode = g.opts.Layout()
}

// Move handles pointer or touch motion and returns the number of index steps
// to apply. Moves outside a drag are ignored.
func (g *GestureTracker) Move(p Point) int {
	if g.phase != DragDragging {
		return 0
	}
	g.mode = g.opts.Layout()

	threshold := g.Threshold()
	var diff float64
	if g.mode == LayoutVertical {
		diff = g.dragStart.Y - p.Y
	} else {
		diff = g.dragStart.X - p.X
	}

	if math.Abs(diff) < threshold {
		g.offset = diff
		return 0
	}

	steps := int(math.Round(diff / threshold))
	if g.mode == LayoutVertical {
		g.dragStart.Y = p.Y
	} else {
		g.dragStart.X = p.X
	}
	g.offset = 0
	return steps
}

// Release ends a drag (pointer-up, touch-end or pointer leaving the slider).
func (g *GestureTracker) Release() {
	g.phase = DragIdle
	g.offset = 0
}

// Wheel classifies a wheel event and returns -1, 0 or +1. Positive deltaY
// moves forward. Nothing registers while ready is false.
func (g *GestureTracker) Wheel(deltaY float64, ready bool) int {
	if !ready || deltaY == 0 {
		return 0
	}
	mag := math.Abs(deltaY)
	if mag < g.opts.FineWheelLimit && mag <= g.opts.WheelNoiseFloor {
		return 0
	}

	step := 1
	g.direction = ScrollDown
	if deltaY < 0 {
		step = -1
		g.direction = ScrollUp
	}

	if !g.burstLive() {
		g.burst = 0
	}
	g.burst++
	g.lastWheel = g.clock
	g.wheeled = true
	return step
}

// Tick advances the tracker's clock, which ages wheel bursts.
func (g *GestureTracker) Tick(dt time.Duration) {
	g.clock += dt
}

// Reset returns the tracker to idle and forgets wheel bursts.
func (g *GestureTracker) Reset() {
	g.phase = DragIdle
	g.dragStart = Point{}
	g.offset = 0
	g.burst = 0
	g.direction = ScrollNone
	g.wheeled = false
	g.mode = g.opts.Layout()
}

func (g *GestureTracker) burstLive() bool {
	return g.wheeled && g.clock-g.lastWheel <= g.opts.BurstWindow
}

// Threshold is the drag distance for one step in the current layout mode.
func (g *GestureTracker) Threshold() float64 {
	if g.mode == LayoutVertical {
		return g.opts.VerticalThreshold
	}
	return g.opts.HorizontalThreshold
}

func (g *GestureTracker) Dragging() bool             { return g.phase == DragDragging }
func (g *GestureTracker) Phase() DragPhase           { return g.phase }
func (g *GestureTracker) DragStart() Point           { return g.dragStart }
func (g *GestureTracker) Offset() float64            { return g.offset }
func (g *GestureTracker) Mode() LayoutMode           { return g.mode }
func (g *GestureTracker) Direction() ScrollDirection { return g.direction }

// BurstCount is the number of consecutive wheel steps in the current burst,
// or 0 once the burst window has passed.
func (g *GestureTracker) BurstCount() int {
	if !g.burstLive() {
		return 0
	}
	return g.burst
}
