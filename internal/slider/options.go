// Package slider implements the navigation core of the gallery: wrapped index
// arithmetic, drag and wheel gesture interpretation, the slider state machine
// and the coordinator that sequences its presentation animations.
//
// Nothing in this package touches ebiten. Render targets are opaque
// anim.Target handles and the viewport width is reached through an injected
// LayoutQuery, so everything here runs headless in tests.
package slider

import "time"

// LayoutMode selects the drag axis and thumbnail strip orientation.
type LayoutMode int

const (
	// LayoutHorizontal is used below the breakpoint: the strip runs along the
	// bottom and drags are measured on X.
	LayoutHorizontal LayoutMode = iota
	// LayoutVertical is used at or above the breakpoint: the strip is a column
	// and drags are measured on Y.
	LayoutVertical
)

func (m LayoutMode) String() string {
	if m == LayoutVertical {
		return "vertical"
	}
	return "horizontal"
}

// LayoutQuery reports the current layout mode. It is asked again for every
// gesture event rather than cached.
type LayoutQuery func() LayoutMode

// ModeForWidth maps a viewport width to its layout mode.
func ModeForWidth(width, breakpoint int) LayoutMode {
	if width < breakpoint {
		return LayoutHorizontal
	}
	return LayoutVertical
}

// FixedLayout returns a query that always answers m.
func FixedLayout(m LayoutMode) LayoutQuery {
	return func() LayoutMode { return m }
}

// Options tunes the slider. Zero fields are filled from DefaultOptions by
// New and NewGestureTracker.
type Options struct {
	// WindowSize is the number of thumbnails shown; must be odd.
	WindowSize int

	Breakpoint          int
	HorizontalThreshold float64
	VerticalThreshold   float64

	// Wheel deltas below FineWheelLimit are treated as touchpad input and
	// must exceed WheelNoiseFloor to count.
	FineWheelLimit  float64
	WheelNoiseFloor float64

	// More than BurstThreshold wheel steps, each within BurstWindow of the
	// previous one, route thumbnail replay through the debounce.
	BurstThreshold int
	BurstWindow    time.Duration
	ReplayDebounce time.Duration

	Layout LayoutQuery
}

// DefaultOptions returns the stock tuning.
func DefaultOptions() Options {
	return Options{
		WindowSize:          9,
		Breakpoint:          1400,
		HorizontalThreshold: 116,
		VerticalThreshold:   100,
		FineWheelLimit:      50,
		WheelNoiseFloor:     2,
		BurstThreshold:      4,
		BurstWindow:         400 * time.Millisecond,
		ReplayDebounce:      250 * time.Millisecond,
		Layout:              FixedLayout(LayoutHorizontal),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.WindowSize == 0 {
		o.WindowSize = d.WindowSize
	}
	if o.Breakpoint == 0 {
		o.Breakpoint = d.Breakpoint
	}
	if o.HorizontalThreshold <= 0 {
		o.HorizontalThreshold = d.HorizontalThreshold
	}
	if o.VerticalThreshold <= 0 {
		o.VerticalThreshold = d.VerticalThreshold
	}
	if o.FineWheelLimit <= 0 {
		o.FineWheelLimit = d.FineWheelLimit
	}
	if o.WheelNoiseFloor <= 0 {
		o.WheelNoiseFloor = d.WheelNoiseFloor
	}
	if o.BurstThreshold <= 0 {
		o.BurstThreshold = d.BurstThreshold
	}
	if o.BurstWindow <= 0 {
		o.BurstWindow = d.BurstWindow
	}
	if o.ReplayDebounce <= 0 {
		o.ReplayDebounce = d.ReplayDebounce
	}
	if o.Layout == nil {
		o.Layout = d.Layout
	}
	return o
}
