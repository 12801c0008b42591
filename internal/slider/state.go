package slider

import (
	"errors"
	"fmt"
	"time"

	"github.com/depeter/jellyslide/internal/gallery"
)

var (
	ErrNoItems    = errors.New("slider: item list is empty")
	ErrEvenWindow = errors.New("slider: window size must be a positive odd number")
)

// State is the slider's navigation state: the item list, the active index and
// the thumbnail window derived from it, plus the gesture and animation
// bookkeeping that gates input. activeIndex is always a valid index into
// items.
type State struct {
	items      []gallery.Item
	active     int
	visible    []gallery.Item
	windowSize int
	generation uint64

	gesture *GestureTracker
	ready   bool

	onIndex   []func(prev, next int)
	onSection []func()
}

// Snapshot is a copy of the state for the render layer and debug overlay.
type Snapshot struct {
	ActiveIndex       int
	Count             int
	IsDragging        bool
	DragStart         Point
	AccumulatedOffset float64
	ScrollBurstCount  int
	ScrollDirection   ScrollDirection
	AnimationReady    bool
	Generation        uint64
	Mode              LayoutMode
}

// New creates slider state over items, starting at index 0.
func New(items []gallery.Item, opts Options) (*State, error) {
	opts = opts.withDefaults()
	if len(items) == 0 {
		return nil, ErrNoItems
	}
	if opts.WindowSize < 1 || opts.WindowSize%2 == 0 {
		return nil, fmt.Errorf("%w: %d", ErrEvenWindow, opts.WindowSize)
	}
	s := &State{
		items:      items,
		windowSize: opts.WindowSize,
		generation: 1,
		gesture:    NewGestureTracker(opts),
	}
	s.refresh()
	return s, nil
}

// OnIndexChange registers fn to run after every active index change. The
// index and visible window are already updated when fn runs.
func (s *State) OnIndexChange(fn func(prev, next int)) {
	s.onIndex = append(s.onIndex, fn)
}

// OnSectionSwitch registers fn to run after SwitchSection.
func (s *State) OnSectionSwitch(fn func()) {
	s.onSection = append(s.onSection, fn)
}

// Advance moves the active index by steps, wrapping in both directions. It
// reports whether the index changed.
func (s *State) Advance(steps int) bool {
	if steps == 0 {
		return false
	}
	return s.setActive(Wrap(s.active+steps, len(s.items)))
}

// SetActive jumps to index i, wrapped into range.
func (s *State) SetActive(i int) bool {
	return s.setActive(Wrap(i, len(s.items)))
}

func (s *State) setActive(next int) bool {
	prev := s.active
	if next == prev {
		return false
	}
	s.active = next
	s.refresh()
	for _, fn := range s.onIndex {
		fn(prev, next)
	}
	return true
}

// SwitchSection replaces the item list and resets navigation: index 0, idle
// gestures, input gated until the entrance animation completes again, and a
// new generation so dependents rebuild their per-section visuals.
func (s *State) SwitchSection(items []gallery.Item) error {
	if len(items) == 0 {
		return ErrNoItems
	}
	s.items = items
	s.active = 0
	s.gesture.Reset()
	s.ready = false
	s.generation++
	s.refresh()
	for _, fn := range s.onSection {
		fn()
	}
	return nil
}

func (s *State) refresh() {
	s.visible = VisibleWindow(s.active, s.items, s.windowSize)
}

// PointerDown starts a drag.
func (s *State) PointerDown(x, y float64) {
	s.gesture.Press(Point{X: x, Y: y})
}

// PointerMove feeds drag motion and applies any resulting steps.
func (s *State) PointerMove(x, y float64) bool {
	return s.Advance(s.gesture.Move(Point{X: x, Y: y}))
}

func (s *State) PointerUp()    { s.gesture.Release() }
func (s *State) PointerLeave() { s.gesture.Release() }

func (s *State) TouchStart(x, y float64)     { s.PointerDown(x, y) }
func (s *State) TouchMove(x, y float64) bool { return s.PointerMove(x, y) }
func (s *State) TouchEnd()                   { s.gesture.Release() }

// Wheel applies a wheel event. It is ignored until the animation gate opens.
func (s *State) Wheel(deltaY float64) bool {
	return s.Advance(s.gesture.Wheel(deltaY, s.ready))
}

// Tick advances time for wheel burst tracking.
func (s *State) Tick(dt time.Duration) {
	s.gesture.Tick(dt)
}

func (s *State) SetAnimationReady(ready bool) { s.ready = ready }

func (s *State) ActiveIndex() int              { return s.active }
func (s *State) ActiveItem() gallery.Item      { return s.items[s.active] }
func (s *State) Items() []gallery.Item         { return s.items }
func (s *State) Len() int                      { return len(s.items) }
func (s *State) WindowSize() int               { return s.windowSize }
func (s *State) VisibleWindow() []gallery.Item { return s.visible }
func (s *State) IsDragging() bool              { return s.gesture.Dragging() }
func (s *State) AccumulatedOffset() float64    { return s.gesture.Offset() }
func (s *State) ScrollBurstCount() int         { return s.gesture.BurstCount() }
func (s *State) ScrollDirection() ScrollDirection {
	return s.gesture.Direction()
}
func (s *State) AnimationReady() bool { return s.ready }
func (s *State) Generation() uint64   { return s.generation }
func (s *State) Mode() LayoutMode     { return s.gesture.Mode() }

// VisibleIndex maps slot k of the visible window back to an index into Items.
func (s *State) VisibleIndex(k int) int {
	return Wrap(s.active-CenterSlot(s.windowSize)+k, len(s.items))
}

func (s *State) Snapshot() Snapshot {
	return Snapshot{
		ActiveIndex:       s.active,
		Count:             len(s.items),
		IsDragging:        s.gesture.Dragging(),
		DragStart:         s.gesture.DragStart(),
		AccumulatedOffset: s.gesture.Offset(),
		ScrollBurstCount:  s.gesture.BurstCount(),
		ScrollDirection:   s.gesture.Direction(),
		AnimationReady:    s.ready,
		Generation:        s.generation,
		Mode:              s.gesture.Mode(),
	}
}
