package slider

import (
	"math"
	"time"

	"github.com/depeter/jellyslide/internal/anim"
)

// Animator is the animation engine the coordinator drives. anim.Engine
// satisfies it.
type Animator interface {
	Animate(target anim.Target, from, to anim.Props, d time.Duration, ease anim.Easing, onComplete func()) anim.Handle
	CancelAnimations(target anim.Target)
}

// Targets are the render-target handles the coordinator animates. Any of
// them may be nil; animations on a missing target are skipped.
type Targets struct {
	Thumbs        anim.Target
	MainImage     anim.Target
	Counter       anim.Target
	CounterNumber anim.Target
}

func (t Targets) all() []anim.Target {
	return []anim.Target{t.Thumbs, t.MainImage, t.Counter, t.CounterNumber}
}

// Viewport carries the container dimensions the entrance animation is
// computed from.
type Viewport struct {
	Width, Height           float64
	StripWidth, StripHeight float64
	CounterHeight           float64
}

const (
	thumbsEntrance   = 1200 * time.Millisecond
	mainEntrance     = time.Second
	counterEntrance  = time.Second
	counterStep      = 100 * time.Millisecond
	thumbsReplay     = 200 * time.Millisecond
	counterSlideFrac = 0.25

	// nudgeEase is the per-frame fraction the thumbnail nudge closes toward
	// its target once the drag is released.
	nudgeEase = 0.2
)

var backOut = anim.BackOut(1.7)

// Coordinator sequences the slider's presentation: the entrance on mount and
// section switch, the counter digit transition on every index change, the
// debounced thumbnail replay during wheel bursts and the drag nudge. It owns
// no navigation logic; the only state it writes is the animation-ready gate.
type Coordinator struct {
	state    *State
	animator Animator
	opts     Options

	targets  Targets
	viewport Viewport
	mounted  bool
	// epoch changes on every mount and unmount; callbacks from an older
	// epoch are dropped.
	epoch uint64

	thumbKey    uint64
	replay      *anim.DelayedTask
	imageWidth  int
	thumbOffset float64
}

// NewCoordinator wires a coordinator to state. It does nothing visible until
// Mount.
func NewCoordinator(state *State, animator Animator, opts Options) *Coordinator {
	opts = opts.withDefaults()
	c := &Coordinator{
		state:    state,
		animator: animator,
		opts:     opts,
		thumbKey: 1,
	}
	c.replay = anim.NewDelayedTask(opts.ReplayDebounce, c.bumpThumbKey)
	state.OnIndexChange(c.indexChanged)
	state.OnSectionSwitch(c.sectionSwitched)
	return c
}

// Mount plays the entrance animation against targets. Wheel input stays
// gated until the counter's entrance completes.
func (c *Coordinator) Mount(targets Targets, vp Viewport) {
	if c.mounted {
		c.cancelAll()
	}
	c.targets = targets
	c.viewport = vp
	c.mounted = true
	c.epoch++
	c.thumbOffset = 0
	c.entrance()
}

// Unmount cancels every animation and the pending replay. No callback
// scheduled before Unmount will touch the targets afterwards.
func (c *Coordinator) Unmount() {
	if !c.mounted {
		return
	}
	c.cancelAll()
	c.mounted = false
	c.epoch++
	c.targets = Targets{}
	c.thumbOffset = 0
}

func (c *Coordinator) Mounted() bool { return c.mounted }

// Resize updates the viewport used by later entrances.
func (c *Coordinator) Resize(vp Viewport) {
	c.viewport = vp
}

func (c *Coordinator) cancelAll() {
	for _, t := range c.targets.all() {
		if t != nil {
			c.animator.CancelAnimations(t)
		}
	}
	c.replay.Cancel()
}

func (c *Coordinator) entrance() {
	c.state.SetAnimationReady(false)
	vp := c.viewport
	epoch := c.epoch

	originX := vp.Width/2 - vp.StripWidth/2
	originY := vp.Height/2 - vp.StripHeight/2
	c.animate(c.targets.Thumbs,
		anim.Props{anim.PropX: originX, anim.PropY: originY, anim.PropAlpha: 1},
		anim.Props{anim.PropX: 0, anim.PropY: 0, anim.PropAlpha: 1},
		thumbsEntrance, anim.OutQuad, nil)

	// Settle the digit; a remount can cut its transition short.
	if num := c.targets.CounterNumber; num != nil {
		num.SetProp(anim.PropY, 0)
		num.SetProp(anim.PropAlpha, 1)
	}

	c.animate(c.targets.MainImage,
		anim.Props{anim.PropScale: c.mainStartScale(), anim.PropAlpha: 0},
		anim.Props{anim.PropScale: 1, anim.PropAlpha: 1},
		mainEntrance, backOut, nil)

	if c.targets.Counter == nil {
		c.state.SetAnimationReady(true)
		return
	}
	c.animate(c.targets.Counter,
		anim.Props{anim.PropScale: 0.6, anim.PropAlpha: 0},
		anim.Props{anim.PropScale: 1, anim.PropAlpha: 1},
		counterEntrance, backOut, func() {
			if c.live(epoch) {
				c.state.SetAnimationReady(true)
			}
		})
}

// mainStartScale picks how far the main image grows during its entrance.
// Images wider than the viewport start closer to full size so the pop does
// not overshoot the frame.
func (c *Coordinator) mainStartScale() float64 {
	if c.imageWidth > 0 && c.viewport.Width > 0 && float64(c.imageWidth) > c.viewport.Width {
		return 0.9
	}
	return 0.8
}

func (c *Coordinator) live(epoch uint64) bool {
	return c.mounted && c.epoch == epoch
}

func (c *Coordinator) animate(t anim.Target, from, to anim.Props, d time.Duration, ease anim.Easing, done func()) {
	if t == nil {
		return
	}
	c.animator.Animate(t, from, to, d, ease, done)
}

func (c *Coordinator) indexChanged(prev, next int) {
	if !c.mounted {
		return
	}
	c.counterTransition()

	if c.state.ScrollBurstCount() > c.opts.BurstThreshold {
		c.replay.Schedule()
		return
	}
	c.replay.Cancel()
	c.bumpThumbKey()
}

// counterTransition slides the counter digit out one way and back in from
// the other.
func (c *Coordinator) counterTransition() {
	num := c.targets.CounterNumber
	if num == nil {
		return
	}
	shift := c.viewport.CounterHeight * counterSlideFrac
	epoch := c.epoch
	c.animator.Animate(num, nil,
		anim.Props{anim.PropY: -shift, anim.PropAlpha: 0},
		counterStep, anim.InQuad, func() {
			if !c.live(epoch) {
				return
			}
			c.animator.Animate(num,
				anim.Props{anim.PropY: shift, anim.PropAlpha: 0},
				anim.Props{anim.PropY: 0, anim.PropAlpha: 1},
				counterStep, anim.OutCubic, nil)
		})
}

func (c *Coordinator) bumpThumbKey() {
	if !c.mounted {
		return
	}
	c.thumbKey++
	c.animate(c.targets.Thumbs,
		anim.Props{anim.PropAlpha: 0.5},
		anim.Props{anim.PropAlpha: 1},
		thumbsReplay, anim.Smoothstep, nil)
}

func (c *Coordinator) sectionSwitched() {
	if !c.mounted {
		return
	}
	c.Mount(c.targets, c.viewport)
}

// Update advances the replay debounce and eases the thumbnail nudge.
func (c *Coordinator) Update(dt time.Duration) {
	if !c.mounted {
		return
	}
	c.replay.Advance(dt)

	target := -c.state.AccumulatedOffset()
	if c.state.IsDragging() {
		c.thumbOffset = target
		return
	}
	c.thumbOffset = anim.Lerp(c.thumbOffset, target, nudgeEase)
	if math.Abs(c.thumbOffset-target) < 0.5 {
		c.thumbOffset = target
	}
}

// OnImageWidth is the main image's load callback with its natural width.
func (c *Coordinator) OnImageWidth(width int) {
	c.imageWidth = width
}

// ThumbKey is the thumbnail strip's replay key. It changes whenever the
// strip's entrance is replayed.
func (c *Coordinator) ThumbKey() uint64 { return c.thumbKey }

// ThumbOffset is the strip's current nudge translation along the drag axis.
func (c *Coordinator) ThumbOffset() float64 { return c.thumbOffset }

// ReplayPending reports whether a debounced replay is waiting.
func (c *Coordinator) ReplayPending() bool { return c.replay.Pending() }

func (c *Coordinator) ImageWidth() int { return c.imageWidth }
