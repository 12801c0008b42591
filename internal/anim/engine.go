package anim

import "time"

// Handle identifies a running tween. The zero Handle is never issued.
type Handle uint64

type tween struct {
	handle     Handle
	target     Target
	from, to   Props
	duration   time.Duration
	elapsed    time.Duration
	ease       Easing
	onComplete func()
}

// Engine is a frame-driven tween engine. It is not safe for concurrent use;
// like the rest of the UI it is driven from ebiten's Update.
type Engine struct {
	tweens []*tween
	next   Handle
}

func NewEngine() *Engine {
	return &Engine{}
}

// Animate tweens the props named in to from their from values (or the
// target's current values when from omits them) over d. The from values are
// applied immediately. onComplete runs from Update once the tween finishes;
// it never runs for a cancelled tween.
//
// A nil target is skipped: no tween is started, the zero Handle is returned
// and onComplete is not called.
func (e *Engine) Animate(target Target, from, to Props, d time.Duration, ease Easing, onComplete func()) Handle {
	if isNil(target) || len(to) == 0 {
		return 0
	}
	if ease == nil {
		ease = Linear
	}

	start := make(Props, len(to))
	end := make(Props, len(to))
	for p, v := range to {
		end[p] = v
		if fv, ok := from[p]; ok {
			start[p] = fv
		} else {
			start[p] = target.Prop(p)
		}
		target.SetProp(p, start[p])
	}

	e.overwrite(target, end)

	e.next++
	e.tweens = append(e.tweens, &tween{
		handle:     e.next,
		target:     target,
		from:       start,
		to:         end,
		duration:   d,
		ease:       ease,
		onComplete: onComplete,
	})
	return e.next
}

// overwrite strips props about to be animated from older tweens on the same
// target. Tweens left with nothing to animate are dropped without completing.
func (e *Engine) overwrite(target Target, props Props) {
	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		if tw.target == target {
			for p := range props {
				delete(tw.to, p)
				delete(tw.from, p)
			}
			if len(tw.to) == 0 {
				continue
			}
		}
		kept = append(kept, tw)
	}
	clearTail(e.tweens, len(kept))
	e.tweens = kept
}

// Update advances every tween by dt, writes the interpolated values and then
// runs the completion callbacks of the tweens that finished, in start order.
func (e *Engine) Update(dt time.Duration) {
	if len(e.tweens) == 0 {
		return
	}

	var done []func()
	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		tw.elapsed += dt
		t := 1.0
		if tw.duration > 0 {
			t = clamp01(float64(tw.elapsed) / float64(tw.duration))
		}
		k := tw.ease(t)
		if t >= 1 {
			k = 1
		}
		for p, to := range tw.to {
			tw.target.SetProp(p, Lerp(tw.from[p], to, k))
		}
		if t >= 1 {
			if tw.onComplete != nil {
				done = append(done, tw.onComplete)
			}
			continue
		}
		kept = append(kept, tw)
	}
	clearTail(e.tweens, len(kept))
	e.tweens = kept

	for _, cb := range done {
		cb()
	}
}

// Cancel stops a single tween, leaving its target where it is.
func (e *Engine) Cancel(h Handle) {
	e.remove(func(tw *tween) bool { return tw.handle == h })
}

// CancelAnimations stops every tween writing to target.
func (e *Engine) CancelAnimations(target Target) {
	if isNil(target) {
		return
	}
	e.remove(func(tw *tween) bool { return tw.target == target })
}

// CancelAll stops every tween.
func (e *Engine) CancelAll() {
	clearTail(e.tweens, 0)
	e.tweens = e.tweens[:0]
}

// Active reports whether any tween is writing to target.
func (e *Engine) Active(target Target) bool {
	for _, tw := range e.tweens {
		if tw.target == target {
			return true
		}
	}
	return false
}

// Len returns the number of running tweens.
func (e *Engine) Len() int {
	return len(e.tweens)
}

func (e *Engine) remove(match func(*tween) bool) {
	kept := e.tweens[:0]
	for _, tw := range e.tweens {
		if !match(tw) {
			kept = append(kept, tw)
		}
	}
	clearTail(e.tweens, len(kept))
	e.tweens = kept
}

// clearTail nils out the slots past n so dropped tweens can be collected.
func clearTail(s []*tween, n int) {
	for i := n; i < len(s); i++ {
		s[i] = nil
	}
}
