package anim

import (
	"math"
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestEngine_AnimateAppliesFromImmediately(t *testing.T) {
	e := NewEngine()
	n := NewNode()

	h := e.Animate(n, Props{PropX: 100, PropAlpha: 0}, Props{PropX: 0, PropAlpha: 1}, time.Second, nil, nil)
	if h == 0 {
		t.Fatal("expected a non-zero handle")
	}
	if n.X != 100 || n.Alpha != 0 {
		t.Errorf("from values not applied: x=%.1f alpha=%.1f", n.X, n.Alpha)
	}

	e.Update(500 * time.Millisecond)
	if !approx(n.X, 50) || !approx(n.Alpha, 0.5) {
		t.Errorf("halfway: x=%.2f alpha=%.2f, want 50 and 0.5", n.X, n.Alpha)
	}

	e.Update(500 * time.Millisecond)
	if n.X != 0 || n.Alpha != 1 {
		t.Errorf("end: x=%.2f alpha=%.2f, want 0 and 1", n.X, n.Alpha)
	}
	if e.Len() != 0 {
		t.Errorf("finished tween still running, Len=%d", e.Len())
	}
}

func TestEngine_MissingFromUsesCurrentValue(t *testing.T) {
	e := NewEngine()
	n := NewNode()
	n.Scale = 0.5

	e.Animate(n, nil, Props{PropScale: 1}, 100*time.Millisecond, Linear, nil)
	e.Update(50 * time.Millisecond)
	if !approx(n.Scale, 0.75) {
		t.Errorf("scale=%.3f, want 0.75", n.Scale)
	}
}

func TestEngine_CompletionRunsOnceAfterUpdate(t *testing.T) {
	e := NewEngine()
	n := NewNode()
	calls := 0

	e.Animate(n, nil, Props{PropY: 10}, 2*frame, nil, func() { calls++ })
	e.Update(frame)
	if calls != 0 {
		t.Fatalf("completed early")
	}
	e.Update(frame)
	e.Update(frame)
	if calls != 1 {
		t.Errorf("onComplete called %d times, want 1", calls)
	}
}

func TestEngine_ZeroDurationCompletesOnNextUpdate(t *testing.T) {
	e := NewEngine()
	n := NewNode()
	done := false

	e.Animate(n, Props{PropX: 5}, Props{PropX: 9}, 0, nil, func() { done = true })
	if done {
		t.Fatal("onComplete must not run inside Animate")
	}
	e.Update(0)
	if !done || n.X != 9 {
		t.Errorf("done=%v x=%.1f, want true and 9", done, n.X)
	}
}

func TestEngine_CallbackMayChainAnimation(t *testing.T) {
	e := NewEngine()
	n := NewNode()
	var order []string

	e.Animate(n, nil, Props{PropY: -25}, frame, nil, func() {
		order = append(order, "out")
		e.Animate(n, Props{PropY: 25}, Props{PropY: 0}, frame, nil, func() {
			order = append(order, "in")
		})
	})

	e.Update(frame)
	if n.Y != 25 {
		t.Errorf("chained tween should start at 25, got %.1f", n.Y)
	}
	e.Update(frame)
	if len(order) != 2 || order[0] != "out" || order[1] != "in" {
		t.Errorf("order=%v", order)
	}
	if n.Y != 0 {
		t.Errorf("y=%.1f, want 0", n.Y)
	}
}

func TestEngine_NilTargetIsSkipped(t *testing.T) {
	e := NewEngine()
	var missing *Node
	called := false

	if h := e.Animate(nil, nil, Props{PropX: 1}, frame, nil, func() { called = true }); h != 0 {
		t.Errorf("nil target got handle %d", h)
	}
	if h := e.Animate(missing, nil, Props{PropX: 1}, frame, nil, func() { called = true }); h != 0 {
		t.Errorf("typed nil target got handle %d", h)
	}
	e.Update(time.Second)
	if called || e.Len() != 0 {
		t.Errorf("called=%v len=%d", called, e.Len())
	}
	e.CancelAnimations(missing)
}

func TestEngine_Cancel(t *testing.T) {
	tests := []struct {
		name   string
		cancel func(e *Engine, h Handle, n *Node)
	}{
		{"by handle", func(e *Engine, h Handle, _ *Node) { e.Cancel(h) }},
		{"by target", func(e *Engine, _ Handle, n *Node) { e.CancelAnimations(n) }},
		{"all", func(e *Engine, _ Handle, _ *Node) { e.CancelAll() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEngine()
			n := NewNode()
			called := false
			h := e.Animate(n, Props{PropX: 0}, Props{PropX: 100}, 100*time.Millisecond, nil, func() { called = true })
			e.Update(50 * time.Millisecond)

			tt.cancel(e, h, n)
			e.Update(time.Second)

			if called {
				t.Error("cancelled tween completed")
			}
			if !approx(n.X, 50) {
				t.Errorf("cancelled tween kept writing, x=%.1f", n.X)
			}
			if e.Active(n) {
				t.Error("target still active")
			}
		})
	}
}

func TestEngine_NewTweenOverwritesSameProp(t *testing.T) {
	e := NewEngine()
	n := NewNode()
	firstDone := false

	e.Animate(n, nil, Props{PropY: 100, PropAlpha: 0}, time.Second, nil, func() { firstDone = true })
	e.Animate(n, nil, Props{PropY: -100}, time.Second, nil, nil)
	if e.Len() != 2 {
		t.Fatalf("alpha part of first tween should survive, Len=%d", e.Len())
	}

	e.Animate(n, nil, Props{PropAlpha: 1}, time.Second, nil, nil)
	if e.Len() != 2 {
		t.Fatalf("first tween should be dropped, Len=%d", e.Len())
	}
	e.Update(2 * time.Second)
	if firstDone {
		t.Error("overwritten tween must not complete")
	}
	if n.Y != -100 || n.Alpha != 1 {
		t.Errorf("y=%.1f alpha=%.1f", n.Y, n.Alpha)
	}
}

func TestEasingEndpoints(t *testing.T) {
	curves := map[string]Easing{
		"linear":     Linear,
		"inQuad":     InQuad,
		"outQuad":    OutQuad,
		"outCubic":   OutCubic,
		"smoothstep": Smoothstep,
		"backOut":    BackOut(1.7),
	}
	for name, ease := range curves {
		if !approx(ease(0), 0) || !approx(ease(1), 1) {
			t.Errorf("%s: ease(0)=%.4f ease(1)=%.4f", name, ease(0), ease(1))
		}
	}
	if BackOut(1.7)(0.6) <= 1 {
		t.Error("backOut should overshoot past 1 before settling")
	}
}
