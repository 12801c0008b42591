package slider

import (
	"math"
	"testing"
	"time"

	"github.com/depeter/jellyslide/internal/anim"
)

type fixture struct {
	state   *State
	engine  *anim.Engine
	coord   *Coordinator
	targets Targets
	thumbs  *anim.Node
	main    *anim.Node
	counter *anim.Node
	number  *anim.Node
}

var testViewport = Viewport{Width: 1200, Height: 800, StripWidth: 1000, StripHeight: 100, CounterHeight: 40}

func newFixture(t *testing.T, n int) *fixture {
	t.Helper()
	f := &fixture{
		state:   newState(t, n),
		engine:  anim.NewEngine(),
		thumbs:  anim.NewNode(),
		main:    anim.NewNode(),
		counter: anim.NewNode(),
		number:  anim.NewNode(),
	}
	f.coord = NewCoordinator(f.state, f.engine, horizontalOpts())
	f.targets = Targets{Thumbs: f.thumbs, MainImage: f.main, Counter: f.counter, CounterNumber: f.number}
	return f
}

// run steps the engine, state and coordinator like the UI does each frame.
func (f *fixture) run(d time.Duration) {
	const step = 16 * time.Millisecond
	for d > 0 {
		dt := step
		if d < dt {
			dt = d
		}
		f.state.Tick(dt)
		f.engine.Update(dt)
		f.coord.Update(dt)
		d -= dt
	}
}

func TestCoordinator_EntranceGatesWheel(t *testing.T) {
	f := newFixture(t, 6)
	f.coord.Mount(f.targets, testViewport)

	if f.thumbs.X != 100 || f.thumbs.Y != 350 {
		t.Errorf("thumbs start at (%.0f, %.0f), want centered origin (100, 350)", f.thumbs.X, f.thumbs.Y)
	}
	if f.main.Alpha != 0 {
		t.Errorf("main image should start hidden, alpha=%.2f", f.main.Alpha)
	}

	f.state.Wheel(120)
	if f.state.ActiveIndex() != 0 {
		t.Fatal("wheel accepted during entrance")
	}

	f.run(500 * time.Millisecond)
	if f.state.AnimationReady() {
		t.Fatal("ready before the counter entrance finished")
	}

	f.run(600 * time.Millisecond)
	if !f.state.AnimationReady() {
		t.Fatal("not ready after the counter entrance")
	}
	if f.main.Scale != 1 || f.main.Alpha != 1 {
		t.Errorf("main image at scale %.2f alpha %.2f", f.main.Scale, f.main.Alpha)
	}

	f.state.Wheel(120)
	if f.state.ActiveIndex() != 1 {
		t.Errorf("first wheel after ready: index %d, want 1", f.state.ActiveIndex())
	}

	f.run(200 * time.Millisecond)
	if f.thumbs.X != 0 || f.thumbs.Y != 0 {
		t.Errorf("thumbs at (%.1f, %.1f) after entrance", f.thumbs.X, f.thumbs.Y)
	}
}

func TestCoordinator_MissingCounterOpensGate(t *testing.T) {
	f := newFixture(t, 3)
	f.targets.Counter = nil
	f.coord.Mount(f.targets, testViewport)
	if !f.state.AnimationReady() {
		t.Error("without a counter target the gate should open immediately")
	}
}

func TestCoordinator_CounterTransitionOnEveryChange(t *testing.T) {
	f := newFixture(t, 6)
	f.coord.Mount(f.targets, testViewport)

	f.state.Advance(1)
	f.run(100 * time.Millisecond)
	if f.number.Y != 10 || f.number.Alpha != 0 {
		t.Fatalf("after slide out: y=%.1f alpha=%.2f, want 10 and 0", f.number.Y, f.number.Alpha)
	}
	f.run(100 * time.Millisecond)
	if f.number.Y != 0 || f.number.Alpha != 1 {
		t.Errorf("after slide in: y=%.1f alpha=%.2f", f.number.Y, f.number.Alpha)
	}
}

func TestCoordinator_CounterSlideEasing(t *testing.T) {
	f := newFixture(t, 6)
	f.coord.Mount(f.targets, testViewport)
	f.run(2 * time.Second)

	f.state.Advance(1)
	f.run(48 * time.Millisecond)
	// Slide out accelerates: progress 0.48 eases to 0.2304.
	if math.Abs(f.number.Y+2.304) > 1e-9 || math.Abs(f.number.Alpha-0.7696) > 1e-9 {
		t.Errorf("mid slide out: y=%.4f alpha=%.4f, want -2.3040 and 0.7696", f.number.Y, f.number.Alpha)
	}
}

func TestCoordinator_RemountSettlesCounterDigit(t *testing.T) {
	tests := []struct {
		name    string
		remount func(t *testing.T, f *fixture)
	}{
		{"section switch", func(t *testing.T, f *fixture) {
			if err := f.state.SwitchSection(makeItems(3)); err != nil {
				t.Fatal(err)
			}
		}},
		{"unmount then mount", func(t *testing.T, f *fixture) {
			f.coord.Unmount()
			f.coord.Mount(f.targets, testViewport)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 6)
			f.coord.Mount(f.targets, testViewport)
			f.run(2 * time.Second)

			f.state.Advance(1)
			f.run(48 * time.Millisecond)
			if f.number.Alpha == 1 {
				t.Fatal("digit transition did not start")
			}

			tt.remount(t, f)
			if f.number.Y != 0 || f.number.Alpha != 1 {
				t.Errorf("after remount: y=%.2f alpha=%.2f, want 0 and 1", f.number.Y, f.number.Alpha)
			}
			f.run(3 * time.Second)
			if f.number.Y != 0 || f.number.Alpha != 1 {
				t.Errorf("after entrance: y=%.2f alpha=%.2f, want 0 and 1", f.number.Y, f.number.Alpha)
			}
			if !f.state.AnimationReady() {
				t.Error("gate did not reopen")
			}
		})
	}
}

func TestCoordinator_ReplayKeyImmediateBelowBurst(t *testing.T) {
	f := newFixture(t, 10)
	f.coord.Mount(f.targets, testViewport)
	f.run(1200 * time.Millisecond)

	key := f.coord.ThumbKey()
	f.state.Wheel(120)
	if f.coord.ThumbKey() != key+1 {
		t.Errorf("key = %d, want %d", f.coord.ThumbKey(), key+1)
	}
	f.state.PointerDown(500, 0)
	f.state.PointerMove(300, 0)
	if f.coord.ThumbKey() != key+2 {
		t.Errorf("drag step should bump the key immediately, key = %d", f.coord.ThumbKey())
	}
}

func TestCoordinator_ReplayKeyDebouncedDuringBurst(t *testing.T) {
	f := newFixture(t, 20)
	f.coord.Mount(f.targets, testViewport)
	f.run(1200 * time.Millisecond)

	for i := 0; i < 4; i++ {
		f.state.Wheel(120)
		f.run(30 * time.Millisecond)
	}
	key := f.coord.ThumbKey()

	for i := 0; i < 5; i++ {
		f.state.Wheel(120)
		if f.coord.ThumbKey() != key {
			t.Fatalf("burst step %d bumped the key immediately", i)
		}
		if !f.coord.ReplayPending() {
			t.Fatalf("burst step %d did not schedule a replay", i)
		}
		f.run(100 * time.Millisecond)
	}

	f.run(300 * time.Millisecond)
	if f.coord.ThumbKey() != key+1 {
		t.Errorf("key = %d, want one coalesced bump to %d", f.coord.ThumbKey(), key+1)
	}
	if f.state.ActiveIndex() != 9 {
		t.Errorf("index = %d, want 9", f.state.ActiveIndex())
	}
}

func TestCoordinator_UnmountCancelsEverything(t *testing.T) {
	f := newFixture(t, 20)
	f.coord.Mount(f.targets, testViewport)
	f.run(1200 * time.Millisecond)
	for i := 0; i < 6; i++ {
		f.state.Wheel(120)
	}
	if !f.coord.ReplayPending() {
		t.Fatal("expected a pending replay")
	}
	key := f.coord.ThumbKey()

	f.coord.Unmount()
	if f.engine.Len() != 0 {
		t.Errorf("%d tweens survived unmount", f.engine.Len())
	}
	if f.coord.ReplayPending() {
		t.Error("replay still pending after unmount")
	}

	f.state.Advance(1)
	f.run(time.Second)
	if f.coord.ThumbKey() != key {
		t.Error("key changed after unmount")
	}
	if f.engine.Len() != 0 {
		t.Error("unmounted coordinator started animations")
	}
}

func TestCoordinator_UnmountDuringEntranceDropsGate(t *testing.T) {
	f := newFixture(t, 4)
	f.coord.Mount(f.targets, testViewport)
	f.run(300 * time.Millisecond)
	f.coord.Unmount()
	f.run(2 * time.Second)
	if f.state.AnimationReady() {
		t.Error("cancelled entrance opened the gate")
	}
}

func TestCoordinator_SectionSwitchReplaysEntrance(t *testing.T) {
	f := newFixture(t, 6)
	f.coord.Mount(f.targets, testViewport)
	f.run(1200 * time.Millisecond)
	if !f.state.AnimationReady() {
		t.Fatal("not ready")
	}

	if err := f.state.SwitchSection(makeItems(3)); err != nil {
		t.Fatal(err)
	}
	if f.state.AnimationReady() {
		t.Error("gate should close on section switch")
	}
	if f.main.Alpha != 0 || f.thumbs.X != 100 {
		t.Errorf("entrance not replayed: main alpha=%.2f thumbs x=%.0f", f.main.Alpha, f.thumbs.X)
	}
	f.run(1200 * time.Millisecond)
	if !f.state.AnimationReady() {
		t.Error("gate did not reopen after the new entrance")
	}
}

func TestCoordinator_ThumbNudge(t *testing.T) {
	f := newFixture(t, 6)
	f.coord.Mount(f.targets, testViewport)

	f.state.PointerDown(500, 0)
	f.state.PointerMove(440, 0)
	f.coord.Update(0)
	if f.coord.ThumbOffset() != -60 {
		t.Fatalf("nudge while dragging = %.1f, want -60", f.coord.ThumbOffset())
	}

	f.state.PointerUp()
	f.coord.Update(16 * time.Millisecond)
	if off := f.coord.ThumbOffset(); off <= -60 || off >= 0 {
		t.Errorf("nudge should ease toward zero, got %.1f", off)
	}
	f.run(time.Second)
	if f.coord.ThumbOffset() != 0 {
		t.Errorf("nudge did not settle, got %.2f", f.coord.ThumbOffset())
	}
}

func TestCoordinator_ImageWidthTunesEntrance(t *testing.T) {
	f := newFixture(t, 3)
	f.coord.OnImageWidth(4000)
	f.coord.Mount(f.targets, testViewport)
	if f.main.Scale != 0.9 {
		t.Errorf("wide image start scale = %.2f, want 0.9", f.main.Scale)
	}
}
