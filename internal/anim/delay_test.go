package anim

import (
	"testing"
	"time"
)

func TestDelayedTask_FiresOnceAfterDelay(t *testing.T) {
	runs := 0
	d := NewDelayedTask(100*time.Millisecond, func() { runs++ })

	d.Advance(time.Second)
	if runs != 0 {
		t.Fatal("unscheduled task ran")
	}

	d.Schedule()
	d.Advance(60 * time.Millisecond)
	if runs != 0 || !d.Pending() {
		t.Fatalf("ran early: runs=%d pending=%v", runs, d.Pending())
	}
	d.Advance(40 * time.Millisecond)
	if runs != 1 || d.Pending() {
		t.Errorf("runs=%d pending=%v, want 1 and false", runs, d.Pending())
	}
	d.Advance(time.Second)
	if runs != 1 {
		t.Errorf("ran again: %d", runs)
	}
}

func TestDelayedTask_RescheduleRestartsDelay(t *testing.T) {
	runs := 0
	d := NewDelayedTask(100*time.Millisecond, func() { runs++ })

	d.Schedule()
	for i := 0; i < 5; i++ {
		d.Advance(80 * time.Millisecond)
		d.Schedule()
	}
	if runs != 0 {
		t.Fatalf("coalesced task ran %d times during the burst", runs)
	}
	d.Advance(100 * time.Millisecond)
	if runs != 1 {
		t.Errorf("runs=%d, want 1", runs)
	}
}

func TestDelayedTask_Cancel(t *testing.T) {
	runs := 0
	d := NewDelayedTask(50*time.Millisecond, func() { runs++ })
	d.Schedule()
	d.Cancel()
	d.Advance(time.Second)
	if runs != 0 || d.Pending() {
		t.Errorf("runs=%d pending=%v", runs, d.Pending())
	}
}
