package anim

import "time"

// DelayedTask runs fn once after a delay, measured in frame time fed through
// Advance. At most one run is pending: Schedule while pending restarts the
// delay.
type DelayedTask struct {
	delay     time.Duration
	remaining time.Duration
	pending   bool
	fn        func()
}

func NewDelayedTask(delay time.Duration, fn func()) *DelayedTask {
	return &DelayedTask{delay: delay, fn: fn}
}

// Schedule cancels any pending run and schedules a new one.
func (d *DelayedTask) Schedule() {
	d.remaining = d.delay
	d.pending = true
}

// Cancel drops the pending run, if any.
func (d *DelayedTask) Cancel() {
	d.pending = false
	d.remaining = 0
}

func (d *DelayedTask) Pending() bool {
	return d.pending
}

// Advance moves the task's clock forward and runs fn if the delay elapsed.
func (d *DelayedTask) Advance(dt time.Duration) {
	if !d.pending {
		return
	}
	d.remaining -= dt
	if d.remaining > 0 {
		return
	}
	d.pending = false
	if d.fn != nil {
		d.fn()
	}
}
