// Package autoadvance issues periodic advance ticks for a carousel.
package autoadvance

import (
	"time"

	"github.com/alexisbeaulieu97/vitrine/internal/clock"
)

// Timer fires its callback once per interval while running and not
// suspended. Resuming or resetting always restarts a full interval; a
// partially elapsed tick is never carried over.
type Timer struct {
	sched    clock.Scheduler
	fire     func()
	interval time.Duration

	started   bool
	suspended bool
	task      clock.Task
}

// New creates a stopped timer that calls fire on every tick.
func New(sched clock.Scheduler, fire func()) *Timer {
	return &Timer{sched: sched, fire: fire}
}

// Start (re)starts the timer with interval. Non-positive intervals stop it.
func (t *Timer) Start(interval time.Duration) {
	t.cancel()
	if interval <= 0 {
		t.started = false
		return
	}
	t.interval = interval
	t.started = true
	if !t.suspended {
		t.schedule()
	}
}

// Suspend cancels the pending tick but remembers that the timer is started.
func (t *Timer) Suspend() {
	t.suspended = true
	t.cancel()
}

// Resume restarts a suspended timer from zero.
func (t *Timer) Resume() {
	if !t.suspended {
		return
	}
	t.suspended = false
	if t.started {
		t.schedule()
	}
}

// Reset restarts the current interval from zero when the timer is running.
func (t *Timer) Reset() {
	if !t.started || t.suspended {
		return
	}
	t.cancel()
	t.schedule()
}

// Stop cancels the pending tick and forgets the interval.
func (t *Timer) Stop() {
	t.cancel()
	t.started = false
	t.suspended = false
}

// Running reports whether a tick is pending.
func (t *Timer) Running() bool {
	return t.started && !t.suspended
}

// Suspended reports whether the timer is started but suspended.
func (t *Timer) Suspended() bool {
	return t.started && t.suspended
}

// Interval returns the configured interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

func (t *Timer) schedule() {
	t.task = t.sched.AfterFunc(t.interval, t.tick)
}

func (t *Timer) tick() {
	t.task = nil
	if !t.started || t.suspended {
		return
	}
	// Queue the next tick before firing so that a Reset from inside fire
	// replaces it.
	t.schedule()
	if t.fire != nil {
		t.fire()
	}
}

func (t *Timer) cancel() {
	if t.task != nil {
		t.task.Stop()
		t.task = nil
	}
}
