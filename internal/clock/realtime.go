package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Realtime is a wall-clock Scheduler. Timers fire on runtime goroutines but
// their callbacks are only queued; the owning loop executes them by calling
// Next (directly, through Run, or through a Bubble Tea command).
type Realtime struct {
	mu      sync.Mutex
	pending []func()
	notify  chan struct{}
	closed  bool
}

// NewRealtime returns an empty realtime scheduler.
func NewRealtime() *Realtime {
	return &Realtime{notify: make(chan struct{}, 1)}
}

// Now returns the wall-clock time.
func (r *Realtime) Now() time.Time {
	return time.Now()
}

// AfterFunc queues fn onto the loop once d has elapsed. A task stopped after
// its timer fired but before the loop ran it is still suppressed.
func (r *Realtime) AfterFunc(d time.Duration, fn func()) Task {
	t := &realtimeTask{}
	t.timer = time.AfterFunc(d, func() {
		r.Post(func() {
			if t.stopped.Load() {
				return
			}
			fn()
		})
	})
	return t
}

// Post queues fn for the loop. Calls after Close are dropped.
func (r *Realtime) Post(fn func()) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.pending = append(r.pending, fn)
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

// Next blocks until a callback is queued, ctx is done, or the scheduler is
// closed. The boolean is false in the latter two cases.
func (r *Realtime) Next(ctx context.Context) (func(), bool) {
	for {
		r.mu.Lock()
		if r.closed {
			r.mu.Unlock()
			return nil, false
		}
		if len(r.pending) > 0 {
			fn := r.pending[0]
			r.pending[0] = nil
			r.pending = r.pending[1:]
			r.mu.Unlock()
			return fn, true
		}
		r.mu.Unlock()

		select {
		case <-ctx.Done():
			return nil, false
		case <-r.notify:
		}
	}
}

// Run executes queued callbacks until ctx is done or the scheduler closes.
func (r *Realtime) Run(ctx context.Context) error {
	for {
		fn, ok := r.Next(ctx)
		if !ok {
			return ctx.Err()
		}
		fn()
	}
}

// Close drops queued callbacks and wakes any waiter.
func (r *Realtime) Close() {
	r.mu.Lock()
	r.closed = true
	r.pending = nil
	r.mu.Unlock()

	select {
	case r.notify <- struct{}{}:
	default:
	}
}

type realtimeTask struct {
	timer   *time.Timer
	stopped atomic.Bool
}

func (t *realtimeTask) Stop() bool {
	if t.stopped.Swap(true) {
		return false
	}
	t.timer.Stop()
	return true
}
