// Package clock provides the cooperative scheduler the viewer runs on.
//
// Every viewer callback (timer ticks, transition completions, preload
// results) is delivered through a Scheduler onto its owner's loop, so viewer
// state is only ever touched by one goroutine at a time and needs no locks.
// Manual drives virtual time for tests; Realtime queues wall-clock callbacks
// for a host loop to drain.
package clock

import "time"

// Task is a scheduled callback that can be cancelled.
type Task interface {
	// Stop prevents the callback from running. It reports whether the call
	// stopped a pending task.
	Stop() bool
}

// Scheduler delivers callbacks onto a single cooperative loop.
type Scheduler interface {
	Now() time.Time
	// AfterFunc runs fn on the loop once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Task
	// Post runs fn on the loop as soon as possible. It is safe to call from
	// any goroutine.
	Post(fn func())
}
