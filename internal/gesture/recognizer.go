// Package gesture turns raw pointer coordinates into swipe directions.
package gesture

import "math"

const (
	// DefaultLockThreshold is the horizontal travel after which a gesture is
	// classified as a horizontal swipe.
	DefaultLockThreshold = 10.0
	// DefaultSwipeDistance is the minimum horizontal travel that counts as a
	// swipe when the pointer is released.
	DefaultSwipeDistance = 50.0
)

// Options tunes the recognizer thresholds. Zero values fall back to the
// defaults.
type Options struct {
	LockThreshold float64
	SwipeDistance float64
}

// Recognizer tracks one pointer gesture at a time and emits at most one
// direction per gesture: -1 to show the previous item, +1 to show the next.
type Recognizer struct {
	lockThreshold float64
	swipeDistance float64

	enabled   bool
	itemCount int

	tracking   bool
	horizontal bool
	startX     float64
	startY     float64
}

// New creates a recognizer. It starts enabled with no items, so gestures are
// ignored until SetItemCount reports at least two items.
func New(opts Options) *Recognizer {
	if opts.LockThreshold <= 0 {
		opts.LockThreshold = DefaultLockThreshold
	}
	if opts.SwipeDistance <= 0 {
		opts.SwipeDistance = DefaultSwipeDistance
	}
	return &Recognizer{
		lockThreshold: opts.LockThreshold,
		swipeDistance: opts.SwipeDistance,
		enabled:       true,
	}
}

// SetEnabled toggles swipe handling. Disabling cancels any gesture in progress.
func (r *Recognizer) SetEnabled(enabled bool) {
	r.enabled = enabled
	if !enabled {
		r.Cancel()
	}
}

// SetItemCount records the catalog size; single-item catalogs never swipe.
func (r *Recognizer) SetItemCount(n int) {
	r.itemCount = n
}

// Eligible reports whether a new gesture would be tracked.
func (r *Recognizer) Eligible() bool {
	return r.enabled && r.itemCount > 1
}

// Down starts a gesture at (x, y). It returns false when the gesture is
// ignored.
func (r *Recognizer) Down(x, y float64) bool {
	if !r.Eligible() {
		r.Cancel()
		return false
	}
	r.tracking = true
	r.horizontal = false
	r.startX = x
	r.startY = y
	return true
}

// Move updates the gesture and reports whether default scrolling must be
// suppressed. Once a gesture is horizontal it stays horizontal.
func (r *Recognizer) Move(x, y float64) bool {
	if !r.tracking {
		return false
	}
	if r.horizontal {
		return true
	}
	dx := math.Abs(x - r.startX)
	dy := math.Abs(y - r.startY)
	if dx > dy && dx > r.lockThreshold {
		r.horizontal = true
	}
	return r.horizontal
}

// Up finishes the gesture at (x, y) and returns the swipe direction, if any.
func (r *Recognizer) Up(x, y float64) (int, bool) {
	if !r.tracking {
		return 0, false
	}
	// The release point counts as the last move; pointers can jump without
	// intermediate move events.
	horizontal := r.Move(x, y)
	dx := x - r.startX
	dy := y - r.startY
	r.Cancel()

	if !horizontal {
		return 0, false
	}
	if math.Abs(dx) <= r.swipeDistance || math.Abs(dx) <= math.Abs(dy) {
		return 0, false
	}
	if dx > 0 {
		return -1, true
	}
	return 1, true
}

// Cancel abandons the current gesture without emitting anything.
func (r *Recognizer) Cancel() {
	r.tracking = false
	r.horizontal = false
}

// Active reports whether a gesture is in progress.
func (r *Recognizer) Active() bool {
	return r.tracking
}

// Horizontal reports whether the current gesture has been classified as a
// horizontal swipe.
func (r *Recognizer) Horizontal() bool {
	return r.tracking && r.horizontal
}
