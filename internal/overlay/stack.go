// Package overlay assigns stacking order to concurrently open full-screen
// surfaces.
//
// The counter behind Default is the one piece of process-wide mutable state
// in the viewer. It starts at zero when the process starts and is never torn
// down. Surfaces reach it only through Acquire and Release (or a Surface
// handle, which pairs them).
package overlay

import (
	"sync"

	"github.com/alexisbeaulieu97/vitrine/internal/logger"
)

const (
	// DefaultBaseZ is the z-index handed to the first open overlay.
	DefaultBaseZ = 1000
	// DefaultIncrement separates consecutive overlays.
	DefaultIncrement = 100
)

// Stack is a stacking counter. The zero value is not usable; call NewStack.
type Stack struct {
	mu        sync.Mutex
	baseZ     int
	increment int
	count     int
	log       *logger.Logger
}

// NewStack returns a stack whose first slot is baseZ.
func NewStack(baseZ, increment int) *Stack {
	if increment <= 0 {
		increment = DefaultIncrement
	}
	return &Stack{baseZ: baseZ, increment: increment}
}

// SetLogger attaches a logger used to report unmatched releases.
func (s *Stack) SetLogger(log *logger.Logger) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.log = log
}

// Acquire claims the next slot and returns its z-index.
func (s *Stack) Acquire() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.count++
	return s.baseZ + (s.count-1)*s.increment
}

// Release frees the most recent slot. The counter never drops below zero;
// an unmatched release is logged but not otherwise corrected, so later
// overlays may be stacked lower than the true open count implies.
func (s *Stack) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.count == 0 {
		s.log.Warn("overlay release without matching acquire", "base_z", s.baseZ)
		return
	}
	s.count--
}

// Count returns the number of held slots.
func (s *Stack) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// BaseZ returns the z-index of the first slot.
func (s *Stack) BaseZ() int {
	return s.baseZ
}

// Default is the process-wide stack shared by every overlay surface.
var Default = NewStack(DefaultBaseZ, DefaultIncrement)

// Acquire claims a slot on the Default stack.
func Acquire() int {
	return Default.Acquire()
}

// Release frees a slot on the Default stack.
func Release() {
	Default.Release()
}
