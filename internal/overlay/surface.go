package overlay

import (
	"github.com/google/uuid"
)

// CloseReason records which path closed a surface.
type CloseReason string

const (
	CloseEscape       CloseReason = "escape"
	CloseBackdrop     CloseReason = "backdrop"
	CloseProgrammatic CloseReason = "programmatic"
	CloseUnmount      CloseReason = "unmount"
)

// Surface is the open/close lifecycle of one full-screen overlay. Every close
// path goes through Close, which releases the stacking slot at most once.
type Surface struct {
	id       string
	stack    *Stack
	explicit int
	hasZ     bool

	open    bool
	zIndex  int
	claimed bool
	reason  CloseReason
}

// SurfaceOption customizes a Surface.
type SurfaceOption func(*Surface)

// WithZIndex pins the surface to z, bypassing the stack entirely.
func WithZIndex(z int) SurfaceOption {
	return func(s *Surface) {
		s.explicit = z
		s.hasZ = true
	}
}

// WithStack uses stack instead of Default.
func WithStack(stack *Stack) SurfaceOption {
	return func(s *Surface) {
		if stack != nil {
			s.stack = stack
		}
	}
}

// NewSurface creates a closed surface with a fresh identifier.
func NewSurface(opts ...SurfaceOption) *Surface {
	s := &Surface{
		id:    uuid.NewString(),
		stack: Default,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ID returns the surface identifier.
func (s *Surface) ID() string {
	return s.id
}

// Open transitions the surface to open and returns its z-index. Opening an
// open surface returns the current z-index without acquiring again.
func (s *Surface) Open() int {
	if s.open {
		return s.zIndex
	}
	s.open = true
	s.reason = ""
	if s.hasZ {
		s.zIndex = s.explicit
		return s.zIndex
	}
	s.zIndex = s.stack.Acquire()
	s.claimed = true
	return s.zIndex
}

// Close transitions the surface to closed, releasing its slot if it holds
// one. It reports whether this call performed the transition; repeated
// closes (for example escape followed by unmount) are no-ops.
func (s *Surface) Close(reason CloseReason) bool {
	if !s.open {
		return false
	}
	s.open = false
	s.reason = reason
	if s.claimed {
		s.claimed = false
		s.stack.Release()
	}
	return true
}

// IsOpen reports whether the surface is open.
func (s *Surface) IsOpen() bool {
	return s.open
}

// ZIndex returns the z-index assigned by the last Open.
func (s *Surface) ZIndex() int {
	return s.zIndex
}

// Managed reports whether the surface participates in automatic stacking.
func (s *Surface) Managed() bool {
	return !s.hasZ
}

// LastCloseReason returns the reason passed to the closing Close call.
func (s *Surface) LastCloseReason() CloseReason {
	return s.reason
}
