package viewer

// Mode selects the surface the program starts on.
type Mode int

const (
	// ModePreview starts on the inline card; overlays open on demand.
	ModePreview Mode = iota
	// ModeOverlay starts with an overlay open and quits when the last one
	// closes.
	ModeOverlay
)

// Scheduler Messages

// scheduledMsg carries a callback drained from the realtime scheduler. It
// must run inside Update so controller state stays on the program loop.
type scheduledMsg struct {
	run func()
}

// schedulerClosedMsg indicates the scheduler stopped delivering callbacks.
type schedulerClosedMsg struct{}

// Display Messages

// DisplayCheckedMsg reports whether the item at Index can be displayed.
type DisplayCheckedMsg struct {
	Index int
	Err   error
}

// Overlay Messages

// OpenOverlayMsg requests a new overlay on top of the stack.
type OpenOverlayMsg struct{}

// CloseOverlayMsg requests that the topmost overlay close.
type CloseOverlayMsg struct {
	Reason string
}
