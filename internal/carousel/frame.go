package carousel

import "github.com/alexisbeaulieu97/vitrine/internal/media"

// Frame is a read-only snapshot of everything a surface needs to draw the
// current item and its controls.
type Frame struct {
	Surface string
	Index   int
	Total   int
	Item    media.Descriptor

	// Previous and Direction describe the last navigation so a renderer can
	// pick a slide direction.
	Previous  int
	Direction int

	Transitioning bool
	Transition    Transition
	Loaded        bool
	Failed        bool
	Playing       bool
	AutoAdvancing bool
	Swiping       bool

	ShowDots      bool
	ShowArrows    bool
	CanPrevious   bool
	CanNext       bool
	VideoControls VideoControls
}

// Empty reports whether the frame has no item to show.
func (f Frame) Empty() bool {
	return f.Total == 0 || f.Item == nil
}

// Renderer draws a frame. Inline and overlay surfaces supply different
// renderers over the same controller.
type Renderer func(Frame) string

// Snapshot captures the current frame.
func (c *Controller) Snapshot() Frame {
	n := c.catalog.Len()
	f := Frame{
		Surface:       c.surface,
		Index:         c.current,
		Total:         n,
		Previous:      c.previous,
		Direction:     c.direction,
		Transitioning: c.transitioning,
		Transition:    c.cfg.Transition,
		AutoAdvancing: c.timer.Running(),
		Swiping:       c.Swiping(),
		ShowDots:      c.cfg.ShowDots && n > 1,
		ShowArrows:    c.cfg.ShowArrows && n > 1,
		VideoControls: c.cfg.VideoControls,
	}
	if n == 0 {
		return f
	}
	f.Item, _ = c.catalog.At(c.current)
	f.Loaded = c.preload.IsLoaded(c.current)
	f.Failed = c.IsFailed(c.current)
	f.Playing = c.playback.IsPlaying(c.current)
	_, f.CanPrevious = c.catalog.Step(c.current, -1, c.cfg.Loop)
	_, f.CanNext = c.catalog.Step(c.current, 1, c.cfg.Loop)
	return f
}

// Render draws the current frame with r.
func (c *Controller) Render(r Renderer) string {
	if r == nil {
		return ""
	}
	return r(c.Snapshot())
}
