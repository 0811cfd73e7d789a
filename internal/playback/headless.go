package playback

import "time"

// Headless provides in-memory elements that are always ready. Terminal hosts
// use it to track play position without an actual decoder.
type Headless struct {
	elements map[int]*HeadlessElement
}

// NewHeadless returns an empty element set.
func NewHeadless() *Headless {
	return &Headless{elements: make(map[int]*HeadlessElement)}
}

// Element returns the element for index, creating it on first use.
func (h *Headless) Element(index int) (Element, bool) {
	return h.Get(index), true
}

// Get returns the concrete element for index.
func (h *Headless) Get(index int) *HeadlessElement {
	el, ok := h.elements[index]
	if !ok {
		el = &HeadlessElement{}
		h.elements[index] = el
	}
	return el
}

// HeadlessElement accumulates elapsed play time between Play and Pause.
type HeadlessElement struct {
	playing bool
	started time.Time
	elapsed time.Duration
}

// Ready always reports true.
func (e *HeadlessElement) Ready() bool { return true }

// Play marks the element playing.
func (e *HeadlessElement) Play() error {
	if e.playing {
		return nil
	}
	e.playing = true
	e.started = time.Now()
	return nil
}

// Pause marks the element paused and banks the elapsed time.
func (e *HeadlessElement) Pause() error {
	if !e.playing {
		return nil
	}
	e.playing = false
	e.elapsed += time.Since(e.started)
	return nil
}

// Playing reports whether the element is playing.
func (e *HeadlessElement) Playing() bool { return e.playing }

// Elapsed returns the accumulated play time.
func (e *HeadlessElement) Elapsed() time.Duration {
	if e.playing {
		return e.elapsed + time.Since(e.started)
	}
	return e.elapsed
}

