// Package playback keeps at most one video of a catalog playing.
package playback

import (
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
)

// Element is the playable surface bound to one video item.
type Element interface {
	Ready() bool
	Play() error
	Pause() error
}

// Elements resolves the element for a catalog index. A missing element makes
// toggling that index a silent no-op.
type Elements interface {
	Element(index int) (Element, bool)
}

// Notify receives play and pause notifications.
type Notify func(index int, item media.Descriptor)

// State is the playback state of one index.
type State struct {
	IsPlaying bool
}

// Coordinator enforces exclusive playback across one catalog. It is not safe
// for concurrent use; callers run it on the viewer loop.
type Coordinator struct {
	catalog  media.Catalog
	elements Elements
	states   map[int]*State
	onPlay   Notify
	onPause  Notify
	log      *logger.Logger
}

// Option customizes a Coordinator.
type Option func(*Coordinator)

// WithElements binds items to playable elements. Without it every video is
// backed by an always-ready headless element.
func WithElements(elements Elements) Option {
	return func(c *Coordinator) {
		if elements != nil {
			c.elements = elements
		}
	}
}

// WithNotify registers play and pause callbacks.
func WithNotify(onPlay, onPause Notify) Option {
	return func(c *Coordinator) {
		c.onPlay = onPlay
		c.onPause = onPause
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Coordinator) {
		c.log = log
	}
}

// NewCoordinator creates a coordinator for catalog.
func NewCoordinator(catalog media.Catalog, opts ...Option) *Coordinator {
	c := &Coordinator{
		catalog:  catalog,
		elements: NewHeadless(),
		states:   make(map[int]*State),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Toggle starts the video at index, or stops it if it is already playing.
// Starting stops every other playing index first.
func (c *Coordinator) Toggle(index int) {
	item, ok := c.catalog.At(index)
	if !ok || item.Kind() != media.KindVideo {
		return
	}
	el, ok := c.elements.Element(index)
	if !ok || el == nil || !el.Ready() {
		c.log.Debug("toggle ignored, element not ready", "index", index)
		return
	}

	if c.IsPlaying(index) {
		c.stop(index, el)
		return
	}

	for other := range c.states {
		if other != index {
			c.Stop(other)
		}
	}

	if err := el.Play(); err != nil {
		c.log.Debug("play rejected by element", "index", index, "error", err.Error())
		return
	}
	c.state(index).IsPlaying = true
	if c.onPlay != nil {
		c.onPlay(index, item)
	}
}

// Stop pauses index if it is playing.
func (c *Coordinator) Stop(index int) {
	if !c.IsPlaying(index) {
		return
	}
	el, _ := c.elements.Element(index)
	c.stop(index, el)
}

// StopAll pauses every playing index.
func (c *Coordinator) StopAll() {
	for index := range c.states {
		c.Stop(index)
	}
}

// Reset stops everything and forgets all states.
func (c *Coordinator) Reset() {
	c.StopAll()
	c.states = make(map[int]*State)
}

// IsPlaying reports whether index is playing.
func (c *Coordinator) IsPlaying(index int) bool {
	st, ok := c.states[index]
	return ok && st.IsPlaying
}

// Playing returns the playing index, if any.
func (c *Coordinator) Playing() (int, bool) {
	for index, st := range c.states {
		if st.IsPlaying {
			return index, true
		}
	}
	return -1, false
}

// PlayingCount returns how many indices are playing; it never exceeds one.
func (c *Coordinator) PlayingCount() int {
	n := 0
	for _, st := range c.states {
		if st.IsPlaying {
			n++
		}
	}
	return n
}

func (c *Coordinator) stop(index int, el Element) {
	if el != nil {
		if err := el.Pause(); err != nil {
			c.log.Debug("pause rejected by element", "index", index, "error", err.Error())
		}
	}
	c.state(index).IsPlaying = false
	if c.onPause != nil {
		item, _ := c.catalog.At(index)
		c.onPause(index, item)
	}
}

func (c *Coordinator) state(index int) *State {
	st, ok := c.states[index]
	if !ok {
		st = &State{}
		c.states[index] = st
	}
	return st
}
