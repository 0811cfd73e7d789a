package playback

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/media"
)

type event struct {
	kind  string
	index int
}

type recorder struct {
	events []event
}

func (r *recorder) play(index int, _ media.Descriptor) {
	r.events = append(r.events, event{"play", index})
}

func (r *recorder) pause(index int, _ media.Descriptor) {
	r.events = append(r.events, event{"pause", index})
}

func mixedCatalog() media.Catalog {
	return media.NewCatalog(
		media.Video{Source: "a.mp4"},
		media.Image{Source: "b.png"},
		media.Video{Source: "c.mp4"},
		media.Video{Source: "d.mp4"},
	)
}

func TestToggleStartsAndStops(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewCoordinator(mixedCatalog(), WithNotify(rec.play, rec.pause))

	c.Toggle(0)
	assert.True(t, c.IsPlaying(0))
	c.Toggle(0)
	assert.False(t, c.IsPlaying(0))

	assert.Equal(t, []event{{"play", 0}, {"pause", 0}}, rec.events)
}

func TestToggleStopsOtherVideosFirst(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewCoordinator(mixedCatalog(), WithNotify(rec.play, rec.pause))

	c.Toggle(0)
	c.Toggle(2)

	assert.False(t, c.IsPlaying(0))
	assert.True(t, c.IsPlaying(2))
	assert.Equal(t, []event{{"play", 0}, {"pause", 0}, {"play", 2}}, rec.events)

	idx, ok := c.Playing()
	require.True(t, ok)
	assert.Equal(t, 2, idx)
}

func TestToggleOnNonVideoIsNoOp(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewCoordinator(mixedCatalog(), WithNotify(rec.play, rec.pause))

	c.Toggle(1)
	c.Toggle(99)
	c.Toggle(-1)

	assert.Empty(t, rec.events)
	assert.Equal(t, 0, c.PlayingCount())
}

type stubElements struct {
	elements map[int]Element
}

func (s stubElements) Element(index int) (Element, bool) {
	el, ok := s.elements[index]
	return el, ok
}

type stubElement struct {
	ready   bool
	playErr error
}

func (s *stubElement) Ready() bool  { return s.ready }
func (s *stubElement) Play() error  { return s.playErr }
func (s *stubElement) Pause() error { return nil }

func TestMissingOrUnreadyElementIsSilent(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	elements := stubElements{elements: map[int]Element{
		2: &stubElement{ready: false},
		3: &stubElement{ready: true, playErr: errors.New("decoder busy")},
	}}
	c := NewCoordinator(mixedCatalog(), WithElements(elements), WithNotify(rec.play, rec.pause))

	assert.NotPanics(t, func() {
		c.Toggle(0) // no element bound
		c.Toggle(2) // not ready
		c.Toggle(3) // play rejected
	})
	assert.Empty(t, rec.events)
	assert.Equal(t, 0, c.PlayingCount())
}

func TestStopOnlyNotifiesPlayingIndex(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewCoordinator(mixedCatalog(), WithNotify(rec.play, rec.pause))

	c.Stop(0)
	assert.Empty(t, rec.events)

	c.Toggle(3)
	c.Stop(3)
	c.Stop(3)
	assert.Equal(t, []event{{"play", 3}, {"pause", 3}}, rec.events)
}

func TestStopAllAndReset(t *testing.T) {
	t.Parallel()

	rec := &recorder{}
	c := NewCoordinator(mixedCatalog(), WithNotify(rec.play, rec.pause))

	c.Toggle(2)
	c.StopAll()
	assert.Equal(t, 0, c.PlayingCount())
	assert.Equal(t, []event{{"play", 2}, {"pause", 2}}, rec.events)

	c.Toggle(0)
	c.Reset()
	assert.Equal(t, 0, c.PlayingCount())
	_, ok := c.Playing()
	assert.False(t, ok)
}

func TestAtMostOnePlayingForRandomToggles(t *testing.T) {
	t.Parallel()

	c := NewCoordinator(mixedCatalog())
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		c.Toggle(rng.Intn(5) - 1)
		require.LessOrEqual(t, c.PlayingCount(), 1, "after toggle %d", i)
	}
}

func TestHeadlessElementTracksElapsed(t *testing.T) {
	t.Parallel()

	h := NewHeadless()
	el := h.Get(0)
	assert.True(t, el.Ready())
	require.NoError(t, el.Play())
	assert.True(t, el.Playing())
	require.NoError(t, el.Pause())
	assert.False(t, el.Playing())
	assert.GreaterOrEqual(t, el.Elapsed().Nanoseconds(), int64(0))
}
