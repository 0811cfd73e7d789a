package carousel

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/vitrine/internal/clock"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/metrics"
	"github.com/alexisbeaulieu97/vitrine/internal/playback"
)

type recorder struct {
	changes []int
	plays   []int
	pauses  []int
}

func (r *recorder) callbacks() Callbacks {
	return Callbacks{
		OnIndexChange: func(index int, _ media.Descriptor) { r.changes = append(r.changes, index) },
		OnVideoPlay:   func(index int, _ media.Descriptor) { r.plays = append(r.plays, index) },
		OnVideoPause:  func(index int, _ media.Descriptor) { r.pauses = append(r.pauses, index) },
	}
}

func images(n int) media.Catalog {
	items := make([]media.Descriptor, n)
	for i := range items {
		items[i] = media.Image{Source: "img.png", AltText: "image"}
	}
	return media.NewCatalog(items...)
}

func counterValue(t *testing.T, met *metrics.Metrics, name string) float64 {
	t.Helper()
	families, err := met.Registry().Gather()
	require.NoError(t, err)
	for _, family := range families {
		if family.GetName() != name {
			continue
		}
		total := 0.0
		for _, m := range family.GetMetric() {
			total += m.GetCounter().GetValue()
		}
		return total
	}
	return 0
}

func instant() Config {
	cfg := DefaultConfig()
	cfg.TransitionDuration = 0
	return cfg
}

func newController(t *testing.T, catalog media.Catalog, cfg Config, opts ...Option) (*Controller, *clock.Manual, *recorder) {
	t.Helper()
	clk := clock.NewManual(time.Time{})
	rec := &recorder{}
	opts = append([]Option{WithScheduler(clk)}, opts...)
	c := New(catalog, cfg, rec.callbacks(), opts...)
	c.Mount()
	t.Cleanup(c.Close)
	return c, clk, rec
}

func TestLoopingAdvanceReturnsToStart(t *testing.T) {
	t.Parallel()

	for n := 2; n <= 6; n++ {
		c, clk, _ := newController(t, images(n), DefaultConfig())
		for i := 0; i < n; i++ {
			require.True(t, c.Advance(1), "n=%d step=%d", n, i)
			clk.Advance(DefaultTransitionDuration)
		}
		assert.Equal(t, 0, c.Current(), "n=%d", n)
	}
}

func TestNonLoopingEdgesAreNoOps(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.Loop = false
	c, _, rec := newController(t, images(3), cfg)

	assert.False(t, c.Advance(-1))
	assert.Equal(t, 0, c.Current())

	require.True(t, c.Last())
	rec.changes = nil

	assert.False(t, c.Advance(1))
	assert.Equal(t, 2, c.Current())
	assert.Empty(t, rec.changes, "no notification at the edge")
	assert.False(t, c.State().IsTransitioning)
}

func TestLoadedIndicesContainCurrent(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t, images(5), instant())
	assert.Contains(t, c.State().LoadedIndices, 0)

	for _, target := range []int{3, 1, 4, 2} {
		require.True(t, c.GoTo(target))
		assert.Contains(t, c.State().LoadedIndices, target)
	}
}

func TestGoToIgnoresInvalidTargets(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, images(3), instant())
	assert.False(t, c.GoTo(-1))
	assert.False(t, c.GoTo(3))
	assert.False(t, c.GoTo(0), "current index is not a navigation")
	assert.Empty(t, rec.changes)
}

func TestOnIndexChangeFiresOncePerNavigation(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, images(3), instant())
	c.OnIntent(Next())
	c.OnIntent(Next())
	c.OnIntent(Previous())
	c.OnIntent(First())
	c.OnIntent(Last())
	c.OnIntent(GoTo(2))

	assert.Equal(t, []int{1, 2, 1, 0, 2}, rec.changes)
}

func TestIntentsDuringTransitionAreDropped(t *testing.T) {
	t.Parallel()

	met := metrics.New()
	c, clk, rec := newController(t, images(4), DefaultConfig(), WithMetrics(met))

	require.True(t, c.Advance(1))
	assert.True(t, c.State().IsTransitioning)
	assert.False(t, c.Advance(1))
	assert.False(t, c.GoTo(3))
	assert.Equal(t, 1, c.Current())
	assert.Equal(t, float64(2), counterValue(t, met, "vitrine_dropped_intents_total"))

	clk.Advance(DefaultTransitionDuration)
	assert.False(t, c.State().IsTransitioning)
	require.True(t, c.Advance(1))
	assert.Equal(t, []int{1, 2}, rec.changes)
}

func TestAutoPlayAdvancesTwiceIn2500(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.AutoPlay = true
	cfg.AutoPlayInterval = 1000 * time.Millisecond
	c, clk, rec := newController(t, images(3), cfg)

	clk.Advance(2500 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, rec.changes)
	assert.Equal(t, 2, c.Current())
}

func TestManualNavigationResetsAutoPlay(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.AutoPlay = true
	cfg.AutoPlayInterval = time.Second
	c, clk, rec := newController(t, images(3), cfg)

	clk.Advance(900 * time.Millisecond)
	require.True(t, c.GoTo(2))
	clk.Advance(900 * time.Millisecond)
	assert.Equal(t, []int{2}, rec.changes, "the tick was pushed back by the manual navigation")

	clk.Advance(100 * time.Millisecond)
	assert.Equal(t, []int{2, 0}, rec.changes)
}

func TestAutoPlayNeedsTwoItems(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.AutoPlay = true
	c, clk, rec := newController(t, images(1), cfg)

	assert.False(t, c.AutoAdvancing())
	clk.Advance(time.Minute)
	assert.Empty(t, rec.changes)
}

func TestAutoPlayStopsAtNonLoopingEnd(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.AutoPlay = true
	cfg.Loop = false
	cfg.AutoPlayInterval = time.Second
	c, clk, rec := newController(t, images(3), cfg)

	clk.Advance(10 * time.Second)
	assert.Equal(t, []int{1, 2}, rec.changes)
	assert.Equal(t, 2, c.Current())
}

func TestSwipeLeftAdvances(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, images(3), instant())
	require.True(t, c.PointerDown(100, 100))
	assert.True(t, c.PointerUp(30, 100))
	assert.Equal(t, []int{1}, rec.changes)
}

func TestShortSwipeDoesNothing(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, images(3), instant())
	require.True(t, c.PointerDown(100, 100))
	assert.False(t, c.PointerUp(80, 100))
	assert.Empty(t, rec.changes)
}

func TestSwipeRightGoesBack(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t, images(3), instant())
	require.True(t, c.PointerDown(100, 100))
	assert.True(t, c.PointerMove(120, 102), "horizontal drag suppresses scrolling")
	assert.True(t, c.PointerUp(190, 105))
	assert.Equal(t, 2, c.Current())
}

func TestSwipeDisabledOrSingleItem(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.EnableSwipe = false
	c, _, _ := newController(t, images(3), cfg)
	assert.False(t, c.PointerDown(100, 100))
	assert.False(t, c.PointerUp(0, 100))

	single, _, _ := newController(t, images(1), instant())
	assert.False(t, single.PointerDown(100, 100))
}

func TestGestureSuspendsAutoPlay(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.AutoPlay = true
	cfg.AutoPlayInterval = time.Second
	c, clk, rec := newController(t, images(3), cfg)

	require.True(t, c.PointerDown(100, 100))
	clk.Advance(5 * time.Second)
	assert.Empty(t, rec.changes, "no auto-advance while the pointer is down")

	c.PointerCancel()
	assert.True(t, c.AutoAdvancing())
	clk.Advance(time.Second)
	assert.Equal(t, []int{1}, rec.changes)
}

func TestKeyboardMapping(t *testing.T) {
	t.Parallel()

	c, _, _ := newController(t, images(4), instant())
	assert.True(t, c.HandleKey(KeyRight))
	assert.Equal(t, 1, c.Current())
	assert.True(t, c.HandleKey(KeyEnd))
	assert.Equal(t, 3, c.Current())
	assert.True(t, c.HandleKey(KeyLeft))
	assert.Equal(t, 2, c.Current())
	assert.True(t, c.HandleKey(KeyHome))
	assert.Equal(t, 0, c.Current())
	assert.False(t, c.HandleKey(KeySpace), "space on an image does nothing")
}

func mixed() media.Catalog {
	return media.NewCatalog(
		media.Video{Source: "a.mp4"},
		media.Image{Source: "b.png"},
		media.Video{Source: "c.mp4"},
	)
}

func TestSpaceTogglesCurrentVideo(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, mixed(), instant())
	assert.True(t, c.HandleKey(KeySpace))
	assert.True(t, c.IsPlaying(0))
	assert.True(t, c.HandleKey(KeySpace))
	assert.False(t, c.IsPlaying(0))
	assert.Equal(t, []int{0}, rec.plays)
	assert.Equal(t, []int{0}, rec.pauses)
}

func TestNavigationStopsPlayingVideo(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, mixed(), instant())
	require.True(t, c.TogglePlayback(0))
	require.True(t, c.Advance(1))

	assert.False(t, c.IsPlaying(0))
	assert.Equal(t, []int{0}, rec.pauses)
}

func TestVideoAutoPlayStartsOnArrival(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.VideoControls.AutoPlay = true
	c, _, rec := newController(t, mixed(), cfg)

	assert.True(t, c.IsPlaying(0), "initial video starts on mount")
	require.True(t, c.Advance(1))
	assert.False(t, c.IsPlaying(0))
	require.True(t, c.Advance(1))
	assert.True(t, c.IsPlaying(2))
	assert.Equal(t, []int{0, 2}, rec.plays)
	assert.Equal(t, []int{0}, rec.pauses)
}

type refusingElements struct{}

type refusingElement struct{}

func (refusingElements) Element(int) (playback.Element, bool) { return refusingElement{}, true }

func (refusingElement) Ready() bool  { return true }
func (refusingElement) Play() error  { return errors.New("autoplay blocked") }
func (refusingElement) Pause() error { return nil }

func TestRejectedPlayIsSilent(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, mixed(), instant(), WithElements(refusingElements{}))
	assert.False(t, c.TogglePlayback(0))
	assert.Empty(t, rec.plays)
}

func TestDisplayFailureKeepsItem(t *testing.T) {
	t.Parallel()

	met := metrics.New()
	c, _, _ := newController(t, images(3), instant(), WithMetrics(met))
	c.ReportDisplayFailure(1)
	c.ReportDisplayFailure(1)
	c.ReportDisplayFailure(9)

	require.True(t, c.GoTo(1))
	frame := c.Snapshot()
	assert.True(t, frame.Failed)
	assert.Equal(t, 3, frame.Total)
	assert.Equal(t, float64(1), counterValue(t, met, "vitrine_display_failures_total"))

	c.ReportDisplayReady(1)
	assert.False(t, c.IsFailed(1))
}

func TestInitialIndex(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.InitialIndex = 2
	c, _, rec := newController(t, images(4), cfg)
	assert.Equal(t, 2, c.Current())
	assert.Empty(t, rec.changes, "mounting is not a navigation")

	cfg.InitialIndex = 10
	c, _, _ = newController(t, images(4), cfg)
	assert.Equal(t, 0, c.Current())
}

func TestEmptyCatalogIsInert(t *testing.T) {
	t.Parallel()

	c, _, rec := newController(t, media.Catalog{}, instant())
	assert.False(t, c.Advance(1))
	assert.False(t, c.First())
	assert.False(t, c.Last())
	assert.True(t, c.Snapshot().Empty())
	assert.Empty(t, rec.changes)
}

func TestCloseCancelsEverything(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.AutoPlay = true
	cfg.AutoPlayInterval = time.Second
	c, clk, rec := newController(t, mixed(), cfg)

	require.True(t, c.TogglePlayback(0))
	c.Close()
	assert.Equal(t, []int{0}, rec.pauses)
	assert.Equal(t, 0, clk.Pending())

	clk.Advance(time.Minute)
	assert.Empty(t, rec.changes)
	assert.False(t, c.Advance(1))
	assert.True(t, c.Closed())
}

func TestSnapshotReflectsControls(t *testing.T) {
	t.Parallel()

	cfg := instant()
	cfg.Loop = false
	c, _, _ := newController(t, images(3), cfg, WithSurface("overlay"))

	frame := c.Snapshot()
	assert.Equal(t, "overlay", frame.Surface)
	assert.False(t, frame.CanPrevious)
	assert.True(t, frame.CanNext)
	assert.True(t, frame.ShowDots)
	assert.True(t, frame.Loaded)

	require.True(t, c.Last())
	frame = c.Snapshot()
	assert.True(t, frame.CanPrevious)
	assert.False(t, frame.CanNext)
	assert.Equal(t, 1, frame.Direction)

	out := c.Render(func(f Frame) string { return f.Surface })
	assert.Equal(t, "overlay", out)
}
