// Package carousel owns the navigation state of a media viewer and wires the
// gesture, preload, playback and auto-advance engines around it.
package carousel

import (
	"github.com/alexisbeaulieu97/vitrine/internal/autoadvance"
	"github.com/alexisbeaulieu97/vitrine/internal/clock"
	"github.com/alexisbeaulieu97/vitrine/internal/gesture"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/metrics"
	"github.com/alexisbeaulieu97/vitrine/internal/playback"
	"github.com/alexisbeaulieu97/vitrine/internal/preload"
)

// State is the observable navigation state.
type State struct {
	CurrentIndex    int
	IsTransitioning bool
	LoadedIndices   []int
}

// Controller is the single navigation engine shared by the inline and the
// overlay surfaces. It is not safe for concurrent use: every method, and
// every callback it schedules, runs on the scheduler's loop.
type Controller struct {
	catalog media.Catalog
	cfg     Config
	cb      Callbacks
	surface string

	sched    clock.Scheduler
	loader   preload.Loader
	elements playback.Elements
	gestures gesture.Options
	log      *logger.Logger
	metrics  *metrics.Metrics

	recognizer *gesture.Recognizer
	preload    *preload.Scheduler
	playback   *playback.Coordinator
	timer      *autoadvance.Timer

	current        int
	previous       int
	direction      int
	transitioning  bool
	transitionTask clock.Task
	failed         map[int]struct{}
	mounted        bool
	closed         bool
}

// Option customizes a Controller.
type Option func(*Controller)

// WithScheduler sets the loop that runs timers and preload completions.
// Without it the controller owns a clock.Realtime the host must drain.
func WithScheduler(s clock.Scheduler) Option {
	return func(c *Controller) {
		if s != nil {
			c.sched = s
		}
	}
}

// WithLoader sets the preload fetcher. Without it neighbors count as loaded
// as soon as they are requested.
func WithLoader(l preload.Loader) Option {
	return func(c *Controller) {
		c.loader = l
	}
}

// WithElements binds video items to playable elements.
func WithElements(e playback.Elements) Option {
	return func(c *Controller) {
		c.elements = e
	}
}

// WithGestureOptions overrides the swipe thresholds.
func WithGestureOptions(opts gesture.Options) Option {
	return func(c *Controller) {
		c.gestures = opts
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(c *Controller) {
		c.log = log
	}
}

// WithMetrics attaches a metrics sink.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Controller) {
		c.metrics = m
	}
}

// WithSurface labels the controller in logs and metrics ("inline",
// "overlay").
func WithSurface(name string) Option {
	return func(c *Controller) {
		if name != "" {
			c.surface = name
		}
	}
}

// New creates a controller over catalog. The controller is inert until Mount.
func New(catalog media.Catalog, cfg Config, cb Callbacks, opts ...Option) *Controller {
	c := &Controller{
		catalog: catalog,
		cfg:     cfg.normalized(),
		cb:      cb,
		surface: "inline",
		failed:  make(map[int]struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.sched == nil {
		c.sched = clock.NewRealtime()
	}
	c.log = c.log.Component("carousel").With("surface", c.surface)

	c.recognizer = gesture.New(c.gestures)
	c.recognizer.SetEnabled(c.cfg.EnableSwipe)
	c.recognizer.SetItemCount(catalog.Len())

	c.preload = preload.NewScheduler(preload.Config{
		Catalog:   catalog,
		Loop:      c.cfg.Loop,
		Enabled:   c.cfg.PreloadNext,
		Loader:    c.loader,
		Scheduler: c.sched,
		Logger:    c.log,
		Metrics:   c.metrics,
	})

	c.playback = playback.NewCoordinator(catalog,
		playback.WithElements(c.elements),
		playback.WithNotify(c.notifyPlay, c.notifyPause),
		playback.WithLogger(c.log),
	)

	c.timer = autoadvance.New(c.sched, c.autoAdvance)

	if catalog.Contains(c.cfg.InitialIndex) {
		c.current = c.cfg.InitialIndex
	}
	c.previous = c.current
	return c
}

// Mount makes the controller live: the initial item is marked loaded, its
// neighbors are preloaded and auto-advance starts when configured. Mount is
// idempotent.
func (c *Controller) Mount() {
	if c.mounted || c.closed {
		return
	}
	c.mounted = true
	if c.catalog.IsEmpty() {
		c.log.Debug("mounted empty catalog")
		return
	}
	c.preload.OnIndexChange(c.current)
	if c.autoPlayEligible() {
		c.timer.Start(c.cfg.AutoPlayInterval)
	}
	c.autoPlayVideo()
	c.log.Debug("mounted", "index", c.current, "items", c.catalog.Len())
}

// Close cancels the auto-advance timer, the pending transition, in-flight
// preloads and active playback. The controller ignores every call after it.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.timer.Stop()
	if c.transitionTask != nil {
		c.transitionTask.Stop()
		c.transitionTask = nil
	}
	c.recognizer.Cancel()
	c.preload.Close()
	c.playback.StopAll()
	c.transitioning = false
	c.closed = true
	c.log.Debug("closed")
}

// Closed reports whether Close was called.
func (c *Controller) Closed() bool {
	return c.closed
}

// GoTo navigates to index. Out-of-range indices are ignored. It reports
// whether navigation happened; intents that arrive during a transition are
// dropped.
func (c *Controller) GoTo(index int) bool {
	if c.closed || c.catalog.IsEmpty() {
		return false
	}
	if c.transitioning {
		c.metrics.IncDroppedIntent()
		c.log.Debug("intent dropped during transition", "target", index)
		return false
	}
	if !c.catalog.Contains(index) || index == c.current {
		return false
	}

	prev := c.current
	c.transitioning = true
	c.playback.Stop(prev)
	c.previous = prev
	c.direction = c.directionTo(prev, index)
	c.current = index
	c.preload.OnIndexChange(index)
	c.metrics.IncNavigation(c.surface)
	c.log.Debug("navigated", "from", prev, "to", index)

	if c.cb.OnIndexChange != nil {
		item, _ := c.catalog.At(index)
		c.cb.OnIndexChange(index, item)
	}

	if c.cfg.TransitionDuration > 0 {
		c.transitionTask = c.sched.AfterFunc(c.cfg.TransitionDuration, c.endTransition)
	} else {
		c.transitioning = false
	}
	c.timer.Reset()
	c.autoPlayVideo()
	return true
}

// Advance moves one step in direction (negative for previous, positive for
// next). At the edges of a non-looping catalog it does nothing.
func (c *Controller) Advance(direction int) bool {
	switch {
	case direction > 0:
		direction = 1
	case direction < 0:
		direction = -1
	default:
		return false
	}
	if c.closed || c.catalog.IsEmpty() {
		return false
	}
	next, ok := c.catalog.Step(c.current, direction, c.cfg.Loop)
	if !ok {
		return false
	}
	return c.GoTo(next)
}

// First jumps to the first item.
func (c *Controller) First() bool {
	return c.GoTo(0)
}

// Last jumps to the last item.
func (c *Controller) Last() bool {
	return c.GoTo(c.catalog.Len() - 1)
}

// OnIntent dispatches a navigation intent.
func (c *Controller) OnIntent(intent Intent) bool {
	switch intent.Kind {
	case IntentNext:
		return c.Advance(1)
	case IntentPrevious:
		return c.Advance(-1)
	case IntentFirst:
		return c.First()
	case IntentLast:
		return c.Last()
	case IntentGoTo:
		return c.GoTo(intent.Index)
	case IntentTogglePlayback:
		return c.TogglePlayback(intent.Index)
	default:
		return false
	}
}

// HandleKey maps a key press to an intent. Space only toggles playback when
// the current item is a video.
func (c *Controller) HandleKey(k Key) bool {
	switch k {
	case KeyLeft:
		return c.OnIntent(Previous())
	case KeyRight:
		return c.OnIntent(Next())
	case KeyHome:
		return c.OnIntent(First())
	case KeyEnd:
		return c.OnIntent(Last())
	case KeySpace:
		if !c.catalog.IsVideo(c.current) {
			return false
		}
		return c.OnIntent(TogglePlayback(c.current))
	default:
		return false
	}
}

// TogglePlayback toggles the video at index. It reports whether the playing
// state of index changed.
func (c *Controller) TogglePlayback(index int) bool {
	if c.closed {
		return false
	}
	before := c.playback.IsPlaying(index)
	c.playback.Toggle(index)
	return c.playback.IsPlaying(index) != before
}

// PointerDown starts tracking a gesture. Auto-advance is suspended for the
// duration of the gesture.
func (c *Controller) PointerDown(x, y float64) bool {
	if c.closed || !c.recognizer.Down(x, y) {
		return false
	}
	c.timer.Suspend()
	return true
}

// PointerMove feeds a pointer move. It returns true once the gesture is
// classified horizontal, which tells the host to suppress native scrolling.
func (c *Controller) PointerMove(x, y float64) bool {
	if c.closed {
		return false
	}
	return c.recognizer.Move(x, y)
}

// PointerUp ends the gesture and navigates when it was a swipe. The
// auto-advance timer resumes from zero either way.
func (c *Controller) PointerUp(x, y float64) bool {
	if c.closed || !c.recognizer.Active() {
		return false
	}
	dir, ok := c.recognizer.Up(x, y)
	c.timer.Resume()
	if !ok {
		return false
	}
	return c.Advance(dir)
}

// PointerCancel abandons the gesture without navigating.
func (c *Controller) PointerCancel() {
	if !c.recognizer.Active() {
		return
	}
	c.recognizer.Cancel()
	c.timer.Resume()
}

// ReportDisplayFailure records that index could not be displayed. The host
// renders a placeholder for it; navigation is unaffected.
func (c *Controller) ReportDisplayFailure(index int) {
	if !c.catalog.Contains(index) {
		return
	}
	if _, seen := c.failed[index]; seen {
		return
	}
	c.failed[index] = struct{}{}
	c.metrics.IncDisplayFailure()
	c.log.Warn("media failed to display", "index", index, "source", c.sourceOf(index))
}

// ReportDisplayReady clears a previously recorded failure.
func (c *Controller) ReportDisplayReady(index int) {
	delete(c.failed, index)
}

// IsFailed reports whether index is shown as a placeholder.
func (c *Controller) IsFailed(index int) bool {
	_, ok := c.failed[index]
	return ok
}

// State returns a copy of the navigation state.
func (c *Controller) State() State {
	return State{
		CurrentIndex:    c.current,
		IsTransitioning: c.transitioning,
		LoadedIndices:   c.preload.Loaded(),
	}
}

// Current returns the current index.
func (c *Controller) Current() int {
	return c.current
}

// Catalog returns the catalog the controller navigates.
func (c *Controller) Catalog() media.Catalog {
	return c.catalog
}

// Config returns the effective configuration.
func (c *Controller) Config() Config {
	return c.cfg
}

// Surface returns the surface label.
func (c *Controller) Surface() string {
	return c.surface
}

// Scheduler returns the loop the controller runs on.
func (c *Controller) Scheduler() clock.Scheduler {
	return c.sched
}

// IsPlaying reports whether the video at index is playing.
func (c *Controller) IsPlaying(index int) bool {
	return c.playback.IsPlaying(index)
}

// AutoAdvancing reports whether an auto-advance tick is pending.
func (c *Controller) AutoAdvancing() bool {
	return c.timer.Running()
}

// Swiping reports whether a horizontal gesture is in progress.
func (c *Controller) Swiping() bool {
	return c.recognizer.Active() && c.recognizer.Horizontal()
}

func (c *Controller) endTransition() {
	c.transitionTask = nil
	c.transitioning = false
}

func (c *Controller) autoAdvance() {
	if c.closed {
		return
	}
	c.metrics.IncAutoAdvance()
	c.Advance(1)
}

func (c *Controller) autoPlayEligible() bool {
	return c.cfg.AutoPlay && c.catalog.Len() > 1
}

// autoPlayVideo starts the current video when video autoplay is enabled.
func (c *Controller) autoPlayVideo() {
	if !c.cfg.VideoControls.AutoPlay || !c.catalog.IsVideo(c.current) {
		return
	}
	if !c.playback.IsPlaying(c.current) {
		c.playback.Toggle(c.current)
	}
}

func (c *Controller) notifyPlay(index int, item media.Descriptor) {
	c.metrics.IncPlayback("play")
	if c.cb.OnVideoPlay != nil {
		c.cb.OnVideoPlay(index, item)
	}
}

func (c *Controller) notifyPause(index int, item media.Descriptor) {
	c.metrics.IncPlayback("pause")
	if c.cb.OnVideoPause != nil {
		c.cb.OnVideoPause(index, item)
	}
}

// directionTo returns +1 when moving from prev to next reads as forward
// travel, -1 otherwise. Wrapping past either end keeps the direction of the
// step that caused it.
func (c *Controller) directionTo(prev, next int) int {
	n := c.catalog.Len()
	if c.cfg.Loop && n > 2 {
		if prev == n-1 && next == 0 {
			return 1
		}
		if prev == 0 && next == n-1 {
			return -1
		}
	}
	if next > prev {
		return 1
	}
	return -1
}

func (c *Controller) sourceOf(index int) string {
	item, ok := c.catalog.At(index)
	if !ok {
		return ""
	}
	return media.SourceOf(item)
}
