// Package preload warms the items adjacent to the one on display.
package preload

import (
	"context"
	"sort"

	"github.com/alexisbeaulieu97/vitrine/internal/clock"
	"github.com/alexisbeaulieu97/vitrine/internal/logger"
	"github.com/alexisbeaulieu97/vitrine/internal/media"
	"github.com/alexisbeaulieu97/vitrine/internal/metrics"
)

// Loader fetches or warms one item. It runs off the viewer loop and must
// honor ctx cancellation.
type Loader interface {
	Load(ctx context.Context, index int, item media.Descriptor) error
}

// LoaderFunc adapts a function to Loader.
type LoaderFunc func(ctx context.Context, index int, item media.Descriptor) error

// Load calls f.
func (f LoaderFunc) Load(ctx context.Context, index int, item media.Descriptor) error {
	return f(ctx, index, item)
}

// Scheduler tracks which indices are loaded and issues loads for the
// neighbors of the current index. Preloading is advisory: failures are
// swallowed and the index is retried the next time it becomes a neighbor.
// All methods must be called on the scheduler's loop.
type Scheduler struct {
	catalog media.Catalog
	loop    bool
	enabled bool
	loader  Loader
	sched   clock.Scheduler
	log     *logger.Logger
	metrics *metrics.Metrics

	ctx      context.Context
	cancel   context.CancelFunc
	loaded   map[int]struct{}
	inflight map[int]context.CancelFunc
	closed   bool
}

// Config wires a Scheduler.
type Config struct {
	Catalog   media.Catalog
	Loop      bool
	Enabled   bool
	Loader    Loader
	Scheduler clock.Scheduler
	Logger    *logger.Logger
	Metrics   *metrics.Metrics
}

// NewScheduler creates a scheduler. A nil Loader treats every item as
// instantly loaded.
func NewScheduler(cfg Config) *Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		catalog:  cfg.Catalog,
		loop:     cfg.Loop,
		enabled:  cfg.Enabled,
		loader:   cfg.Loader,
		sched:    cfg.Scheduler,
		log:      cfg.Logger,
		metrics:  cfg.Metrics,
		ctx:      ctx,
		cancel:   cancel,
		loaded:   make(map[int]struct{}),
		inflight: make(map[int]context.CancelFunc),
	}
}

// OnIndexChange marks index as loaded (it is on display) and, when enabled,
// issues loads for its neighbors.
func (s *Scheduler) OnIndexChange(index int) {
	if s.closed || !s.catalog.Contains(index) {
		return
	}
	s.MarkLoaded(index)
	if !s.enabled {
		return
	}
	for _, neighbor := range s.catalog.Neighbors(index, s.loop) {
		s.request(neighbor)
	}
}

// MarkLoaded records index as loaded.
func (s *Scheduler) MarkLoaded(index int) {
	if !s.catalog.Contains(index) {
		return
	}
	s.loaded[index] = struct{}{}
}

// IsLoaded reports whether index is loaded.
func (s *Scheduler) IsLoaded(index int) bool {
	_, ok := s.loaded[index]
	return ok
}

// InFlight reports whether a load for index is pending.
func (s *Scheduler) InFlight(index int) bool {
	_, ok := s.inflight[index]
	return ok
}

// Loaded returns the loaded indices in ascending order.
func (s *Scheduler) Loaded() []int {
	out := make([]int, 0, len(s.loaded))
	for index := range s.loaded {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// Close cancels in-flight loads. Results that arrive afterwards are
// discarded.
func (s *Scheduler) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.cancel()
	s.inflight = make(map[int]context.CancelFunc)
}

func (s *Scheduler) request(index int) {
	if s.IsLoaded(index) || s.InFlight(index) {
		return
	}
	item, ok := s.catalog.At(index)
	if !ok {
		return
	}
	r := requester{s: s}
	media.Visit(index, item, &r)
}

// requester decides per variant whether an item needs a fetch.
type requester struct {
	s *Scheduler
}

func (r *requester) VisitImage(index int, item media.Image) { r.s.start(index, item) }
func (r *requester) VisitVideo(index int, item media.Video) { r.s.start(index, item) }
func (r *requester) VisitMap(index int, item media.Map)     { r.s.start(index, item) }

// Embedded content is already in memory.
func (r *requester) VisitEmbedded(index int, _ media.Embedded) { r.s.MarkLoaded(index) }

func (s *Scheduler) start(index int, item media.Descriptor) {
	if s.loader == nil || s.sched == nil {
		s.MarkLoaded(index)
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.inflight[index] = cancel
	s.log.Debug("preload started", "index", index, "kind", item.Kind().String())

	loader := s.loader
	sched := s.sched
	go func() {
		err := loader.Load(ctx, index, item)
		sched.Post(func() {
			s.complete(ctx, index, err)
		})
	}()
}

func (s *Scheduler) complete(ctx context.Context, index int, err error) {
	if s.closed || ctx.Err() != nil {
		s.metrics.IncPreload("discarded")
		return
	}
	if cancel, ok := s.inflight[index]; ok {
		cancel()
		delete(s.inflight, index)
	}
	if err != nil {
		s.metrics.IncPreload("failed")
		s.log.Debug("preload failed", "index", index, "error", err.Error())
		return
	}
	s.metrics.IncPreload("ok")
	s.MarkLoaded(index)
}
