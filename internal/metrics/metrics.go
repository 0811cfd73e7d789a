// Package metrics exposes viewer activity as Prometheus series.
package metrics

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for viewer surfaces. A nil
// *Metrics is valid; every recording method becomes a no-op.
type Metrics struct {
	registry        *prometheus.Registry
	navigations     *prometheus.CounterVec
	droppedIntents  prometheus.Counter
	preloads        *prometheus.CounterVec
	playbackEvents  *prometheus.CounterVec
	autoAdvances    prometheus.Counter
	openOverlays    prometheus.Gauge
	displayFailures prometheus.Counter
}

// New creates and registers viewer metrics on a private registry.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	navigations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vitrine_navigations_total",
		Help: "Index changes applied by carousel controllers",
	}, []string{"surface"})
	droppedIntents := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vitrine_dropped_intents_total",
		Help: "Navigation intents dropped because a transition was in flight",
	})
	preloads := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vitrine_preloads_total",
		Help: "Neighbor preloads by result (ok, failed, discarded)",
	}, []string{"result"})
	playbackEvents := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "vitrine_playback_events_total",
		Help: "Video play and pause notifications",
	}, []string{"event"})
	autoAdvances := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vitrine_auto_advances_total",
		Help: "Automatic advance ticks fired",
	})
	openOverlays := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "vitrine_open_overlays",
		Help: "Full-screen overlays currently holding a stacking slot",
	})
	displayFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "vitrine_display_failures_total",
		Help: "Items replaced by the placeholder because they failed to load",
	})

	registry.MustRegister(
		navigations,
		droppedIntents,
		preloads,
		playbackEvents,
		autoAdvances,
		openOverlays,
		displayFailures,
	)

	return &Metrics{
		registry:        registry,
		navigations:     navigations,
		droppedIntents:  droppedIntents,
		preloads:        preloads,
		playbackEvents:  playbackEvents,
		autoAdvances:    autoAdvances,
		openOverlays:    openOverlays,
		displayFailures: displayFailures,
	}
}

// IncNavigation counts an applied index change on the given surface.
func (m *Metrics) IncNavigation(surface string) {
	if m == nil {
		return
	}
	m.navigations.WithLabelValues(surface).Inc()
}

// IncDroppedIntent counts an intent suppressed by an in-flight transition.
func (m *Metrics) IncDroppedIntent() {
	if m == nil {
		return
	}
	m.droppedIntents.Inc()
}

// IncPreload counts a finished preload by result.
func (m *Metrics) IncPreload(result string) {
	if m == nil {
		return
	}
	m.preloads.WithLabelValues(result).Inc()
}

// IncPlayback counts a play or pause notification.
func (m *Metrics) IncPlayback(event string) {
	if m == nil {
		return
	}
	m.playbackEvents.WithLabelValues(event).Inc()
}

// IncAutoAdvance counts an automatic advance tick.
func (m *Metrics) IncAutoAdvance() {
	if m == nil {
		return
	}
	m.autoAdvances.Inc()
}

// IncDisplayFailure counts a placeholder substitution.
func (m *Metrics) IncDisplayFailure() {
	if m == nil {
		return
	}
	m.displayFailures.Inc()
}

// SetOpenOverlays sets the open overlay gauge.
func (m *Metrics) SetOpenOverlays(n int) {
	if m == nil {
		return
	}
	m.openOverlays.Set(float64(n))
}

// Registry exposes the underlying registry for tests and custom handlers.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}

// Router mounts /metrics and /healthz.
func (m *Metrics) Router(updateGauges func()) http.Handler {
	r := chi.NewRouter()
	r.Get("/metrics", m.Handler(updateGauges).ServeHTTP)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return r
}
