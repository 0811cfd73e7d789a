package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersRecord(t *testing.T) {
	t.Parallel()

	m := New()
	m.IncNavigation("preview")
	m.IncNavigation("preview")
	m.IncNavigation("overlay")
	m.IncPreload("ok")
	m.IncPreload("failed")
	m.IncDroppedIntent()

	assert.InDelta(t, 2, testutil.ToFloat64(m.navigations.WithLabelValues("preview")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.navigations.WithLabelValues("overlay")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.preloads.WithLabelValues("failed")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.droppedIntents), 0)
}

func TestNilMetricsIsNoOp(t *testing.T) {
	t.Parallel()

	var m *Metrics
	assert.NotPanics(t, func() {
		m.IncNavigation("preview")
		m.IncPlayback("play")
		m.SetOpenOverlays(3)
	})
}

func TestRouterServesMetricsAndHealth(t *testing.T) {
	t.Parallel()

	m := New()
	refreshed := false
	router := m.Router(func() {
		refreshed = true
		m.SetOpenOverlays(2)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, refreshed)
	assert.True(t, strings.Contains(rec.Body.String(), "vitrine_open_overlays 2"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
}
