package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/phonebook/internal/metrics"
)

func TestMetrics_LifecycleCounters(t *testing.T) {
	m := metrics.New()

	m.EntryCreated()
	m.EntryCreated()
	m.EntryUpdated()
	m.EntryDeleted()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.EntriesCreated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntriesUpdated))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EntriesDeleted))
}

func TestMetrics_ObserveRequest(t *testing.T) {
	m := metrics.New()

	m.ObserveRequest(http.MethodGet, "/api/phonebook/{id}", http.StatusNotFound, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/api/phonebook/{id}", "404")))
}

func TestMetrics_HandlerExposesRegistry(t *testing.T) {
	m := metrics.New()
	m.EntryCreated()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "phonebook_entries_created_total 1")
}

// New must be callable repeatedly; each instance has its own registry.
func TestMetrics_NewTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		metrics.New()
		metrics.New()
	})
}
