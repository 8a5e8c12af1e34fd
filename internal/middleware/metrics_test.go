package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/phonebook/internal/middleware"
)

type observation struct {
	method string
	route  string
	status int
}

// recordingObserver captures ObserveRequest calls.
type recordingObserver struct {
	mu   sync.Mutex
	seen []observation
}

func (o *recordingObserver) ObserveRequest(method, route string, status int, _ time.Duration) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.seen = append(o.seen, observation{method, route, status})
}

var _ middleware.RequestObserver = (*recordingObserver)(nil)

func TestMetricsHandler_observesRoutePatternAndStatus(t *testing.T) {
	obs := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(middleware.NewMetricsHandler(obs))
	r.Delete("/api/phonebook/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/phonebook/42", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, observation{http.MethodDelete, "/api/phonebook/{id}", http.StatusNoContent}, obs.seen[0])
}

func TestMetricsHandler_unmatchedRoute(t *testing.T) {
	obs := &recordingObserver{}
	r := chi.NewRouter()
	r.Use(middleware.NewMetricsHandler(obs))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Len(t, obs.seen, 1)
	assert.Equal(t, "unmatched", obs.seen[0].route)
	assert.Equal(t, http.StatusNotFound, obs.seen[0].status)
}
