package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScreeningWizard/pkg/logger"
	"github.com/m04kA/SMC-ScreeningWizard/pkg/metrics"
)

type observation struct {
	method string
	route  string
	status int
}

type recordingMetrics struct {
	mu  sync.Mutex
	obs []observation
}

func (m *recordingMetrics) ObserveHTTPRequest(method, route string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.obs = append(m.obs, observation{method: method, route: route, status: status})
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	rec := &recordingMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(rec))
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/catalog/{type}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)
	api.HandleFunc("/wizard", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("{}"))
	}).Methods(http.MethodGet)

	for _, path := range []string{"/api/v1/catalog/group", "/api/v1/wizard"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	require.Len(t, rec.obs, 2)
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/v1/catalog/{type}", status: http.StatusNotFound}, rec.obs[0])
	assert.Equal(t, observation{method: http.MethodGet, route: "/api/v1/wizard", status: http.StatusOK}, rec.obs[1])
}

func TestMetricsMiddleware_Prometheus(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.NewWithRegistry("test", reg)

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/patients", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for i := 0; i < 3; i++ {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/patients?q=ana", nil))
	}

	count, err := testutil.GatherAndCount(reg, "smc_http_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestRecovery(t *testing.T) {
	r := mux.NewRouter()
	r.Use(Recovery(logger.NewNop()))
	r.HandleFunc("/panic", func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":500`)
}
