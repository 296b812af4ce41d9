package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Observe(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("wizard-test", reg)

	m.ObserveHTTPRequest("GET", "/api/v1/wizard", 200, 15*time.Millisecond)
	m.ObserveHTTPRequest("GET", "/api/v1/wizard", 200, 5*time.Millisecond)
	m.ObserveTransition("advance", true)
	m.ObserveTransition("advance", false)
	m.ObserveTransition("advance", false)
	m.ObserveConfirmation("package")
	m.SetStep(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("wizard-test", "GET", "/api/v1/wizard", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.wizardTransitions.WithLabelValues("wizard-test", "advance", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.wizardTransitions.WithLabelValues("wizard-test", "advance", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsConfirmed.WithLabelValues("wizard-test", "package")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.wizardStep.WithLabelValues("wizard-test")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
		m.ObserveTransition("reset", true)
		m.ObserveConfirmation("individual")
		m.SetStep(0)
	})
}
