package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func counterValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()

	families, err := reg.Gather()
	require.NoError(t, err)

	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func TestMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveRequest("grpc", "AggregateFacets", OutcomeOK, 20*time.Millisecond)
	m.ObserveRequest("http", "ListProducts", OutcomeInvalidInput, time.Millisecond)

	assert.Equal(t, 2.0, counterValue(t, reg, "catalog_requests_total"))
}

func TestMetrics_Degraded(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.Degraded("facet")
	m.Degraded("facet")
	m.Degraded("base_fetch")

	assert.Equal(t, 3.0, counterValue(t, reg, "catalog_degraded_total"))
}

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.Degraded("facet")
		m.ObserveRequest("grpc", "GetFacets", OutcomeOK, time.Second)
	})
}

func TestMetrics_Handler(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.Degraded("attribute_branch")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `catalog_degraded_total{stage="attribute_branch"} 1`)
}
