package metric

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360/apphealth/errors"
)

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()

	require.NotNil(t, r.PrometheusRegistry())
	require.NotNil(t, r.CoreMetrics())

	// core metrics are registered and gatherable
	r.CoreMetrics().RecordPass("published", 5*time.Millisecond)
	families, err := r.PrometheusRegistry().Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, families)
}

func TestRegisterCollector(t *testing.T) {
	r := NewRegistry()

	gauge := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "caller_gauge",
		Help: "test gauge",
	})

	require.NoError(t, r.RegisterCollector("caller", "gauge", gauge))

	// duplicate key is rejected as invalid
	err := r.RegisterCollector("caller", "gauge", gauge)
	require.Error(t, err)
	assert.True(t, errors.IsInvalid(err))

	assert.True(t, r.Unregister("caller", "gauge"))
	assert.False(t, r.Unregister("caller", "gauge"))
}

func TestMetricsRecording(t *testing.T) {
	m := NewMetrics()

	m.RecordSnapshot(3, 2)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.SnapshotVersion))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.OverallState))

	m.RecordRegistrySize(4, 9)
	assert.Equal(t, 4.0, testutil.ToFloat64(m.ComponentsLive))
	assert.Equal(t, 9.0, testutil.ToFloat64(m.PublishersLive))

	m.RecordComponentState("database", 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ComponentState.WithLabelValues("database")))

	m.ForgetComponent("database")

	m.WaiterStarted()
	m.WaiterStarted()
	m.WaiterFinished()
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WaitersActive))

	m.RecordPass("noop", time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PassesTotal.WithLabelValues("noop")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	// the engine calls these unconditionally; nil must be a no-op
	m.RecordPass("published", time.Millisecond)
	m.RecordSnapshot(1, 0)
	m.RecordRegistrySize(0, 0)
	m.RecordComponentState("x", 0)
	m.ForgetComponent("x")
	m.WaiterStarted()
	m.WaiterFinished()
}
