package aggregator

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/c360/apphealth/health"
	"github.com/c360/apphealth/metric"
)

func TestAggregatorRecordsMetrics(t *testing.T) {
	metrics := metric.NewMetrics()

	agg := New(testConfig(), nil, metrics)
	t.Cleanup(agg.Close)
	monitor := agg.Monitor()

	comp := agg.Component("db")
	defer comp.Close()
	pub := comp.Publisher()
	defer pub.Close()

	pub.Critical("down")

	waitForReport(t, monitor, func(r health.Report) bool {
		return r.Status.State == health.StateCritical
	})

	// gauges are written at the end of a pass; let a steady-state pass finish
	time.Sleep(3 * testConfig().DebounceInterval)

	report := monitor.Report(health.EmptyFilter())
	assert.Equal(t, float64(report.Version), testutil.ToFloat64(metrics.SnapshotVersion))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.OverallState))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ComponentsLive))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.PublishersLive))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ComponentState.WithLabelValues("db")))
}
