package telemetry

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.ObserveCollisions(2)
	m.ObserveCollisions(0)
	m.ObserveAccountSync(true)
	m.ObserveAccountSync(true)
	m.ObserveAccountSync(false)
	m.ObserveSyncDuration(3.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RevenueKeyCollisions))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.AccountSyncs.WithLabelValues(OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AccountSyncs.WithLabelValues(OutcomeFailure)))

	count, err := testutil.GatherAndCount(reg, "arbitrage_account_syncs_total")
	assert.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestMetrics_Nil(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveCollisions(1)
		m.ObserveAccountSync(false)
		m.ObserveSyncDuration(1)
	})
}
