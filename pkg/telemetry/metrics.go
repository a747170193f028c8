package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "arbitrage"

const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

// Metrics agrupa os coletores da sincronização de campanhas
type Metrics struct {
	RevenueKeyCollisions prometheus.Counter
	AccountSyncs         *prometheus.CounterVec
	SyncDuration         prometheus.Histogram
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RevenueKeyCollisions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "revenue_key_collisions_total",
			Help:      "Linhas de receita descartadas por chave normalizada repetida.",
		}),
		AccountSyncs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "account_syncs_total",
			Help:      "Sincronizações de conta por resultado.",
		}, []string{"outcome"}),
		SyncDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "sync_duration_seconds",
			Help:      "Duração de cada execução completa de sincronização.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
	}

	if reg != nil {
		reg.MustRegister(m.RevenueKeyCollisions, m.AccountSyncs, m.SyncDuration)
	}

	return m
}

func (m *Metrics) ObserveCollisions(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RevenueKeyCollisions.Add(float64(n))
}

func (m *Metrics) ObserveAccountSync(success bool) {
	if m == nil {
		return
	}

	outcome := OutcomeFailure
	if success {
		outcome = OutcomeSuccess
	}
	m.AccountSyncs.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveSyncDuration(seconds float64) {
	if m == nil {
		return
	}
	m.SyncDuration.Observe(seconds)
}
