package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tron_wallet"

// Metrics holds the transfer pipeline collectors. A nil *Metrics is a no-op.
type Metrics struct {
	transfers  *prometheus.CounterVec
	broadcasts *prometheus.CounterVec
	stages     *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		transfers: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "transfers_total",
			Help:      "Transfer attempts by token and terminal state.",
		}, []string{"token", "state"}),
		broadcasts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "broadcasts_total",
			Help:      "Broadcast submissions by outcome.",
		}, []string{"outcome"}),
		stages: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Time spent in each transfer stage.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
	}
	reg.MustRegister(m.transfers, m.broadcasts, m.stages)
	return m
}

// TransferFinished counts a transfer that reached a terminal state
func (m *Metrics) TransferFinished(token, state string) {
	if m == nil {
		return
	}
	m.transfers.WithLabelValues(token, state).Inc()
}

// BroadcastFinished counts a broadcast outcome: accepted, rejected or unreachable
func (m *Metrics) BroadcastFinished(outcome string) {
	if m == nil {
		return
	}
	m.broadcasts.WithLabelValues(outcome).Inc()
}

// ObserveStage records how long a stage took
func (m *Metrics) ObserveStage(stage string, d time.Duration) {
	if m == nil {
		return
	}
	m.stages.WithLabelValues(stage).Observe(d.Seconds())
}
