package observability

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// LedgerMetrics tracks the high-level operation counters exported by the
// node.
type LedgerMetrics struct {
	Mints    *prometheus.CounterVec
	Stakes   prometheus.Counter
	Unstakes prometheus.Counter
	Rewards  prometheus.Counter
	Failures *prometheus.CounterVec
	registry *prometheus.Registry
}

var (
	ledgerMetricsOnce sync.Once
	ledgerRegistry    *LedgerMetrics
)

// Metrics returns the lazily-initialised ledger metrics registry.
func Metrics() *LedgerMetrics {
	ledgerMetricsOnce.Do(func() {
		ledgerRegistry = &LedgerMetrics{
			Mints: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "medallion",
				Subsystem: "mint",
				Name:      "issued_total",
				Help:      "Total units issued segmented by price tier.",
			}, []string{"tier"}),
			Stakes: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "medallion",
				Subsystem: "vault",
				Name:      "stakes_total",
				Help:      "Total successful deposits into custody.",
			}),
			Unstakes: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "medallion",
				Subsystem: "vault",
				Name:      "unstakes_total",
				Help:      "Total successful full withdrawals from custody.",
			}),
			Rewards: prometheus.NewCounter(prometheus.CounterOpts{
				Namespace: "medallion",
				Subsystem: "vault",
				Name:      "reward_settlements_total",
				Help:      "Total reward payouts, stand-alone or bundled.",
			}),
			Failures: prometheus.NewCounterVec(prometheus.CounterOpts{
				Namespace: "medallion",
				Subsystem: "node",
				Name:      "operation_failures_total",
				Help:      "Total failed public operations segmented by operation.",
			}, []string{"op"}),
			registry: prometheus.NewRegistry(),
		}
		ledgerRegistry.registry.MustRegister(
			ledgerRegistry.Mints,
			ledgerRegistry.Stakes,
			ledgerRegistry.Unstakes,
			ledgerRegistry.Rewards,
			ledgerRegistry.Failures,
		)
	})
	return ledgerRegistry
}

// Registry exposes the prometheus registry for the metrics HTTP handler.
func (m *LedgerMetrics) Registry() *prometheus.Registry {
	return m.registry
}
