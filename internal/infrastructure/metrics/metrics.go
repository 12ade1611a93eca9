package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/iho/gobudget/internal/domain"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Reference data fallbacks
	Fallbacks *prometheus.CounterVec

	// Aggregation metrics
	Aggregations        *prometheus.CounterVec
	AggregationDuration *prometheus.HistogramVec
	CacheRequests       *prometheus.CounterVec

	// Store metrics
	Transactions *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates all metrics and registers them on reg.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Fallbacks: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_fallbacks_total",
				Help: "Reference lookups that missed and used a fallback, by kind",
			},
			[]string{"kind"},
		),

		Aggregations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_aggregations_total",
				Help: "Dashboard aggregations computed",
			},
			[]string{"operation", "period"},
		),
		AggregationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "budget_aggregation_duration_seconds",
				Help:    "Duration of dashboard aggregations",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"operation"},
		),
		CacheRequests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_cache_requests_total",
				Help: "Dashboard cache lookups by result",
			},
			[]string{"result"},
		),

		Transactions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_transactions_total",
				Help: "Transaction store mutations by operation",
			},
			[]string{"operation"},
		),
	}
}

// ObserveFallback implements domain.FallbackObserver. The key is not used
// as a label to keep cardinality bounded.
func (m *Metrics) ObserveFallback(kind domain.FallbackKind, _ string) {
	m.Fallbacks.WithLabelValues(string(kind)).Inc()
}

// ObserveAggregation records one computed aggregation.
func (m *Metrics) ObserveAggregation(operation string, period domain.Period, elapsed time.Duration) {
	m.Aggregations.WithLabelValues(operation, string(period)).Inc()
	m.AggregationDuration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// ObserveCache records a cache lookup result.
func (m *Metrics) ObserveCache(result string) {
	m.CacheRequests.WithLabelValues(result).Inc()
}

// ObserveTransaction records a store mutation.
func (m *Metrics) ObserveTransaction(operation string) {
	m.Transactions.WithLabelValues(operation).Inc()
}
