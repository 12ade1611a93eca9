package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/iho/gobudget/internal/domain"
	"github.com/iho/gobudget/internal/usecase"
)

var (
	_ domain.FallbackObserver = (*Metrics)(nil)
	_ usecase.Recorder        = (*Metrics)(nil)
)

func TestNewRegistersMetrics(t *testing.T) {
	registry := prometheus.NewRegistry()
	m := NewWithRegisterer(registry)

	if m.Fallbacks == nil || m.Aggregations == nil || m.CacheRequests == nil {
		t.Fatalf("expected key metrics to be initialized: %+v", m)
	}

	m.ObserveCache(usecase.CacheHit)

	metricFamilies, err := registry.Gather()
	if err != nil {
		t.Fatalf("failed to gather metrics: %v", err)
	}

	if len(metricFamilies) == 0 {
		t.Fatalf("expected registered metrics, got none")
	}
}

func TestObservers(t *testing.T) {
	m := NewWithRegisterer(prometheus.NewRegistry())

	m.ObserveFallback(domain.FallbackCurrency, "XYZ")
	m.ObserveFallback(domain.FallbackCurrency, "ABC")
	m.ObserveFallback(domain.FallbackCategory, "pet-care")
	m.ObserveAggregation(usecase.OperationSummary, domain.PeriodWeekly, 3*time.Millisecond)
	m.ObserveCache(usecase.CacheMiss)
	m.ObserveTransaction("create")

	if got := testutil.ToFloat64(m.Fallbacks.WithLabelValues("currency")); got != 2 {
		t.Fatalf("expected 2 currency fallbacks, got %v", got)
	}
	if got := testutil.ToFloat64(m.Fallbacks.WithLabelValues("category")); got != 1 {
		t.Fatalf("expected 1 category fallback, got %v", got)
	}
	if got := testutil.ToFloat64(m.Aggregations.WithLabelValues("summary", "weekly")); got != 1 {
		t.Fatalf("expected 1 summary aggregation, got %v", got)
	}
	if got := testutil.CollectAndCount(m.AggregationDuration); got != 1 {
		t.Fatalf("expected one duration series, got %d", got)
	}
	if got := testutil.ToFloat64(m.CacheRequests.WithLabelValues("miss")); got != 1 {
		t.Fatalf("expected 1 cache miss, got %v", got)
	}
	if got := testutil.ToFloat64(m.Transactions.WithLabelValues("create")); got != 1 {
		t.Fatalf("expected 1 create, got %v", got)
	}
}
