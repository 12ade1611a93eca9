package usecase

import "time"

const (
	// DefaultDashboardTTL is how long memoized dashboard results are kept
	// when no TTL is configured.
	DefaultDashboardTTL = 5 * time.Minute

	// IdempotencyKeyTTL is how long idempotency keys are cached
	IdempotencyKeyTTL = 24 * time.Hour

	// IdempotencyInFlight is the placeholder stored under a key while the
	// first request carrying it is still being handled.
	IdempotencyInFlight = "processing"
)

// Aggregation operations, used in cache keys and metric labels.
const (
	OperationDashboard  = "dashboard"
	OperationSummary    = "summary"
	OperationSeries     = "series"
	OperationCategories = "categories"
)

// Cache lookup results.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)

// List sort orders.
const (
	SortDateDesc   = "date-desc"
	SortDateAsc    = "date-asc"
	SortAmountDesc = "amount-desc"
	SortAmountAsc  = "amount-asc"
)
