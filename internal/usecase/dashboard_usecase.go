package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rs/zerolog"

	"github.com/iho/gobudget/internal/aggregation"
	"github.com/iho/gobudget/internal/domain"
)

// DashboardUseCase computes dashboard aggregates over the current store
// snapshot and memoizes the results.
type DashboardUseCase struct {
	repo     TransactionRepository
	engine   *aggregation.Engine
	cache    Cache
	ttl      time.Duration
	recorder Recorder
	logger   zerolog.Logger
	now      func() time.Time
}

// DashboardOption configures a DashboardUseCase.
type DashboardOption func(*DashboardUseCase)

// WithCache memoizes results in cache for ttl.
func WithCache(cache Cache, ttl time.Duration) DashboardOption {
	return func(uc *DashboardUseCase) {
		uc.cache = cache
		if ttl > 0 {
			uc.ttl = ttl
		}
	}
}

// WithRecorder reports aggregation and cache measurements to r.
func WithRecorder(r Recorder) DashboardOption {
	return func(uc *DashboardUseCase) {
		if r != nil {
			uc.recorder = r
		}
	}
}

// WithClock overrides the clock used when no reference date is given.
func WithClock(now func() time.Time) DashboardOption {
	return func(uc *DashboardUseCase) {
		uc.now = now
	}
}

// NewDashboardUseCase creates a new DashboardUseCase.
func NewDashboardUseCase(repo TransactionRepository, engine *aggregation.Engine, logger zerolog.Logger, opts ...DashboardOption) *DashboardUseCase {
	uc := &DashboardUseCase{
		repo:     repo,
		engine:   engine,
		ttl:      DefaultDashboardTTL,
		recorder: nopRecorder{},
		logger:   logger,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// DashboardInput selects what to aggregate. A zero At means today.
type DashboardInput struct {
	Period   domain.Period
	Currency string
	At       time.Time
}

// Dashboard returns summary, series and breakdown together.
func (uc *DashboardUseCase) Dashboard(ctx context.Context, input DashboardInput) (aggregation.Dashboard, error) {
	return memoize(ctx, uc, OperationDashboard, input, uc.engine.Dashboard)
}

// Summary returns the active window totals and trends.
func (uc *DashboardUseCase) Summary(ctx context.Context, input DashboardInput) (aggregation.Summary, error) {
	return memoize(ctx, uc, OperationSummary, input, uc.engine.Summarize)
}

// Series returns the income/expense time series.
func (uc *DashboardUseCase) Series(ctx context.Context, input DashboardInput) ([]aggregation.SeriesPoint, error) {
	return memoize(ctx, uc, OperationSeries, input, uc.engine.Series)
}

// Categories returns the expense breakdown of the active window.
func (uc *DashboardUseCase) Categories(ctx context.Context, input DashboardInput) ([]aggregation.CategorySlice, error) {
	return memoize(ctx, uc, OperationCategories, input, uc.engine.CategoryBreakdown)
}

// memoize serves op from the cache when the snapshot, the inputs and the
// reference date all match a previous computation. Cache failures are
// logged and never fail the request.
func memoize[T any](
	ctx context.Context,
	uc *DashboardUseCase,
	op string,
	input DashboardInput,
	compute func([]domain.Transaction, domain.Period, string, time.Time) T,
) (T, error) {
	input = uc.normalize(input)

	txs, err := uc.repo.List(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	key := cacheKey(op, input, Fingerprint(txs))

	if uc.cache != nil {
		if result, ok := lookup[T](ctx, uc, key); ok {
			return result, nil
		}
	}

	start := time.Now()
	result := compute(txs, input.Period, input.Currency, input.At)
	uc.recorder.ObserveAggregation(op, input.Period, time.Since(start))

	if uc.cache != nil {
		uc.store(ctx, key, result)
	}

	return result, nil
}

func lookup[T any](ctx context.Context, uc *DashboardUseCase, key string) (T, bool) {
	var result T

	data, err := uc.cache.Get(ctx, key)
	switch {
	case errors.Is(err, ErrCacheMiss):
		uc.recorder.ObserveCache(CacheMiss)
		return result, false
	case err != nil:
		uc.recorder.ObserveCache(CacheError)
		uc.logger.Warn().Err(err).Str("key", key).Msg("dashboard cache read failed")
		return result, false
	}

	if err := json.Unmarshal(data, &result); err != nil {
		uc.recorder.ObserveCache(CacheError)
		uc.logger.Warn().Err(err).Str("key", key).Msg("discarding undecodable cache entry")
		var zero T
		return zero, false
	}

	uc.recorder.ObserveCache(CacheHit)
	return result, true
}

func (uc *DashboardUseCase) store(ctx context.Context, key string, result any) {
	data, err := json.Marshal(result)
	if err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("dashboard result not cacheable")
		return
	}
	if err := uc.cache.Set(ctx, key, data, uc.ttl); err != nil {
		uc.logger.Warn().Err(err).Str("key", key).Msg("dashboard cache write failed")
	}
}

func (uc *DashboardUseCase) normalize(input DashboardInput) DashboardInput {
	if input.Period == "" {
		input.Period = domain.PeriodMonthly
	}
	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	if input.Currency == "" {
		input.Currency = domain.BaseCurrency
	}
	if input.At.IsZero() {
		input.At = uc.now()
	}
	return input
}

func cacheKey(op string, input DashboardInput, fingerprint uint64) string {
	return fmt.Sprintf("dashboard:%s:%s:%s:%s:%016x",
		op, input.Period, input.Currency, input.At.Format(domain.DateLayout), fingerprint)
}

// Fingerprint hashes every field of every transaction in order. Any store
// mutation changes it.
func Fingerprint(txs []domain.Transaction) uint64 {
	d := xxhash.New()
	for i := range txs {
		tx := &txs[i]
		for _, field := range []string{tx.ID, string(tx.Type), tx.Amount.String(), tx.Currency, tx.Category, tx.Description, tx.Date} {
			_, _ = d.WriteString(field)
			_, _ = d.Write([]byte{0})
		}
		_, _ = d.Write([]byte{0x1e})
	}
	return d.Sum64()
}
