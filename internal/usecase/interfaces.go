package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/iho/gobudget/internal/domain"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired.
var ErrCacheMiss = errors.New("cache miss")

// TransactionRepository defines data access for transactions.
type TransactionRepository interface {
	Create(ctx context.Context, tx *domain.Transaction) error
	Update(ctx context.Context, tx *domain.Transaction) error
	Delete(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
	// List returns a copy of every stored transaction in insertion order.
	List(ctx context.Context) ([]domain.Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Cache defines caching operations.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
	// Release drops a claimed key so the request can be retried.
	Release(ctx context.Context, key string) error
}

// Recorder receives use case measurements.
type Recorder interface {
	ObserveAggregation(operation string, period domain.Period, elapsed time.Duration)
	ObserveCache(result string)
	ObserveTransaction(operation string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveAggregation(string, domain.Period, time.Duration) {}
func (nopRecorder) ObserveCache(string)                                    {}
func (nopRecorder) ObserveTransaction(string)                              {}
