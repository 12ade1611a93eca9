package domain

// FallbackKind identifies which reference lookup degraded.
type FallbackKind string

const (
	FallbackCurrency FallbackKind = "currency"
	FallbackCategory FallbackKind = "category"
)

// FallbackObserver is notified whenever a lookup misses and a documented
// fallback is used instead. Implementations must not block.
type FallbackObserver interface {
	ObserveFallback(kind FallbackKind, key string)
}

// NopFallbackObserver discards fallback events.
type NopFallbackObserver struct{}

// ObserveFallback implements FallbackObserver.
func (NopFallbackObserver) ObserveFallback(FallbackKind, string) {}
