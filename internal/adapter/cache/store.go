package cache

import (
	"context"
	"time"

	"github.com/iho/gobudget/internal/usecase"
)

// Store implements usecase.Cache over an LRUCache.
type Store struct {
	lru *LRUCache[[]byte]
}

// NewStore creates a Store holding at most size entries.
func NewStore(size int, defaultTTL time.Duration) *Store {
	return &Store{lru: NewLRUCache[[]byte](size, defaultTTL)}
}

// Get returns usecase.ErrCacheMiss for absent or expired keys.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := s.lru.Get(key)
	if !ok {
		return nil, usecase.ErrCacheMiss
	}
	return v, nil
}

// Set stores a value with TTL.
func (s *Store) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.lru.Set(key, value, ttl)
	return nil
}

// Delete removes a key.
func (s *Store) Delete(_ context.Context, key string) error {
	s.lru.Delete(key)
	return nil
}

// CleanExpired drops expired entries and returns how many were removed.
func (s *Store) CleanExpired() int {
	return s.lru.CleanExpired()
}

// IdempotencyStore implements usecase.IdempotencyStore over an LRUCache.
type IdempotencyStore struct {
	lru *LRUCache[[]byte]
}

// NewIdempotencyStore creates an IdempotencyStore holding at most size keys.
func NewIdempotencyStore(size int) *IdempotencyStore {
	return &IdempotencyStore{lru: NewLRUCache[[]byte](size, usecase.IdempotencyKeyTTL)}
}

// CheckAndSet atomically checks if key exists, sets if not. A nil response
// stores a placeholder that locks the key.
func (s *IdempotencyStore) CheckAndSet(_ context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	if response == nil {
		response = []byte(usecase.IdempotencyInFlight)
	}
	existing, stored := s.lru.SetNX(key, response, ttl)
	if stored {
		return false, nil, nil
	}
	return true, existing, nil
}

// Update replaces the stored response for key.
func (s *IdempotencyStore) Update(_ context.Context, key string, response []byte, ttl time.Duration) error {
	s.lru.Set(key, response, ttl)
	return nil
}

// Release drops key.
func (s *IdempotencyStore) Release(_ context.Context, key string) error {
	s.lru.Delete(key)
	return nil
}

// CleanExpired drops expired keys and returns how many were removed.
func (s *IdempotencyStore) CleanExpired() int {
	return s.lru.CleanExpired()
}
