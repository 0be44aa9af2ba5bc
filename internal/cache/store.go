package cache

import (
	"context"
	"time"
)

// Store adapts the package-level Redis helpers to the small cache
// surface the services consume. Safe to use when Redis is disabled.
type Store struct{}

// NewStore creates the cache adapter.
func NewStore() *Store {
	return &Store{}
}

// GetJSON reads a cached JSON value into dest.
func (s *Store) GetJSON(key string, dest interface{}) (bool, error) {
	return GetJSON(context.Background(), key, dest)
}

// SetJSON stores a JSON value with a TTL.
func (s *Store) SetJSON(key string, value interface{}, ttl time.Duration) error {
	return SetJSON(context.Background(), key, value, ttl)
}

// Delete removes a cached value.
func (s *Store) Delete(key string) error {
	return Del(context.Background(), key)
}
