// Package memory is an in-process stand-in for the Redis cache backend. It
// mirrors the redis package's semantics (JSON payloads, TTL expiry, miss as
// custom_errors.ErrCacheMiss) so tests and cache-less runs exercise the same
// code paths.
package memory

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"circle-backend/internal/custom_errors"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

type Store struct {
	mu      sync.RWMutex
	entries map[string]entry

	// now is swappable so tests can drive TTL expiry without sleeping.
	now func() time.Time

	// unavailable simulates a cache backend outage: every operation fails
	// with ErrCacheUnavailable.
	unavailable bool
}

func NewStore() *Store {
	return &Store{
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// SetUnavailable toggles simulated backend failure.
func (s *Store) SetUnavailable(down bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unavailable = down
}

// SetClock replaces the time source.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) Get(ctx context.Context, key string, dest interface{}) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.unavailable {
		return custom_errors.ErrCacheUnavailable
	}

	e, ok := s.entries[key]
	if !ok || !s.now().Before(e.expiresAt) {
		return custom_errors.ErrCacheMiss
	}

	return json.Unmarshal(e.data, dest)
}

func (s *Store) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable {
		return custom_errors.ErrCacheUnavailable
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	s.entries[key] = entry{data: data, expiresAt: s.now().Add(ttl)}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.unavailable {
		return custom_errors.ErrCacheUnavailable
	}

	delete(s.entries, key)
	return nil
}

// Has reports whether a live (unexpired) entry exists for key.
func (s *Store) Has(key string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[key]
	return ok && s.now().Before(e.expiresAt)
}
