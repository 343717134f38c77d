// Package memory implements an in-memory kv.Store for tests and throwaway
// sessions.
package memory

import (
	"context"
	"sync"

	"github.com/roach88/runlog/internal/kv"
)

// Store implements kv.Store backed by process memory.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// New returns an empty in-memory store.
func New() *Store { return &Store{data: make(map[string]string)} }

// Driver returns the backend identifier.
func (s *Store) Driver() kv.Driver { return kv.DriverMemory }

// Get returns the stored value.
func (s *Store) Get(_ context.Context, key string) (string, bool, error) {
	if err := kv.ValidateKey(key); err != nil {
		return "", false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	return v, ok, nil
}

// Set stores value under key.
func (s *Store) Set(_ context.Context, key, value string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
	return nil
}

// Remove deletes key.
func (s *Store) Remove(_ context.Context, key string) error {
	if err := kv.ValidateKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error { return nil }
