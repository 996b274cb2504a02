package memory

import (
	"context"
	"sync"

	"orbdyn/internal/ports"
)

// Store is an in-process KVStore. Contents are lost on Close.
type Store struct {
	mu   sync.RWMutex
	data map[string]string
}

// Ensure Store implements KVStore
var _ ports.KVStore = (*Store)(nil)

// NewStore creates an empty memory store
func NewStore() *Store {
	return &Store{data: make(map[string]string)}
}

// Get returns the value for key
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

// Set stores value under key
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return nil
}

// Delete removes key
func (s *Store) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

// Close clears the store
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data = make(map[string]string)
	return nil
}
