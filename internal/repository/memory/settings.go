// Package memory provides an in-process settings store.
package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/RMahshie/eqpresets/internal/repository"
)

var _ repository.SettingsStore = (*SettingsStore)(nil)

// SettingsStore keeps settings in a map. Values are copied on the way in and out.
type SettingsStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewSettingsStore creates an empty settings store
func NewSettingsStore() *SettingsStore {
	return &SettingsStore{values: make(map[string][]byte)}
}

// Get returns a copy of the value stored under key and whether it exists
func (s *SettingsStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, false, nil
	}
	return slices.Clone(v), true, nil
}

// Set stores a copy of value under key
func (s *SettingsStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = slices.Clone(value)
	return nil
}

// Remove deletes key. Removing an absent key succeeds.
func (s *SettingsStore) Remove(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

// ListKeys returns the stored keys in ascending order
func (s *SettingsStore) ListKeys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}
