// Package dashboard provides named, live-tunable values. Robot code declares
// a handle with a default; an operator-facing store supplies overrides at
// runtime. Stores are passed explicitly so there is no hidden global
// registry.
package dashboard

import (
	"sort"
	"sync"
)

// Store holds named values by kind. A key holds at most one value; writing a
// different kind under the same key replaces it.
type Store interface {
	// GetNumber returns the number stored under key and whether a number
	// is present.
	GetNumber(key string) (float64, bool)
	// SetNumber stores a number under key.
	SetNumber(key string, value float64)

	// GetString returns the string stored under key and whether a string
	// is present.
	GetString(key string) (string, bool)
	// SetString stores a string under key.
	SetString(key string, value string)

	// GetBool returns the boolean stored under key and whether a boolean
	// is present.
	GetBool(key string) (bool, bool)
	// SetBool stores a boolean under key.
	SetBool(key string, value bool)

	// Keys returns every key with a value, sorted.
	Keys() []string
}

// MemStore is an in-memory Store safe for concurrent use.
type MemStore struct {
	mu     sync.RWMutex
	values map[string]interface{}
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{values: map[string]interface{}{}}
}

// GetNumber returns the number stored under key.
func (s *MemStore) GetNumber(key string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key].(float64)
	return v, ok
}

// SetNumber stores a number under key.
func (s *MemStore) SetNumber(key string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// GetString returns the string stored under key.
func (s *MemStore) GetString(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key].(string)
	return v, ok
}

// SetString stores a string under key.
func (s *MemStore) SetString(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// GetBool returns the boolean stored under key.
func (s *MemStore) GetBool(key string) (bool, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key].(bool)
	return v, ok
}

// SetBool stores a boolean under key.
func (s *MemStore) SetBool(key string, value bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Keys returns every key with a value, sorted.
func (s *MemStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
