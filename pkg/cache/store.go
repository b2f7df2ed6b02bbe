package cache

import (
	"context"
	"sync"
)

//go:generate moq -out mocks/store.go -pkg mocks -skip-ensure -fmt goimports . Store

// Store is a key-value backend for the cache. Get returns an empty value for a missing key.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// MemoryStore is a Store kept in process memory
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemoryStore makes an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

// Get returns value for the key
func (m *MemoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.data[key], nil
}

// Set stores value for the key
func (m *MemoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}
