package visitor

import "sync"

// SyncMap caches read-mostly metadata shared by concurrent callers
type SyncMap[K comparable, V any] struct {
	entries map[K]V
	mux     sync.RWMutex
}

// NewSyncMap creates an empty map
func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{entries: make(map[K]V)}
}

// Get returns a cached value
func (m *SyncMap[K, V]) Get(key K) (V, bool) {
	m.mux.RLock()
	value, ok := m.entries[key]
	m.mux.RUnlock()
	return value, ok
}

// Put caches a value
func (m *SyncMap[K, V]) Put(key K, value V) {
	m.mux.Lock()
	m.entries[key] = value
	m.mux.Unlock()
}

// GetOrCreate returns a cached value or caches the one built by create.
// Concurrent callers may build the value more than once; the first stored wins.
func (m *SyncMap[K, V]) GetOrCreate(key K, create func() V) V {
	if value, ok := m.Get(key); ok {
		return value
	}
	value := create()
	m.mux.Lock()
	defer m.mux.Unlock()
	if existing, ok := m.entries[key]; ok {
		return existing
	}
	m.entries[key] = value
	return value
}

// Len returns number of cached entries
func (m *SyncMap[K, V]) Len() int {
	m.mux.RLock()
	defer m.mux.RUnlock()
	return len(m.entries)
}
