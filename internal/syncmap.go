package internal

import "sync"

// SyncMap is a typed wrapper around sync.Map, so callers don't have to
// deal with type assertions on every access.
type SyncMap[K comparable, V any] struct {
	inner sync.Map
}

func NewSyncMap[K comparable, V any]() *SyncMap[K, V] {
	return &SyncMap[K, V]{}
}

func (m *SyncMap[K, V]) Load(key K) (V, bool) {
	value, found := m.inner.Load(key)
	if !found {
		var zero V
		return zero, false
	}
	return value.(V), true
}

func (m *SyncMap[K, V]) Store(key K, value V) {
	m.inner.Store(key, value)
}

// LoadOrStore returns the existing value for the key if present. Otherwise it
// stores and returns the given value. The second result is true if the value
// was already present.
func (m *SyncMap[K, V]) LoadOrStore(key K, value V) (V, bool) {
	actual, loaded := m.inner.LoadOrStore(key, value)
	return actual.(V), loaded
}

func (m *SyncMap[K, V]) Delete(key K) {
	m.inner.Delete(key)
}

func (m *SyncMap[K, V]) Clear() {
	m.inner.Range(func(key, _ any) bool {
		m.inner.Delete(key)
		return true
	})
}
