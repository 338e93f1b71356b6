package caching

import "sync"

type Cache[TKey comparable, TValue any] interface {
	TryGet(key TKey) (TValue, bool)
	Put(key TKey, value TValue)
	Len() int
	Clear()
}

type memoryCache[TKey comparable, TValue any] struct {
	mu         sync.RWMutex
	values     map[TKey]TValue
	maxEntries int
}

// NewMemoryCache creates an unbounded cache.
func NewMemoryCache[TKey comparable, TValue any]() Cache[TKey, TValue] {
	return NewBoundedMemoryCache[TKey, TValue](0)
}

// NewBoundedMemoryCache creates a cache that holds at most maxEntries values.
// When full, an arbitrary entry is evicted. A maxEntries of zero means unbounded.
func NewBoundedMemoryCache[TKey comparable, TValue any](maxEntries int) Cache[TKey, TValue] {
	return &memoryCache[TKey, TValue]{
		values:     make(map[TKey]TValue),
		maxEntries: maxEntries,
	}
}

func (k *memoryCache[TKey, TValue]) TryGet(key TKey) (TValue, bool) {
	k.mu.RLock()
	defer k.mu.RUnlock()

	value, ok := k.values[key]
	return value, ok
}

func (k *memoryCache[TKey, TValue]) Put(key TKey, value TValue) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if _, exists := k.values[key]; !exists && k.maxEntries > 0 && len(k.values) >= k.maxEntries {
		for evict := range k.values {
			delete(k.values, evict)
			break
		}
	}

	k.values[key] = value
}

func (k *memoryCache[TKey, TValue]) Len() int {
	k.mu.RLock()
	defer k.mu.RUnlock()

	return len(k.values)
}

func (k *memoryCache[TKey, TValue]) Clear() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.values = make(map[TKey]TValue)
}
