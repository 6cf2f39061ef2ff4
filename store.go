package sixpack

import (
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Store is the persistence surface holding the visitor identifier between
// requests, typically the visitor's cookie jar (see cookie.Jar).
//
// Get returns an empty string when nothing is stored. Errors from either
// method are treated as best-effort failures by the Session and never
// abort identifier resolution.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string, ttl time.Duration, path string) error
}

// DefaultMemoryStoreSize bounds a MemoryStore created with a non-positive size.
const DefaultMemoryStoreSize = 1024

type memoryEntry struct {
	value     string
	expiresAt time.Time
}

// MemoryStore is an in-process Store with LRU eviction and per-key expiry.
// It suits non-browser callers that keep one visitor per process or per
// worker, and tests. Paths are ignored. Safe for concurrent use.
type MemoryStore struct {
	cache *lru.Cache[string, memoryEntry]
}

// NewMemoryStore creates a store holding at most size keys.
func NewMemoryStore(size int) (*MemoryStore, error) {
	if size <= 0 {
		size = DefaultMemoryStoreSize
	}
	c, err := lru.New[string, memoryEntry](size)
	if err != nil {
		return nil, err
	}
	return &MemoryStore{cache: c}, nil
}

func (m *MemoryStore) Get(key string) (string, error) {
	e, ok := m.cache.Get(key)
	if !ok {
		return "", nil
	}
	if !e.expiresAt.IsZero() && time.Now().After(e.expiresAt) {
		m.cache.Remove(key)
		return "", nil
	}
	return e.value, nil
}

// Set stores value under key. A non-positive ttl never expires.
func (m *MemoryStore) Set(key, value string, ttl time.Duration, _ string) error {
	e := memoryEntry{value: value}
	if ttl > 0 {
		e.expiresAt = time.Now().Add(ttl)
	}
	m.cache.Add(key, e)
	return nil
}

// Len returns the number of stored keys, expired ones included until read.
func (m *MemoryStore) Len() int {
	return m.cache.Len()
}
