// Package cache stores raw API response bodies keyed by request URL.
//
// Two tiers exist: Memory, a bounded in-process LRU with a TTL, and Disk, a
// SQLite table that survives restarts. Tiered chains them so a disk hit also
// warms memory. A cache miss or a cache failure is never an error for the
// caller; it just means the request goes to the network.
package cache

import (
	"time"

	lru "github.com/apibillme/cache"
)

// Cache is the interface the API client consults before and after a request.
type Cache interface {
	Get(key string) ([]byte, bool)
	Put(key string, body []byte)
}

// memoryCapacity bounds the number of response bodies kept in process.
const memoryCapacity = 256

// Memory is an in-process LRU cache with a per-entry TTL.
type Memory struct {
	entries lru.Cache
}

// NewMemory builds a Memory cache whose entries expire after ttl.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Memory{entries: lru.New(memoryCapacity, lru.WithTTL(ttl))}
}

// Get returns a copy of the cached body for key.
func (m *Memory) Get(key string) ([]byte, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries.Get(key)
	if !ok {
		return nil, false
	}
	body, ok := v.([]byte)
	if !ok {
		return nil, false
	}
	return cloneBytes(body), true
}

// Put stores a copy of body under key.
func (m *Memory) Put(key string, body []byte) {
	if m == nil {
		return
	}
	m.entries.Set(key, cloneBytes(body))
}

// Tiered consults each tier in order and back-fills the faster tiers on a hit
// from a slower one.
type Tiered []Cache

// Get returns the first hit across tiers.
func (t Tiered) Get(key string) ([]byte, bool) {
	for i, c := range t {
		body, ok := c.Get(key)
		if !ok {
			continue
		}
		for j := 0; j < i; j++ {
			t[j].Put(key, body)
		}
		return body, true
	}
	return nil, false
}

// Put stores body in every tier.
func (t Tiered) Put(key string, body []byte) {
	for _, c := range t {
		c.Put(key, body)
	}
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	dup := make([]byte, len(b))
	copy(dup, b)
	return dup
}
