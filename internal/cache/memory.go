package cache

import (
	"container/list"
	"context"
	"sync"
	"time"

	"skysearch/internal/amadeus"
	"skysearch/internal/models"
)

// MemoryCache is the in-process fallback when Redis is unavailable:
// least-recently-used eviction at a fixed capacity, plus the same
// time-to-live freshness window as the Redis cache.
type MemoryCache struct {
	mu       sync.Mutex
	entries  map[string]*list.Element
	order    *list.List
	capacity int
	ttl      time.Duration
	now      func() time.Time
}

type memoryEntry struct {
	key      string
	result   *amadeus.Result
	storedAt time.Time
}

func NewMemoryCache(capacity int, ttl time.Duration) *MemoryCache {
	if capacity <= 0 {
		capacity = 32
	}
	return &MemoryCache{
		entries:  make(map[string]*list.Element),
		order:    list.New(),
		capacity: capacity,
		ttl:      ttl,
		now:      time.Now,
	}
}

func (c *MemoryCache) Get(ctx context.Context, query models.SearchQuery) (*amadeus.Result, bool) {
	key := generateKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.entries[key]
	if !ok {
		return nil, false
	}

	entry := elem.Value.(*memoryEntry)
	if c.now().Sub(entry.storedAt) > c.ttl {
		c.order.Remove(elem)
		delete(c.entries, key)
		return nil, false
	}

	c.order.MoveToFront(elem)
	return entry.result, true
}

func (c *MemoryCache) Set(ctx context.Context, query models.SearchQuery, result *amadeus.Result) error {
	key := generateKey(query)

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.entries[key]; ok {
		entry := elem.Value.(*memoryEntry)
		entry.result = result
		entry.storedAt = c.now()
		c.order.MoveToFront(elem)
		return nil
	}

	c.entries[key] = c.order.PushFront(&memoryEntry{
		key:      key,
		result:   result,
		storedAt: c.now(),
	})

	if c.order.Len() > c.capacity {
		oldest := c.order.Back()
		if oldest != nil {
			c.order.Remove(oldest)
			delete(c.entries, oldest.Value.(*memoryEntry).key)
		}
	}

	return nil
}

func (c *MemoryCache) Close() error {
	return nil
}
