package cache

import "sync"

// MemoryCache stores entries in process memory. Handy as the test double for
// anything that takes a Cache.
type MemoryCache struct {
	mu   sync.RWMutex
	data map[string]string
}

var _ Cache = (*MemoryCache)(nil)

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{data: make(map[string]string)}
}

func (c *MemoryCache) Get(key string) (string, bool) {
	c.mu.RLock()
	value, ok := c.data[key]
	c.mu.RUnlock()
	return value, ok
}

func (c *MemoryCache) Set(key, value string) error {
	c.mu.Lock()
	c.data[key] = value
	c.mu.Unlock()
	return nil
}
