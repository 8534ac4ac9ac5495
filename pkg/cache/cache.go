package cache

import (
	"sync"
	"time"
)

// Cache is a small in-memory TTL cache safe for concurrent use. It backs
// short-lived memoization (dashboard stats); entries are invalidated
// explicitly on writes and lazily on expiry.
type Cache struct {
	mu    sync.RWMutex
	items map[string]item
}

type item struct {
	v   any
	exp int64 // unix seconds; 0 = no expiry
}

var (
	defaultCache *Cache
	once         sync.Once
)

// Default returns a process-wide cache instance.
func Default() *Cache {
	once.Do(func() {
		defaultCache = New()
	})
	return defaultCache
}

func New() *Cache {
	c := &Cache{items: make(map[string]item)}
	go c.janitor(60 * time.Second)
	return c
}

// Get returns the value and whether it exists and is not expired.
func (c *Cache) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	now := time.Now().Unix()
	c.mu.RLock()
	it, ok := c.items[key]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}
	if it.exp != 0 && it.exp < now {
		c.Delete(key)
		return nil, false
	}
	return it.v, true
}

// Set stores a value with a TTL. ttl<=0 means no expiry.
func (c *Cache) Set(key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	var exp int64
	if ttl > 0 {
		exp = time.Now().Add(ttl).Unix()
	}
	c.mu.Lock()
	c.items[key] = item{v: v, exp: exp}
	c.mu.Unlock()
}

func (c *Cache) Delete(key string) {
	if c == nil {
		return
	}
	c.mu.Lock()
	delete(c.items, key)
	c.mu.Unlock()
}

func (c *Cache) janitor(every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for range t.C {
		now := time.Now().Unix()
		c.mu.Lock()
		for k, it := range c.items {
			if it.exp != 0 && it.exp < now {
				delete(c.items, k)
			}
		}
		c.mu.Unlock()
	}
}
