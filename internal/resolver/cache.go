package resolver

import "sync"

// cache is a thread-safe bounded result cache with FIFO eviction: when
// full, the oldest inserted entry is dropped regardless of access
// recency.
type cache struct {
	mu       sync.RWMutex
	entries  map[string]Resolution
	order    []string
	capacity int
	metrics  *Metrics
}

func newCache(capacity int, metrics *Metrics) *cache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &cache{
		entries:  make(map[string]Resolution, capacity),
		capacity: capacity,
		metrics:  metrics,
	}
}

func (c *cache) get(key string) (Resolution, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.entries[key]
	if c.metrics != nil {
		if ok {
			c.metrics.CacheHitsTotal.Inc()
		} else {
			c.metrics.CacheMissesTotal.Inc()
		}
	}
	return res, ok
}

func (c *cache) set(key string, res Resolution) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; !exists {
		if len(c.order) >= c.capacity {
			oldest := c.order[0]
			c.order = c.order[1:]
			delete(c.entries, oldest)
		}
		c.order = append(c.order, key)
	}
	c.entries[key] = res

	if c.metrics != nil {
		c.metrics.CacheSize.Set(float64(len(c.entries)))
	}
}

func (c *cache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]Resolution, c.capacity)
	c.order = c.order[:0]
	if c.metrics != nil {
		c.metrics.CacheSize.Set(0)
	}
}

func (c *cache) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
