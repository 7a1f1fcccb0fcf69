package semantic

import "sync"

// DefaultCacheCapacity bounds the query embedding cache.
const DefaultCacheCapacity = 100

// QueryCache memoizes query embeddings so repeated queries skip the
// embedding call. Eviction is strictly insertion order: when full, the
// oldest entry goes regardless of how recently it was read.
type QueryCache struct {
	mu       sync.Mutex
	capacity int
	entries  map[string][]float32
	order    []string
}

// NewQueryCache creates a cache holding up to capacity embeddings.
// Non-positive capacities fall back to DefaultCacheCapacity.
func NewQueryCache(capacity int) *QueryCache {
	if capacity <= 0 {
		capacity = DefaultCacheCapacity
	}
	return &QueryCache{
		capacity: capacity,
		entries:  make(map[string][]float32, capacity),
	}
}

// Get returns the cached embedding for a query, if present.
func (c *QueryCache) Get(query string) ([]float32, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	embedding, ok := c.entries[query]
	return embedding, ok
}

// Put stores an embedding, evicting the oldest entry when full.
// Re-inserting an existing query updates the value without changing its
// position in the eviction order.
func (c *QueryCache) Put(query string, embedding []float32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[query]; ok {
		c.entries[query] = embedding
		return
	}

	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[query] = embedding
	c.order = append(c.order, query)
}

// Len returns the number of cached embeddings.
func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
