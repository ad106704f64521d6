package compact

import (
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/vadim-frolov/serde-compact/schema"
)

// Cache memoizes tables by schema structure. Concurrent first requests for
// the same schema share a single computation; later requests are served from
// memory. Schemas with identical structure share one table.
type Cache struct {
	group  singleflight.Group
	mu     sync.RWMutex
	tables map[[32]byte]*Table
	builds atomic.Int64
	logger Logger
}

// CacheOption configures a Cache.
type CacheOption func(*Cache)

// WithLogger sets the logger used for cache events.
func WithLogger(l Logger) CacheOption {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCache creates an empty Cache.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{
		tables: make(map[[32]byte]*Table),
		logger: NopLogger{},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the table for s, compacting it on first use.
func (c *Cache) Get(s *schema.Schema) (*Table, error) {
	key := schema.Sum(s)

	if t, ok := c.lookup(key); ok {
		c.logger.Debug("compact: cache hit", "fingerprint", t.Fingerprint())
		return t, nil
	}

	v, err, shared := c.group.Do(string(key[:]), func() (any, error) {
		// A previous flight may have finished between lookup and Do.
		if t, ok := c.lookup(key); ok {
			return t, nil
		}

		t, err := Compact(s)
		if err != nil {
			return nil, err
		}

		c.builds.Add(1)

		c.mu.Lock()
		c.tables[key] = t
		c.mu.Unlock()

		c.logger.Info("compact: table built", "fingerprint", t.Fingerprint(), "names", t.Len())

		return t, nil
	})
	if err != nil {
		c.logger.Error("compact: schema rejected", "error", err)
		return nil, err
	}

	if shared {
		c.logger.Debug("compact: shared table build", "fingerprint", v.(*Table).Fingerprint())
	}

	return v.(*Table), nil
}

// Len returns the number of cached tables.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.tables)
}

// Builds returns how many tables the cache has computed so far.
func (c *Cache) Builds() int {
	return int(c.builds.Load())
}

func (c *Cache) lookup(key [32]byte) (*Table, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	t, ok := c.tables[key]

	return t, ok
}
