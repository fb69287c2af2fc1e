package ephemeris

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"starluck/internal/astro"
	"starluck/internal/types"
)

type cacheKey struct {
	body types.Body
	jd   float64
}

// Cache memoizes positions of a wrapped provider. It holds at most size
// entries and evicts the least recently used first. Errors are never cached.
type Cache struct {
	provider Provider
	entries  *lru.Cache[cacheKey, types.BodyPosition]

	hits   atomic.Uint64
	misses atomic.Uint64
}

// NewCache wraps provider with a cache of size entries
func NewCache(provider Provider, size int) (*Cache, error) {
	entries, err := lru.New[cacheKey, types.BodyPosition](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create position cache: %w", err)
	}
	return &Cache{
		provider: provider,
		entries:  entries,
	}, nil
}

func (c *Cache) Name() string {
	return c.provider.Name()
}

func (c *Cache) Position(body types.Body, at astro.Instant) (types.BodyPosition, error) {
	key := cacheKey{body: body, jd: at.JulianDay}

	if pos, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return pos, nil
	}

	c.misses.Add(1)
	pos, err := c.provider.Position(body, at)
	if err != nil {
		return types.BodyPosition{}, err
	}
	c.entries.Add(key, pos)
	return pos, nil
}

// Len returns the number of cached positions
func (c *Cache) Len() int {
	return c.entries.Len()
}

// Hits returns the number of lookups served from the cache
func (c *Cache) Hits() uint64 {
	return c.hits.Load()
}

// Misses returns the number of lookups forwarded to the wrapped provider
func (c *Cache) Misses() uint64 {
	return c.misses.Load()
}
