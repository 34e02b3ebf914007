package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bluele/gcache"

	"github.com/edchristie03/tube-map/internal/domain"
)

// In-process LRU implementation of the RouteCache port. The network is
// static for the lifetime of the process, so cached routes never go stale;
// the TTL only bounds memory on rarely repeated queries.
type MemoryRouteCache struct {
	cache gcache.Cache
}

func NewMemoryRouteCache(size int, ttl time.Duration) *MemoryRouteCache {
	builder := gcache.New(size).LRU()
	if ttl > 0 {
		builder = builder.Expiration(ttl)
	}
	return &MemoryRouteCache{cache: builder.Build()}
}

func (c *MemoryRouteCache) Get(_ context.Context, from, to string) (*domain.Route, bool, error) {
	value, err := c.cache.Get(routeKey(from, to))
	if err != nil {
		if errors.Is(err, gcache.KeyNotFoundError) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("memory route cache: get %q->%q: %w", from, to, err)
	}

	route, ok := value.(*domain.Route)
	if !ok {
		return nil, false, nil
	}
	return route, true, nil
}

func (c *MemoryRouteCache) Put(_ context.Context, from, to string, route *domain.Route) error {
	if err := c.cache.Set(routeKey(from, to), route); err != nil {
		return fmt.Errorf("memory route cache: put %q->%q: %w", from, to, err)
	}
	return nil
}

func routeKey(from, to string) string {
	return from + "|" + to
}
