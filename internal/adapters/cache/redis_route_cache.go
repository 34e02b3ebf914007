package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/edchristie03/tube-map/internal/domain"
)

// Redis-backed implementation of the RouteCache port, for deployments
// where several instances serve the same network snapshot.
type RedisRouteCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRouteCache(client *redis.Client, ttl time.Duration) *RedisRouteCache {
	return &RedisRouteCache{client: client, ttl: ttl}
}

type cachedStation struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Zones []int  `json:"zones"`
}

type cachedRoute struct {
	TotalMinutes int             `json:"total_minutes"`
	Stations     []cachedStation `json:"stations"`
}

func (c *RedisRouteCache) Get(ctx context.Context, from, to string) (*domain.Route, bool, error) {
	payload, err := c.client.Get(ctx, redisRouteKey(from, to)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis route cache: get %q->%q: %w", from, to, err)
	}

	var cached cachedRoute
	if err := json.Unmarshal(payload, &cached); err != nil {
		return nil, false, fmt.Errorf("redis route cache: decode %q->%q: %w", from, to, err)
	}

	route := &domain.Route{TotalMinutes: cached.TotalMinutes}
	for _, s := range cached.Stations {
		route.Stations = append(route.Stations, &domain.Station{ID: s.ID, Name: s.Name, Zones: s.Zones})
	}
	return route, true, nil
}

func (c *RedisRouteCache) Put(ctx context.Context, from, to string, route *domain.Route) error {
	cached := cachedRoute{
		TotalMinutes: route.TotalMinutes,
		Stations:     make([]cachedStation, 0, len(route.Stations)),
	}
	for _, s := range route.Stations {
		cached.Stations = append(cached.Stations, cachedStation{ID: s.ID, Name: s.Name, Zones: s.Zones})
	}

	payload, err := json.Marshal(cached)
	if err != nil {
		return fmt.Errorf("redis route cache: encode %q->%q: %w", from, to, err)
	}

	if err := c.client.Set(ctx, redisRouteKey(from, to), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis route cache: put %q->%q: %w", from, to, err)
	}
	return nil
}

func redisRouteKey(from, to string) string {
	return "route:" + from + "|" + to
}
