package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/go-cmp/cmp"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/edchristie03/tube-map/internal/domain"
	"github.com/edchristie03/tube-map/internal/ports"
)

func sampleRoute() *domain.Route {
	return &domain.Route{
		TotalMinutes: 7,
		Stations: []*domain.Station{
			{ID: "1", Name: "Brixton", Zones: []int{2}},
			{ID: "2", Name: "Stockwell", Zones: []int{2}},
			{ID: "3", Name: "Vauxhall", Zones: []int{1, 2}},
		},
	}
}

func testRouteCache(t *testing.T, rc ports.RouteCache) {
	t.Helper()
	ctx := context.Background()

	_, hit, err := rc.Get(ctx, "Brixton", "Vauxhall")
	require.NoError(t, err)
	require.False(t, hit, "expected a miss before Put")

	want := sampleRoute()
	require.NoError(t, rc.Put(ctx, "Brixton", "Vauxhall", want))

	got, hit, err := rc.Get(ctx, "Brixton", "Vauxhall")
	require.NoError(t, err)
	require.True(t, hit)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("route mismatch (-want +got):\n%s", diff)
	}

	// Direction matters: the reverse query is a separate entry.
	_, hit, err = rc.Get(ctx, "Vauxhall", "Brixton")
	require.NoError(t, err)
	require.False(t, hit)
}

func TestMemoryRouteCache(t *testing.T) {
	testRouteCache(t, NewMemoryRouteCache(16, time.Minute))
}

func TestRedisRouteCache(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	testRouteCache(t, NewRedisRouteCache(client, time.Minute))
}

func TestRedisRouteCacheRespectsTTL(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rc := NewRedisRouteCache(client, time.Minute)
	ctx := context.Background()

	require.NoError(t, rc.Put(ctx, "Brixton", "Vauxhall", sampleRoute()))

	mr.FastForward(2 * time.Minute)

	_, hit, err := rc.Get(ctx, "Brixton", "Vauxhall")
	require.NoError(t, err)
	require.False(t, hit, "entry should have expired")
}
