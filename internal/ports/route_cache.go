package ports

import (
	"context"

	"github.com/edchristie03/tube-map/internal/domain"
)

// Port: a cache for computed routes, keyed by origin and destination
// station name. A miss is not an error; Get reports it through the bool.
type RouteCache interface {
	Get(ctx context.Context, from, to string) (*domain.Route, bool, error)
	Put(ctx context.Context, from, to string, route *domain.Route) error
}
