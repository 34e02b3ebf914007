package ports

import (
	"context"

	"github.com/edchristie03/tube-map/internal/domain"
)

// Port: a boundary for loading a transit network snapshot from a data source.
type NetworkRepository interface {
	// Load the full network: stations, lines and connections.
	LoadNetwork(ctx context.Context) (*domain.Network, error)
}
