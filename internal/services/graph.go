package services

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/edchristie03/tube-map/internal/domain"
)

// NeighbourGraph maps a station ID to its neighbours, and each neighbour to
// the list of connections realizing that adjacency. Parallel connections
// between the same pair accumulate in input order instead of overwriting
// each other. The graph is symmetric: every connection appears once under
// each of its two endpoints.
type NeighbourGraph map[string]map[string][]*domain.Connection

// BuildNeighbourGraph converts a network's flat connection list into a
// NeighbourGraph. Each connection is inserted twice, once per direction.
//
// A structurally invalid network (a connection that does not resolve to two
// distinct known stations, or carries a negative travel time) yields an
// empty graph rather than an error: callers treat an empty graph as "no
// route is computable". The input is never mutated.
func BuildNeighbourGraph(network *domain.Network) NeighbourGraph {
	graph := make(NeighbourGraph)

	if network == nil {
		slog.Warn("graph build: nil network, returning empty graph")
		return graph
	}

	for i, conn := range network.Connections {
		if err := validateConnection(network, conn); err != nil {
			slog.Warn("graph build: malformed network, returning empty graph",
				"connection_index", i, "err", err)
			return make(NeighbourGraph)
		}

		a, b := conn.Stations[0], conn.Stations[1]
		addNeighbour(graph, a.ID, b.ID, conn)
		addNeighbour(graph, b.ID, a.ID, conn)
	}

	return graph
}

// validateConnection checks that a connection resolves to exactly two
// distinct stations registered in the network and carries a usable time.
func validateConnection(network *domain.Network, conn *domain.Connection) error {
	if conn == nil {
		return errors.New("connection is nil")
	}

	a, b := conn.Stations[0], conn.Stations[1]
	if a == nil || b == nil {
		return errors.New("connection is missing a station")
	}
	if a.ID == "" || b.ID == "" {
		return errors.New("connection references a station without an ID")
	}
	if a.ID == b.ID {
		return fmt.Errorf("connection links station %q to itself", a.ID)
	}

	for _, s := range [2]*domain.Station{a, b} {
		if _, ok := network.Stations[s.ID]; !ok {
			return fmt.Errorf("connection references unknown station %q", s.ID)
		}
	}

	if conn.Time < 0 {
		return fmt.Errorf("connection %q-%q has negative travel time %d", a.ID, b.ID, conn.Time)
	}

	return nil
}

func addNeighbour(graph NeighbourGraph, fromID, toID string, conn *domain.Connection) {
	neighbours, ok := graph[fromID]
	if !ok {
		neighbours = make(map[string][]*domain.Connection)
		graph[fromID] = neighbours
	}
	neighbours[toID] = append(neighbours[toID], conn)
}
