package services

import (
	"container/heap"
	"fmt"
	"log/slog"

	"github.com/edchristie03/tube-map/internal/domain"
)

// PathFinder answers shortest-time route queries against one immutable
// network snapshot. The neighbour graph and the name index are built once
// at construction; every query allocates its own search state, so a single
// PathFinder is safe for concurrent read-only use. A changed network needs
// a fresh PathFinder.
type PathFinder struct {
	network   *domain.Network
	graph     NeighbourGraph
	idsByName map[string]string
	logger    *slog.Logger
}

// NewPathFinder binds a finder to the given network snapshot and eagerly
// builds its neighbour graph. A nil logger falls back to slog.Default().
func NewPathFinder(network *domain.Network, logger *slog.Logger) *PathFinder {
	if logger == nil {
		logger = slog.Default()
	}

	return &PathFinder{
		network:   network,
		graph:     BuildNeighbourGraph(network),
		idsByName: buildNameIndex(network),
		logger:    logger,
	}
}

// buildNameIndex maps display names to station IDs. Display names are
// assumed practically unique; duplicates resolve to the lexicographically
// smallest ID so lookups stay deterministic across runs.
func buildNameIndex(network *domain.Network) map[string]string {
	index := make(map[string]string)
	if network == nil {
		return index
	}

	for id, station := range network.Stations {
		if existing, ok := index[station.Name]; ok && existing < id {
			continue
		}
		index[station.Name] = id
	}

	return index
}

// GetShortestPath returns the stations on one minimum-time path from
// startName to endName, inclusive of both endpoints, or nil when no such
// path exists. Failure is always soft: an unresolvable network, an unknown
// station name, and a disconnected station pair all yield nil.
//
// Querying a station against itself returns a single-element path without
// running the search.
func (f *PathFinder) GetShortestPath(startName, endName string) []*domain.Station {
	if len(f.graph) == 0 {
		f.logger.Warn("shortest path: network graph is empty, no route computable")
		return nil
	}

	startID, ok := f.idsByName[startName]
	if !ok {
		f.logger.Warn("shortest path: unknown start station", "name", startName)
		return nil
	}
	endID, ok := f.idsByName[endName]
	if !ok {
		f.logger.Warn("shortest path: unknown end station", "name", endName)
		return nil
	}

	if startID == endID {
		return []*domain.Station{f.network.Stations[startID]}
	}

	ids := f.runDijkstra(startID, endID)
	if ids == nil {
		f.logger.Info("shortest path: no route between stations",
			"start", startName, "end", endName)
		return nil
	}

	path := make([]*domain.Station, 0, len(ids))
	for _, id := range ids {
		path = append(path, f.network.Stations[id])
	}
	return path
}

// runDijkstra performs a single-source shortest-path search from startID,
// stopping early once endID is finalized, and returns the station IDs on
// the path in start-to-end order, or nil when endID is unreachable.
//
// The frontier is a min-heap with lazy deletion; absence from the distance
// table stands in for infinite distance. The weight of a hop is the
// minimum travel time over all parallel connections between its endpoints.
// Equal-distance ties break toward the smaller station ID.
func (f *PathFinder) runDijkstra(startID, endID string) []string {
	dist := map[string]int{startID: 0}
	prev := make(map[string]string)
	visited := make(map[string]bool)

	frontier := &stationQueue{{stationID: startID}}
	heap.Init(frontier)

	for frontier.Len() > 0 {
		current := heap.Pop(frontier).(*stationEntry)
		if visited[current.stationID] {
			continue
		}
		if current.stationID == endID {
			break
		}
		visited[current.stationID] = true

		for neighbourID, connections := range f.graph[current.stationID] {
			if visited[neighbourID] {
				continue
			}

			candidate := dist[current.stationID] + minConnectionTime(connections)
			if best, known := dist[neighbourID]; known && candidate >= best {
				continue
			}

			dist[neighbourID] = candidate
			prev[neighbourID] = current.stationID
			heap.Push(frontier, &stationEntry{stationID: neighbourID, dist: candidate})
		}
	}

	if _, reached := dist[endID]; !reached {
		return nil
	}

	return reconstructPath(prev, startID, endID)
}

// reconstructPath walks predecessors backward from endID and reverses the
// result into start-to-end order.
func reconstructPath(prev map[string]string, startID, endID string) []string {
	ids := []string{endID}
	for current := endID; current != startID; {
		parent, ok := prev[current]
		if !ok {
			return nil
		}
		current = parent
		ids = append(ids, current)
	}

	for i, j := 0, len(ids)-1; i < j; i, j = i+1, j-1 {
		ids[i], ids[j] = ids[j], ids[i]
	}
	return ids
}

// PathDuration sums the cheapest parallel connection along each hop of a
// path previously returned by GetShortestPath.
func (f *PathFinder) PathDuration(path []*domain.Station) (int, error) {
	total := 0
	for i := 1; i < len(path); i++ {
		from, to := path[i-1], path[i]
		connections := f.graph[from.ID][to.ID]
		if len(connections) == 0 {
			return 0, fmt.Errorf("path duration: no connection between %q and %q", from.ID, to.ID)
		}
		total += minConnectionTime(connections)
	}
	return total, nil
}

func minConnectionTime(connections []*domain.Connection) int {
	best := connections[0].Time
	for _, c := range connections[1:] {
		if c.Time < best {
			best = c.Time
		}
	}
	return best
}

type stationEntry struct {
	stationID string
	dist      int
}

type stationQueue []*stationEntry

func (q stationQueue) Len() int { return len(q) }

func (q stationQueue) Less(i, j int) bool {
	if q[i].dist != q[j].dist {
		return q[i].dist < q[j].dist
	}
	return q[i].stationID < q[j].stationID
}

func (q stationQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *stationQueue) Push(x any) { *q = append(*q, x.(*stationEntry)) }

func (q *stationQueue) Pop() any {
	old := *q
	n := len(old)
	entry := old[n-1]
	*q = old[:n-1]
	return entry
}
