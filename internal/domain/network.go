package domain

// Network is an immutable in-memory snapshot of the transit network: every
// station and line keyed by identifier, plus the flat list of connections
// between stations in load order. It is the input consumed by the graph
// builder and the path finder; queries never mutate it, and reflecting a
// changed network means loading a fresh snapshot.
type Network struct {
	Stations    map[string]*Station
	Lines       map[string]*Line
	Connections []*Connection
}

// NewNetwork returns an empty network ready to be populated by a loader.
func NewNetwork() *Network {
	return &Network{
		Stations: make(map[string]*Station),
		Lines:    make(map[string]*Line),
	}
}

// StationByName returns the station with the given display name.
// Display names are assumed practically unique; when duplicates exist the
// station with the lexicographically smallest ID wins, so resolution stays
// deterministic across runs.
func (n *Network) StationByName(name string) *Station {
	var found *Station
	for _, s := range n.Stations {
		if s.Name != name {
			continue
		}
		if found == nil || s.ID < found.ID {
			found = s
		}
	}
	return found
}
