package domain

// Represents a single station in the transit network.
// A Station has a stable unique identifier, a display name shown to
// travellers, and the set of fare zones it belongs to. A station that
// straddles a zone boundary is a member of both zones. Stations are
// immutable once the network has been loaded.
type Station struct {
	ID    string
	Name  string
	Zones []int
}

// InZone reports whether the station belongs to the given fare zone.
func (s *Station) InZone(zone int) bool {
	for _, z := range s.Zones {
		if z == zone {
			return true
		}
	}
	return false
}

// ZonesFromFloat expands a source zone value into the set of zones it
// denotes. Whole values map to a single zone; a fractional value such as
// 2.5 marks a boundary station belonging to zones 2 and 3.
func ZonesFromFloat(zone float64) []int {
	lower := int(zone)
	if zone == float64(lower) {
		return []int{lower}
	}
	return []int{lower, lower + 1}
}
