package domain

// Represents an undirected, weighted link between two distinct stations on
// one line. Multiple connections may exist for the same station pair
// (different lines, or the same line with different scheduled times); each
// is a distinct edge and must never be merged with its parallels.
type Connection struct {
	Stations [2]*Station
	Line     *Line
	Time     int // travel time in whole minutes, never negative
}

// Other returns the station on the opposite end of the connection from the
// given station ID, or nil if the ID is on neither end.
func (c *Connection) Other(stationID string) *Station {
	switch {
	case c.Stations[0] != nil && c.Stations[0].ID == stationID:
		return c.Stations[1]
	case c.Stations[1] != nil && c.Stations[1].ID == stationID:
		return c.Stations[0]
	}
	return nil
}
