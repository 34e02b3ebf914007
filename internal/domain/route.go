package domain

// Represents one computed shortest route between two stations: the ordered
// station sequence from origin to destination and the summed travel time.
// It is immutable result data and contains no side effects.
type Route struct {
	Stations     []*Station
	TotalMinutes int
}
