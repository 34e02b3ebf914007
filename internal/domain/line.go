package domain

// Represents a named service line (e.g. "Piccadilly Line").
// Lines are attached to connections for presentation purposes; travel time
// lives on the connection itself, so lines play no part in route costing.
type Line struct {
	ID   string
	Name string
}
