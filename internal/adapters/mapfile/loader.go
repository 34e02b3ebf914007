// Package mapfile parses the JSON transit map description (stations, lines
// and timed connections) into the in-memory domain.Network consumed by the
// routing core.
package mapfile

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/edchristie03/tube-map/internal/domain"
)

// The published map data quotes most numeric fields ("time": "2",
// "zone": "2.5"); flexValue accepts both quoted and bare numbers.
type flexValue string

func (v *flexValue) UnmarshalJSON(b []byte) error {
	*v = flexValue(strings.Trim(strings.TrimSpace(string(b)), `"`))
	return nil
}

type stationRecord struct {
	ID   string    `json:"id"`
	Name string    `json:"name"`
	Zone flexValue `json:"zone"`
}

type lineRecord struct {
	Line string `json:"line"`
	Name string `json:"name"`
}

type connectionRecord struct {
	Station1 string    `json:"station1"`
	Station2 string    `json:"station2"`
	Line     string    `json:"line"`
	Time     flexValue `json:"time"`
}

type mapDocument struct {
	Stations    []stationRecord    `json:"stations"`
	Lines       []lineRecord       `json:"lines"`
	Connections []connectionRecord `json:"connections"`
}

// LoadNetwork reads and parses a map description file.
func LoadNetwork(path string) (*domain.Network, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load network: read %q: %w", path, err)
	}

	network, err := ParseNetwork(data)
	if err != nil {
		return nil, fmt.Errorf("load network: %q: %w", path, err)
	}
	return network, nil
}

// ParseNetwork builds a domain.Network from raw map JSON. Connections keep
// their document order. Unlike graph construction, loading is strict: any
// unresolvable reference or invalid field is an error.
func ParseNetwork(data []byte) (*domain.Network, error) {
	var doc mapDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse network: decode json: %w", err)
	}

	network := domain.NewNetwork()

	for i, rec := range doc.Stations {
		if rec.ID == "" || strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("parse network: station #%d is missing id or name", i+1)
		}

		zone, err := strconv.ParseFloat(string(rec.Zone), 64)
		if err != nil || zone <= 0 {
			return nil, fmt.Errorf("parse network: station %q has invalid zone %q", rec.ID, rec.Zone)
		}

		network.Stations[rec.ID] = &domain.Station{
			ID:    rec.ID,
			Name:  strings.TrimSpace(rec.Name),
			Zones: domain.ZonesFromFloat(zone),
		}
	}

	for i, rec := range doc.Lines {
		if rec.Line == "" || strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("parse network: line #%d is missing id or name", i+1)
		}
		network.Lines[rec.Line] = &domain.Line{ID: rec.Line, Name: strings.TrimSpace(rec.Name)}
	}

	for i, rec := range doc.Connections {
		station1, ok := network.Stations[rec.Station1]
		if !ok {
			return nil, fmt.Errorf("parse network: connection #%d references unknown station %q", i+1, rec.Station1)
		}
		station2, ok := network.Stations[rec.Station2]
		if !ok {
			return nil, fmt.Errorf("parse network: connection #%d references unknown station %q", i+1, rec.Station2)
		}
		line, ok := network.Lines[rec.Line]
		if !ok {
			return nil, fmt.Errorf("parse network: connection #%d references unknown line %q", i+1, rec.Line)
		}

		minutes, err := strconv.Atoi(string(rec.Time))
		if err != nil || minutes < 0 {
			return nil, fmt.Errorf("parse network: connection #%d has invalid time %q", i+1, rec.Time)
		}

		network.Connections = append(network.Connections, &domain.Connection{
			Stations: [2]*domain.Station{station1, station2},
			Line:     line,
			Time:     minutes,
		})
	}

	return network, nil
}
