package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/edchristie03/tube-map/internal/adapters/mapfile"
	"github.com/edchristie03/tube-map/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		station_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		zone REAL NOT NULL
	);
	`

	createLinesQuery := `
	CREATE TABLE IF NOT EXISTS lines (
		line_id TEXT PRIMARY KEY,
		name TEXT NOT NULL
	);
	`

	createConnectionsQuery := `
	CREATE TABLE IF NOT EXISTS connections (
		connection_id INTEGER PRIMARY KEY AUTOINCREMENT,
		station1_id TEXT NOT NULL REFERENCES stations(station_id),
		station2_id TEXT NOT NULL REFERENCES stations(station_id),
		line_id TEXT NOT NULL REFERENCES lines(line_id),
		time_minutes INTEGER NOT NULL
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_connections_station_pair
	ON connections(station1_id, station2_id);
	`

	statements := []string{
		createStationsQuery,
		createLinesQuery,
		createConnectionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database from a JSON map description file.
func SeedFromJSON(db *sql.DB, mapPath string) error {
	network, err := mapfile.LoadNetwork(mapPath)
	if err != nil {
		return fmt.Errorf("seed network: %w", err)
	}

	if err := SeedNetwork(db, network); err != nil {
		return fmt.Errorf("seed network: %w", err)
	}

	return nil
}

// Replace the stored network with the given snapshot in one transaction.
func SeedNetwork(db *sql.DB, network *domain.Network) error {
	if db == nil {
		return errors.New("seed network: DB is nil")
	}
	if network == nil {
		return errors.New("seed network: network is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Connections are keyed by insertion order, so clear them before
	// re-seeding instead of upserting.
	if _, err := tx.Exec(`DELETE FROM connections;`); err != nil {
		return fmt.Errorf("seed network: clear connections: %w", err)
	}

	stationStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO stations (station_id, name, zone)
	VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare station insert: %w", err)
	}
	defer stationStmt.Close()

	for _, station := range network.Stations {
		if _, err := stationStmt.Exec(station.ID, station.Name, zoneValue(station.Zones)); err != nil {
			return fmt.Errorf("seed network: insert station %q: %w", station.ID, err)
		}
	}

	lineStmt, err := tx.Prepare(`
	INSERT OR REPLACE INTO lines (line_id, name)
	VALUES (?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare line insert: %w", err)
	}
	defer lineStmt.Close()

	for _, line := range network.Lines {
		if _, err := lineStmt.Exec(line.ID, line.Name); err != nil {
			return fmt.Errorf("seed network: insert line %q: %w", line.ID, err)
		}
	}

	connStmt, err := tx.Prepare(`
	INSERT INTO connections (station1_id, station2_id, line_id, time_minutes)
	VALUES (?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("seed network: prepare connection insert: %w", err)
	}
	defer connStmt.Close()

	for i, conn := range network.Connections {
		_, err := connStmt.Exec(conn.Stations[0].ID, conn.Stations[1].ID, conn.Line.ID, conn.Time)
		if err != nil {
			return fmt.Errorf("seed network: insert connection #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed network: commit tx: %w", err)
	}

	return nil
}

// zoneValue folds a zone set back into the source encoding: a boundary
// station in zones {n, n+1} round-trips as n.5.
func zoneValue(zones []int) float64 {
	if len(zones) == 2 {
		return float64(zones[0]) + 0.5
	}
	if len(zones) == 1 {
		return float64(zones[0])
	}
	return 0
}
