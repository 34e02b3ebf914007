package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/edchristie03/tube-map/internal/adapters/mapfile"
	"github.com/edchristie03/tube-map/internal/config"
	"github.com/edchristie03/tube-map/internal/domain"
	"github.com/edchristie03/tube-map/internal/platform/db"
)

// dbtool imports a JSON map description into a shared Postgres database,
// for deployments where instances should not each carry a local SQLite file.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	mapPath := config.Get("MAP_PATH", "data/london.json")

	log.Printf("Loading map file %s...", mapPath)
	network, err := mapfile.LoadNetwork(mapPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("Loaded stations=%d lines=%d connections=%d",
		len(network.Stations), len(network.Lines), len(network.Connections))

	log.Println("Initializing database schema...")
	if err := initSchema(pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Println("Importing network...")
	if err := importNetwork(pg, network); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Println("Import complete.")
}

func initSchema(pg *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stations (
			station_id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			zone REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS lines (
			line_id TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS connections (
			connection_id SERIAL PRIMARY KEY,
			station1_id TEXT NOT NULL REFERENCES stations(station_id),
			station2_id TEXT NOT NULL REFERENCES stations(station_id),
			line_id TEXT NOT NULL REFERENCES lines(line_id),
			time_minutes INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_connections_station_pair
		ON connections(station1_id, station2_id);`,
	}

	tx, err := pg.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

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

func importNetwork(pg *sql.DB, network *domain.Network) error {
	tx, err := pg.Begin()
	if err != nil {
		return fmt.Errorf("import network: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Connection ordering is positional, so a full replace keeps the
	// import idempotent.
	if _, err := tx.Exec(`DELETE FROM connections;`); err != nil {
		return fmt.Errorf("import network: clear connections: %w", err)
	}

	stationQuery := `
	INSERT INTO stations (station_id, name, zone)
	VALUES ($1, $2, $3)
	ON CONFLICT (station_id) DO UPDATE SET name = EXCLUDED.name, zone = EXCLUDED.zone;
	`
	for _, station := range network.Stations {
		if _, err := tx.Exec(stationQuery, station.ID, station.Name, zoneValue(station.Zones)); err != nil {
			return fmt.Errorf("import network: insert station %q: %w", station.ID, err)
		}
	}

	lineQuery := `
	INSERT INTO lines (line_id, name)
	VALUES ($1, $2)
	ON CONFLICT (line_id) DO UPDATE SET name = EXCLUDED.name;
	`
	for _, line := range network.Lines {
		if _, err := tx.Exec(lineQuery, line.ID, line.Name); err != nil {
			return fmt.Errorf("import network: insert line %q: %w", line.ID, err)
		}
	}

	connQuery := `
	INSERT INTO connections (station1_id, station2_id, line_id, time_minutes)
	VALUES ($1, $2, $3, $4);
	`
	for i, conn := range network.Connections {
		_, err := tx.Exec(connQuery, conn.Stations[0].ID, conn.Stations[1].ID, conn.Line.ID, conn.Time)
		if err != nil {
			return fmt.Errorf("import network: insert connection #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("import network: commit tx: %w", err)
	}

	return nil
}

func zoneValue(zones []int) float64 {
	if len(zones) == 2 {
		return float64(zones[0]) + 0.5
	}
	if len(zones) == 1 {
		return float64(zones[0])
	}
	return 0
}
