package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/edchristie03/tube-map/internal/domain"
	"github.com/edchristie03/tube-map/internal/platform/obs"
)

// SQLite-backed implementation of the NetworkRepository port.
type SqliteNetworkRepository struct{ DB *sql.DB }

func NewSqliteNetworkRepository(db *sql.DB) *SqliteNetworkRepository {
	return &SqliteNetworkRepository{DB: db}
}

// Load the full network snapshot. Connections come back in insertion
// order so that parallel-edge ordering downstream stays reproducible.
func (s *SqliteNetworkRepository) LoadNetwork(ctx context.Context) (_ *domain.Network, err error) {
	defer obs.Time(ctx, "repository.LoadNetwork")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite network repository: DB is nil")
	}

	network := domain.NewNetwork()

	if err := s.loadStations(ctx, network); err != nil {
		return nil, err
	}
	if err := s.loadLines(ctx, network); err != nil {
		return nil, err
	}
	if err := s.loadConnections(ctx, network); err != nil {
		return nil, err
	}

	return network, nil
}

func (s *SqliteNetworkRepository) loadStations(ctx context.Context, network *domain.Network) error {
	query := `
	SELECT
		station_id,
		name,
		zone
	FROM stations
	ORDER BY station_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load network: query stations table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		var zone float64
		if err := rows.Scan(&id, &name, &zone); err != nil {
			return fmt.Errorf("load network: scan station row: %w", err)
		}
		network.Stations[id] = &domain.Station{
			ID:    id,
			Name:  name,
			Zones: domain.ZonesFromFloat(zone),
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load network: station row iteration: %w", err)
	}

	return nil
}

func (s *SqliteNetworkRepository) loadLines(ctx context.Context, network *domain.Network) error {
	query := `
	SELECT
		line_id,
		name
	FROM lines
	ORDER BY line_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load network: query lines table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, name string
		if err := rows.Scan(&id, &name); err != nil {
			return fmt.Errorf("load network: scan line row: %w", err)
		}
		network.Lines[id] = &domain.Line{ID: id, Name: name}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load network: line row iteration: %w", err)
	}

	return nil
}

func (s *SqliteNetworkRepository) loadConnections(ctx context.Context, network *domain.Network) error {
	query := `
	SELECT
		station1_id,
		station2_id,
		line_id,
		time_minutes
	FROM connections
	ORDER BY connection_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("load network: query connections table: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var station1ID, station2ID, lineID string
		var minutes int
		if err := rows.Scan(&station1ID, &station2ID, &lineID, &minutes); err != nil {
			return fmt.Errorf("load network: scan connection row: %w", err)
		}

		station1, ok := network.Stations[station1ID]
		if !ok {
			return fmt.Errorf("load network: connection references unknown station %q", station1ID)
		}
		station2, ok := network.Stations[station2ID]
		if !ok {
			return fmt.Errorf("load network: connection references unknown station %q", station2ID)
		}
		line, ok := network.Lines[lineID]
		if !ok {
			return fmt.Errorf("load network: connection references unknown line %q", lineID)
		}

		network.Connections = append(network.Connections, &domain.Connection{
			Stations: [2]*domain.Station{station1, station2},
			Line:     line,
			Time:     minutes,
		})
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("load network: connection row iteration: %w", err)
	}

	return nil
}
