package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/edchristie03/tube-map/internal/domain"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "network.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, InitSchema(db))
	return db
}

func TestSeedAndLoadNetworkRoundTrip(t *testing.T) {
	db := openTestDB(t)

	seed := domain.NewNetwork()
	seed.Stations["1"] = &domain.Station{ID: "1", Name: "Brixton", Zones: []int{2}}
	seed.Stations["2"] = &domain.Station{ID: "2", Name: "Stockwell", Zones: []int{2}}
	seed.Stations["3"] = &domain.Station{ID: "3", Name: "Vauxhall", Zones: []int{1, 2}}
	seed.Lines["11"] = &domain.Line{ID: "11", Name: "Victoria Line"}
	seed.Lines["10"] = &domain.Line{ID: "10", Name: "Northern Line"}
	seed.Connections = []*domain.Connection{
		{Stations: [2]*domain.Station{seed.Stations["1"], seed.Stations["2"]}, Line: seed.Lines["11"], Time: 2},
		{Stations: [2]*domain.Station{seed.Stations["2"], seed.Stations["3"]}, Line: seed.Lines["11"], Time: 1},
		{Stations: [2]*domain.Station{seed.Stations["2"], seed.Stations["3"]}, Line: seed.Lines["10"], Time: 3},
	}

	require.NoError(t, SeedNetwork(db, seed))

	repo := NewSqliteNetworkRepository(db)
	network, err := repo.LoadNetwork(context.Background())
	require.NoError(t, err)

	require.Len(t, network.Stations, 3)
	require.Len(t, network.Lines, 2)
	require.Len(t, network.Connections, 3)

	// Boundary zone survives the round trip.
	require.Equal(t, []int{1, 2}, network.Stations["3"].Zones)

	// Insertion order is preserved, parallel edges stay distinct.
	require.Equal(t, "Victoria Line", network.Connections[1].Line.Name)
	require.Equal(t, "Northern Line", network.Connections[2].Line.Name)
	require.Equal(t, 1, network.Connections[1].Time)
	require.Equal(t, 3, network.Connections[2].Time)
}

func TestSeedNetworkReplacesConnections(t *testing.T) {
	db := openTestDB(t)

	seed := domain.NewNetwork()
	seed.Stations["1"] = &domain.Station{ID: "1", Name: "Oval", Zones: []int{2}}
	seed.Stations["2"] = &domain.Station{ID: "2", Name: "Kennington", Zones: []int{2}}
	seed.Lines["10"] = &domain.Line{ID: "10", Name: "Northern Line"}
	seed.Connections = []*domain.Connection{
		{Stations: [2]*domain.Station{seed.Stations["1"], seed.Stations["2"]}, Line: seed.Lines["10"], Time: 2},
	}

	require.NoError(t, SeedNetwork(db, seed))
	require.NoError(t, SeedNetwork(db, seed))

	repo := NewSqliteNetworkRepository(db)
	network, err := repo.LoadNetwork(context.Background())
	require.NoError(t, err)

	// Re-seeding must not duplicate connections.
	require.Len(t, network.Connections, 1)
}

func TestLoadNetworkEmptyDatabase(t *testing.T) {
	db := openTestDB(t)

	repo := NewSqliteNetworkRepository(db)
	network, err := repo.LoadNetwork(context.Background())
	require.NoError(t, err)

	require.Empty(t, network.Stations)
	require.Empty(t, network.Connections)
}
