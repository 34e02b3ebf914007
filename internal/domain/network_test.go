package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestZonesFromFloat(t *testing.T) {
	tests := []struct {
		zone float64
		want []int
	}{
		{zone: 1, want: []int{1}},
		{zone: 4, want: []int{4}},
		{zone: 2.5, want: []int{2, 3}},
		{zone: 1.5, want: []int{1, 2}},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ZonesFromFloat(tc.zone), "zone %v", tc.zone)
	}
}

func TestStationInZone(t *testing.T) {
	station := &Station{ID: "1", Name: "Vauxhall", Zones: []int{1, 2}}

	require.True(t, station.InZone(1))
	require.True(t, station.InZone(2))
	require.False(t, station.InZone(3))
}

func TestConnectionOther(t *testing.T) {
	oval := &Station{ID: "1", Name: "Oval"}
	stockwell := &Station{ID: "2", Name: "Stockwell"}
	conn := &Connection{Stations: [2]*Station{oval, stockwell}, Time: 2}

	require.Same(t, stockwell, conn.Other("1"))
	require.Same(t, oval, conn.Other("2"))
	require.Nil(t, conn.Other("9"))
}

func TestStationByNamePrefersSmallestID(t *testing.T) {
	network := NewNetwork()
	network.Stations["7"] = &Station{ID: "7", Name: "Edgware Road"}
	network.Stations["3"] = &Station{ID: "3", Name: "Edgware Road"}
	network.Stations["5"] = &Station{ID: "5", Name: "Paddington"}

	require.Equal(t, "3", network.StationByName("Edgware Road").ID)
	require.Equal(t, "5", network.StationByName("Paddington").ID)
	require.Nil(t, network.StationByName("Narnia"))
}
