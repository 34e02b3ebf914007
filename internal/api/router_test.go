package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/edchristie03/tube-map/internal/adapters/cache"
	"github.com/edchristie03/tube-map/internal/api/dto"
	"github.com/edchristie03/tube-map/internal/domain"
	"github.com/edchristie03/tube-map/internal/services"
)

func testNetwork() *domain.Network {
	network := domain.NewNetwork()
	network.Stations["1"] = &domain.Station{ID: "1", Name: "Brixton", Zones: []int{2}}
	network.Stations["2"] = &domain.Station{ID: "2", Name: "Stockwell", Zones: []int{2}}
	network.Stations["3"] = &domain.Station{ID: "3", Name: "Vauxhall", Zones: []int{1, 2}}
	network.Lines["11"] = &domain.Line{ID: "11", Name: "Victoria Line"}
	network.Connections = []*domain.Connection{
		{Stations: [2]*domain.Station{network.Stations["1"], network.Stations["2"]}, Line: network.Lines["11"], Time: 2},
		{Stations: [2]*domain.Station{network.Stations["2"], network.Stations["3"]}, Line: network.Lines["11"], Time: 1},
	}
	return network
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	network := testNetwork()
	finder := services.NewPathFinder(network, nil)
	router := NewRouter(network, finder, cache.NewMemoryRouteCache(16, time.Minute))

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)
}

func TestStationsEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/stations")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.ListStationsResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	require.Len(t, body.Stations, 3)
	require.Equal(t, "Brixton", body.Stations[0].Name)
	require.Equal(t, "Stockwell", body.Stations[1].Name)
	require.Equal(t, "Vauxhall", body.Stations[2].Name)
}

func TestRouteEndpoint(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Get(srv.URL + "/route?from=Brixton&to=Vauxhall")
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusOK, res.StatusCode)

	var body dto.RouteResponse
	require.NoError(t, json.NewDecoder(res.Body).Decode(&body))

	require.Equal(t, 3, body.TotalMinutes)
	require.Len(t, body.Stations, 3)
	require.Equal(t, "Brixton", body.Stations[0].Name)
	require.Equal(t, "Stockwell", body.Stations[1].Name)
	require.Equal(t, "Vauxhall", body.Stations[2].Name)

	// A second identical query is served from the cache with the same body.
	res2, err := http.Get(srv.URL + "/route?from=Brixton&to=Vauxhall")
	require.NoError(t, err)
	defer res2.Body.Close()

	require.Equal(t, http.StatusOK, res2.StatusCode)

	var cached dto.RouteResponse
	require.NoError(t, json.NewDecoder(res2.Body).Decode(&cached))
	require.Equal(t, body, cached)
}

func TestRouteEndpointErrors(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		name string
		url  string
		want int
	}{
		{name: "missing params", url: "/route?from=Brixton", want: http.StatusBadRequest},
		{name: "unknown station", url: "/route?from=Brixton&to=Narnia", want: http.StatusNotFound},
		{name: "same station trivial route", url: "/route?from=Brixton&to=Brixton", want: http.StatusOK},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := http.Get(srv.URL + tc.url)
			require.NoError(t, err)
			defer res.Body.Close()

			require.Equal(t, tc.want, res.StatusCode)
		})
	}
}

func TestRouteEndpointRejectsWrongMethod(t *testing.T) {
	srv := newTestServer(t)

	res, err := http.Post(srv.URL+"/route?from=Brixton&to=Vauxhall", "application/json", nil)
	require.NoError(t, err)
	defer res.Body.Close()

	require.Equal(t, http.StatusMethodNotAllowed, res.StatusCode)
}
