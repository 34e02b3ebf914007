package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/edchristie03/tube-map/internal/api/handlers"
	"github.com/edchristie03/tube-map/internal/domain"
	"github.com/edchristie03/tube-map/internal/ports"
	"github.com/edchristie03/tube-map/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
// routeCache may be nil to disable response caching.
func NewRouter(network *domain.Network, finder *services.PathFinder, routeCache ports.RouteCache) http.Handler {
	r := mux.NewRouter()

	stationHandler := &handlers.StationHandler{Network: network}
	routeHandler := &handlers.RouteHandler{
		Finder: finder,
		Cache:  routeCache,
	}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/stations", stationHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/route", routeHandler.Get).Methods(http.MethodGet)

	return loggingMiddleware(r)
}
