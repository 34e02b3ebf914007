package handlers

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/edchristie03/tube-map/internal/api/dto"
	"github.com/edchristie03/tube-map/internal/domain"
	"github.com/edchristie03/tube-map/internal/platform/obs"
	"github.com/edchristie03/tube-map/internal/ports"
	"github.com/edchristie03/tube-map/internal/services"
)

type RouteHandler struct {
	Finder *services.PathFinder
	Cache  ports.RouteCache // optional
}

// Get answers a shortest-route query between two named stations.
// Unknown stations and disconnected pairs both come back as 404: the
// routing core deliberately collapses every failure into "no route".
func (h *RouteHandler) Get(w http.ResponseWriter, r *http.Request) {
	from := strings.TrimSpace(r.URL.Query().Get("from"))
	to := strings.TrimSpace(r.URL.Query().Get("to"))
	if from == "" || to == "" {
		writeError(w, r, http.StatusBadRequest, "from and to query parameters are required")
		return
	}

	ctx := r.Context()

	if h.Cache != nil {
		route, hit, err := h.Cache.Get(ctx, from, to)
		if err != nil {
			slog.Warn("route cache lookup failed", "from", from, "to", to, "err", err)
		} else if hit {
			writeJSON(w, r, http.StatusOK, routeResponse(from, to, route))
			return
		}
	}

	route, err := h.computeRoute(ctx, from, to)
	if err != nil {
		slog.Error("route computation failed", "from", from, "to", to, "err", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}
	if route == nil {
		writeError(w, r, http.StatusNotFound, "no route found")
		return
	}

	if h.Cache != nil {
		if err := h.Cache.Put(ctx, from, to, route); err != nil {
			slog.Warn("route cache store failed", "from", from, "to", to, "err", err)
		}
	}

	writeJSON(w, r, http.StatusOK, routeResponse(from, to, route))
}

func (h *RouteHandler) computeRoute(ctx context.Context, from, to string) (_ *domain.Route, err error) {
	defer obs.Time(ctx, "routes.computeRoute")(&err)

	path := h.Finder.GetShortestPath(from, to)
	if path == nil {
		return nil, nil
	}

	total, err := h.Finder.PathDuration(path)
	if err != nil {
		return nil, fmt.Errorf("compute route: %w", err)
	}

	return &domain.Route{Stations: path, TotalMinutes: total}, nil
}

func routeResponse(from, to string, route *domain.Route) dto.RouteResponse {
	res := dto.RouteResponse{
		From:         from,
		To:           to,
		TotalMinutes: route.TotalMinutes,
		Stations:     make([]dto.StationResponse, 0, len(route.Stations)),
	}
	for _, s := range route.Stations {
		res.Stations = append(res.Stations, stationResponse(s))
	}
	return res
}
