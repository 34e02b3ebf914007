package handlers

import (
	"net/http"
	"sort"

	"github.com/edchristie03/tube-map/internal/api/dto"
	"github.com/edchristie03/tube-map/internal/domain"
)

type StationHandler struct {
	Network *domain.Network
}

// List returns every station in the network, ordered by display name.
func (h *StationHandler) List(w http.ResponseWriter, r *http.Request) {
	res := dto.ListStationsResponse{Stations: make([]dto.StationResponse, 0, len(h.Network.Stations))}
	for _, s := range h.Network.Stations {
		res.Stations = append(res.Stations, stationResponse(s))
	}

	sort.Slice(res.Stations, func(i, j int) bool {
		if res.Stations[i].Name != res.Stations[j].Name {
			return res.Stations[i].Name < res.Stations[j].Name
		}
		return res.Stations[i].ID < res.Stations[j].ID
	})

	writeJSON(w, r, http.StatusOK, res)
}
