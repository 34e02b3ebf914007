package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/edchristie03/tube-map/internal/api/dto"
	"github.com/edchristie03/tube-map/internal/domain"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode failed", "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func stationResponse(s *domain.Station) dto.StationResponse {
	return dto.StationResponse{ID: s.ID, Name: s.Name, Zones: s.Zones}
}
